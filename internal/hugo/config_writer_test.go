package hugo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/siteconf/internal/config"
	"git.home.luguber.info/inful/siteconf/internal/foundation/errors"
	"git.home.luguber.info/inful/siteconf/internal/metrics"
)

type writeCounter struct {
	metrics.NoopRecorder
	formats []string
}

func (w *writeCounter) IncConfigWrite(format string) { w.formats = append(w.formats, format) }

func declaredConfig() *config.Config {
	cfg := config.Declarations()
	cfg.Header = "<script>hdr</script>"
	return cfg
}

func readYaml(t *testing.T, path string) map[string]any {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, yaml.Unmarshal(b, &m))
	return m
}

func TestBuild_SiteIdentity(t *testing.T) {
	root := NewConfigWriter(declaredConfig()).Build()

	assert.Equal(t, "Python Group UEA", root["title"])
	assert.Equal(t, "/", root["baseURL"])
	assert.Equal(t, "en", root["languageCode"])
	assert.Equal(t, "Europe/London", root["timeZone"])
	assert.Equal(t, "theme", root["theme"])
	assert.Equal(t, "content", root["contentDir"])
	assert.Equal(t, map[string]any{"pagerSize": 5}, root["pagination"])
	assert.NotContains(t, root, "relativeURLs")
}

func TestBuild_BaseURLFromSiteURL(t *testing.T) {
	cfg := declaredConfig()
	cfg.SiteURL = "https://ueapy.github.io"
	cfg.RelativeURLs = true
	root := NewConfigWriter(cfg).Build()
	assert.Equal(t, "https://ueapy.github.io/", root["baseURL"])
	assert.Equal(t, true, root["relativeURLs"])
}

func TestBuild_MenuKeepsLinkOrder(t *testing.T) {
	cfg := declaredConfig()
	root := NewConfigWriter(cfg).Build()

	menus, ok := root["menus"].(map[string]any)
	require.True(t, ok)
	main, ok := menus["main"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, main, len(cfg.Links))
	for i, l := range cfg.Links {
		assert.Equal(t, l.Label, main[i]["name"])
		assert.Equal(t, l.URL, main[i]["url"])
		assert.Equal(t, i+1, main[i]["weight"])
	}
}

func TestBuild_Params(t *testing.T) {
	root := NewConfigWriter(declaredConfig()).Build()
	params, ok := root["params"].(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "Python Group", params["author"])
	assert.Equal(t, "cosmo", params["bootstrapTheme"])
	assert.Equal(t, "extra/custom.css", params["customCSS"])
	assert.Equal(t, "<script>hdr</script>", params["extraHeader"])
	assert.Equal(t, "notebooks", params["notebookDir"])
	assert.Equal(t, "archives.html", params["archivesSaveAs"])
	assert.Equal(t, []string{"jinja2.ext.i18n"}, params["templateExtensions"])

	display, ok := params["display"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, display["show_article_author"])
	assert.Equal(t, false, display["display_categories_on_menu"])

	sharing, ok := params["sharing"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "pythonuea", sharing["disqus"])
	assert.Equal(t, "https://github.com/ueapy", sharing["github"])

	plugins, ok := params["plugins"].([]string)
	require.True(t, ok)
	assert.Equal(t, "tag_cloud", plugins[0])
	assert.Equal(t, "liquid_tags.notebook", plugins[len(plugins)-1])
}

func TestBuild_DoesNotAliasConfig(t *testing.T) {
	cfg := declaredConfig()
	root := NewConfigWriter(cfg).Build()
	root["staticDir"].([]string)[0] = "changed"
	assert.Equal(t, "extra", cfg.StaticPaths[0])
}

func TestBuild_Feeds(t *testing.T) {
	cfg := declaredConfig()
	root := NewConfigWriter(cfg).Build()
	assert.Equal(t, []string{"RSS"}, root["disableKinds"])

	cfg.DisabledFeeds = []config.FeedKind{config.FeedAuthor}
	root = NewConfigWriter(cfg).Build()
	assert.NotContains(t, root, "disableKinds")
	assert.Equal(t, []string{"author"}, root["params"].(map[string]any)["disabledFeeds"])
}

func TestWriteFile_YAML(t *testing.T) {
	out := t.TempDir()
	rec := &writeCounter{}
	path, err := NewConfigWriter(declaredConfig()).WithRecorder(rec).WriteFile(out, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "hugo.yaml"), path)
	assert.Equal(t, []string{"yaml"}, rec.formats)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	conf := readYaml(t, path)
	assert.Equal(t, "Python Group UEA", conf["title"])
	assert.Equal(t, "theme", conf["theme"])
	pagination := conf["pagination"].(map[string]any)
	assert.Equal(t, 5, pagination["pagerSize"])
	main := conf["menus"].(map[string]any)["main"].([]any)
	assert.Equal(t, "Python Course 2018", main[0].(map[string]any)["name"])
	assert.Equal(t, "Meteodenny", main[9].(map[string]any)["name"])
}

func TestWriteFile_TOML(t *testing.T) {
	out := t.TempDir()
	path, err := NewConfigWriter(declaredConfig()).WriteFile(filepath.Join(out, "site"), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "site", "hugo.toml"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var conf map[string]any
	require.NoError(t, toml.Unmarshal(b, &conf))
	assert.Equal(t, "Python Group UEA", conf["title"])
	assert.Equal(t, int64(5), conf["pagination"].(map[string]any)["pagerSize"])
	main := conf["menus"].(map[string]any)["main"].([]any)
	require.Len(t, main, 10)
	assert.Equal(t, int64(1), main[0].(map[string]any)["weight"])
}

func TestWriteFile_OutputIsFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(out, nil, 0o644))

	_, err := NewConfigWriter(declaredConfig()).WriteFile(out, FormatYAML)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryFileSystem))
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"": FormatYAML, "YAML": FormatYAML, "yml": FormatYAML, " toml ": FormatTOML}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("json")
	assert.Error(t, err)
}

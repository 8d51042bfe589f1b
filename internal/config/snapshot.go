package config

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// Snapshot computes a stable hash of the fields that shape the generated site.
// Extra path metadata and disabled feeds are order-insensitive; static paths, plugins
// and links keep their order because the written engine config preserves it.
func (c *Config) Snapshot() string {
	if c == nil {
		return ""
	}
	h := sha256.New()
	w := func(parts ...string) { h.Write([]byte(strings.Join(parts, "="))); h.Write([]byte{0}) }

	w("author", c.Author)
	w("site_name", c.SiteName)
	w("site_url", c.SiteURL)
	w("timezone", c.Timezone)
	w("default_lang", c.DefaultLang)

	w("content_path", c.ContentPath)
	w("static_paths", strings.Join(c.StaticPaths, ","))
	metaKeys := make([]string, 0, len(c.ExtraPathMetadata))
	for k := range c.ExtraPathMetadata {
		metaKeys = append(metaKeys, k)
	}
	sort.Strings(metaKeys)
	for _, k := range metaKeys {
		attrs := c.ExtraPathMetadata[k]
		attrKeys := make([]string, 0, len(attrs))
		for a := range attrs {
			attrKeys = append(attrKeys, a)
		}
		sort.Strings(attrKeys)
		for _, a := range attrKeys {
			w("extra_path_metadata", k, a, attrs[a])
		}
	}
	w("notebook_dir", c.NotebookDir)
	w("archives_save_as", c.ArchivesSaveAs)

	w("theme", c.Theme)
	w("bootstrap_theme", c.BootstrapTheme)
	w("pygments_style", c.PygmentsStyle)
	w("custom_css", c.CustomCSS)
	d := c.Display
	w("display", strconv.FormatBool(d.ShowArticleAuthor), strconv.FormatBool(d.ShowArticleCategory),
		strconv.FormatBool(d.DisplayTagsOnSidebar), strconv.FormatBool(d.DisplayTagsInline),
		strconv.FormatBool(d.DisplayPagesOnMenu), strconv.FormatBool(d.DisplayCategoriesOnMenu))
	w("default_pagination", strconv.Itoa(c.DefaultPagination))
	w("relative_urls", strconv.FormatBool(c.RelativeURLs))

	w("plugin_paths", strings.Join(c.PluginPaths, ","))
	w("plugins", strings.Join(c.Plugins, ","))
	w("template_extensions", strings.Join(c.TemplateExtensions, ","))

	w("overwrite_nb_header", strconv.FormatBool(c.OverwriteNotebookHeader))
	w("header", c.Header)

	for _, l := range c.Links {
		w("link", l.Label, l.URL)
	}
	s := c.Social
	w("social", s.GitHubURL, s.DisqusSiteName, s.AddThisProfile,
		strconv.FormatBool(s.FacebookLike), strconv.FormatBool(s.GooglePlusOne), strconv.FormatBool(s.GoogleCustomSearchSidebar))

	feeds := make([]string, 0, len(c.DisabledFeeds))
	for _, k := range c.DisabledFeeds {
		feeds = append(feeds, string(k))
	}
	sort.Strings(feeds)
	w("disabled_feeds", strings.Join(feeds, ","))

	return hex.EncodeToString(h.Sum(nil))
}

package hugo

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/siteconf/internal/config"
	"git.home.luguber.info/inful/siteconf/internal/foundation/errors"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
	"git.home.luguber.info/inful/siteconf/internal/metrics"
)

// ConfigWriter renders a loaded site configuration into engine config files.
type ConfigWriter struct {
	cfg      *config.Config
	recorder metrics.Recorder
}

// NewConfigWriter creates a writer for cfg. cfg is read, never modified.
func NewConfigWriter(cfg *config.Config) *ConfigWriter {
	return &ConfigWriter{cfg: cfg, recorder: metrics.NoopRecorder{}}
}

// WithRecorder sets the metrics recorder used by WriteFile.
func (w *ConfigWriter) WithRecorder(r metrics.Recorder) *ConfigWriter {
	if r != nil {
		w.recorder = r
	}
	return w
}

// Build returns the engine settings tree. Every value is a string, bool, int,
// slice or map so the tree marshals identically to YAML and TOML.
func (w *ConfigWriter) Build() map[string]any {
	c := w.cfg

	// Phase 1: site identity
	root := map[string]any{
		"title":        c.SiteName,
		"baseURL":      baseURL(c.SiteURL),
		"languageCode": c.DefaultLang,
		"timeZone":     c.Timezone,
	}
	if c.RelativeURLs {
		root["relativeURLs"] = true
	}

	// Phase 2: content layout
	root["contentDir"] = c.ContentPath
	root["staticDir"] = append([]string{}, c.StaticPaths...)
	root["pagination"] = map[string]any{"pagerSize": c.DefaultPagination}

	// Phase 3: presentation
	if c.Theme != "" {
		root["theme"] = c.Theme
	}
	root["markup"] = map[string]any{
		"highlight": map[string]any{"style": c.PygmentsStyle},
	}

	// Phase 4: navigation, in declaration order
	if len(c.Links) > 0 {
		entries := make([]map[string]any, 0, len(c.Links))
		for i, l := range c.Links {
			entries = append(entries, map[string]any{"name": l.Label, "url": l.URL, "weight": i + 1})
		}
		root["menus"] = map[string]any{"main": entries}
	}

	// Phase 5: params, layered by concern
	params := map[string]any{}
	mergeParams(params, w.identityParams())
	mergeParams(params, w.presentationParams())
	mergeParams(params, w.contentParams())
	mergeParams(params, map[string]any{"sharing": c.Social.Providers()})
	root["params"] = params

	// Phase 6: feeds
	if kinds := disableKinds(c); len(kinds) > 0 {
		root["disableKinds"] = kinds
	}
	return root
}

func (w *ConfigWriter) identityParams() map[string]any {
	return map[string]any{"author": w.cfg.Author}
}

func (w *ConfigWriter) presentationParams() map[string]any {
	c := w.cfg
	p := map[string]any{
		"display": map[string]any{
			"show_article_author":        c.Display.ShowArticleAuthor,
			"show_article_category":      c.Display.ShowArticleCategory,
			"display_tags_on_sidebar":    c.Display.DisplayTagsOnSidebar,
			"display_tags_inline":        c.Display.DisplayTagsInline,
			"display_pages_on_menu":      c.Display.DisplayPagesOnMenu,
			"display_categories_on_menu": c.Display.DisplayCategoriesOnMenu,
		},
		"extraHeader":       c.Header,
		"overwriteNBHeader": c.OverwriteNotebookHeader,
	}
	if c.BootstrapTheme != "" {
		p["bootstrapTheme"] = c.BootstrapTheme
	}
	if c.CustomCSS != "" {
		p["customCSS"] = c.CustomCSS
	}
	if len(c.TemplateExtensions) > 0 {
		p["templateExtensions"] = append([]string{}, c.TemplateExtensions...)
	}
	return p
}

func (w *ConfigWriter) contentParams() map[string]any {
	c := w.cfg
	p := map[string]any{
		"plugins":     append([]string{}, c.Plugins...),
		"pluginPaths": append([]string{}, c.PluginPaths...),
	}
	if c.NotebookDir != "" {
		p["notebookDir"] = c.NotebookDir
	}
	if c.ArchivesSaveAs != "" {
		p["archivesSaveAs"] = c.ArchivesSaveAs
	}
	if len(c.ExtraPathMetadata) > 0 {
		meta := make(map[string]any, len(c.ExtraPathMetadata))
		for path, attrs := range c.ExtraPathMetadata {
			m := make(map[string]any, len(attrs))
			for k, v := range attrs {
				m[k] = v
			}
			meta[path] = m
		}
		p["extraPathMetadata"] = meta
	}
	if len(c.DisabledFeeds) > 0 {
		feeds := make([]string, 0, len(c.DisabledFeeds))
		for _, k := range c.DisabledFeeds {
			feeds = append(feeds, string(k))
		}
		p["disabledFeeds"] = feeds
	}
	return p
}

// disableKinds maps disabled feeds onto engine page kinds. Only the site-wide feed
// has a kind of its own; per-section feeds are carried in params.disabledFeeds.
func disableKinds(c *config.Config) []string {
	if c.FeedDisabled(config.FeedAllAtom) {
		return []string{"RSS"}
	}
	return nil
}

// baseURL defaults an empty site URL to "/" as the engine requires a value.
func baseURL(siteURL string) string {
	if siteURL == "" {
		return "/"
	}
	return siteURL + "/"
}

// Marshal serializes the settings tree in the given format.
func (w *ConfigWriter) Marshal(format Format) ([]byte, error) {
	root := w.Build()
	switch format {
	case FormatTOML:
		data, err := toml.Marshal(root)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal Hugo config as TOML: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(root)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal Hugo config: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
}

// WriteFile writes the engine config into dir and returns the file path.
func (w *ConfigWriter) WriteFile(dir string, format Format) (string, error) {
	data, err := w.Marshal(format)
	if err != nil {
		return "", errors.RenderError("failed to render engine config").
			WithCause(err).WithContext("format", string(format)).Build()
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.FileSystemError("failed to create output directory").
			WithCause(err).WithContext("path", dir).Build()
	}
	configPath := filepath.Join(dir, format.FileName())
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return "", errors.FileSystemError("failed to write engine config").
			WithCause(err).WithContext("path", configPath).Build()
	}
	w.recorder.IncConfigWrite(string(format))
	slog.Info("Generated Hugo configuration", logfields.Path(configPath), logfields.Format(string(format)), logfields.Bytes(len(data)))
	return configPath, nil
}

package config

import "maps"

// Config is the site configuration record handed to the static-site engine.
// It is fully built by Load and must be treated as read-only afterwards; use Clone
// when a modified variant is needed.
type Config struct {
	// Identity
	Author      string `yaml:"author" json:"author"`
	SiteName    string `yaml:"site_name" json:"site_name"`
	SiteURL     string `yaml:"site_url" json:"site_url"`
	Timezone    string `yaml:"timezone" json:"timezone"`
	DefaultLang string `yaml:"default_lang" json:"default_lang"`

	// Paths
	ContentPath       string                       `yaml:"content_path" json:"content_path"`
	StaticPaths       []string                     `yaml:"static_paths" json:"static_paths"`
	ExtraPathMetadata map[string]map[string]string `yaml:"extra_path_metadata,omitempty" json:"extra_path_metadata,omitempty"`
	NotebookDir       string                       `yaml:"notebook_dir,omitempty" json:"notebook_dir,omitempty"`
	ArchivesSaveAs    string                       `yaml:"archives_save_as,omitempty" json:"archives_save_as,omitempty"`

	// Presentation
	Theme             string       `yaml:"theme" json:"theme"`
	BootstrapTheme    string       `yaml:"bootstrap_theme,omitempty" json:"bootstrap_theme,omitempty"`
	PygmentsStyle     string       `yaml:"pygments_style,omitempty" json:"pygments_style,omitempty"`
	CustomCSS         string       `yaml:"custom_css,omitempty" json:"custom_css,omitempty"`
	Display           DisplayFlags `yaml:"display" json:"display"`
	DefaultPagination int          `yaml:"default_pagination" json:"default_pagination"`
	RelativeURLs      bool         `yaml:"relative_urls,omitempty" json:"relative_urls,omitempty"`

	// Extensibility
	PluginPaths        []string `yaml:"plugin_paths" json:"plugin_paths"`
	Plugins            []string `yaml:"plugins" json:"plugins"`
	TemplateExtensions []string `yaml:"template_extensions,omitempty" json:"template_extensions,omitempty"`

	// Header snippet. Header always holds the raw file contents read at load time;
	// a value supplied by an overlay is discarded.
	HeaderPath              string `yaml:"header_path" json:"header_path"`
	OverwriteNotebookHeader bool   `yaml:"overwrite_nb_header" json:"overwrite_nb_header"`
	Header                  string `yaml:"header,omitempty" json:"header,omitempty"`

	Links         []Link     `yaml:"links" json:"links"`
	Social        Social     `yaml:"social" json:"social"`
	DisabledFeeds []FeedKind `yaml:"disabled_feeds" json:"disabled_feeds"`
}

// DisplayFlags are the theme's boolean display toggles.
type DisplayFlags struct {
	ShowArticleAuthor       bool `yaml:"show_article_author" json:"show_article_author"`
	ShowArticleCategory     bool `yaml:"show_article_category" json:"show_article_category"`
	DisplayTagsOnSidebar    bool `yaml:"display_tags_on_sidebar" json:"display_tags_on_sidebar"`
	DisplayTagsInline       bool `yaml:"display_tags_inline" json:"display_tags_inline"`
	DisplayPagesOnMenu      bool `yaml:"display_pages_on_menu" json:"display_pages_on_menu"`
	DisplayCategoriesOnMenu bool `yaml:"display_categories_on_menu" json:"display_categories_on_menu"`
}

// Link is a labelled external navigation entry (blogroll). Position in Config.Links
// is the display order.
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Social holds sharing and comment-provider identifiers.
type Social struct {
	GitHubURL                 string `yaml:"github_url,omitempty" json:"github_url,omitempty"`
	DisqusSiteName            string `yaml:"disqus_sitename,omitempty" json:"disqus_sitename,omitempty"`
	AddThisProfile            string `yaml:"addthis_profile,omitempty" json:"addthis_profile,omitempty"`
	FacebookLike              bool   `yaml:"facebook_like" json:"facebook_like"`
	GooglePlusOne             bool   `yaml:"google_plus_one" json:"google_plus_one"`
	GoogleCustomSearchSidebar bool   `yaml:"google_custom_search_sidebar" json:"google_custom_search_sidebar"`
}

// Providers returns the sharing identifiers keyed by provider name. Empty identifiers
// are left out; boolean toggles are always present.
func (s Social) Providers() map[string]any {
	out := map[string]any{
		"facebook_like":                s.FacebookLike,
		"google_plus_one":              s.GooglePlusOne,
		"google_custom_search_sidebar": s.GoogleCustomSearchSidebar,
	}
	if s.GitHubURL != "" {
		out["github"] = s.GitHubURL
	}
	if s.DisqusSiteName != "" {
		out["disqus"] = s.DisqusSiteName
	}
	if s.AddThisProfile != "" {
		out["addthis"] = s.AddThisProfile
	}
	return out
}

// FeedKind names a feed the engine would otherwise generate.
type FeedKind string

const (
	FeedAllAtom         FeedKind = "all_atom"
	FeedCategoryAtom    FeedKind = "category_atom"
	FeedTranslationAtom FeedKind = "translation_atom"
	// FeedAuthor covers both the per-author Atom and RSS feeds.
	FeedAuthor FeedKind = "author"
)

// AllFeedKinds lists every known feed kind in canonical order.
func AllFeedKinds() []FeedKind {
	return []FeedKind{FeedAllAtom, FeedCategoryAtom, FeedTranslationAtom, FeedAuthor}
}

// Valid reports whether k is a known feed kind.
func (k FeedKind) Valid() bool {
	switch k {
	case FeedAllAtom, FeedCategoryAtom, FeedTranslationAtom, FeedAuthor:
		return true
	}
	return false
}

// FeedDisabled reports whether kind is in the disabled set.
func (c *Config) FeedDisabled(kind FeedKind) bool {
	for _, k := range c.DisabledFeeds {
		if k == kind {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := *c
	out.StaticPaths = append([]string(nil), c.StaticPaths...)
	out.PluginPaths = append([]string(nil), c.PluginPaths...)
	out.Plugins = append([]string(nil), c.Plugins...)
	out.TemplateExtensions = append([]string(nil), c.TemplateExtensions...)
	out.Links = append([]Link(nil), c.Links...)
	out.DisabledFeeds = append([]FeedKind(nil), c.DisabledFeeds...)
	if c.ExtraPathMetadata != nil {
		out.ExtraPathMetadata = make(map[string]map[string]string, len(c.ExtraPathMetadata))
		for path, attrs := range c.ExtraPathMetadata {
			out.ExtraPathMetadata[path] = maps.Clone(attrs)
		}
	}
	return &out
}

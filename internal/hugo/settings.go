package hugo

import "git.home.luguber.info/inful/siteconf/internal/config"

// Default output paths of the feeds the engine generates when not disabled.
var feedDefaults = map[string]string{
	"FEED_ALL_ATOM":         "feeds/all.atom.xml",
	"CATEGORY_FEED_ATOM":    "feeds/{slug}.atom.xml",
	"TRANSLATION_FEED_ATOM": "feeds/all-{lang}.atom.xml",
	"AUTHOR_FEED_ATOM":      "feeds/{slug}.atom.xml",
	"AUTHOR_FEED_RSS":       "feeds/{slug}.rss.xml",
}

// feedSettings lists the setting names each feed kind controls.
var feedSettings = map[config.FeedKind][]string{
	config.FeedAllAtom:         {"FEED_ALL_ATOM"},
	config.FeedCategoryAtom:    {"CATEGORY_FEED_ATOM"},
	config.FeedTranslationAtom: {"TRANSLATION_FEED_ATOM"},
	config.FeedAuthor:          {"AUTHOR_FEED_ATOM", "AUTHOR_FEED_RSS"},
}

// Settings returns the record as a flat map keyed by upper-case setting name.
// A disabled feed maps to nil.
func (w *ConfigWriter) Settings() map[string]any {
	c := w.cfg
	links := make([][]string, 0, len(c.Links))
	for _, l := range c.Links {
		links = append(links, []string{l.Label, l.URL})
	}
	meta := make(map[string]map[string]string, len(c.ExtraPathMetadata))
	for path, attrs := range c.ExtraPathMetadata {
		m := make(map[string]string, len(attrs))
		for k, v := range attrs {
			m[k] = v
		}
		meta[path] = m
	}

	s := map[string]any{
		"AUTHOR":       c.Author,
		"SITENAME":     c.SiteName,
		"SITEURL":      c.SiteURL,
		"TIMEZONE":     c.Timezone,
		"DEFAULT_LANG": c.DefaultLang,

		"PATH":                c.ContentPath,
		"STATIC_PATHS":        append([]string{}, c.StaticPaths...),
		"EXTRA_PATH_METADATA": meta,
		"NOTEBOOK_DIR":        c.NotebookDir,
		"ARCHIVES_SAVE_AS":    c.ArchivesSaveAs,

		"THEME":                      c.Theme,
		"BOOTSTRAP_THEME":            c.BootstrapTheme,
		"PYGMENTS_STYLE":             c.PygmentsStyle,
		"CUSTOM_CSS":                 c.CustomCSS,
		"SHOW_ARTICLE_AUTHOR":        c.Display.ShowArticleAuthor,
		"SHOW_ARTICLE_CATEGORY":      c.Display.ShowArticleCategory,
		"DISPLAY_TAGS_ON_SIDEBAR":    c.Display.DisplayTagsOnSidebar,
		"DISPLAY_TAGS_INLINE":        c.Display.DisplayTagsInline,
		"DISPLAY_PAGES_ON_MENU":      c.Display.DisplayPagesOnMenu,
		"DISPLAY_CATEGORIES_ON_MENU": c.Display.DisplayCategoriesOnMenu,
		"DEFAULT_PAGINATION":         c.DefaultPagination,
		"RELATIVE_URLS":              c.RelativeURLs,
		"JINJA_ENVIRONMENT":          map[string]any{"extensions": append([]string{}, c.TemplateExtensions...)},

		"PLUGIN_PATHS": append([]string{}, c.PluginPaths...),
		"PLUGINS":      append([]string{}, c.Plugins...),

		"OVERWRITE_NB_HEADER": c.OverwriteNotebookHeader,
		"EXTRA_HEADER":        c.Header,

		"LINKS": links,

		"GITHUB_URL":                   c.Social.GitHubURL,
		"DISQUS_SITENAME":              c.Social.DisqusSiteName,
		"ADDTHIS_PROFILE":              c.Social.AddThisProfile,
		"FACEBOOK_LIKE":                c.Social.FacebookLike,
		"GOOGLE_PLUS_ONE":              c.Social.GooglePlusOne,
		"GOOGLE_CUSTOM_SEARCH_SIDEBAR": c.Social.GoogleCustomSearchSidebar,
	}

	for name, path := range feedDefaults {
		s[name] = path
	}
	for _, kind := range c.DisabledFeeds {
		for _, name := range feedSettings[kind] {
			s[name] = nil
		}
	}
	return s
}

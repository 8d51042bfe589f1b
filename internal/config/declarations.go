package config

// DefaultHeaderPath is where the notebook header snippet lives, relative to the
// working directory.
const DefaultHeaderPath = "_nb_header.html"

// Declarations returns the site's literal settings. Each call builds a fresh value,
// so callers may overlay it without affecting later calls. Header is left empty;
// Load fills it from HeaderPath.
func Declarations() *Config {
	return &Config{
		Author:      "Python Group",
		SiteName:    "Python Group UEA",
		SiteURL:     "",
		Timezone:    "Europe/London",
		DefaultLang: "en",

		ContentPath: "content",
		StaticPaths: []string{
			"extra",
			"extra/robots.txt",
			"pdfs",
			"figures",
			"extra/favicon.ico",
			"extra/custom.css",
		},
		ExtraPathMetadata: map[string]map[string]string{
			"extra/favicon.ico": {"path": "favicon.ico"},
			"extra/custom.css":  {"path": "extra/custom.css"},
			"extra/robots.txt":  {"path": "robots.txt"},
		},
		NotebookDir:    "notebooks",
		ArchivesSaveAs: "archives.html",

		Theme:          "theme",
		BootstrapTheme: "cosmo",
		PygmentsStyle:  "default",
		CustomCSS:      "extra/custom.css",
		Display: DisplayFlags{
			ShowArticleAuthor:       true,
			ShowArticleCategory:     false,
			DisplayTagsOnSidebar:    true,
			DisplayTagsInline:       true,
			DisplayPagesOnMenu:      true,
			DisplayCategoriesOnMenu: false,
		},
		DefaultPagination: 5,

		PluginPaths: []string{"../pelican-plugins"},
		Plugins: []string{
			"tag_cloud",
			"summary",
			"i18n_subsites",
			"liquid_tags.img",
			"liquid_tags.video",
			"liquid_tags.youtube",
			"liquid_tags.vimeo",
			"liquid_tags.include_code",
			"liquid_tags.notebook",
		},
		TemplateExtensions: []string{"jinja2.ext.i18n"},

		HeaderPath:              DefaultHeaderPath,
		OverwriteNotebookHeader: true,

		Links: []Link{
			{Label: "Python Course 2018", URL: "https://ueapy.github.io/pythoncourse2018"},
			{Label: "Learn Python online", URL: "http://bafflednerd.com/learn-python-online"},
			{Label: "Python Videos", URL: "http://pyvideo.org/"},
			{Label: "From Python to Numpy", URL: "http://www.labri.fr/perso/nrougier/from-python-to-numpy/"},
			{Label: "EarthPy", URL: "http://earthpy.org/"},
			{Label: "Python4Oceanographers", URL: "https://ocefpaf.github.io/python4oceanographers/"},
			{Label: "PyAOS", URL: "http://pyaos.johnny-lin.com/"},
			{Label: "PyHOGs", URL: "http://pyhogs.github.io/"},
			{Label: "Pythonic Perambulations", URL: "https://jakevdp.github.io/"},
			{Label: "Meteodenny", URL: "https://dennissergeev.github.io/"},
		},

		Social: Social{
			GitHubURL:                 "https://github.com/ueapy",
			DisqusSiteName:            "pythonuea",
			AddThisProfile:            "ra-564e4d3ff0b9f071",
			FacebookLike:              true,
			GooglePlusOne:             true,
			GoogleCustomSearchSidebar: false,
		},

		// Feed generation is not wanted for this site.
		DisabledFeeds: AllFeedKinds(),
	}
}

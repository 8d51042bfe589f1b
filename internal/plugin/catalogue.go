package plugin

// knownPlugins are the community plugins the site's theme is built around.
var knownPlugins = []Descriptor{
	{Name: "tag_cloud", Kind: KindContent, Description: "Weighted tag cloud for the sidebar"},
	{Name: "summary", Kind: KindContent, Description: "Article summaries delimited by markers"},
	{Name: "i18n_subsites", Kind: KindSite, Description: "Translated subsites per language"},
	{Name: "liquid_tags.img", Kind: KindMarkup, Description: "{% img %} tag"},
	{Name: "liquid_tags.video", Kind: KindMarkup, Description: "{% video %} tag"},
	{Name: "liquid_tags.youtube", Kind: KindMarkup, Description: "{% youtube %} tag"},
	{Name: "liquid_tags.vimeo", Kind: KindMarkup, Description: "{% vimeo %} tag"},
	{Name: "liquid_tags.include_code", Kind: KindMarkup, Description: "{% include_code %} tag"},
	{Name: "liquid_tags.notebook", Kind: KindMarkup, Description: "{% notebook %} tag for Jupyter notebooks"},
	{Name: "liquid_tags.gram", Kind: KindMarkup, Description: "{% gram %} tag"},
	{Name: "liquid_tags.b64img", Kind: KindMarkup, Description: "{% b64img %} tag"},
	{Name: "render_math", Kind: KindContent, Description: "MathJax rendering"},
	{Name: "sitemap", Kind: KindSite, Description: "sitemap.xml generation"},
	{Name: "related_posts", Kind: KindContent, Description: "Related posts by tag"},
}

// DefaultRegistry returns a registry pre-populated with the known plugins.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, d := range knownPlugins {
		// knownPlugins is static and unique; a failure here is a programming error.
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}

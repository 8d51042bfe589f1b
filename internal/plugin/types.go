package plugin

// Kind identifies the category of an engine plugin.
type Kind string

const (
	// KindContent plugins add or reshape content (summaries, notebooks, tag clouds).
	KindContent Kind = "content"
	// KindMarkup plugins add inline markup tags (images, video embeds, code includes).
	KindMarkup Kind = "markup"
	// KindSite plugins change how the whole site is generated (translated subsites).
	KindSite Kind = "site"
)

// IsValid returns true if the kind is recognized.
func (k Kind) IsValid() bool {
	switch k {
	case KindContent, KindMarkup, KindSite:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

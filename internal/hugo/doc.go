// Package hugo renders the site configuration record into the settings file the
// static-site engine reads at build time.
//
// The writer builds a plain map tree in phases (site identity, content layout,
// presentation, navigation, params, feeds) and marshals it as hugo.yaml or
// hugo.toml. Settings returns the same record as a flat map keyed by the engine's
// upper-case setting names, for inspection and for engines that import settings
// as module-level constants.
package hugo

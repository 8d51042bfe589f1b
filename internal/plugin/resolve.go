package plugin

import (
	"os"
	"path/filepath"
)

// Location is where an enabled plugin was found.
type Location struct {
	Name string
	// Path is the package directory or module file that provides the plugin.
	Path string
}

// Resolution is the outcome of resolving a plugin list against search paths.
type Resolution struct {
	Found   []Location
	Missing []string
}

// Resolve locates each plugin under the search paths. The first path that contains
// the plugin's top-level package (a directory, or a module file "<pkg>.py") wins, as
// the engine searches them in order. Relative search paths are taken relative to baseDir.
// Missing plugins are reported, not treated as errors.
func Resolve(baseDir string, searchPaths, names []string) Resolution {
	var res Resolution
	for _, name := range names {
		if loc, ok := locate(baseDir, searchPaths, name); ok {
			res.Found = append(res.Found, loc)
		} else {
			res.Missing = append(res.Missing, name)
		}
	}
	return res
}

func locate(baseDir string, searchPaths []string, name string) (Location, bool) {
	pkg := PackageOf(name)
	for _, sp := range searchPaths {
		root := sp
		if !filepath.IsAbs(root) {
			root = filepath.Join(baseDir, root)
		}
		dir := filepath.Join(root, pkg)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return Location{Name: name, Path: dir}, true
		}
		module := dir + ".py"
		if info, err := os.Stat(module); err == nil && info.Mode().IsRegular() {
			return Location{Name: name, Path: module}, true
		}
	}
	return Location{}, false
}

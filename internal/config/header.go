package config

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"git.home.luguber.info/inful/siteconf/internal/foundation/errors"
)

// EnsureHeader makes sure the header snippet at path exists, creating an empty file
// if it is absent, and returns its full contents. created reports whether the file
// was created by this call. An existing file is opened read-only and never modified.
//
// There is no guard against a concurrent writer between the existence check and the
// create; the loader runs once per process.
func EnsureHeader(path string) (content string, created bool, err error) {
	if _, statErr := os.Stat(path); statErr != nil {
		if !stderrors.Is(statErr, fs.ErrNotExist) {
			return "", false, headerError("stat header snippet", path, statErr)
		}
		created = true
	}

	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return "", false, headerError("open header snippet", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = headerError("close header snippet", path, cerr)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", created, headerError("read header snippet", path, err)
	}
	return string(data), created, nil
}

func headerError(msg, path string, cause error) error {
	return errors.WrapError(cause, errors.CategoryFileSystem, msg).
		Fatal().
		WithContext("path", path).
		Build()
}

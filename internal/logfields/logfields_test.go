package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"RunID", KeyRunID, "r1", RunID("r1")},
		{"Stage", KeyStage, "header", Stage("header")},
		{"Path", KeyPath, "_nb_header.html", Path("_nb_header.html")},
		{"Theme", KeyTheme, "theme", Theme("theme")},
		{"Plugin", KeyPlugin, "tag_cloud", Plugin("tag_cloud")},
		{"Format", KeyFormat, "yaml", Format("yaml")},
		{"Snapshot", KeySnapshot, "abc", Snapshot("abc")},
		{"Error", KeyError, "boom", Error(errors.New("boom"))},
		{"NilError", KeyError, "", Error(nil)},
	}
	for _, c := range cases {
		if c.attr.Key != c.attrKey {
			t.Errorf("%s: key = %q, want %q", c.name, c.attr.Key, c.attrKey)
		}
		if got := c.attr.Value.String(); got != c.attrVal {
			t.Errorf("%s: value = %q, want %q", c.name, got, c.attrVal)
		}
	}
}

func TestNumericHelpers(t *testing.T) {
	if a := Bytes(42); a.Key != KeyBytes || a.Value.Int64() != 42 {
		t.Errorf("unexpected Bytes attr %v", a)
	}
	if a := DurationMS(1.5); a.Key != KeyDurationMS || a.Value.Float64() != 1.5 {
		t.Errorf("unexpected DurationMS attr %v", a)
	}
}

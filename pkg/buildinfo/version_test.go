package buildinfo

import "testing"

func TestShort(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)

	if got := Short(); got != "dev" {
		t.Errorf("Short() = %q, want %q", got, "dev")
	}

	Version, Commit, Date = "v0.3.0", "1a2b3c4", "2026-01-02T03:04:05Z"
	if got, want := Short(), "v0.3.0 (1a2b3c4, 2026-01-02T03:04:05Z)"; got != want {
		t.Errorf("Short() = %q, want %q", got, want)
	}
	if got, want := Template(), "{{.Name}} v0.3.0 (1a2b3c4, 2026-01-02T03:04:05Z)\n"; got != want {
		t.Errorf("Template() = %q, want %q", got, want)
	}
}

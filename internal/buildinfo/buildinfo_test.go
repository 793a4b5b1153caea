package buildinfo

import "testing"

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "dev", ""
	if got := Short(); got != "dev" {
		t.Fatalf("got %q", got)
	}

	Version, Commit = "v0.3.0", "0123456789abcdef0123"
	if got := Short(); got != "v0.3.0+0123456789ab" {
		t.Fatalf("got %q", got)
	}
}

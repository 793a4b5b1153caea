// Package buildinfo carries version identifiers stamped at build time via
// -ldflags "-X femtogl/internal/buildinfo.Version=...".
package buildinfo

var (
	Version = "dev"
	Commit  = ""
)

// Short returns a compact identifier for --version output and log lines.
func Short() string {
	s := Version
	if Commit != "" {
		c := Commit
		if len(c) > 12 {
			c = c[:12]
		}
		s += "+" + c
	}
	return s
}

// Package version exposes build information injected at link time.
package version

import "fmt"

const versionDefault = "dev"

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/foelkdavid/zyfetch/pkg/version.Version=1.0.0"
	Version = versionDefault
	Commit  = "unknown"
	Date    = "unknown"
)

// Info is the build information document the version command prints.
type Info struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

// Get returns the build information for the named binary.
func Get(name string) Info {
	return Info{
		Name:    name,
		Version: Version,
		Commit:  Commit,
		Date:    Date,
	}
}

// RenderText renders the single-line human form.
func (i Info) RenderText() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)\n", i.Name, i.Version, i.Commit, i.Date)
}

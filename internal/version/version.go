package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/xml2conf/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/xml2conf/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/xml2conf/internal/version.Date={{.Date}}
)

// String returns the version with its build metadata
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}

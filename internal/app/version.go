package app

import "fmt"

// Populated at build time, e.g.
// go build -ldflags "-X github.com/riskframe/secreview-backend/internal/app.Version=0.3.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string reported in startup logs and by the
// health endpoints.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

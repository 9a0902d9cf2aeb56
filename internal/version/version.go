package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/quotecms/quotetag/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/quotecms/quotetag/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/quotecms/quotetag/internal/version.Date={{.Date}}
)

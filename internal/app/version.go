package app

// Build metadata, stamped by the release script via -ldflags
// "-X github.com/inkstone-im/pinwheel/internal/app.Version=...". Unstamped
// builds report "dev".
var (
	Version = "dev"
	Commit  = ""
)

// BuildVersion renders the stamped metadata for startup logs; the commit
// suffix is omitted on unstamped builds.
func BuildVersion() string {
	if Commit == "" {
		return Version
	}
	return Version + "+" + Commit
}

package version

// Version contains the application version information.
// This should be set via build-time ldflags in production:
// go build -ldflags "-X git.home.luguber.info/inful/xhacklight/internal/version.Version=v0.2.0".
var Version = "unknown"

// GitCommit is the source revision, also set via ldflags.
var GitCommit = "unknown"

// String returns "version (commit)" for startup logging.
func String() string {
	return Version + " (" + GitCommit + ")"
}

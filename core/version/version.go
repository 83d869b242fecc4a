package version

// Version is overridden at build time with
// -ldflags "-X github.com/tristendillon/pydeps/core/version.Version=..."
var Version = "dev"

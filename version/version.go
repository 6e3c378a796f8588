package version

// Version is the binary's version string. Release builds override it with
// -ldflags "-X github.com/pacebar/pace/version.Version=...".
var Version = "0.0.0"

// Package build carries build-time metadata stamped in via -ldflags.
package build

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/jedevc/dwsh/internal/build.Version=...".
var Version = "dev"

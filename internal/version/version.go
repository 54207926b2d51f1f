// internal/version/version.go
package version

// Version is the release string reported by --version. Override at link
// time with: -ldflags "-X pwalign/internal/version.Version=vX.Y.Z".
var Version = "0.3.0"

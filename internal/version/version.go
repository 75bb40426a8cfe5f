// internal/version/version.go
package version

// Version is the lrsim release string, overridable at link time.
var Version = "0.3.0"

// Package build holds build-time information.
package build

// Version is the application version. Release builds overwrite the
// default via linker flags.
var Version = "dev"

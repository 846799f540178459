// Package build holds build-time information.
package build

// These values default to development placeholders and are overwritten by linker flags:
//
//	-ldflags "-X go.trai.ch/xtask/internal/build.Version=v1.2.3"
var (
	// Version is the application version.
	Version = "dev"
	// Commit is the VCS revision the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

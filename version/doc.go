// Package version reports the rawpack build.
//
// Version, Commit and Date are injected at link time:
//
//	-ldflags "-X github.com/dendrascience/rawpack/version.Version=v0.3.0 -X github.com/dendrascience/rawpack/version.Commit=abc1234"
//
// When they are left at their defaults, the values recorded by the Go
// toolchain in debug.ReadBuildInfo are used instead, so `go install` builds
// still report a module version and VCS revision.
package version

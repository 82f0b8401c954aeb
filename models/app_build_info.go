package models

import "fmt"

// unknownBuildValue stands in for build metadata the linker did not inject.
const unknownBuildValue = "N/A"

// AppBuildInfo is the build metadata injected with -ldflags -X into the
// server and client binaries.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo returns build info with every empty value set to "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	orUnknown := func(s string) string {
		if s == "" {
			return unknownBuildValue
		}
		return s
	}
	return AppBuildInfo{Version: orUnknown(version), Date: orUnknown(date), Commit: orUnknown(commit)}
}

// Known reports whether the binary was built with a version.
func (b AppBuildInfo) Known() bool {
	return b.Version != "" && b.Version != unknownBuildValue
}

func (b AppBuildInfo) String() string {
	return fmt.Sprintf("version %s, commit %s, built %s", b.Version, b.Commit, b.Date)
}

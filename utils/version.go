package utils

import (
	"github.com/Masterminds/semver/v3"
)

// IsUpToDate is a function that is used to find out wether the installed OS version is the latest
//
// The installed version is not up to date when any known version is strictly greater under semantic
// versioning. A known version that does not parse as MAJOR.MINOR.PATCH is treated as greater, so a
// malformed catalog entry marks the device as stale.
func IsUpToDate(installed string, known []string) bool {
	// an installed version that does not parse loses every comparison
	current, _ := semver.StrictNewVersion(installed)

	for _, version := range known {
		if isNewer(version, current) {
			return false
		}
	}

	return true
}

// isNewer reports wether version is strictly greater than current, a nil current never wins a comparison
func isNewer(version string, current *semver.Version) bool {
	candidate, err := semver.StrictNewVersion(version)
	if err != nil {
		return true
	}
	if current == nil {
		return true
	}

	return candidate.GreaterThan(current)
}

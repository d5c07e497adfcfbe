package app

import (
	"github.com/Masterminds/semver/v3"
)

// Comparison is the verdict shown next to the installed version.
type Comparison int

const (
	Unknown Comparison = iota
	UpToDate
	UpdateAvailable
	AheadOfManifest
)

func (c Comparison) String() string {
	switch c {
	case UpToDate:
		return "up_to_date"
	case UpdateAvailable:
		return "update_available"
	case AheadOfManifest:
		return "ahead_of_manifest"
	default:
		return "unknown"
	}
}

// Compare needs both an installation and a ready manifest.
func (s State) Compare() Comparison {
	if s.Installation == nil || s.Manifest.Status != Ready {
		return Unknown
	}
	return CompareVersions(s.Installation.Version.Name, s.Manifest.Versions, s.Manifest.Latest)
}

// CompareVersions reports how installed relates to the published versions.
// When installed and every published name parse as semantic versions, the
// highest of them decides. Otherwise only an exact match with latest is
// up to date.
func CompareVersions(installed string, published []string, latest string) Comparison {
	iv, err := semver.NewVersion(installed)
	newest, ok := newestVersion(published)
	if err != nil || !ok {
		if installed == latest {
			return UpToDate
		}
		return UpdateAvailable
	}
	switch iv.Compare(newest) {
	case -1:
		return UpdateAvailable
	case 1:
		return AheadOfManifest
	default:
		return UpToDate
	}
}

// newestVersion is the semantic maximum of names, or false when names is
// empty or any name is not a semantic version.
func newestVersion(names []string) (*semver.Version, bool) {
	var newest *semver.Version
	for _, name := range names {
		v, err := semver.NewVersion(name)
		if err != nil {
			return nil, false
		}
		if newest == nil || v.GreaterThan(newest) {
			newest = v
		}
	}
	return newest, newest != nil
}

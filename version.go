package disjointset

import (
	"errors"
	"fmt"

	"github.com/coreos/go-semver/semver"
)

// Version is the release of this module as a dotted major.minor.patch string.
const Version = "1.0.0"

// ErrInvalidVersion indicates a string that is not a plain major.minor.patch triple.
var ErrInvalidVersion = errors.New("disjointset: invalid version")

// parseVersion accepts exactly major.minor.patch; pre-release and build suffixes are rejected
// so that ordering stays purely numeric.
func parseVersion(s string) (*semver.Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, s, err)
	}
	if v.PreRelease != "" || v.Metadata != "" {
		return nil, fmt.Errorf("%w: %q has a pre-release or build suffix", ErrInvalidVersion, s)
	}

	return v, nil
}

// CompareVersions compares a and b component by component and returns -1, 0 or 1.
func CompareVersions(a, b string) (int, error) {
	va, err := parseVersion(a)
	if err != nil {
		return 0, err
	}
	vb, err := parseVersion(b)
	if err != nil {
		return 0, err
	}

	return va.Compare(*vb), nil
}

// Compatible reports whether this release satisfies a caller that needs at least
// version required within the same major line.
func Compatible(required string) (bool, error) {
	want, err := parseVersion(required)
	if err != nil {
		return false, err
	}
	have := semver.New(Version)
	if have.Major != want.Major {
		return false, nil
	}

	return !have.LessThan(*want), nil
}

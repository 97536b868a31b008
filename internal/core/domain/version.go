package domain

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Version is a toolkit runtime version (e.g. 10.2).
type Version struct {
	Major int
	Minor int
}

// DecodeRuntimeVersion decodes the integer reported by cudaRuntimeGetVersion.
// The runtime encodes 10.2 as 10020: thousands carry the major version and
// the tens digit carries the minor version.
func DecodeRuntimeVersion(raw int) Version {
	return Version{
		Major: raw / 1000,
		Minor: (raw % 100) / 10,
	}
}

// ParseVersion parses a dotted "major.minor" string.
func ParseVersion(s string) (Version, error) {
	major, minor, found := strings.Cut(strings.TrimSpace(s), ".")
	if !found {
		return Version{}, zerr.With(ErrRecordMalformed, "version", s)
	}
	maj, err := strconv.Atoi(major)
	if err != nil {
		return Version{}, zerr.With(ErrRecordMalformed, "version", s)
	}
	min, err := strconv.Atoi(minor)
	if err != nil {
		return Version{}, zerr.With(ErrRecordMalformed, "version", s)
	}
	return Version{Major: maj, Minor: min}, nil
}

// String returns the dotted form, e.g. "10.2".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

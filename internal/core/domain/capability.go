package domain

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Capability is a device compute capability (e.g. 6.1).
// Generated device code targeting a capability runs on any device whose
// capability is greater than or equal to it, never the other way around.
type Capability struct {
	Major int
	Minor int
}

// ParseCapability parses a "major.minor" string as reported by nvidia-smi
// (e.g. "8.6"). A bare major version ("9") is accepted with minor 0.
func ParseCapability(s string) (Capability, error) {
	s = strings.TrimSpace(s)
	major, minor, found := strings.Cut(s, ".")

	maj, err := strconv.Atoi(major)
	if err != nil || maj < 0 {
		return Capability{}, zerr.With(ErrInvalidCapability, "value", s)
	}

	var min int
	if found {
		min, err = strconv.Atoi(minor)
		if err != nil || min < 0 {
			return Capability{}, zerr.With(ErrInvalidCapability, "value", s)
		}
	}

	return Capability{Major: maj, Minor: min}, nil
}

// String returns the dotted form, e.g. "6.1".
func (c Capability) String() string {
	return fmt.Sprintf("%d.%d", c.Major, c.Minor)
}

// Arch returns the nvcc architecture tag, e.g. "sm_61".
func (c Capability) Arch() string {
	return fmt.Sprintf("sm_%d%d", c.Major, c.Minor)
}

// Compare returns -1, 0 or 1 comparing c against o in (major, minor) order.
func (c Capability) Compare(o Capability) int {
	if c.Major != o.Major {
		if c.Major < o.Major {
			return -1
		}
		return 1
	}
	switch {
	case c.Minor < o.Minor:
		return -1
	case c.Minor > o.Minor:
		return 1
	default:
		return 0
	}
}

// SelectCapability picks the capability to compile for.
//
// The floor is the minimum capability across all locally attached devices,
// since generated code must run on the weakest device present. From the
// toolkit's supported list, the maximum capability at or below that floor is
// chosen, i.e. the richest target still compatible with every device.
func SelectCapability(local, supported []Capability) (Capability, error) {
	if len(local) == 0 {
		return Capability{}, ErrNoDevice
	}
	if len(supported) == 0 {
		return Capability{}, zerr.Wrap(ErrNoCompatibleCapability, "toolkit has no support entries")
	}

	floor := local[0]
	for _, c := range local[1:] {
		if c.Compare(floor) < 0 {
			floor = c
		}
	}

	selected := Capability{Major: -1}
	for _, c := range supported {
		if c.Compare(floor) <= 0 && c.Compare(selected) > 0 {
			selected = c
		}
	}
	if selected.Major < 0 {
		return Capability{}, zerr.With(ErrNoCompatibleCapability, "floor", floor.String())
	}
	return selected, nil
}

// supportedCapabilities maps a toolkit version to the device capabilities its
// compiler can target. Taken from the per-release nvcc documentation; minor
// releases that did not change the set are resolved through majorFallback.
var supportedCapabilities = map[Version][]Capability{
	{Major: 9, Minor: 0}:  caps("3.0", "3.2", "3.5", "3.7", "5.0", "5.2", "5.3", "6.0", "6.1", "6.2", "7.0", "7.2"),
	{Major: 9, Minor: 1}:  caps("3.0", "3.2", "3.5", "3.7", "5.0", "5.2", "5.3", "6.0", "6.1", "6.2", "7.0", "7.2"),
	{Major: 9, Minor: 2}:  caps("3.0", "3.2", "3.5", "3.7", "5.0", "5.2", "5.3", "6.0", "6.1", "6.2", "7.0", "7.2"),
	{Major: 10, Minor: 0}: caps("3.0", "3.2", "3.5", "3.7", "5.0", "5.2", "5.3", "6.0", "6.1", "6.2", "7.0", "7.2", "7.5"),
	{Major: 10, Minor: 1}: caps("3.0", "3.2", "3.5", "3.7", "5.0", "5.2", "5.3", "6.0", "6.1", "6.2", "7.0", "7.2", "7.5"),
	{Major: 10, Minor: 2}: caps("3.0", "3.2", "3.5", "3.7", "5.0", "5.2", "5.3", "6.0", "6.1", "6.2", "7.0", "7.2", "7.5"),
	{Major: 11, Minor: 0}: caps("3.5", "3.7", "5.0", "5.2", "5.3", "6.0", "6.1", "6.2", "7.0", "7.2", "7.5", "8.0"),
	{Major: 11, Minor: 1}: caps("3.5", "3.7", "5.0", "5.2", "5.3", "6.0", "6.1", "6.2", "7.0", "7.2", "7.5", "8.0", "8.6"),
	{Major: 11, Minor: 8}: caps("3.5", "3.7", "5.0", "5.2", "5.3", "6.0", "6.1", "6.2", "7.0", "7.2", "7.5", "8.0", "8.6", "8.7", "8.9", "9.0"),
	{Major: 12, Minor: 0}: caps("5.0", "5.2", "5.3", "6.0", "6.1", "6.2", "7.0", "7.2", "7.5", "8.0", "8.6", "8.7", "8.9", "9.0"),
}

// majorFallback covers minor releases without their own table entry.
var majorFallback = map[int]Version{
	9:  {Major: 9, Minor: 2},
	10: {Major: 10, Minor: 2},
	11: {Major: 11, Minor: 1},
	12: {Major: 12, Minor: 0},
}

// SupportedCapabilities returns the capabilities the given toolkit version can
// target, or an error when the version is unknown entirely.
func SupportedCapabilities(v Version) ([]Capability, error) {
	if supported, ok := supportedCapabilities[v]; ok {
		return supported, nil
	}
	if fallback, ok := majorFallback[v.Major]; ok {
		return supportedCapabilities[fallback], nil
	}
	return nil, zerr.With(ErrNoCompatibleCapability, "toolkit_version", v.String())
}

func caps(ss ...string) []Capability {
	out := make([]Capability, len(ss))
	for i, s := range ss {
		c, err := ParseCapability(s)
		if err != nil {
			panic(err)
		}
		out[i] = c
	}
	return out
}

// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

import "errors"

// Version identifies a PDF standard version.
type Version int

// Versions supported by the field-schema version check (§4.C
// "Version check").
const (
	_ Version = iota
	V1_0
	V1_1
	V1_2
	V1_3
	V1_4
	V1_5
	V1_6
	V1_7
	V2_0
)

var errUnknownVersion = errors.New("unrecognized PDF version string")

// ParseVersion parses a version string such as "1.7" or "2.0".
func ParseVersion(s string) (Version, error) {
	switch s {
	case "1.0":
		return V1_0, nil
	case "1.1":
		return V1_1, nil
	case "1.2":
		return V1_2, nil
	case "1.3":
		return V1_3, nil
	case "1.4":
		return V1_4, nil
	case "1.5":
		return V1_5, nil
	case "1.6":
		return V1_6, nil
	case "1.7":
		return V1_7, nil
	case "2.0":
		return V2_0, nil
	default:
		return 0, errUnknownVersion
	}
}

// String renders ver as e.g. "1.7".
func (ver Version) String() string {
	if ver >= V1_0 && ver <= V1_7 {
		return "1." + string(rune('0'+int(ver-V1_0)))
	}
	if ver == V2_0 {
		return "2.0"
	}
	return "pdf.Version(unknown)"
}

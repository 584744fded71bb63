package core

// Version is an FBX format version, ordered lexicographically by (Major, Minor).
type Version struct {
	Major uint16
	Minor uint16
}

// boundaryVersion is the first version whose node headers use 64-bit offset
// fields instead of 32-bit ones.
var boundaryVersion = Version{Major: 7, Minor: 5}

// Less reports whether v sorts strictly before o.
func (v Version) Less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	return v.Minor < o.Minor
}

// IsNewFormat reports whether v requires 64-bit node header fields
// (v >= 7.5).
func (v Version) IsNewFormat() bool {
	return !v.Less(boundaryVersion)
}

// Packed returns the 4-byte little-endian packed form used at the header
// and re-derived at the footer: major*1000 + minor*100.
func (v Version) Packed() uint32 {
	return uint32(v.Major)*1000 + uint32(v.Minor)*100
}

// versionFromPacked derives (major, minor) from the packed integer read off
// disk: major = n/1000, minor = (n - major*1000)/100.
func versionFromPacked(n uint32) Version {
	major := n / 1000
	minor := (n - major*1000) / 100
	return Version{Major: uint16(major), Minor: uint16(minor)}
}

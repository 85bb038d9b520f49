package entity

// Branch represents one of the two physical wholesale locations.
type Branch string

const (
	// BranchMaganjo is the Maganjo wholesale location.
	BranchMaganjo Branch = "Maganjo"
	// BranchMatugga is the Matugga wholesale location.
	BranchMatugga Branch = "Matugga"
)

// String returns the string representation of the Branch.
func (b Branch) String() string {
	return string(b)
}

// IsValid checks if the Branch is one of the known locations.
func (b Branch) IsValid() bool {
	switch b {
	case BranchMaganjo, BranchMatugga:
		return true
	default:
		return false
	}
}

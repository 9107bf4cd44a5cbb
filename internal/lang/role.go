package lang

// Role is the structural role a single line plays in block nesting.
type Role uint8

const (
	// RolePlain lines have no effect on indentation.
	RolePlain Role = iota
	// RoleStart lines open a block; following lines indent one level deeper.
	RoleStart
	// RoleEnd lines close a block; the line itself sits one level shallower.
	RoleEnd
	// RoleStartEnd lines close one block and open another at the same level.
	RoleStartEnd
)

// String returns the string representation of the role.
func (r Role) String() string {
	switch r {
	case RolePlain:
		return "plain"
	case RoleStart:
		return "start"
	case RoleEnd:
		return "end"
	case RoleStartEnd:
		return "start-end"
	default:
		return "unknown"
	}
}

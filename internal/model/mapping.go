package model

import "fmt"

// FieldRole names the meaning of a mapped CSV column.
type FieldRole string

const (
	RoleDate  FieldRole = "date"
	RoleName  FieldRole = "name"
	RoleText  FieldRole = "text"
	RoleValue FieldRole = "value"
)

// FieldColumn maps one source CSV column (by header name) to a role.
type FieldColumn struct {
	Source  string
	Role    FieldRole
	Cleanup string // regexp removed from the extracted text; Text role only
	Layout  string // explicit date layout; Date role only, empty = permissive
}

// FieldMapping is the per-account ordered set of column mappings.
type FieldMapping []FieldColumn

// Column returns the mapping for a role.
func (m FieldMapping) Column(role FieldRole) (FieldColumn, bool) {
	for _, c := range m {
		if c.Role == role {
			return c, true
		}
	}
	return FieldColumn{}, false
}

// Validate checks that each role appears at most once and that the Date
// and Value roles are present; import cannot proceed without them.
func (m FieldMapping) Validate() error {
	seen := make(map[FieldRole]bool, len(m))
	for _, c := range m {
		if c.Source == "" {
			return fmt.Errorf("mapping for role %q has no source column", c.Role)
		}
		switch c.Role {
		case RoleDate, RoleName, RoleText, RoleValue:
		default:
			return fmt.Errorf("unknown mapping role %q", c.Role)
		}
		if seen[c.Role] {
			return fmt.Errorf("duplicate mapping for role %q", c.Role)
		}
		seen[c.Role] = true
	}
	if !seen[RoleDate] {
		return fmt.Errorf("mapping has no %q column", RoleDate)
	}
	if !seen[RoleValue] {
		return fmt.Errorf("mapping has no %q column", RoleValue)
	}
	return nil
}

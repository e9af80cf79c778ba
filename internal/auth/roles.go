// internal/auth/roles.go
package auth

// RolePrefix is prepended to every raw realm role before it is matched
// against the policy vocabulary, mirroring the identity provider's
// convention for granted authorities.
const RolePrefix = "ROLE_"

// AdminRole is the prefixed form of the fleet-admin realm role.
const AdminRole = RolePrefix + "fleet-admin"

// PrefixRoles normalizes raw realm role names into the policy vocabulary.
// It is a pure transform applied at the verifier/policy boundary.
func PrefixRoles(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if r == "" {
			continue
		}
		roles = append(roles, RolePrefix+r)
	}
	return roles
}

// HasRole reports whether the normalized role set contains role.
func HasRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

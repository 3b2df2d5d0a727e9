package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated actor context for every operation. The
// core trusts these as already-authenticated; it only reads tenant, actor
// and role out of them.
type Claims struct {
	jwt.RegisteredClaims
	TenantID  string   `json:"tenant_id"`
	ActorID   string   `json:"actor_id"`
	ActorRole string   `json:"actor_role"`
	Roles     []string `json:"roles,omitempty"`
}

// HasRole checks if the claims include the specified role.
func (c Claims) HasRole(role string) bool {
	if c.ActorRole == role {
		return true
	}
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Actor roles known to the dealership platform.
const (
	RoleSeller    = "seller"
	RoleDealer    = "dealer"
	RoleFIManager = "fi_manager"
	RoleAdmin     = "admin"
)

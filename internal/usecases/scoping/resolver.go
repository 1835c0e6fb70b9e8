// Package scoping resolves the outlet scope a caller is actually allowed to
// query, overriding whatever outlet filter the request carried.
package scoping

import (
	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
)

// Resolver computes the effective outlet scope for one role. Resolution is
// side-effect-free and always yields a concrete scope.
type Resolver interface {
	EffectiveScope(callerOutlet, requestedOutlet string) domain.Scope
}

// ownerResolver honors the requested outlet; an empty request widens to all
// outlets.
type ownerResolver struct{}

func (ownerResolver) EffectiveScope(_, requestedOutlet string) domain.Scope {
	return domain.ParseScope(requestedOutlet)
}

// pinnedResolver ignores the requested outlet entirely. A non-owner must not
// be able to widen or redirect their scope, so this is a security invariant
// rather than a convenience default.
type pinnedResolver struct{}

func (pinnedResolver) EffectiveScope(callerOutlet, _ string) domain.Scope {
	return domain.ParseScope(callerOutlet)
}

var resolvers = map[domain.Role]Resolver{
	domain.RoleOwner:   ownerResolver{},
	domain.RoleManager: pinnedResolver{},
	domain.RoleSales:   pinnedResolver{},
}

// ForRole returns the resolver variant for the role. Unknown roles fail
// closed and get pinned to their own outlet.
func ForRole(role domain.Role) Resolver {
	if r, ok := resolvers[role]; ok {
		return r
	}
	return pinnedResolver{}
}

package domain

import "strings"

// WildcardOutlet is the token stored filters and clients use for "no outlet
// restriction". It is never a literal outlet name; no outlet may be named
// like this.
const WildcardOutlet = "All Outlets"

// Scope is the outlet restriction actually applied to a query. Internally it
// is a tagged value so the wildcard never leaks into comparisons; the
// sentinel string only appears at the serialization boundary (ParseScope and
// Token).
type Scope struct {
	outlet string
	all    bool
}

func ScopeAll() Scope {
	return Scope{all: true}
}

func ScopeOutlet(name string) Scope {
	name = strings.TrimSpace(name)
	if name == "" || name == WildcardOutlet {
		return ScopeAll()
	}
	return Scope{outlet: name}
}

// ParseScope normalizes an outlet token coming from a request or from
// stored data. Blank and the wildcard both mean unrestricted.
func ParseScope(token string) Scope {
	return ScopeOutlet(token)
}

func (s Scope) All() bool {
	return s.all
}

// Outlet returns the concrete outlet name. Only meaningful when All is
// false.
func (s Scope) Outlet() string {
	return s.outlet
}

// Token serializes the scope back to the external convention.
func (s Scope) Token() string {
	if s.all {
		return WildcardOutlet
	}
	return s.outlet
}

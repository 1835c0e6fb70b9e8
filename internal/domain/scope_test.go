package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScope(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantAll    bool
		wantOutlet string
	}{
		{
			name:    "wildcard token means unrestricted",
			token:   "All Outlets",
			wantAll: true,
		},
		{
			name:    "blank token means unrestricted",
			token:   "",
			wantAll: true,
		},
		{
			name:    "whitespace-only token means unrestricted",
			token:   "   ",
			wantAll: true,
		},
		{
			name:       "concrete outlet is preserved",
			token:      "Outlet 2",
			wantOutlet: "Outlet 2",
		},
		{
			name:       "surrounding whitespace is trimmed",
			token:      "  Outlet 3  ",
			wantOutlet: "Outlet 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := ParseScope(tt.token)

			assert.Equal(t, tt.wantAll, scope.All())
			if !tt.wantAll {
				assert.Equal(t, tt.wantOutlet, scope.Outlet())
			}
		})
	}
}

func TestScopeToken_RoundTrip(t *testing.T) {
	assert.Equal(t, WildcardOutlet, ScopeAll().Token())
	assert.Equal(t, "Outlet 1", ScopeOutlet("Outlet 1").Token())
	assert.Equal(t, WildcardOutlet, ParseScope(WildcardOutlet).Token())
}

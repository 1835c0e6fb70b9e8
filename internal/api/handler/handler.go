package handler

import (
	"net/http"

	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
	"github.com/MuzammilFarook/dress-showroom-management/pkg/apiErrors"
	"github.com/MuzammilFarook/dress-showroom-management/pkg/middleware"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// callerClaims pulls the authenticated caller out of the request context.
// The auth middleware guarantees it for every protected route.
func callerClaims(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return claims, ok
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Error(err)
	}
}

func writeUnauthenticated(w http.ResponseWriter) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user not authenticated", nil)
}

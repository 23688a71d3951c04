package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"projectbuilder/config"
	"projectbuilder/templates"
)

type contextKey string

const NavDataKey contextKey = "navData"

// GetNavData extracts the owner gate state placed in the request context by
// OwnerGateMiddleware. Estimate tabs are added by the handlers themselves.
func GetNavData(r *http.Request) templates.NavData {
	if val, ok := r.Context().Value(NavDataKey).(templates.NavData); ok {
		return val
	}
	return templates.NavData{}
}

// OwnerGateMiddleware reads the owner cookie and stores whether the owner
// navigation is unlocked in the request context. A cookie issued for a
// different owner code is cleared.
func OwnerGateMiddleware(cfg *config.Config) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		nav := templates.NavData{OwnerGateEnabled: cfg.OwnerCode != ""}

		if cookie, err := e.Request.Cookie(ownerCookieName); err == nil && cookie.Value != "" {
			if nav.OwnerGateEnabled && cookie.Value == ownerToken(cfg.OwnerCode) {
				nav.OwnerUnlocked = true
			} else {
				clearOwnerCookie(e)
			}
		}

		ctx := context.WithValue(e.Request.Context(), NavDataKey, nav)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}

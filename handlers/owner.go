package handlers

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/pocketbase/pocketbase/core"
	log "github.com/sirupsen/logrus"

	"projectbuilder/config"
)

const ownerCookieName = "owner_unlocked"

// ownerToken derives the cookie value from the owner code so that changing
// the code invalidates every unlocked browser.
func ownerToken(code string) string {
	sum := sha256.Sum256([]byte("owner-gate:" + code))
	return hex.EncodeToString(sum[:16])
}

func clearOwnerCookie(e *core.RequestEvent) {
	http.SetCookie(e.Response, &http.Cookie{
		Name:   ownerCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

// HandleOwnerUnlock checks the submitted settings code and, when it matches,
// sets the cookie that reveals the owner-only tabs. It never touches an
// estimate.
func HandleOwnerUnlock(cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		code := e.Request.FormValue("code")
		if cfg.OwnerCode == "" || code == "" ||
			subtle.ConstantTimeCompare([]byte(code), []byte(cfg.OwnerCode)) != 1 {
			log.Warn("owner: rejected settings code")
			return ErrorToast(e, http.StatusForbidden, "Wrong settings code")
		}

		http.SetCookie(e.Response, &http.Cookie{
			Name:     ownerCookieName,
			Value:    ownerToken(cfg.OwnerCode),
			Path:     "/",
			MaxAge:   60 * 60 * 12,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		SetToast(e, "success", "Settings unlocked")
		return redirectBack(e)
	}
}

// HandleOwnerLock hides the owner-only tabs again.
func HandleOwnerLock() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clearOwnerCookie(e)
		SetToast(e, "success", "Settings locked")
		return redirectBack(e)
	}
}

// redirectBack returns the user to the page they came from.
func redirectBack(e *core.RequestEvent) error {
	target := e.Request.Header.Get("Referer")
	if target == "" {
		target = "/estimates"
	}
	if e.Request.Header.Get("HX-Request") == "true" {
		e.Response.Header().Set("HX-Redirect", target)
		return e.String(http.StatusOK, "")
	}
	return e.Redirect(http.StatusSeeOther, target)
}

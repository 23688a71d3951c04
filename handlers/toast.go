package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
	log "github.com/sirupsen/logrus"
)

const flashCookieName = "flash_toast"

// SetToast queues a toast for the client. HTMX requests receive it through
// the HX-Trigger header, merged into any trigger already set. A short-lived
// flash cookie carries it across plain redirects.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	payload := map[string]string{"message": message, "type": toastType}

	trigger := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &trigger); err != nil {
			log.Warnf("toast: existing HX-Trigger is not valid JSON, overwriting: %v", err)
			trigger = map[string]any{}
		}
	}
	trigger["showToast"] = payload

	data, err := json.Marshal(trigger)
	if err != nil {
		log.Errorf("toast: failed to marshal HX-Trigger JSON: %v", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))

	cookieVal, err := json.Marshal(payload)
	if err != nil {
		return
	}
	http.SetCookie(e.Response, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(string(cookieVal)),
		Path:     "/",
		MaxAge:   10,
		HttpOnly: false, // read by the page script
		SameSite: http.SameSiteLaxMode,
	})
}

// ErrorToast sets an error toast and tells HTMX not to swap the error text
// into the page.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}

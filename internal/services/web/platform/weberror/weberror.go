// Package weberror renders localized error responses for web modules.
package weberror

import (
	"log"
	"net/http"
	"strings"

	webi18n "github.com/louisbranch/profilecard/internal/services/web/i18n"
	apperrors "github.com/louisbranch/profilecard/internal/services/web/platform/errors"
	"github.com/louisbranch/profilecard/internal/services/web/platform/httpx"
	"github.com/louisbranch/profilecard/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/profilecard/internal/services/web/templates"
)

// PublicMessage resolves a user-safe localized error message. Raw error text
// is never returned.
func PublicMessage(loc webi18n.Localizer, err error) string {
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	key := apperrors.LocalizationKey(err)
	if key == "" {
		key = webtemplates.ErrorMessageKey(statusCode)
	}
	if loc != nil {
		if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
			return localized
		}
	}
	return http.StatusText(statusCode)
}

// WriteModuleError writes a localized error state for full-page and HTMX requests.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if statusCode >= http.StatusInternalServerError {
		method, path := "-", "-"
		if r != nil {
			method, path = r.Method, r.URL.Path
		}
		log.Printf("web error method=%s path=%s request_id=%s status=%d err=%v", method, path, httpx.RequestIDFrom(r), statusCode, err)
	}

	loc, lang := webi18n.ResolveLocalizer(w, r)
	fragment := webtemplates.ErrorState(statusCode, PublicMessage(loc, err), loc)
	renderErr := pagerender.WriteModulePage(w, r, pagerender.ModulePage{
		Title:      webtemplates.ErrorPageTitle(loc),
		StatusCode: statusCode,
		Lang:       lang,
		Loc:        loc,
		Fragment:   fragment,
	})
	if renderErr != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// NotFound renders the localized not-found page.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteModuleError(w, r, apperrors.EK(apperrors.KindNotFound, "errors.not_found", "not found"))
}

package profile

import (
	"net/http"

	"github.com/a-h/templ"
	domain "github.com/louisbranch/profilecard/internal/profile"
	webi18n "github.com/louisbranch/profilecard/internal/services/web/i18n"
	apperrors "github.com/louisbranch/profilecard/internal/services/web/platform/errors"
	"github.com/louisbranch/profilecard/internal/services/web/platform/httpx"
	"github.com/louisbranch/profilecard/internal/services/web/platform/pagerender"
	"github.com/louisbranch/profilecard/internal/services/web/platform/weberror"
	"github.com/louisbranch/profilecard/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/profilecard/internal/services/web/templates"
)

const (
	fallbackValueKey = "value"
	badRequestKey    = "errors.bad_request"
)

type handlers struct {
	service   service
	bannerURL string
}

func newHandlers(s service, bannerURL string) handlers {
	return handlers{service: s, bannerURL: bannerURL}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	state := h.service.load(r.Context())
	h.writePage(w, r, state)
}

func (h handlers) handleCard(w http.ResponseWriter, r *http.Request) {
	state := h.service.load(r.Context())
	h.writeCard(w, r, state)
}

func (h handlers) handleOpenEditor(w http.ResponseWriter, r *http.Request) {
	state := h.service.openEditor(r.Context())
	h.respond(w, r, state)
}

func (h handlers) handleCloseEditor(w http.ResponseWriter, r *http.Request) {
	state := h.service.closeEditor(r.Context())
	h.respond(w, r, state)
}

func (h handlers) handleUpdateField(w http.ResponseWriter, r *http.Request) {
	if err := httpx.ParseForm(w, r); err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, badRequestKey, err))
		return
	}
	state, err := h.service.updateField(r.Context(), r.PathValue("field"), r.PostForm)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, routepath.Root)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	h.writeComponent(w, r, webtemplates.ProfileSummary(buildCardView(state, h.bannerURL, loc)))
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := httpx.ParseForm(w, r); err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, badRequestKey, err))
		return
	}
	state, err := h.service.submit(r.Context(), r.PostForm)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respond(w, r, state)
}

// respond answers htmx posts with the card fragment and plain form posts
// with a redirect back to the page.
func (h handlers) respond(w http.ResponseWriter, r *http.Request, state domain.State) {
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, routepath.Root)
		return
	}
	h.writeCard(w, r, state)
}

func (h handlers) writeCard(w http.ResponseWriter, r *http.Request, state domain.State) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	h.writeComponent(w, r, webtemplates.ProfileCard(buildCardView(state, h.bannerURL, loc)))
}

func (h handlers) writeComponent(w http.ResponseWriter, r *http.Request, component templ.Component) {
	if err := pagerender.WriteFragment(w, r, http.StatusOK, component); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, state domain.State) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WriteModulePage(w, r, pagerender.ModulePage{
		Title:    pageTitle(state, loc),
		Lang:     lang,
		Loc:      loc,
		Fragment: webtemplates.ProfileCard(buildCardView(state, h.bannerURL, loc)),
	})
	if err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err)
}

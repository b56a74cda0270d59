package profile

import (
	"net/http"

	"github.com/louisbranch/profilecard/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProfileCard, h.handleCard)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProfileEditorOpen, h.handleOpenEditor)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProfileEditorClose, h.handleCloseEditor)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProfileFieldPattern, h.handleUpdateField)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProfileSubmit, h.handleSubmit)
}

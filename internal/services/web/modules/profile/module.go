// Package profile serves the profile card: the read-only card, the edit
// overlay, live field updates, and submit.
package profile

import (
	"net/http"

	domain "github.com/louisbranch/profilecard/internal/profile"
	module "github.com/louisbranch/profilecard/internal/services/web/module"
	"github.com/louisbranch/profilecard/internal/services/web/platform/httpx"
	"github.com/louisbranch/profilecard/internal/services/web/platform/weberror"
	"github.com/louisbranch/profilecard/internal/services/web/routepath"
)

// DefaultBannerURL is the card's background banner.
const DefaultBannerURL = "https://images.unsplash.com/photo-1579546929518-9e396f3cc809?auto=format&fit=crop&w=800&q=80"

// Module provides the profile card routes.
type Module struct {
	card      CardStore
	bannerURL string
}

// Option configures a Module.
type Option func(*Module)

// WithCard sets the card state container the module serves.
func WithCard(card CardStore) Option {
	return func(m *Module) {
		if card != nil {
			m.card = card
		}
	}
}

// WithBannerURL overrides the banner image.
func WithBannerURL(url string) Option {
	return func(m *Module) {
		if url != "" {
			m.bannerURL = url
		}
	}
}

// New returns a profile module. Without WithCard it owns a fresh seeded card.
func New(opts ...Option) Module {
	m := Module{bannerURL: DefaultBannerURL}
	for _, opt := range opts {
		opt(&m)
	}
	if m.card == nil {
		m.card = domain.NewCard()
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "profile" }

// Mount wires the card route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.card), m.bannerURL)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: httpx.WithNotFound(mux, http.HandlerFunc(weberror.NotFound))}, nil
}

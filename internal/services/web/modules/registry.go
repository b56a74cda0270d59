package modules

import "github.com/louisbranch/profilecard/internal/services/web/modules/profile"

// DefaultModules returns the web modules served by the card.
func DefaultModules(deps Dependencies) []Module {
	return []Module{
		profile.New(profile.WithCard(deps.Card), profile.WithBannerURL(deps.BannerURL)),
	}
}

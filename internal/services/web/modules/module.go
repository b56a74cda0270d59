// Package modules defines web module registry helpers.
package modules

import (
	module "github.com/louisbranch/profilecard/internal/services/web/module"
	"github.com/louisbranch/profilecard/internal/services/web/modules/profile"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the shared state and config required to compose the
// web module registry.
type Dependencies struct {
	Card      profile.CardStore
	BannerURL string
}

package templates

import (
	"strconv"

	"github.com/louisbranch/profilecard/internal/platform/icons"
	webi18n "github.com/louisbranch/profilecard/internal/services/web/i18n"
	"github.com/louisbranch/profilecard/internal/services/web/routepath"
)

const (
	stylesheetPath = routepath.StaticPrefix + "app.css"
	scriptPath     = routepath.StaticPrefix + "app.js"
	htmxScriptURL  = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
)

const defaultIconSize = 18

// PageContext carries the document-level data for the layout.
type PageContext struct {
	Title       string
	Lang        string
	Loc         Localizer
	CurrentPath string
}

func layoutLang(page PageContext) string {
	if page.Lang == "" {
		return webi18n.Default().String()
	}
	return page.Lang
}

func layoutTitle(page PageContext) string {
	if page.Title == "" {
		return T(page.Loc, "core.app_name")
	}
	return page.Title
}

func switcherPath(page PageContext) string {
	if page.CurrentPath == "" {
		return routepath.Root
	}
	return page.CurrentPath
}

func iconDimension(size int) string {
	if size <= 0 {
		size = defaultIconSize
	}
	return strconv.Itoa(size)
}

func iconHref(id icons.ID) string {
	return "#" + icons.LucideSymbolID(icons.LucideNameOrDefault(id))
}

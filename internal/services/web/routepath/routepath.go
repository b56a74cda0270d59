// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root                = "/"
	Healthz             = "/healthz"
	StaticPrefix        = "/static/"
	ProfilePrefix       = "/profile/"
	ProfileSubmit       = "/profile"
	ProfileCard         = "/profile/card"
	ProfileEditorOpen   = "/profile/editor/open"
	ProfileEditorClose  = "/profile/editor/close"
	ProfileFieldsPrefix = "/profile/fields/"
	ProfileFieldPattern = ProfileFieldsPrefix + "{field}"
)

// ProfileField returns the live update route for one profile field.
func ProfileField(field string) string {
	return ProfileFieldsPrefix + escapeSegment(field)
}

// WithLanguage appends the lang query parameter to path.
func WithLanguage(path string, lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return path
	}
	return path + "?" + url.Values{"lang": {lang}}.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}

// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/profilecard/internal/services/web/i18n"
	"github.com/louisbranch/profilecard/internal/services/web/platform/httpx"
	webtemplates "github.com/louisbranch/profilecard/internal/services/web/templates"
)

const htmlContentType = "text/html; charset=utf-8"

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Lang       string
	Loc        webi18n.Localizer
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes the fragment alone for HTMX requests and wrapped in
// the document layout otherwise.
func WriteModulePage(w http.ResponseWriter, r *http.Request, page ModulePage) error {
	if w == nil {
		return nil
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	if httpx.IsHTMXRequest(r) {
		return WriteFragment(w, r, page.StatusCode, fragment)
	}

	loc, lang := page.Loc, page.Lang
	if loc == nil {
		loc, lang = webi18n.ResolveLocalizer(w, r)
	}
	path := ""
	if r != nil && r.URL != nil {
		path = r.URL.Path
	}
	layout := webtemplates.Layout(webtemplates.PageContext{
		Title:       page.Title,
		Lang:        lang,
		Loc:         loc,
		CurrentPath: path,
	})
	return write(w, templ.WithChildren(httpx.RequestContext(r), fragment), page.StatusCode, layout)
}

// WriteFragment writes component without the document layout.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, component templ.Component) error {
	if w == nil {
		return nil
	}
	if component == nil {
		component = emptyComponent{}
	}
	return write(w, httpx.RequestContext(r), statusCode, component)
}

// write buffers the render so a failure never leaves a partial 200 behind.
func write(w http.ResponseWriter, ctx context.Context, statusCode int, component templ.Component) error {
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

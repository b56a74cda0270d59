package templates

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/profilecard/internal/platform/icons"
	webi18n "github.com/louisbranch/profilecard/internal/services/web/i18n"
)

func render(t *testing.T, ctx context.Context, component templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func sampleView() ProfileCardView {
	return ProfileCardView{
		BannerURL:   "https://example.com/banner.jpg",
		BannerAlt:   "Profile background",
		ImageURL:    "https://example.com/avatar.png",
		AvatarAlt:   "Profile",
		Name:        "Gaurav Singh",
		Career:      "UI/UX Designer",
		Description: "Designs <things>",
		Details: []DetailRow{
			{Icon: icons.IDGender, Text: "Male"},
			{Icon: icons.IDBirthday, Text: "DOB: 4/15/1996 (28 years)"},
		},
		EditLabel:  "Edit Profile",
		OpenAction: "/profile/editor/open",
		Editor: EditorForm{
			Title:       "Edit Profile",
			CloseLabel:  "Close editor",
			CloseAction: "/profile/editor/close",
			SubmitLabel: "Save Changes",
			Action:      "/profile",
			Fields: []FormField{
				{Name: "name", Label: "Name", Kind: FieldKindText, Value: "Gaurav Singh", UpdateURL: "/profile/fields/name"},
				{Name: "description", Label: "Description", Kind: FieldKindTextArea, Value: "Designs <things>", Rows: 3},
				{Name: "gender", Label: "Gender", Kind: FieldKindSelect, Options: []FormOption{
					{Value: "Female", Label: "Female"},
					{Value: "Male", Label: "Male", Selected: true},
				}},
				{Name: "dob", Label: "Date of Birth", Kind: FieldKindDate, Value: "1996-04-15"},
			},
		},
	}
}

func TestProfileCardRendersSummaryInOrder(t *testing.T) {
	t.Parallel()

	html := render(t, context.Background(), ProfileCard(sampleView()))
	order := []string{
		`class="profile-banner" src="https://example.com/banner.jpg"`,
		`class="profile-avatar" src="https://example.com/avatar.png"`,
		"<h1 class=\"profile-name\">Gaurav Singh</h1>",
		"UI/UX Designer",
		"Designs &lt;things&gt;",
		"Male",
		"DOB: 4/15/1996 (28 years)",
		"Edit Profile",
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(html, marker)
		if idx < 0 {
			t.Fatalf("missing marker %q in %q", marker, html)
		}
		if idx <= last {
			t.Fatalf("marker %q out of order", marker)
		}
		last = idx
	}
	if strings.Contains(html, `role="dialog"`) {
		t.Fatalf("closed card rendered the editor")
	}
}

func TestProfileCardRendersEditorWhenOpen(t *testing.T) {
	t.Parallel()

	view := sampleView()
	view.EditorOpen = true
	html := render(t, context.Background(), ProfileCard(view))
	for _, marker := range []string{
		`role="dialog"`,
		`action="/profile/editor/close"`,
		`aria-label="Close editor"`,
		`action="/profile"`,
		`<input type="text" id="field-name" name="name" hx-post="/profile/fields/name" hx-trigger="input changed delay:300ms" hx-target="#profile-summary" hx-swap="outerHTML" value="Gaurav Singh">`,
		`<textarea id="field-description" name="description" rows="3">Designs &lt;things&gt;</textarea>`,
		`<option value="Male" selected>Male</option>`,
		`<input type="date" id="field-dob" name="dob" value="1996-04-15">`,
		"Save Changes",
	} {
		if !strings.Contains(html, marker) {
			t.Fatalf("missing marker %q in %q", marker, html)
		}
	}
}

func TestProfileCardSanitizesImageURLs(t *testing.T) {
	t.Parallel()

	view := sampleView()
	view.ImageURL = "javascript:alert(1)"
	html := render(t, context.Background(), ProfileCard(view))
	if strings.Contains(html, "javascript:") {
		t.Fatalf("unsafe URL rendered: %q", html)
	}
}

func TestProfileSummaryOmitsCardWrapper(t *testing.T) {
	t.Parallel()

	html := render(t, context.Background(), ProfileSummary(sampleView()))
	if !strings.HasPrefix(html, `<article id="profile-summary"`) {
		t.Fatalf("summary = %q", html)
	}
	if strings.Contains(html, `id="profile-card"`) {
		t.Fatalf("summary should not include the card wrapper")
	}
}

func TestLayoutWrapsChildren(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(webi18n.Default())
	child := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>child</p>")
		return err
	})
	ctx := templ.WithChildren(context.Background(), child)
	html := render(t, ctx, Layout(PageContext{Title: "Gaurav Singh | Profile", Lang: "pt-BR", Loc: loc, CurrentPath: "/"}))
	for _, marker := range []string{
		"<!doctype html>",
		`<html lang="pt-BR">`,
		"<title>Gaurav Singh | Profile</title>",
		`href="/static/app.css"`,
		`<symbol id="lucide-pencil"`,
		`<main class="page-main"><p>child</p></main>`,
		`href="/?lang=pt-BR" hreflang="pt-BR" aria-current="true"`,
	} {
		if !strings.Contains(html, marker) {
			t.Fatalf("missing marker %q in %q", marker, html)
		}
	}
}

func TestErrorStateUsesLocalizedDefaults(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(webi18n.Default())
	html := render(t, context.Background(), ErrorState(http.StatusNotFound, "", loc))
	for _, marker := range []string{"Not Found", "Something went wrong", "That page does not exist.", `href="/"`, "Back to profile"} {
		if !strings.Contains(html, marker) {
			t.Fatalf("missing marker %q in %q", marker, html)
		}
	}
}

func TestErrorMessageKey(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		http.StatusNotFound:            "errors.not_found",
		http.StatusBadRequest:          "errors.bad_request",
		http.StatusInternalServerError: "errors.internal",
	}
	for status, want := range tests {
		if got := ErrorMessageKey(status); got != want {
			t.Fatalf("ErrorMessageKey(%d) = %q, want %q", status, got, want)
		}
	}
}

func TestProfileCardStopsOnCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	if err := ProfileCard(sampleView()).Render(ctx, &buf); err == nil {
		t.Fatal("expected canceled context error")
	}
	if buf.Len() != 0 {
		t.Fatalf("canceled render wrote %q", buf.String())
	}
}

func TestProfileSummaryRendersDetailIcons(t *testing.T) {
	t.Parallel()

	html := render(t, context.Background(), ProfileSummary(sampleView()))
	for _, marker := range []string{
		`<span class="profile-detail-icon"><svg width="18" height="18" aria-hidden="true"><use href="#lucide-`,
		`<svg width="16" height="16" aria-hidden="true"><use href="#lucide-pencil"></use></svg><span>Edit Profile</span>`,
	} {
		if !strings.Contains(html, marker) {
			t.Fatalf("missing marker %q in %q", marker, html)
		}
	}
}

package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Healthz != "/healthz" {
		t.Fatalf("Healthz = %q", Healthz)
	}
	if StaticPrefix != "/static/" {
		t.Fatalf("StaticPrefix = %q", StaticPrefix)
	}
	if ProfileSubmit != "/profile" {
		t.Fatalf("ProfileSubmit = %q", ProfileSubmit)
	}
	if ProfileFieldPattern != "/profile/fields/{field}" {
		t.Fatalf("ProfileFieldPattern = %q", ProfileFieldPattern)
	}
}

func TestProfileFieldEscapesSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field string
		want  string
	}{
		{field: "name", want: "/profile/fields/name"},
		{field: " maritalStatus ", want: "/profile/fields/maritalStatus"},
		{field: "a/b", want: "/profile/fields/a%2Fb"},
	}
	for _, tc := range tests {
		if got := ProfileField(tc.field); got != tc.want {
			t.Fatalf("ProfileField(%q) = %q, want %q", tc.field, got, tc.want)
		}
	}
}

func TestWithLanguage(t *testing.T) {
	t.Parallel()

	if got := WithLanguage(Root, "pt-BR"); got != "/?lang=pt-BR" {
		t.Fatalf("WithLanguage(pt-BR) = %q", got)
	}
	if got := WithLanguage(Root, " "); got != "/" {
		t.Fatalf("WithLanguage(blank) = %q", got)
	}
}

package templates

import (
	"testing"

	webi18n "github.com/louisbranch/profilecard/internal/services/web/i18n"
	"golang.org/x/text/language"
)

func TestTWithoutLocalizer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  any
		args []any
		want string
	}{
		{name: "plain key", key: "profile.save", want: "profile.save"},
		{name: "format key", key: "%s | Profile", args: []any{"Gaurav Singh"}, want: "Gaurav Singh | Profile"},
		{name: "non-string key", key: 42, want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := T(nil, tc.key, tc.args...); got != tc.want {
				t.Fatalf("T(nil, %v) = %q, want %q", tc.key, got, tc.want)
			}
		})
	}
}

func TestTUsesCardCatalog(t *testing.T) {
	t.Parallel()

	en := webi18n.Printer(language.AmericanEnglish)
	if got := T(en, "profile.dob", "4/15/1996", 28); got != "DOB: 4/15/1996 (28 years)" {
		t.Fatalf("T(en, profile.dob) = %q", got)
	}
	pt := webi18n.Printer(language.BrazilianPortuguese)
	if got := T(pt, "profile.save"); got != "Salvar alterações" {
		t.Fatalf("T(pt, profile.save) = %q", got)
	}
}

package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "en", want: "en-US", ok: true},
		{in: "en-US", want: "en-US", ok: true},
		{in: "pt", want: "pt-BR", ok: true},
		{in: "pt-BR", want: "pt-BR", ok: true},
		{in: "fr", ok: false},
		{in: "not-a-lang", ok: false},
		{in: "", ok: false},
	}
	for _, tc := range tests {
		got, ok := ParseTag(tc.in)
		if ok != tc.ok {
			t.Fatalf("ParseTag(%q) ok = %t, want %t", tc.in, ok, tc.ok)
		}
		if ok && got.String() != tc.want {
			t.Fatalf("ParseTag(%q) = %q, want %q", tc.in, got.String(), tc.want)
		}
	}
}

func TestMatchTagsFallsBackToDefault(t *testing.T) {
	t.Parallel()

	if got := MatchTags(nil); got != DefaultTag() {
		t.Fatalf("MatchTags(nil) = %q, want %q", got, DefaultTag())
	}
	if got := MatchTags([]language.Tag{language.French}); got != DefaultTag() {
		t.Fatalf("MatchTags(fr) = %q, want %q", got, DefaultTag())
	}
	if got := MatchTags([]language.Tag{language.French, language.Portuguese}); got.String() != "pt-BR" {
		t.Fatalf("MatchTags(fr, pt) = %q, want %q", got, "pt-BR")
	}
}

func TestSupportedTagsReturnsCopy(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	tags[0] = language.French
	if DefaultTag() != language.AmericanEnglish {
		t.Fatalf("DefaultTag() = %q, want en-US", DefaultTag())
	}
}

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("pt-BR") {
		t.Fatalf("expected locale pt-BR")
	}
	if _, ok := bundle.LocaleMessages("en-US")["core.date_layout"]; !ok {
		t.Fatalf("expected en-US core.date_layout message")
	}
}

func TestEmbeddedLocalesDefineSameKeys(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	base := bundle.LocaleMessages(BaseLocale)
	for _, locale := range bundle.Locales() {
		messages := bundle.LocaleMessages(locale)
		for key := range base {
			if _, ok := messages[key]; !ok {
				t.Fatalf("locale %s missing key %q", locale, key)
			}
		}
		for key := range messages {
			if _, ok := base[key]; !ok {
				t.Fatalf("locale %s defines key %q absent from %s", locale, key, BaseLocale)
			}
		}
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	got, ok := bundle.Message("fr-FR", "profile.save")
	if !ok {
		t.Fatal("expected fallback message")
	}
	if got != "Save Changes" {
		t.Fatalf("Message(fr-FR, profile.save) = %q, want %q", got, "Save Changes")
	}
	got, ok = bundle.Message("pt-BR", "core.date_layout")
	if !ok || got != "02/01/2006" {
		t.Fatalf("Message(pt-BR, core.date_layout) = %q, %t", got, ok)
	}
	if _, ok := bundle.Message("en-US", " "); ok {
		t.Fatal("expected blank key lookup to miss")
	}
}

func TestLoadFromFSRejectsKeyOutsideNamespace(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/profile.yaml"), `locale: "en-US"
namespace: "profile"
messages:
  "core.app_name": "nope"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected namespace prefix error")
	}
}

func TestLoadFromFSRejectsBareNamespaceKey(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "core.": "empty suffix"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected bare namespace key error")
	}
}

func TestLoadFromFSRejectsMismatchedNamespace(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "profile"
messages:
  "profile.x": "x"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected namespace mismatch error")
	}
}

func TestRegisterMakesMessagesPrintable(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if err := bundle.Register(); err != nil {
		t.Fatalf("register: %v", err)
	}
	p := message.NewPrinter(language.MustParse("pt-BR"))
	if got := p.Sprintf("profile.save"); got != "Salvar alterações" {
		t.Fatalf("pt-BR profile.save = %q", got)
	}
}

func TestLoadFromFSRejectsMismatchedLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "pt-BR"
namespace: "core"
messages:
  "core.x": "x"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRejectsMalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), "locale: [unterminated\n")

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/pt-BR/core.yaml"), `locale: "pt-BR"
namespace: "core"
messages:
  "core.x": "x"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

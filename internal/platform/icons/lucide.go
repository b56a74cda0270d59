package icons

import (
	"sort"
	"strings"
)

// ID is a stable icon identifier used by card templates.
type ID string

const (
	IDGender        ID = "gender"
	IDBirthday      ID = "birthday"
	IDMaritalStatus ID = "marital_status"
	IDEducation     ID = "education"
	IDCareerStatus  ID = "career_status"
	IDEdit          ID = "edit"
	IDClose         ID = "close"
)

const lucideSymbolPrefix = "lucide-"

var lucideIconNames = map[ID]string{
	IDGender:        "user-round",
	IDBirthday:      "calendar",
	IDMaritalStatus: "heart",
	IDEducation:     "graduation-cap",
	IDCareerStatus:  "briefcase",
	IDEdit:          "pencil",
	IDClose:         "x",
}

var lucideSymbolBodies = map[string]string{
	"user-round":     `<circle cx="12" cy="8" r="5"/><path d="M20 21a8 8 0 0 0-16 0"/>`,
	"calendar":       `<path d="M8 2v4"/><path d="M16 2v4"/><rect width="18" height="18" x="3" y="4" rx="2"/><path d="M3 10h18"/>`,
	"heart":          `<path d="M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"/>`,
	"graduation-cap": `<path d="M22 10v6M2 10l10-5 10 5-10 5z"/><path d="M6 12v5c3 3 9 3 12 0v-5"/>`,
	"briefcase":      `<path d="M16 20V4a2 2 0 0 0-2-2h-4a2 2 0 0 0-2 2v16"/><rect width="20" height="14" x="2" y="6" rx="2"/>`,
	"pencil":         `<path d="M17 3a2.85 2.83 0 1 1 4 4L7.5 20.5 2 22l1.5-5.5Z"/><path d="m15 5 4 4"/>`,
	"x":              `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`,
}

var lucideSprite = buildSprite()

// LucideName returns the Lucide icon name for an icon identifier.
func LucideName(id ID) (string, bool) {
	name, ok := lucideIconNames[id]
	return name, ok
}

// LucideNameOrDefault provides a stable Lucide name even when the icon ID is unknown.
func LucideNameOrDefault(id ID) string {
	if name, ok := lucideIconNames[id]; ok {
		return name
	}
	return "user-round"
}

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(name string) string {
	return lucideSymbolPrefix + name
}

// LucideSprite returns the SVG sprite markup for the card icons.
func LucideSprite() string {
	return lucideSprite
}

func buildSprite() string {
	names := make([]string, 0, len(lucideSymbolBodies))
	for name := range lucideSymbolBodies {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" style="display:none" aria-hidden="true">`)
	for _, name := range names {
		b.WriteString(`<symbol id="`)
		b.WriteString(LucideSymbolID(name))
		b.WriteString(`" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">`)
		b.WriteString(lucideSymbolBodies[name])
		b.WriteString(`</symbol>`)
	}
	b.WriteString(`</svg>`)
	return b.String()
}

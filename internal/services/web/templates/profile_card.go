package templates

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/profilecard/internal/platform/icons"
)

const (
	// ProfileCardID is the DOM id swapped by open, close, and submit.
	ProfileCardID = "profile-card"
	// ProfileSummaryID is the DOM id swapped by live field updates.
	ProfileSummaryID = "profile-summary"
)

// FieldKind selects the form control rendered for a field.
type FieldKind string

const (
	FieldKindText     FieldKind = "text"
	FieldKindTextArea FieldKind = "textarea"
	FieldKindSelect   FieldKind = "select"
	FieldKindDate     FieldKind = "date"
)

// ProfileCardView is the rendered state of the card.
type ProfileCardView struct {
	BannerURL   string
	BannerAlt   string
	ImageURL    string
	AvatarAlt   string
	Name        string
	Career      string
	Description string
	Details     []DetailRow
	EditLabel   string
	OpenAction  string
	EditorOpen  bool
	Editor      EditorForm
}

// DetailRow is one labeled row under the description.
type DetailRow struct {
	Icon icons.ID
	Text string
}

// EditorForm is the overlay edit form.
type EditorForm struct {
	Title       string
	CloseLabel  string
	CloseAction string
	SubmitLabel string
	Action      string
	Fields      []FormField
}

// FormField is one control in the edit form.
type FormField struct {
	Name      string
	Label     string
	Kind      FieldKind
	Value     string
	Rows      int
	Options   []FormOption
	UpdateURL string
}

// FormOption is one select option.
type FormOption struct {
	Value    string
	Label    string
	Selected bool
}

const (
	cardTarget          = "#" + ProfileCardID
	summaryTarget       = "#" + ProfileSummaryID
	textareaDefaultRows = 3
)

// imageSrc sanitizes a user-supplied image URL for an img src.
func imageSrc(raw string) string {
	return string(templ.URL(raw))
}

func fieldID(field FormField) string {
	return "field-" + field.Name
}

// fieldTrigger debounces typing; selects and date pickers post on change.
func fieldTrigger(field FormField) string {
	if field.Kind == FieldKindSelect || field.Kind == FieldKindDate {
		return "change"
	}
	return "input changed delay:300ms"
}

func textareaRows(field FormField) string {
	if field.Rows <= 0 {
		return strconv.Itoa(textareaDefaultRows)
	}
	return strconv.Itoa(field.Rows)
}

func inputType(field FormField) string {
	if field.Kind == "" {
		return string(FieldKindText)
	}
	return string(field.Kind)
}

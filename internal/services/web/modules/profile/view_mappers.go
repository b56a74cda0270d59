package profile

import (
	"github.com/louisbranch/profilecard/internal/platform/icons"
	domain "github.com/louisbranch/profilecard/internal/profile"
	"github.com/louisbranch/profilecard/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/profilecard/internal/services/web/templates"
)

const (
	dateLayoutKey   = "core.date_layout"
	fieldLabelKey   = "profile.field."
	optionLabelKey  = "profile.option."
	fallbackDateFmt = "1/2/2006"
)

func pageTitle(state domain.State, loc webtemplates.Localizer) string {
	return webtemplates.T(loc, "profile.page_title", state.Profile.Name)
}

func buildCardView(state domain.State, bannerURL string, loc webtemplates.Localizer) webtemplates.ProfileCardView {
	p := state.Profile
	return webtemplates.ProfileCardView{
		BannerURL:   bannerURL,
		BannerAlt:   webtemplates.T(loc, "profile.banner_alt"),
		ImageURL:    p.Image,
		AvatarAlt:   webtemplates.T(loc, "profile.avatar_alt"),
		Name:        p.Name,
		Career:      p.Career,
		Description: p.Description,
		Details: []webtemplates.DetailRow{
			{Icon: icons.IDGender, Text: string(p.Gender)},
			{Icon: icons.IDBirthday, Text: dobText(state, loc)},
			{Icon: icons.IDMaritalStatus, Text: string(p.MaritalStatus)},
			{Icon: icons.IDEducation, Text: p.Education},
			{Icon: icons.IDCareerStatus, Text: p.CareerStatus},
		},
		EditLabel:  webtemplates.T(loc, "profile.edit"),
		OpenAction: routepath.ProfileEditorOpen,
		EditorOpen: state.Overlay == domain.OverlayOpen,
		Editor:     buildEditorForm(p, loc),
	}
}

// dobText renders the localized date and age, or the raw value marked
// invalid when it is not a calendar date.
func dobText(state domain.State, loc webtemplates.Localizer) string {
	dob, err := domain.ParseDate(state.Profile.DOB)
	if err != nil {
		return webtemplates.T(loc, "profile.dob_invalid", state.Profile.DOB)
	}
	return webtemplates.T(loc, "profile.dob", dob.Format(dateLayout(loc)), domain.Age(dob, state.Today))
}

func dateLayout(loc webtemplates.Localizer) string {
	layout := webtemplates.T(loc, dateLayoutKey)
	if layout == "" || layout == dateLayoutKey {
		return fallbackDateFmt
	}
	return layout
}

func buildEditorForm(p domain.Profile, loc webtemplates.Localizer) webtemplates.EditorForm {
	fields := make([]webtemplates.FormField, 0, len(domain.Fields()))
	for _, field := range domain.Fields() {
		value, _ := p.Value(field)
		formField := webtemplates.FormField{
			Name:      string(field),
			Label:     webtemplates.T(loc, fieldLabelKey+string(field)),
			Kind:      webtemplates.FieldKindText,
			Value:     value,
			UpdateURL: routepath.ProfileField(string(field)),
		}
		switch field {
		case domain.FieldDescription:
			formField.Kind = webtemplates.FieldKindTextArea
			formField.Rows = 3
		case domain.FieldDOB:
			formField.Kind = webtemplates.FieldKindDate
		case domain.FieldGender:
			formField.Kind = webtemplates.FieldKindSelect
			formField.Options = selectOptions(genderValues(), value, loc)
		case domain.FieldMaritalStatus:
			formField.Kind = webtemplates.FieldKindSelect
			formField.Options = selectOptions(maritalValues(), value, loc)
		}
		fields = append(fields, formField)
	}
	return webtemplates.EditorForm{
		Title:       webtemplates.T(loc, "profile.editor_title"),
		CloseLabel:  webtemplates.T(loc, "profile.editor_close"),
		CloseAction: routepath.ProfileEditorClose,
		SubmitLabel: webtemplates.T(loc, "profile.save"),
		Action:      routepath.ProfileSubmit,
		Fields:      fields,
	}
}

// selectOptions lists the known values and keeps an arbitrary current value
// selectable so a save round-trips it unchanged.
func selectOptions(values []string, current string, loc webtemplates.Localizer) []webtemplates.FormOption {
	options := make([]webtemplates.FormOption, 0, len(values)+1)
	found := false
	for _, value := range values {
		selected := value == current
		found = found || selected
		options = append(options, webtemplates.FormOption{
			Value:    value,
			Label:    webtemplates.T(loc, optionLabelKey+value),
			Selected: selected,
		})
	}
	if !found {
		options = append(options, webtemplates.FormOption{Value: current, Label: current, Selected: true})
	}
	return options
}

func genderValues() []string {
	genders := domain.Genders()
	values := make([]string, len(genders))
	for i, gender := range genders {
		values[i] = string(gender)
	}
	return values
}

func maritalValues() []string {
	statuses := domain.MaritalStatuses()
	values := make([]string, len(statuses))
	for i, status := range statuses {
		values[i] = string(status)
	}
	return values
}

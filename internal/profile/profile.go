// Package profile owns the profile card record, its edit contract, and the
// overlay state machine that gates editing.
package profile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField reports a field identifier outside the profile record.
var ErrUnknownField = errors.New("unknown profile field")

// Gender is the presented gender option. Values outside the option list are
// still accepted when assigned directly.
type Gender string

const (
	GenderFemale Gender = "Female"
	GenderMale   Gender = "Male"
	GenderOther  Gender = "Other"
)

// Genders returns the options offered by the edit form, in display order.
func Genders() []Gender {
	return []Gender{GenderFemale, GenderMale, GenderOther}
}

// MaritalStatus is the presented marital status option.
type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "Single"
	MaritalMarried  MaritalStatus = "Married"
	MaritalDivorced MaritalStatus = "Divorced"
	MaritalWidowed  MaritalStatus = "Widowed"
)

// MaritalStatuses returns the options offered by the edit form, in display order.
func MaritalStatuses() []MaritalStatus {
	return []MaritalStatus{MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed}
}

// Profile is the flat record rendered by the card.
type Profile struct {
	Name          string
	Image         string
	Description   string
	Gender        Gender
	DOB           string
	MaritalStatus MaritalStatus
	Education     string
	Career        string
	CareerStatus  string
}

// seedMaritalStatus is the seed's marital status. It is not one of
// MaritalStatuses, so the edit form keeps it as an extra option.
const seedMaritalStatus MaritalStatus = "UnMarried"

// Seed returns the record a new card starts with.
func Seed() Profile {
	return Profile{
		Name:          "Gaurav Singh",
		Image:         "https://white-force.com/plus/src/public/member_images/e8rarmLz7vTtESPGNztd.png",
		Description:   "Passionate about creating beautiful user experiences and capturing moments through my lens. Always exploring new creative possibilities and pushing boundaries in design.",
		Gender:        GenderMale,
		DOB:           "1996-04-15",
		MaritalStatus: seedMaritalStatus,
		Education:     "Master in Design, Stanford University",
		Career:        "UI/UX Designer",
		CareerStatus:  "Full-time at Google",
	}
}

// Field identifies one editable profile field. The string form is the
// input name used by the edit form.
type Field string

const (
	FieldImage         Field = "image"
	FieldName          Field = "name"
	FieldDescription   Field = "description"
	FieldGender        Field = "gender"
	FieldDOB           Field = "dob"
	FieldMaritalStatus Field = "maritalStatus"
	FieldEducation     Field = "education"
	FieldCareer        Field = "career"
	FieldCareerStatus  Field = "careerStatus"
)

// Fields returns every editable field in edit-form order.
func Fields() []Field {
	return []Field{
		FieldImage,
		FieldName,
		FieldDescription,
		FieldGender,
		FieldDOB,
		FieldMaritalStatus,
		FieldEducation,
		FieldCareer,
		FieldCareerStatus,
	}
}

// ParseField resolves a form input name to a Field.
func ParseField(value string) (Field, error) {
	candidate := Field(strings.TrimSpace(value))
	for _, field := range Fields() {
		if field == candidate {
			return field, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, value)
}

// Value returns the current text of one field.
func (p Profile) Value(field Field) (string, error) {
	switch field {
	case FieldImage:
		return p.Image, nil
	case FieldName:
		return p.Name, nil
	case FieldDescription:
		return p.Description, nil
	case FieldGender:
		return string(p.Gender), nil
	case FieldDOB:
		return p.DOB, nil
	case FieldMaritalStatus:
		return string(p.MaritalStatus), nil
	case FieldEducation:
		return p.Education, nil
	case FieldCareer:
		return p.Career, nil
	case FieldCareerStatus:
		return p.CareerStatus, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}
}

// Update is a single field edit. Value is stored verbatim.
type Update struct {
	Field Field
	Value string
}

// Apply returns p with exactly one field replaced by u.Value.
func (p Profile) Apply(u Update) (Profile, error) {
	switch u.Field {
	case FieldImage:
		p.Image = u.Value
	case FieldName:
		p.Name = u.Value
	case FieldDescription:
		p.Description = u.Value
	case FieldGender:
		p.Gender = Gender(u.Value)
	case FieldDOB:
		p.DOB = u.Value
	case FieldMaritalStatus:
		p.MaritalStatus = MaritalStatus(u.Value)
	case FieldEducation:
		p.Education = u.Value
	case FieldCareer:
		p.Career = u.Value
	case FieldCareerStatus:
		p.CareerStatus = u.Value
	default:
		return p, fmt.Errorf("%w: %q", ErrUnknownField, string(u.Field))
	}
	return p, nil
}

package form

import (
	"maps"
	"regexp"
	"strings"
)

const (
	MsgNameRequired  = "name is required"
	MsgEmailRequired = "email is required"
	MsgEmailInvalid  = "email is not valid"
	MsgPhoneRequired = "phone is required"
	MsgPhoneDigits   = "phone must contain only digits"
	MsgSelectCourse  = "select a course"
)

var (
	// loose local@domain.tld shape, unanchored
	emailRegex  = regexp.MustCompile(`\S+@\S+\.\S+`)
	digitsRegex = regexp.MustCompile(`^\d+$`)
)

// Errors maps a field to its message. A present key means the field failed the last
// validation run; a missing key only means no error is currently known.
type Errors map[Field]string

// Validate re-evaluates every field of the snapshot.
func Validate(v Values) Errors {
	errs := Errors{}

	if strings.TrimSpace(v.Name) == "" {
		errs[FieldName] = MsgNameRequired
	}

	if strings.TrimSpace(v.Email) == "" {
		errs[FieldEmail] = MsgEmailRequired
	} else if !emailRegex.MatchString(v.Email) {
		errs[FieldEmail] = MsgEmailInvalid
	}

	if strings.TrimSpace(v.Phone) == "" {
		errs[FieldPhone] = MsgPhoneRequired
	} else if !digitsRegex.MatchString(v.Phone) {
		errs[FieldPhone] = MsgPhoneDigits
	}

	if v.CampaignCode == "" {
		errs[FieldCampaign] = MsgSelectCourse
	}

	return errs
}

// Without drops f's entry and nothing else. The new value is not re-validated.
func (e Errors) Without(f Field) Errors {
	out := e.Clone()
	delete(out, f)
	return out
}

func (e Errors) Clone() Errors {
	out := maps.Clone(e)
	if out == nil {
		out = Errors{}
	}
	return out
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

// StringMap is the JSON/template friendly form.
func (e Errors) StringMap() map[string]string {
	out := make(map[string]string, len(e))
	for f, msg := range e {
		out[f.String()] = msg
	}
	return out
}

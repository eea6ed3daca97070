package form

import "errors"

var ErrUnknownField = errors.New("unknown form field")

// Field names match the HTML input names and the JSON error keys.
type Field string

const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPhone    Field = "phone"
	FieldCampaign Field = "campaign"
)

var AllFields = []Field{FieldName, FieldEmail, FieldPhone, FieldCampaign}

func ParseField(s string) (Field, error) {
	f := Field(s)
	for _, known := range AllFields {
		if f == known {
			return f, nil
		}
	}
	return "", ErrUnknownField
}

func (f Field) String() string {
	return string(f)
}

// Values is a snapshot of the four form inputs.
type Values struct {
	Name         string
	Email        string
	Phone        string
	CampaignCode string
}

func (v Values) Get(f Field) string {
	switch f {
	case FieldName:
		return v.Name
	case FieldEmail:
		return v.Email
	case FieldPhone:
		return v.Phone
	case FieldCampaign:
		return v.CampaignCode
	}
	return ""
}

// With returns a copy of v with f set to value.
func (v Values) With(f Field, value string) Values {
	switch f {
	case FieldName:
		v.Name = value
	case FieldEmail:
		v.Email = value
	case FieldPhone:
		v.Phone = value
	case FieldCampaign:
		v.CampaignCode = value
	}
	return v
}

func (v Values) IsZero() bool {
	return v == Values{}
}

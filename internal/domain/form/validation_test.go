//go:build unit

package form_test

import (
	"testing"

	"coupon-portal/internal/domain/form"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validValues() form.Values {
	return form.Values{
		Name:         "Ana",
		Email:        "a@b.com",
		Phone:        "123",
		CampaignCode: "A",
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid snapshot has no errors", func(t *testing.T) {
		assert.True(t, form.Validate(validValues()).Empty())
	})

	t.Run("empty form reports every field", func(t *testing.T) {
		want := form.Errors{
			form.FieldName:     form.MsgNameRequired,
			form.FieldEmail:    form.MsgEmailRequired,
			form.FieldPhone:    form.MsgPhoneRequired,
			form.FieldCampaign: form.MsgSelectCourse,
		}
		if diff := cmp.Diff(want, form.Validate(form.Values{})); diff != "" {
			t.Errorf("Errors mismatch (-want +got):\n%s", diff)
		}
	})

	cases := []struct {
		name  string
		field form.Field
		value string
		want  string
	}{
		{name: "empty name", field: form.FieldName, value: "", want: form.MsgNameRequired},
		{name: "whitespace name", field: form.FieldName, value: "   ", want: form.MsgNameRequired},
		{name: "empty email", field: form.FieldEmail, value: "", want: form.MsgEmailRequired},
		{name: "whitespace email", field: form.FieldEmail, value: "  ", want: form.MsgEmailRequired},
		{name: "email without at", field: form.FieldEmail, value: "ab.com", want: form.MsgEmailInvalid},
		{name: "email without tld", field: form.FieldEmail, value: "a@b", want: form.MsgEmailInvalid},
		{name: "empty phone", field: form.FieldPhone, value: "", want: form.MsgPhoneRequired},
		{name: "phone with letters", field: form.FieldPhone, value: "12a3", want: form.MsgPhoneDigits},
		{name: "phone with plus prefix", field: form.FieldPhone, value: "+34123", want: form.MsgPhoneDigits},
		{name: "phone with inner space", field: form.FieldPhone, value: "12 3", want: form.MsgPhoneDigits},
		{name: "no campaign selected", field: form.FieldCampaign, value: "", want: form.MsgSelectCourse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := form.Validate(validValues().With(tc.field, tc.value))
			if diff := cmp.Diff(form.Errors{tc.field: tc.want}, got); diff != "" {
				t.Errorf("Errors mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("loose email shapes are accepted", func(t *testing.T) {
		for _, email := range []string{"a@b.c", "first.last@sub.domain.org", "x+tag@y.io"} {
			assert.True(t, form.Validate(validValues().With(form.FieldEmail, email)).Empty(), email)
		}
	})

	t.Run("long phone numbers and leading zeros are accepted", func(t *testing.T) {
		for _, phone := range []string{"0", "0034600111222", "123456789012345678901234567890"} {
			assert.True(t, form.Validate(validValues().With(form.FieldPhone, phone)).Empty(), phone)
		}
	})
}

func TestErrorsWithout(t *testing.T) {
	all := form.Validate(form.Values{})

	got := all.Without(form.FieldEmail)

	assert.NotContains(t, got, form.FieldEmail)
	assert.Len(t, got, 3)
	assert.Equal(t, form.MsgNameRequired, got[form.FieldName])
	// original map untouched
	assert.Contains(t, all, form.FieldEmail)

	var none form.Errors
	assert.NotNil(t, none.Without(form.FieldName))
}

func TestParseField(t *testing.T) {
	for _, f := range form.AllFields {
		got, err := form.ParseField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := form.ParseField("address")
	assert.ErrorIs(t, err, form.ErrUnknownField)
}

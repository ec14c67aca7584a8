package onboarding

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsCoverEveryPickerField(t *testing.T) {
	cases := map[Field][]string{
		FieldRole:              {"Photographer", "Visual Artist", "Agency"},
		FieldPhotographerType:  {"Hobbyist", "Professional", "Freelancer"},
		FieldGenres:            {"Street", "Travel", "Portrait", "Architecture"},
		FieldOpenToCommissions: {"Yes", "No"},
		FieldHearAboutUs:       {"Instagram", "LinkedIn", "Search"},
		FieldUpdatesConsent:    {"Yes, please", "No, thanks"},
	}
	for field, want := range cases {
		assert.Equal(t, want, Options(field), "options for %s", field)
	}
}

func TestOptionsNilForFreeTextFields(t *testing.T) {
	for _, field := range []Field{
		FieldFullName, FieldContact, FieldLocation, FieldPortfolio,
		FieldGoals, FieldPANNumber, FieldBankAccountNumber, FieldIFSCCode,
	} {
		assert.Nil(t, Options(field), "field %s takes free text", field)
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	var form Form
	for step := 1; step <= StepCount; step++ {
		for i, field := range StepFields(step) {
			value := string(field) + "-value"
			if opts := Options(field); opts != nil {
				value = opts[i%len(opts)]
			}
			form.Set(field, value)
			assert.Equal(t, value, form.Get(field))
		}
	}
}

func TestValidOption(t *testing.T) {
	assert.True(t, ValidOption(FieldRole, "Photographer"))
	assert.False(t, ValidOption(FieldRole, "Influencer"))
	assert.False(t, ValidOption(FieldRole, ""))
	assert.True(t, ValidOption(FieldFullName, "anything at all"))
}

func TestSetUnknownFieldIsIgnored(t *testing.T) {
	var form Form
	form.Set(Field("favouriteColor"), "teal")
	assert.Equal(t, Form{}, form)
}

func TestFormSerializesFlat(t *testing.T) {
	form := Form{
		FullName: "Asha Rao",
		Role:     RolePhotographer,
		Genres:   GenreStreet,
	}

	raw, err := json.Marshal(form)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "Asha Rao", got["fullName"])
	assert.Equal(t, "Photographer", got["role"])
	assert.Equal(t, "Street", got["genres"])
}

func TestValidateReportsMissingInRenderOrder(t *testing.T) {
	var form Form
	form.Set(FieldContact, "asha@example.com")

	err := form.Validate(1)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []Field{FieldFullName, FieldLocation, FieldRole}, vErr.Missing)
	assert.Contains(t, vErr.Error(), "May we know your full name?")
}

func TestValidateTreatsWhitespaceAsEmpty(t *testing.T) {
	var form Form
	for _, field := range StepFields(3) {
		form.Set(field, "   ")
	}

	err := form.Validate(3)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Missing, len(StepFields(3)))
}

func TestValidatePassesWithAllFieldsPresent(t *testing.T) {
	form := filledForm()
	for step := 1; step <= StepCount; step++ {
		assert.NoError(t, form.Validate(step), "step %d", step)
	}
}

func TestStepFieldsOutOfRange(t *testing.T) {
	assert.Nil(t, StepFields(0))
	assert.Nil(t, StepFields(StepCount+1))
}

func TestStepTitlesMatchScreens(t *testing.T) {
	assert.Equal(t, "Let's get to know\nabout you", StepTitle(1))
	assert.Equal(t, "Verify your\npayout details", StepTitle(StepCount))
	assert.Empty(t, StepTitle(99))
}

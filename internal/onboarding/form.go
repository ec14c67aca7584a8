// Package onboarding implements the partner onboarding wizard: the
// multi-step form, its closed option sets, and the state machine that
// carries a partner from an empty form through submission to approval.
package onboarding

// Role answers "Who are you?" on step one.
type Role string

const (
	RoleUnknown      Role = ""
	RolePhotographer Role = "Photographer"
	RoleVisualArtist Role = "Visual Artist"
	RoleAgency       Role = "Agency"
)

// PhotographerType answers "Which of these best describes you?".
type PhotographerType string

const (
	PhotographerTypeUnknown      PhotographerType = ""
	PhotographerTypeHobbyist     PhotographerType = "Hobbyist"
	PhotographerTypeProfessional PhotographerType = "Professional"
	PhotographerTypeFreelancer   PhotographerType = "Freelancer"
)

// Genre answers "Which genres do you work in?".
type Genre string

const (
	GenreUnknown      Genre = ""
	GenreStreet       Genre = "Street"
	GenreTravel       Genre = "Travel"
	GenrePortrait     Genre = "Portrait"
	GenreArchitecture Genre = "Architecture"
)

// YesNo is the answer to "Open to commissions?".
type YesNo string

const (
	YesNoUnknown YesNo = ""
	Yes          YesNo = "Yes"
	No           YesNo = "No"
)

// Referrer answers "How did you hear about us?".
type Referrer string

const (
	ReferrerUnknown   Referrer = ""
	ReferrerInstagram Referrer = "Instagram"
	ReferrerLinkedIn  Referrer = "LinkedIn"
	ReferrerSearch    Referrer = "Search"
)

// Consent answers "Receive updates?".
type Consent string

const (
	ConsentUnknown Consent = ""
	ConsentYes     Consent = "Yes, please"
	ConsentNo      Consent = "No, thanks"
)

// Form is the full onboarding record collected across the four steps.
// It serializes as the flat JSON object POST /auth/onboarding expects.
// Every field starts empty; presence is enforced per step by Validate.
type Form struct {
	// Step 1: identity
	FullName string `json:"fullName"`
	Contact  string `json:"contact"`
	Location string `json:"location"`
	Role     Role   `json:"role"`

	// Step 2: work profile
	PhotographerType  PhotographerType `json:"photographerType"`
	Portfolio         string           `json:"portfolio"`
	Genres            Genre            `json:"genres"`
	OpenToCommissions YesNo            `json:"openToCommissions"`

	// Step 3: acquisition
	HearAboutUs    Referrer `json:"hearAboutUs"`
	Goals          string   `json:"goals"`
	UpdatesConsent Consent  `json:"updatesConsent"`

	// Step 4: KYC
	PANNumber         string `json:"panNumber"`
	BankAccountNumber string `json:"bankAccountNumber"`
	IFSCCode          string `json:"ifscCode"`
}

// Field identifies one form field for picker writes and validation
// reporting. Values double as the JSON keys.
type Field string

const (
	FieldFullName          Field = "fullName"
	FieldContact           Field = "contact"
	FieldLocation          Field = "location"
	FieldRole              Field = "role"
	FieldPhotographerType  Field = "photographerType"
	FieldPortfolio         Field = "portfolio"
	FieldGenres            Field = "genres"
	FieldOpenToCommissions Field = "openToCommissions"
	FieldHearAboutUs       Field = "hearAboutUs"
	FieldGoals             Field = "goals"
	FieldUpdatesConsent    Field = "updatesConsent"
	FieldPANNumber         Field = "panNumber"
	FieldBankAccountNumber Field = "bankAccountNumber"
	FieldIFSCCode          Field = "ifscCode"
)

// Options returns the closed option set backing a picker field, or nil for
// free-text fields. This is the single place option lists are defined;
// screens never carry their own copies.
func Options(f Field) []string {
	switch f {
	case FieldRole:
		return []string{string(RolePhotographer), string(RoleVisualArtist), string(RoleAgency)}
	case FieldPhotographerType:
		return []string{string(PhotographerTypeHobbyist), string(PhotographerTypeProfessional), string(PhotographerTypeFreelancer)}
	case FieldGenres:
		return []string{string(GenreStreet), string(GenreTravel), string(GenrePortrait), string(GenreArchitecture)}
	case FieldOpenToCommissions:
		return []string{string(Yes), string(No)}
	case FieldHearAboutUs:
		return []string{string(ReferrerInstagram), string(ReferrerLinkedIn), string(ReferrerSearch)}
	case FieldUpdatesConsent:
		return []string{string(ConsentYes), string(ConsentNo)}
	}
	return nil
}

// ValidOption reports whether value belongs to the field's closed option
// set. Free-text fields accept anything.
func ValidOption(f Field, value string) bool {
	opts := Options(f)
	if opts == nil {
		return true
	}
	for _, opt := range opts {
		if opt == value {
			return true
		}
	}
	return false
}

// Get reads a field value as its display string.
func (f *Form) Get(field Field) string {
	switch field {
	case FieldFullName:
		return f.FullName
	case FieldContact:
		return f.Contact
	case FieldLocation:
		return f.Location
	case FieldRole:
		return string(f.Role)
	case FieldPhotographerType:
		return string(f.PhotographerType)
	case FieldPortfolio:
		return f.Portfolio
	case FieldGenres:
		return string(f.Genres)
	case FieldOpenToCommissions:
		return string(f.OpenToCommissions)
	case FieldHearAboutUs:
		return string(f.HearAboutUs)
	case FieldGoals:
		return f.Goals
	case FieldUpdatesConsent:
		return string(f.UpdatesConsent)
	case FieldPANNumber:
		return f.PANNumber
	case FieldBankAccountNumber:
		return f.BankAccountNumber
	case FieldIFSCCode:
		return f.IFSCCode
	}
	return ""
}

// Set writes a field value. Unknown fields are ignored; the write is a
// total operation with no failure mode.
func (f *Form) Set(field Field, value string) {
	switch field {
	case FieldFullName:
		f.FullName = value
	case FieldContact:
		f.Contact = value
	case FieldLocation:
		f.Location = value
	case FieldRole:
		f.Role = Role(value)
	case FieldPhotographerType:
		f.PhotographerType = PhotographerType(value)
	case FieldPortfolio:
		f.Portfolio = value
	case FieldGenres:
		f.Genres = Genre(value)
	case FieldOpenToCommissions:
		f.OpenToCommissions = YesNo(value)
	case FieldHearAboutUs:
		f.HearAboutUs = Referrer(value)
	case FieldGoals:
		f.Goals = value
	case FieldUpdatesConsent:
		f.UpdatesConsent = Consent(value)
	case FieldPANNumber:
		f.PANNumber = value
	case FieldBankAccountNumber:
		f.BankAccountNumber = value
	case FieldIFSCCode:
		f.IFSCCode = value
	}
}

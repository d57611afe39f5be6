package authform

// Fields holds every input of both modes. Inputs hidden by the current mode
// keep their values so switching back restores them.
type Fields struct {
	Email            string
	Password         string
	Username         string
	ConfirmPassword  string
	VerificationCode string
	TermsAccepted    bool
}

// Field names one member of Fields.
type Field uint8

const (
	FieldEmail Field = iota
	FieldPassword
	FieldUsername
	FieldConfirmPassword
	FieldVerificationCode
	FieldTermsAccepted
)

var fieldNames = [...]string{"email", "password", "username", "confirmPassword", "verificationCode", "termsAccepted"}

// String returns the input name attribute.
func (f Field) String() string {
	if int(f) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[f]
}

func ParseField(name string) (Field, error) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	return 0, ErrUnknownField
}

// Update changes exactly one member of Fields.
type Update interface {
	Field() Field
	apply(*Fields)
}

type (
	SetEmail            string
	SetPassword         string
	SetUsername         string
	SetConfirmPassword  string
	SetVerificationCode string
	SetTermsAccepted    bool
)

func (SetEmail) Field() Field { return FieldEmail }
func (SetPassword) Field() Field { return FieldPassword }
func (SetUsername) Field() Field { return FieldUsername }
func (SetConfirmPassword) Field() Field { return FieldConfirmPassword }
func (SetVerificationCode) Field() Field { return FieldVerificationCode }
func (SetTermsAccepted) Field() Field { return FieldTermsAccepted }

func (u SetEmail) apply(f *Fields) { f.Email = string(u) }
func (u SetPassword) apply(f *Fields) { f.Password = string(u) }
func (u SetUsername) apply(f *Fields) { f.Username = string(u) }
func (u SetConfirmPassword) apply(f *Fields) { f.ConfirmPassword = string(u) }
func (u SetVerificationCode) apply(f *Fields) { f.VerificationCode = string(u) }
func (u SetTermsAccepted) apply(f *Fields) { f.TermsAccepted = bool(u) }

// With returns a copy of f with u applied. f itself is not modified.
func (f Fields) With(u Update) Fields {
	if u != nil {
		u.apply(&f)
	}
	return f
}

// UpdateFor maps an input event to an Update. checked is only read for the
// terms checkbox; value is ignored for it.
func UpdateFor(name, value string, checked bool) (Update, error) {
	field, err := ParseField(name)
	if err != nil {
		return nil, err
	}
	switch field {
	case FieldEmail:
		return SetEmail(value), nil
	case FieldPassword:
		return SetPassword(value), nil
	case FieldUsername:
		return SetUsername(value), nil
	case FieldConfirmPassword:
		return SetConfirmPassword(value), nil
	case FieldVerificationCode:
		return SetVerificationCode(value), nil
	}
	return SetTermsAccepted(checked), nil
}

package authform

import (
	"github.com/tinywasm/fmt"
	_ "github.com/tinywasm/fmt/dictionary"
	"github.com/tinywasm/form"
	"github.com/tinywasm/form/input"
)

// SignInData is the sign-in input set checked by ValidateData.
type SignInData struct {
	Email    string
	Password string
}

func (d *SignInData) FormName() string { return "signin" }

func (d *SignInData) Schema() []fmt.Field {
	return []fmt.Field{
		{Name: FieldEmail.String(), Type: fmt.FieldText, NotNull: true, Input: "email"},
		{Name: FieldPassword.String(), Type: fmt.FieldText, NotNull: true, Input: "password"},
	}
}

func (d *SignInData) Pointers() []any { return []any{&d.Email, &d.Password} }

// SignUpData is the sign-up input set checked by ValidateData. The terms
// checkbox is rendered by the card, so the form skips it.
type SignUpData struct {
	Username         string
	Email            string
	Password         string
	ConfirmPassword  string
	VerificationCode string
	TermsAccepted    bool
}

func (d *SignUpData) FormName() string { return "signup" }

func (d *SignUpData) Schema() []fmt.Field {
	return []fmt.Field{
		{Name: FieldUsername.String(), Type: fmt.FieldText, NotNull: true, Input: "text"},
		{Name: FieldEmail.String(), Type: fmt.FieldText, NotNull: true, Input: "email"},
		{Name: FieldPassword.String(), Type: fmt.FieldText, NotNull: true, Input: "password"},
		{Name: FieldConfirmPassword.String(), Type: fmt.FieldText, NotNull: true, Input: "password"},
		{Name: FieldVerificationCode.String(), Type: fmt.FieldText, NotNull: true, Input: "text"},
		{Name: FieldTermsAccepted.String(), Type: fmt.FieldBool, Input: "-"},
	}
}

func (d *SignUpData) Pointers() []any {
	return []any{&d.Username, &d.Email, &d.Password, &d.ConfirmPassword, &d.VerificationCode, &d.TermsAccepted}
}

var placeholders = map[Field]string{
	FieldEmail:            "Email",
	FieldPassword:         "Password",
	FieldUsername:         "Username",
	FieldConfirmPassword:  "Re-enter Password",
	FieldVerificationCode: "Verification Code",
}

func newForms() (signIn, signUp *form.Form, err error) {
	if signIn, err = form.New("auth", &SignInData{}); err != nil {
		return nil, nil, err
	}
	if signUp, err = form.New("auth", &SignUpData{}); err != nil {
		return nil, nil, err
	}
	decorate(signIn)
	decorate(signUp)
	return signIn, signUp, nil
}

// decorate sets the labels and marks every input required, so the browser
// blocks submit while one is empty.
func decorate(f *form.Form) {
	for _, inp := range f.Inputs {
		decorateInput(inp)
	}
}

func decorateInput(inp input.Input) {
	if field, err := ParseField(inp.FieldName()); err == nil {
		if p, ok := inp.(interface{ SetPlaceholder(string) }); ok {
			p.SetPlaceholder(placeholders[field])
		}
		if p, ok := inp.(interface{ SetTitle(string) }); ok {
			p.SetTitle(placeholders[field])
		}
	}
	if a, ok := inp.(interface{ AddAttribute(string, string) }); ok {
		a.AddAttribute("required", "required")
	}
}

func (f *AuthForm) HandlerName() string { return "auth" }
func (f *AuthForm) ModuleTitle() string { return f.mode.Title() }

// ValidateData runs the structural input checks of the matching field set.
// It is independent from the submit rules.
func (f *AuthForm) ValidateData(action byte, data ...any) error {
	if len(data) == 0 {
		return nil
	}
	switch d := data[0].(type) {
	case *SignInData:
		return f.signIn.ValidateData(action, d)
	case *SignUpData:
		return f.signUp.ValidateData(action, d)
	}
	return nil
}

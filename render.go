package authform

import (
	"html"
	"strings"

	"github.com/tinywasm/form"
)

var cardTaglines = []string{
	"Join over 700+ categories",
	"Quality work done faster",
	"Access talent across the globe",
}

// RenderHTML renders the whole card for the current state. Every input and
// the submit button live in a single form element.
func (f *AuthForm) RenderHTML() string {
	var b strings.Builder
	b.WriteString(`<div class="auth-wrapper"><div class="auth-card">`)
	b.WriteString(`<button type="button" class="close-btn" data-action="close">&times;</button>`)

	b.WriteString(`<div class="auth-image"><h2>Welcome Back!</h2>`)
	for _, line := range cardTaglines {
		b.WriteString(`<p>` + line + `</p>`)
	}
	b.WriteString(`</div>`)

	b.WriteString(`<div class="auth-form-container"><h2>` + f.mode.Title() + `</h2>`)
	b.WriteString(`<div class="auth-toggle">`)
	for _, m := range []FormMode{SignIn, SignUp} {
		class := ""
		if m == f.mode {
			class = "active"
		}
		b.WriteString(`<button type="button" data-action="mode" data-mode="` + m.String() + `" class="` + class + `">` + m.Title() + `</button>`)
	}
	b.WriteString(`</div>`)

	if f.err != nil {
		b.WriteString(`<div class="error-message">` + html.EscapeString(f.err.Message) + `</div>`)
	}

	fs := f.current()
	f.fillValues(fs)
	b.WriteString(`<form id="` + fs.GetID() + `" class="auth-form" method="POST" action="/` + f.HandlerName() + `">`)
	for _, inp := range fs.Inputs {
		if inp.FieldName() == FieldVerificationCode.String() {
			continue
		}
		b.WriteString(inp.RenderHTML())
	}
	if f.mode == SignUp {
		f.renderSignUpExtras(&b, fs)
	}
	b.WriteString(`<button type="submit" class="submit-btn">` + f.mode.Title() + `</button>`)
	b.WriteString(`<button type="button" class="google-btn" data-action="identity">` + f.mode.verb() + ` with ` + html.EscapeString(f.providerLabel()) + `</button>`)
	b.WriteString(`</form>`)

	b.WriteString(`</div></div></div>`)
	return b.String()
}

func (f *AuthForm) current() *form.Form {
	if f.mode == SignUp {
		return f.signUp
	}
	return f.signIn
}

// fillValues copies retained text into the inputs. Passwords are never
// written into markup.
func (f *AuthForm) fillValues(fs *form.Form) {
	fs.SetValues(FieldEmail.String(), html.EscapeString(f.fields.Email))
	fs.SetValues(FieldUsername.String(), html.EscapeString(f.fields.Username))
	fs.SetValues(FieldVerificationCode.String(), html.EscapeString(f.fields.VerificationCode))
}

func (f *AuthForm) renderSignUpExtras(b *strings.Builder, fs *form.Form) {
	b.WriteString(`<p class="label-text">Account Type:</p><div class="radio-button-container">`)
	for _, a := range AccountTypes() {
		checked := ""
		if a == f.accountType {
			checked = " checked"
		}
		b.WriteString(`<label><input type="radio" name="accountType" value="` + a.String() + `"` + checked + `>` + a.Label() + `</label>`)
	}
	b.WriteString(`</div>`)

	checked := ""
	if f.fields.TermsAccepted {
		checked = " checked"
	}
	b.WriteString(`<label class="terms-label"><input name="termsAccepted" type="checkbox"` + checked + ` required>I accept the <a href="#">Terms &amp; Conditions</a></label>`)
	if inp := fs.Input(FieldVerificationCode.String()); inp != nil {
		b.WriteString(inp.RenderHTML())
	}
}

func (f *AuthForm) providerLabel() string {
	if f.cfg.Provider != nil {
		return f.cfg.Provider.Label()
	}
	return "Google"
}

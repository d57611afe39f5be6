package authform

import "github.com/tinywasm/unixid"

// SignInEvent is delivered to Config.OnSignIn after a sign-in submit.
type SignInEvent struct {
	Email string
}

// SignUpEvent is delivered to Config.OnSignUp after a valid sign-up submit.
type SignUpEvent struct {
	AccountType AccountType
}

// IdentityEvent is delivered to Config.OnIdentity when the user picks the
// external identity button. ID doubles as the OAuth state value. Provider and
// URL are empty when no IdentityProvider is configured.
type IdentityEvent struct {
	ID       string
	Mode     FormMode
	Provider string
	URL      string
}

func newID() (string, error) {
	u, err := unixid.NewUnixID()
	if err != nil {
		return "", err
	}
	return u.GetNewID(), nil
}

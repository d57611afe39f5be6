package authform

import (
	"log/slog"

	"github.com/tinywasm/form"
)

// AuthForm is the sign-in / sign-up form state. It is owned by a single UI
// event loop and is not safe for concurrent use.
type AuthForm struct {
	cfg Config
	log *slog.Logger

	mode        FormMode
	accountType AccountType
	fields      Fields
	err         *ValidationError

	status   Status
	outcome  Status
	attempts int

	release func()

	signIn *form.Form
	signUp *form.Form
}

// New returns a form in sign-in mode with the default account type, empty
// inputs and the demo verification code.
func New(cfg Config) (*AuthForm, error) {
	cfg = cfg.withDefaults()
	signIn, signUp, err := newForms()
	if err != nil {
		return nil, err
	}
	return &AuthForm{
		cfg:         cfg,
		log:         cfg.Logger.With("component", "authform"),
		mode:        SignIn,
		accountType: AccountUser,
		fields:      Fields{VerificationCode: cfg.VerificationCode},
		signIn:      signIn,
		signUp:      signUp,
	}, nil
}

func (f *AuthForm) Mode() FormMode { return f.mode }
func (f *AuthForm) AccountType() AccountType { return f.accountType }
func (f *AuthForm) Fields() Fields { return f.fields }
func (f *AuthForm) Err() *ValidationError { return f.err }
func (f *AuthForm) Status() Status { return f.status }
func (f *AuthForm) LastOutcome() Status { return f.outcome }
func (f *AuthForm) Attempts() int { return f.attempts }

// SetMode switches the flow. Inputs, account type and the current error are
// kept as they are.
func (f *AuthForm) SetMode(m FormMode) error {
	if !m.valid() {
		return ErrInvalidMode
	}
	f.mode = m
	return nil
}

// SelectAccountType sets the sign-up role. Selecting the current type is a
// no-op.
func (f *AuthForm) SelectAccountType(a AccountType) error {
	if !a.valid() {
		return ErrInvalidAccountType
	}
	f.accountType = a
	return nil
}

// Apply replaces the fields snapshot with one that has u applied.
func (f *AuthForm) Apply(u Update) {
	f.fields = f.fields.With(u)
}

// Submit runs one submission attempt. On failure the returned error is the
// *ValidationError now held by the form and no success hook runs.
func (f *AuthForm) Submit() error {
	f.attempts++
	f.err = nil
	f.status = Validating

	verr := validate(f.mode, f.fields)
	if verr != nil {
		f.err = verr
		f.outcome, f.status = Failed, Idle
		f.log.Info("submit rejected", "mode", f.mode.String(), "kind", verr.Kind.String(), "attempt", f.attempts)
		return verr
	}

	f.outcome, f.status = Success, Success
	defer func() { f.status = Idle }()
	f.log.Info("submit accepted", "mode", f.mode.String(), "attempt", f.attempts)
	switch f.mode {
	case SignUp:
		if f.cfg.OnSignUp != nil {
			f.cfg.OnSignUp(SignUpEvent{AccountType: f.accountType})
		}
	default:
		if f.cfg.OnSignIn != nil {
			f.cfg.OnSignIn(SignInEvent{Email: f.fields.Email})
		}
	}
	return nil
}

// ContinueWithIdentity hands off to the external identity provider. Fields are
// not read or changed and the outcome is not tracked.
func (f *AuthForm) ContinueWithIdentity() {
	ev := IdentityEvent{Mode: f.mode}
	id, err := newID()
	if err != nil {
		f.log.Error("identity event id", "error", err)
	} else {
		ev.ID = id
	}
	if p := f.cfg.Provider; p != nil {
		ev.Provider = p.Name()
		if ev.ID != "" {
			ev.URL = p.AuthCodeURL(ev.ID)
		}
	}
	f.log.Debug("identity action", "mode", f.mode.String(), "provider", ev.Provider)
	if f.cfg.OnIdentity != nil {
		f.cfg.OnIdentity(ev)
	}
}

// Close asks the host to leave the form.
func (f *AuthForm) Close() {
	f.log.Debug("close requested")
	if f.cfg.OnClose != nil {
		f.cfg.OnClose()
	}
}

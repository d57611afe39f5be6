package authform

import "log/slog"

const (
	DefaultBodyClass        = "signin-signup"
	DefaultVerificationCode = "123456"
)

type Config struct {
	BodyClass        string           // default: "signin-signup"
	VerificationCode string           // default: "123456", pre-seeded demo value
	Logger           *slog.Logger     // default: discard
	Marker           Marker           // default: document body on wasm, no-op on the server
	Provider         IdentityProvider // optional

	OnSignIn   func(SignInEvent)
	OnSignUp   func(SignUpEvent)
	OnIdentity func(IdentityEvent)
	OnClose    func()
}

func (c Config) withDefaults() Config {
	if c.BodyClass == "" {
		c.BodyClass = DefaultBodyClass
	}
	if c.VerificationCode == "" {
		c.VerificationCode = DefaultVerificationCode
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Marker == nil {
		c.Marker = defaultMarker()
	}
	return c
}

package authform

// IdentityProvider is an external sign-in service. The form only builds the
// authorization URL; completing the exchange belongs to the host.
type IdentityProvider interface {
	Name() string
	Label() string
	AuthCodeURL(state string) string
}

package authform

import "github.com/tinywasm/fmt"

var (
	ErrPasswordMismatch   = fmt.Err("password", "mismatch")       // EN: Password Mismatch       / ES: Contraseña No Coincide
	ErrTermsNotAccepted   = fmt.Err("terms", "not", "accepted")   // EN: Terms Not Accepted      / ES: Términos No Aceptados
	ErrRemoteRejected     = fmt.Err("access", "denied")           // EN: Access Denied           / ES: Acceso Denegado
	ErrUnknownField       = fmt.Err("field", "unknown")           // EN: Field Unknown           / ES: Campo Desconocido
	ErrInvalidMode        = fmt.Err("mode", "invalid")            // EN: Mode Invalid            / ES: Modo Inválido
	ErrInvalidAccountType = fmt.Err("account", "type", "invalid") // EN: Account Type Invalid    / ES: Tipo de Cuenta Inválido
)

// ErrorKind classifies a form-level validation failure.
type ErrorKind uint8

const (
	PasswordMismatch ErrorKind = iota + 1
	TermsNotAccepted
	// RemoteRejected is reserved for a backend refusal. The local validator
	// never produces it.
	RemoteRejected
)

func (k ErrorKind) String() string {
	switch k {
	case PasswordMismatch:
		return "passwordMismatch"
	case TermsNotAccepted:
		return "termsNotAccepted"
	case RemoteRejected:
		return "remoteRejected"
	}
	return "none"
}

// ValidationError is the single message shown above the form.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func newValidationError(k ErrorKind) *ValidationError {
	var msg string
	switch k {
	case PasswordMismatch:
		msg = "Passwords do not match"
	case TermsNotAccepted:
		msg = "You must accept the Terms & Conditions"
	case RemoteRejected:
		msg = "The request was rejected"
	}
	return &ValidationError{Kind: k, Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap lets errors.Is match the package sentinels.
func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case PasswordMismatch:
		return ErrPasswordMismatch
	case TermsNotAccepted:
		return ErrTermsNotAccepted
	case RemoteRejected:
		return ErrRemoteRejected
	}
	return nil
}

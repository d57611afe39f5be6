package authform

// validate runs the submit rules for mode and stops at the first failure.
// Sign-in has no rules here; required inputs are enforced by the markup.
func validate(mode FormMode, f Fields) *ValidationError {
	if mode != SignUp {
		return nil
	}
	if f.Password != f.ConfirmPassword {
		return newValidationError(PasswordMismatch)
	}
	if !f.TermsAccepted {
		return newValidationError(TermsNotAccepted)
	}
	return nil
}

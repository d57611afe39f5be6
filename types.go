package authform

// FormMode selects which authentication flow the form presents.
type FormMode uint8

const (
	SignIn FormMode = iota
	SignUp
)

func (m FormMode) String() string {
	if m == SignUp {
		return "signUp"
	}
	return "signIn"
}

// Title is the heading and submit label for the mode.
func (m FormMode) Title() string {
	if m == SignUp {
		return "Sign Up"
	}
	return "Sign In"
}

// verb is used in the identity button label: "Sign in with Google".
func (m FormMode) verb() string {
	if m == SignUp {
		return "Sign up"
	}
	return "Sign in"
}

func (m FormMode) valid() bool { return m == SignIn || m == SignUp }

func ParseFormMode(s string) (FormMode, error) {
	switch s {
	case "signIn":
		return SignIn, nil
	case "signUp":
		return SignUp, nil
	}
	return SignIn, ErrInvalidMode
}

// AccountType is the role chosen during sign-up.
type AccountType uint8

const (
	AccountUser AccountType = iota
	AccountSelling
	AccountAffiliate
)

var accountTypeNames = [...]string{"user", "selling", "affiliate"}

// AccountTypes returns every account type in display order.
func AccountTypes() []AccountType {
	return []AccountType{AccountUser, AccountSelling, AccountAffiliate}
}

func (a AccountType) String() string {
	if !a.valid() {
		return "invalid"
	}
	return accountTypeNames[a]
}

// Label is the capitalized name shown next to the radio input.
func (a AccountType) Label() string {
	s := a.String()
	return string(s[0]-'a'+'A') + s[1:]
}

func (a AccountType) valid() bool { return int(a) < len(accountTypeNames) }

func ParseAccountType(s string) (AccountType, error) {
	for i, name := range accountTypeNames {
		if name == s {
			return AccountType(i), nil
		}
	}
	return AccountUser, ErrInvalidAccountType
}

// Status is the phase of a submission attempt.
type Status uint8

const (
	Idle Status = iota
	Validating
	Success
	Failed
)

func (s Status) String() string {
	switch s {
	case Validating:
		return "validating"
	case Success:
		return "success"
	case Failed:
		return "failed"
	}
	return "idle"
}

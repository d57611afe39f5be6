package authform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinywasm/authform"
)

func TestAccountTypes(t *testing.T) {
	assert.Equal(t, []authform.AccountType{authform.AccountUser, authform.AccountSelling, authform.AccountAffiliate}, authform.AccountTypes())
	assert.Equal(t, "Selling", authform.AccountSelling.Label())
	assert.Equal(t, "affiliate", authform.AccountAffiliate.String())

	a, err := authform.ParseAccountType("selling")
	require.NoError(t, err)
	assert.Equal(t, authform.AccountSelling, a)

	_, err = authform.ParseAccountType("admin")
	assert.ErrorIs(t, err, authform.ErrInvalidAccountType)
}

func TestFormMode(t *testing.T) {
	assert.Equal(t, "Sign In", authform.SignIn.Title())
	assert.Equal(t, "Sign Up", authform.SignUp.Title())

	m, err := authform.ParseFormMode("signUp")
	require.NoError(t, err)
	assert.Equal(t, authform.SignUp, m)

	_, err = authform.ParseFormMode("reset")
	assert.ErrorIs(t, err, authform.ErrInvalidMode)
}

package authform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinywasm/authform"
)

func TestProviders(t *testing.T) {
	var _ authform.IdentityProvider = (*authform.GoogleProvider)(nil)
	var _ authform.IdentityProvider = (*authform.MicrosoftProvider)(nil)

	t.Run("google", func(t *testing.T) {
		p := &authform.GoogleProvider{ClientID: "cid", RedirectURL: "https://app.test/cb"}
		url := p.AuthCodeURL("st4te")
		assert.Contains(t, url, "https://accounts.google.com/")
		assert.Contains(t, url, "client_id=cid")
		assert.Contains(t, url, "state=st4te")
	})

	t.Run("microsoft default tenant", func(t *testing.T) {
		p := &authform.MicrosoftProvider{ClientID: "cid"}
		assert.Contains(t, p.AuthCodeURL("s"), "login.microsoftonline.com/common/")
		assert.Equal(t, "Microsoft", p.Label())
	})

	t.Run("microsoft tenant", func(t *testing.T) {
		p := &authform.MicrosoftProvider{ClientID: "cid", Tenant: "contoso"}
		assert.Contains(t, p.AuthCodeURL("s"), "login.microsoftonline.com/contoso/")
	})
}

package authform

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"
)

// MicrosoftProvider sends the user to the Microsoft identity platform. Tenant
// selects the directory; "common" accepts personal and work accounts.
type MicrosoftProvider struct {
	ClientID    string
	RedirectURL string
	Tenant      string // default: "common"
	config      *oauth2.Config
}

func (p *MicrosoftProvider) Name() string { return "microsoft" }
func (p *MicrosoftProvider) Label() string { return "Microsoft" }

func (p *MicrosoftProvider) AuthCodeURL(state string) string {
	if p.config == nil {
		tenant := p.Tenant
		if tenant == "" {
			tenant = "common"
		}
		p.config = &oauth2.Config{ClientID: p.ClientID, RedirectURL: p.RedirectURL, Scopes: []string{"User.Read"}, Endpoint: microsoft.AzureADEndpoint(tenant)}
	}
	return p.config.AuthCodeURL(state)
}

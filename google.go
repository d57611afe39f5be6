package authform

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var googleScopes = []string{
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
}

// GoogleProvider sends the user to the Google consent screen.
type GoogleProvider struct {
	ClientID    string
	RedirectURL string
	config      *oauth2.Config
}

func (p *GoogleProvider) Name() string { return "google" }
func (p *GoogleProvider) Label() string { return "Google" }

// AuthCodeURL returns the consent URL carrying state. The code exchange is
// left to the redirect target.
func (p *GoogleProvider) AuthCodeURL(state string) string {
	if p.config == nil {
		p.config = &oauth2.Config{ClientID: p.ClientID, RedirectURL: p.RedirectURL, Scopes: googleScopes, Endpoint: google.Endpoint}
	}
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

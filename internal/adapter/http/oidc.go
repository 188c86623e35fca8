package adapthttp

import (
	"context"

	"evidencias/internal/config"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OIDCConfig holds the optional SSO provider wiring. The zero value is a
// disabled config.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config oauth2.Config
}

// NewOIDC builds the SSO configuration, discovering the provider when
// settings are present. Returns a disabled config when SSO is not set up.
func NewOIDC(ctx context.Context, settings config.OIDCSettings) (*OIDCConfig, error) {
	if !settings.Enabled() {
		return &OIDCConfig{}, nil
	}

	provider, err := oidc.NewProvider(ctx, settings.Issuer)
	if err != nil {
		return nil, err
	}
	return &OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: oauth2.Config{
			ClientID:     settings.ClientID,
			ClientSecret: settings.ClientSecret,
			RedirectURL:  settings.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}

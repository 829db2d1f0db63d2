// Package oauth runs the authorization-code leg of each federated provider.
package oauth

import (
	"context"

	"firelink/internal/domain/entity"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// AuthRequest carries the per-redirect values of an authorization request.
type AuthRequest struct {
	State     string
	Verifier  string
	Nonce     string
	LoginHint string
}

// Connector is the OAuth client of one provider.
type Connector struct {
	provider entity.Provider
	config   *oauth2.Config
	pkce     bool
	// idTokens verifies OpenID Connect ID tokens; nil for providers without OIDC.
	idTokens *oidc.IDTokenVerifier
}

// Provider returns the provider the connector signs in with.
func (c *Connector) Provider() entity.Provider {
	return c.provider
}

// AuthCodeURL builds the consent screen URL.
func (c *Connector) AuthCodeURL(req AuthRequest) string {
	opts := []oauth2.AuthCodeOption{oauth2.AccessTypeOnline}
	if c.pkce && req.Verifier != "" {
		opts = append(opts, oauth2.S256ChallengeOption(req.Verifier))
	}
	if c.idTokens != nil && req.Nonce != "" {
		opts = append(opts, oauth2.SetAuthURLParam("nonce", req.Nonce))
	}
	if req.LoginHint != "" && c.provider == entity.ProviderGoogle {
		opts = append(opts, oauth2.SetAuthURLParam("login_hint", req.LoginHint))
	}

	return c.config.AuthCodeURL(req.State, opts...)
}

// Exchange trades the authorization code for a provider credential.
func (c *Connector) Exchange(ctx context.Context, code string, req AuthRequest) (*entity.Credential, error) {
	var opts []oauth2.AuthCodeOption
	if c.pkce && req.Verifier != "" {
		opts = append(opts, oauth2.VerifierOption(req.Verifier))
	}

	token, err := c.config.Exchange(ctx, code, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to exchange %s authorization code", c.provider)
	}

	providerID := entity.ToProviderID(c.provider)
	credential := &entity.Credential{
		ProviderID:   providerID,
		SignInMethod: providerID,
		AccessToken:  token.AccessToken,
	}

	if rawIDToken, ok := token.Extra("id_token").(string); ok && rawIDToken != "" {
		email, err := c.verifyIDToken(ctx, rawIDToken, req.Nonce)
		if err != nil {
			return nil, err
		}
		credential.IDToken = rawIDToken
		credential.Email = email
	}
	if secret, ok := token.Extra("oauth_token_secret").(string); ok {
		credential.Secret = secret
	}

	return credential, nil
}

func (c *Connector) verifyIDToken(ctx context.Context, rawIDToken, nonce string) (string, error) {
	if c.idTokens == nil {
		return "", nil
	}

	idToken, err := c.idTokens.Verify(ctx, rawIDToken)
	if err != nil {
		return "", errors.Wrap(err, "failed to verify id token")
	}
	if nonce != "" && idToken.Nonce != nonce {
		return "", errors.New("id token nonce mismatch")
	}

	var claims struct {
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return "", errors.Wrap(err, "failed to decode id token claims")
	}

	return claims.Email, nil
}

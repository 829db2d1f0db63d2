package oauth

import (
	"context"
	"log/slog"
	"strings"

	"firelink/config"
	"firelink/internal/domain/entity"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

const (
	googleIssuer  = "https://accounts.google.com"
	googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"
)

//nolint:gochecknoglobals
var twitterEndpoint = oauth2.Endpoint{
	AuthURL:   "https://twitter.com/i/oauth2/authorize",
	TokenURL:  "https://api.twitter.com/2/oauth2/token",
	AuthStyle: oauth2.AuthStyleInHeader,
}

type providerDefaults struct {
	endpoint oauth2.Endpoint
	scopes   []string
	pkce     bool
}

//nolint:gochecknoglobals
var defaults = map[entity.Provider]providerDefaults{
	entity.ProviderGoogle:   {endpoint: google.Endpoint, scopes: []string{oidc.ScopeOpenID, "email", "profile"}, pkce: true},
	entity.ProviderGitHub:   {endpoint: github.Endpoint, scopes: []string{"read:user", "user:email"}},
	entity.ProviderFacebook: {endpoint: facebook.Endpoint, scopes: []string{"email", "public_profile"}, pkce: true},
	entity.ProviderTwitter:  {endpoint: twitterEndpoint, scopes: []string{"tweet.read", "users.read"}, pkce: true},
}

// Registry holds the connectors of every configured provider.
type Registry struct {
	connectors map[entity.Provider]*Connector
}

// RegistryParams holds dependencies for the registry, injected by Fx.
type RegistryParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewRegistry builds a connector for each provider found under the providers config section.
// Unknown provider names fail startup.
func NewRegistry(params RegistryParams) (*Registry, error) {
	callbackURL := ""
	if params.Config.OAuth != nil {
		callbackURL = params.Config.OAuth.CallbackURL
	}

	registry := &Registry{connectors: make(map[entity.Provider]*Connector)}
	for name, providerCfg := range params.Config.Providers {
		if providerCfg == nil || providerCfg.ClientID == "" {
			continue
		}

		provider, ok := parseProviderName(name)
		if !ok {
			return nil, errors.Errorf("unsupported oauth provider %q", name)
		}
		if callbackURL == "" {
			return nil, errors.New("oauth callback url is required when providers are configured")
		}

		registry.connectors[provider] = newConnector(params.Ctx, provider, providerCfg, callbackURL)
		params.Logger.Info("OAuth provider registered", slog.String("provider", provider.String()))
	}

	return registry, nil
}

// NewStaticRegistry wraps prebuilt connectors.
func NewStaticRegistry(connectors ...*Connector) *Registry {
	registry := &Registry{connectors: make(map[entity.Provider]*Connector, len(connectors))}
	for _, c := range connectors {
		registry.connectors[c.provider] = c
	}

	return registry
}

// Lookup returns the connector of provider.
func (r *Registry) Lookup(provider entity.Provider) (*Connector, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r.connectors[provider]

	return c, ok
}

// Providers lists the registered providers.
func (r *Registry) Providers() entity.Providers {
	var result entity.Providers
	for _, p := range entity.KnownProviders() {
		if _, ok := r.Lookup(p); ok {
			result = append(result, p)
		}
	}

	return result
}

// NewConnector builds a connector against an explicit endpoint.
func NewConnector(provider entity.Provider, cfg *oauth2.Config, pkce bool, idTokens *oidc.IDTokenVerifier) *Connector {
	return &Connector{provider: provider, config: cfg, pkce: pkce, idTokens: idTokens}
}

func newConnector(ctx context.Context, provider entity.Provider, providerCfg *config.ProviderConfig, callbackURL string) *Connector {
	d := defaults[provider]

	scopes := providerCfg.Scopes
	if len(scopes) == 0 {
		scopes = d.scopes
	}

	var idTokens *oidc.IDTokenVerifier
	if provider == entity.ProviderGoogle {
		// Keys are fetched lazily, so startup does not depend on the network.
		keySet := oidc.NewRemoteKeySet(ctx, googleJWKSURL)
		idTokens = oidc.NewVerifier(googleIssuer, keySet, &oidc.Config{ClientID: providerCfg.ClientID})
	}

	return NewConnector(provider, &oauth2.Config{
		ClientID:     providerCfg.ClientID,
		ClientSecret: providerCfg.ClientSecret,
		RedirectURL:  callbackURL,
		Endpoint:     d.endpoint,
		Scopes:       scopes,
	}, d.pkce, idTokens)
}

func parseProviderName(name string) (entity.Provider, bool) {
	for _, p := range entity.KnownProviders() {
		if p.IsFederated() && (strings.EqualFold(name, p.String()) || strings.EqualFold(name, entity.ToProviderID(p))) {
			return p, true
		}
	}

	return "", false
}

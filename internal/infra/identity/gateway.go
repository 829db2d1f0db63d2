// Package identity implements the identity gateway on top of the Firebase identity platform.
package identity

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/url"
	"slices"
	"time"

	"firelink/config"
	deliverycontext "firelink/internal/delivery/context"
	"firelink/internal/domain/entity"
	domainerrors "firelink/internal/domain/errors"
	"firelink/internal/domain/service"
	"firelink/internal/infra/auth/oauth"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/oauth2"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

const (
	handshakeMaxAge   = 15 * time.Minute
	idTokenLeeway     = 2 * time.Minute
	minPasswordLength = 6
	accessDenied      = "access_denied"
	defaultRequestURI = "http://localhost"

	oobPasswordReset = "PASSWORD_RESET"
	oobVerifyEmail   = "VERIFY_EMAIL"
	oobChangeEmail   = "VERIFY_AND_CHANGE_EMAIL"
)

// connector runs the OAuth leg of a federated sign-in.
type connector interface {
	AuthCodeURL(req oauth.AuthRequest) string
	Exchange(ctx context.Context, code string, req oauth.AuthRequest) (*entity.Credential, error)
}

// GatewayParams holds dependencies for the gateway, injected by Fx.
type GatewayParams struct {
	fx.In

	Ctx      context.Context
	Config   *config.Config
	Registry *oauth.Registry
	Logger   *slog.Logger
}

type gateway struct {
	admin       adminClient
	toolkit     relyingParty
	connectors  map[entity.Provider]connector
	requestURI  string
	continueURL string
	now         func() time.Time
	logger      *slog.Logger
}

// New creates the Firebase-backed identity gateway.
func New(params GatewayParams) (service.IdentityGateway, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase config is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}
	admin, err := app.Auth(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	toolkit, err := identitytoolkit.NewService(params.Ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit client")
	}

	connectors := make(map[entity.Provider]connector)
	for _, provider := range params.Registry.Providers() {
		if c, ok := params.Registry.Lookup(provider); ok {
			connectors[provider] = c
		}
	}

	requestURI := defaultRequestURI
	if params.Config.OAuth != nil && params.Config.OAuth.CallbackURL != "" {
		requestURI = params.Config.OAuth.CallbackURL
	}

	return newGateway(admin, &toolkitRelyingParty{svc: toolkit}, connectors, requestURI, cfg.ContinueURL, params.Logger), nil
}

func newGateway(admin adminClient, toolkit relyingParty, connectors map[entity.Provider]connector, requestURI, continueURL string, logger *slog.Logger) *gateway {
	return &gateway{
		admin:       admin,
		toolkit:     toolkit,
		connectors:  connectors,
		requestURI:  requestURI,
		continueURL: continueURL,
		now:         time.Now,
		logger:      logger,
	}
}

func (g *gateway) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

func (g *gateway) SignInWithPassword(ctx context.Context, email, password string) (*entity.AuthResult, error) {
	resp, err := g.toolkit.VerifyPassword(ctx, &identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, mapToolkitError(err, "verify password")
	}

	return g.result(ctx, tokens{uid: resp.LocalId, idToken: resp.IdToken, refreshToken: resp.RefreshToken},
		false, passwordCredential(email))
}

func (g *gateway) CreateAccountWithPassword(ctx context.Context, email, password string) (*entity.AuthResult, error) {
	resp, err := g.toolkit.SignupNewUser(ctx, &identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, mapToolkitError(err, "sign up")
	}

	return g.result(ctx, tokens{uid: resp.LocalId, idToken: resp.IdToken, refreshToken: resp.RefreshToken},
		true, passwordCredential(email))
}

func (g *gateway) SignInWithRedirect(_ context.Context, provider entity.Provider, opts entity.RedirectOptions) (*entity.ProviderHandshake, error) {
	return g.beginRedirect(provider, entity.HandshakeModeSignIn, opts)
}

func (g *gateway) LinkCredentialWithRedirect(_ context.Context, session *entity.AuthSession, provider entity.Provider) (*entity.ProviderHandshake, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	return g.beginRedirect(provider, entity.HandshakeModeLink, entity.RedirectOptions{})
}

func (g *gateway) beginRedirect(provider entity.Provider, mode entity.HandshakeMode, opts entity.RedirectOptions) (*entity.ProviderHandshake, error) {
	c, ok := g.connectors[provider]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrNotRegisteredProvider.WithDetails(provider.String()))
	}

	req := oauth.AuthRequest{
		State:     oauth2.GenerateVerifier(),
		Verifier:  oauth2.GenerateVerifier(),
		Nonce:     oauth2.GenerateVerifier(),
		LoginHint: opts.LoginHint,
	}

	return &entity.ProviderHandshake{
		State:     req.State,
		Verifier:  req.Verifier,
		Nonce:     req.Nonce,
		Provider:  provider,
		Mode:      mode,
		AuthURL:   c.AuthCodeURL(req),
		CreatedAt: g.now().UTC(),
	}, nil
}

func (g *gateway) GetRedirectResult(ctx context.Context, session *entity.AuthSession, handshake *entity.ProviderHandshake, callback entity.RedirectCallback) (*entity.AuthResult, error) {
	if handshake == nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidState.WithDetails("no redirect in progress"))
	}
	if callback.Error != "" {
		if callback.Error == accessDenied {
			return nil, errors.WithStack(domainerrors.ErrRedirectCancelledByUser)
		}
		detail := callback.ErrorDescription
		if detail == "" {
			detail = callback.Error
		}

		return nil, errors.WithStack(domainerrors.ErrInvalidIDPResponse.WithDetails(detail))
	}
	if subtle.ConstantTimeCompare([]byte(callback.State), []byte(handshake.State)) != 1 {
		return nil, errors.WithStack(domainerrors.ErrInvalidState.WithDetails("state mismatch"))
	}
	if g.now().Sub(handshake.CreatedAt) > handshakeMaxAge {
		return nil, errors.WithStack(domainerrors.ErrInvalidState.WithDetails("redirect expired"))
	}

	c, ok := g.connectors[handshake.Provider]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrNotRegisteredProvider.WithDetails(handshake.Provider.String()))
	}
	credential, err := c.Exchange(ctx, callback.Code, oauth.AuthRequest{
		State:    handshake.State,
		Verifier: handshake.Verifier,
		Nonce:    handshake.Nonce,
	})
	if err != nil {
		g.log(ctx).Warn("Authorization code exchange failed",
			slog.String("provider", handshake.Provider.String()), slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrInvalidIDPResponse.WithDetails(err.Error()))
	}

	req := g.assertionRequest(credential)
	if handshake.Mode == entity.HandshakeModeLink {
		if err := requireSession(session); err != nil {
			return nil, err
		}
		if req.IdToken, err = g.freshIDToken(ctx, session); err != nil {
			return nil, err
		}
	}

	return g.assert(ctx, req, credential)
}

func (g *gateway) LinkCredentialDirect(ctx context.Context, session *entity.AuthSession, credential *entity.Credential) (*entity.AuthResult, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	if credential == nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidIDPResponse.WithDetails("missing credential"))
	}

	if credential.Provider() == entity.ProviderPassword {
		if len(credential.Password) < minPasswordLength {
			return nil, errors.WithStack(domainerrors.ErrWeakPassword)
		}
		update := (&auth.UserToUpdate{}).Email(credential.Email).Password(credential.Password)
		if _, err := g.admin.UpdateUser(ctx, session.UID, update); err != nil {
			return nil, mapAdminError(err, "link password")
		}

		return g.result(ctx, tokens{uid: session.UID, idToken: session.IDToken, refreshToken: session.RefreshToken},
			false, passwordCredential(credential.Email))
	}

	req := g.assertionRequest(credential)
	idToken, err := g.freshIDToken(ctx, session)
	if err != nil {
		return nil, err
	}
	req.IdToken = idToken

	return g.assert(ctx, req, credential)
}

func (g *gateway) Unlink(ctx context.Context, session *entity.AuthSession, provider entity.Provider) (*entity.AuthenticatedUser, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	record, err := g.admin.GetUser(ctx, session.UID)
	if err != nil {
		return nil, mapAdminError(err, "get user")
	}
	if !toUser(record).Providers().Contains(provider) {
		return nil, errors.WithStack(domainerrors.ErrNoSuchProvider.WithDetails(provider.String()))
	}

	update := (&auth.UserToUpdate{}).ProvidersToDelete([]string{entity.ToProviderID(provider)})
	record, err = g.admin.UpdateUser(ctx, session.UID, update)
	if err != nil {
		return nil, mapAdminError(err, "unlink provider")
	}

	return toUser(record), nil
}

func (g *gateway) FetchSignInMethods(ctx context.Context, email string) ([]string, error) {
	record, err := g.admin.GetUserByEmail(ctx, email)
	if auth.IsUserNotFound(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, mapAdminError(err, "fetch sign-in methods")
	}

	methods := make([]string, 0, len(record.ProviderUserInfo))
	for _, info := range record.ProviderUserInfo {
		if info != nil && !slices.Contains(methods, info.ProviderID) {
			methods = append(methods, info.ProviderID)
		}
	}

	return methods, nil
}

func (g *gateway) CurrentUser(ctx context.Context, session *entity.AuthSession) (*entity.AuthenticatedUser, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	record, err := g.admin.GetUser(ctx, session.UID)
	if err != nil {
		return nil, mapAdminError(err, "get user")
	}
	if record.Disabled {
		return nil, errors.WithStack(domainerrors.ErrUserDisabled)
	}
	if record.TokensValidAfterMillis > session.SignedInAt.UnixMilli() {
		return nil, errors.WithStack(domainerrors.ErrUserTokenExpired)
	}

	return toUser(record), nil
}

func (g *gateway) SignOut(ctx context.Context, session *entity.AuthSession) error {
	if session == nil {
		return nil
	}

	return mapAdminError(g.admin.RevokeRefreshTokens(ctx, session.UID), "revoke refresh tokens")
}

func (g *gateway) DeleteUser(ctx context.Context, uid string) error {
	err := g.admin.DeleteUser(ctx, uid)
	if auth.IsUserNotFound(err) {
		g.log(ctx).Info("User already deleted", slog.String("uid", uid))

		return nil
	}

	return mapAdminError(err, "delete user")
}

func (g *gateway) UpdateProfile(ctx context.Context, session *entity.AuthSession, update entity.ProfileUpdate) error {
	if err := requireSession(session); err != nil {
		return err
	}
	if update.DisplayName == nil && update.PhotoURL == nil {
		return nil
	}

	params := &auth.UserToUpdate{}
	if update.DisplayName != nil {
		params = params.DisplayName(*update.DisplayName)
	}
	if update.PhotoURL != nil {
		params = params.PhotoURL(*update.PhotoURL)
	}
	_, err := g.admin.UpdateUser(ctx, session.UID, params)

	return mapAdminError(err, "update profile")
}

func (g *gateway) UpdateEmail(ctx context.Context, session *entity.AuthSession, email string) error {
	if err := requireSession(session); err != nil {
		return err
	}
	_, err := g.admin.UpdateUser(ctx, session.UID, (&auth.UserToUpdate{}).Email(email).EmailVerified(false))

	return mapAdminError(err, "update email")
}

func (g *gateway) VerifyBeforeUpdateEmail(ctx context.Context, session *entity.AuthSession, email string) error {
	if err := requireSession(session); err != nil {
		return err
	}
	idToken, err := g.freshIDToken(ctx, session)
	if err != nil {
		return err
	}

	return g.sendOob(ctx, &identitytoolkit.Relyingparty{RequestType: oobChangeEmail, IdToken: idToken, NewEmail: email})
}

func (g *gateway) UpdatePassword(ctx context.Context, session *entity.AuthSession, password string) error {
	if err := requireSession(session); err != nil {
		return err
	}
	if len(password) < minPasswordLength {
		return errors.WithStack(domainerrors.ErrWeakPassword)
	}
	_, err := g.admin.UpdateUser(ctx, session.UID, (&auth.UserToUpdate{}).Password(password))

	return mapAdminError(err, "update password")
}

func (g *gateway) SendPasswordResetEmail(ctx context.Context, email string) error {
	return g.sendOob(ctx, &identitytoolkit.Relyingparty{RequestType: oobPasswordReset, Email: email})
}

func (g *gateway) SendEmailVerification(ctx context.Context, session *entity.AuthSession) error {
	if err := requireSession(session); err != nil {
		return err
	}
	idToken, err := g.freshIDToken(ctx, session)
	if err != nil {
		return err
	}

	return g.sendOob(ctx, &identitytoolkit.Relyingparty{RequestType: oobVerifyEmail, IdToken: idToken})
}

func (g *gateway) sendOob(ctx context.Context, req *identitytoolkit.Relyingparty) error {
	req.ContinueUrl = g.continueURL
	if _, err := g.toolkit.GetOobConfirmationCode(ctx, req); err != nil {
		return mapToolkitError(err, "send "+req.RequestType)
	}

	return nil
}

func (g *gateway) assertionRequest(credential *entity.Credential) *identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest {
	return &identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest{
		PostBody:            postBody(credential),
		RequestUri:          g.requestURI,
		ReturnIdpCredential: true,
		ReturnSecureToken:   true,
	}
}

// assert exchanges a provider credential with the platform. A collision with another account
// comes back as NeedConfirmation and is surfaced as a LinkingError.
func (g *gateway) assert(ctx context.Context, req *identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest, credential *entity.Credential) (*entity.AuthResult, error) {
	resp, err := g.toolkit.VerifyAssertion(ctx, req)
	if err != nil {
		return nil, mapToolkitError(err, "verify assertion")
	}

	merged := mergeCredential(credential, resp)
	if resp.NeedConfirmation {
		return nil, errors.WithStack(domainerrors.NewLinkingError(resp.Email, merged))
	}
	if resp.ErrorMessage != "" {
		return nil, errors.Wrap(fromToolkitMessage(resp.ErrorMessage), "verify assertion")
	}

	return g.result(ctx, tokens{uid: resp.LocalId, idToken: resp.IdToken, refreshToken: resp.RefreshToken},
		resp.IsNewUser, merged)
}

// freshIDToken returns an ID token valid long enough for one call, minting a new one from a
// custom token when the stored one is about to expire.
func (g *gateway) freshIDToken(ctx context.Context, session *entity.AuthSession) (string, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(session.IDToken, claims); err == nil &&
		claims.ExpiresAt != nil && claims.ExpiresAt.Sub(g.now()) > idTokenLeeway {
		return session.IDToken, nil
	}

	customToken, err := g.admin.CustomToken(ctx, session.UID)
	if err != nil {
		return "", mapAdminError(err, "mint custom token")
	}
	resp, err := g.toolkit.VerifyCustomToken(ctx, &identitytoolkit.IdentitytoolkitRelyingpartyVerifyCustomTokenRequest{
		Token:             customToken,
		ReturnSecureToken: true,
	})
	if err != nil {
		return "", mapToolkitError(err, "verify custom token")
	}

	session.IDToken = resp.IdToken
	session.RefreshToken = resp.RefreshToken

	return resp.IdToken, nil
}

type tokens struct {
	uid          string
	idToken      string
	refreshToken string
}

func (g *gateway) result(ctx context.Context, t tokens, isNewUser bool, credential *entity.Credential) (*entity.AuthResult, error) {
	record, err := g.admin.GetUser(ctx, t.uid)
	if err != nil {
		return nil, mapAdminError(err, "get user")
	}
	user := toUser(record)

	return &entity.AuthResult{
		User:       user,
		IsNewUser:  isNewUser,
		ProviderID: credential.ProviderID,
		Credential: credential,
		Session: &entity.AuthSession{
			UID:          user.UID,
			Email:        user.Email,
			IDToken:      t.idToken,
			RefreshToken: t.refreshToken,
			SignedInAt:   g.now().UTC(),
		},
	}, nil
}

func requireSession(session *entity.AuthSession) error {
	if session == nil || session.UID == "" {
		return errors.WithStack(domainerrors.ErrNoCurrentUser)
	}

	return nil
}

func passwordCredential(email string) *entity.Credential {
	return &entity.Credential{
		ProviderID:   entity.ProviderIDPassword,
		SignInMethod: entity.ProviderIDPassword,
		Email:        email,
	}
}

func postBody(credential *entity.Credential) string {
	values := url.Values{"providerId": {credential.ProviderID}}
	if credential.IDToken != "" {
		values.Set("id_token", credential.IDToken)
	}
	if credential.AccessToken != "" {
		values.Set("access_token", credential.AccessToken)
	}
	if credential.Secret != "" {
		values.Set("oauth_token_secret", credential.Secret)
	}

	return values.Encode()
}

// mergeCredential prefers the tokens the platform echoed back over the ones sent.
func mergeCredential(credential *entity.Credential, resp *identitytoolkit.VerifyAssertionResponse) *entity.Credential {
	merged := *credential
	if resp.ProviderId != "" {
		merged.ProviderID = resp.ProviderId
		merged.SignInMethod = resp.ProviderId
	}
	if resp.OauthIdToken != "" {
		merged.IDToken = resp.OauthIdToken
	}
	if resp.OauthAccessToken != "" {
		merged.AccessToken = resp.OauthAccessToken
	}
	if resp.OauthTokenSecret != "" {
		merged.Secret = resp.OauthTokenSecret
	}
	if resp.Email != "" {
		merged.Email = resp.Email
	}

	return &merged
}

func toUser(record *auth.UserRecord) *entity.AuthenticatedUser {
	user := &entity.AuthenticatedUser{EmailVerified: record.EmailVerified}
	if record.UserInfo != nil {
		user.UID = record.UID
		user.Email = record.Email
		user.DisplayName = record.DisplayName
		user.PhotoURL = record.PhotoURL
	}

	user.ProviderData = make([]entity.ProviderInfo, 0, len(record.ProviderUserInfo))
	for _, info := range record.ProviderUserInfo {
		if info == nil {
			continue
		}
		user.ProviderData = append(user.ProviderData, entity.ProviderInfo{
			ProviderID:  info.ProviderID,
			UID:         info.UID,
			Email:       info.Email,
			DisplayName: info.DisplayName,
			PhotoURL:    info.PhotoURL,
		})
	}

	return user
}

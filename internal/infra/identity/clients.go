package identity

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/identitytoolkit/v3"
)

// adminClient is the part of the Firebase Admin auth client the gateway uses.
type adminClient interface {
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
	GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error)
	UpdateUser(ctx context.Context, uid string, user *auth.UserToUpdate) (*auth.UserRecord, error)
	DeleteUser(ctx context.Context, uid string) error
	RevokeRefreshTokens(ctx context.Context, uid string) error
	CustomToken(ctx context.Context, uid string) (string, error)
}

// relyingParty is the client-side Identity Toolkit surface: the calls a browser SDK would make.
type relyingParty interface {
	VerifyPassword(ctx context.Context, req *identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest) (*identitytoolkit.VerifyPasswordResponse, error)
	SignupNewUser(ctx context.Context, req *identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest) (*identitytoolkit.SignupNewUserResponse, error)
	VerifyAssertion(ctx context.Context, req *identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest) (*identitytoolkit.VerifyAssertionResponse, error)
	VerifyCustomToken(ctx context.Context, req *identitytoolkit.IdentitytoolkitRelyingpartyVerifyCustomTokenRequest) (*identitytoolkit.VerifyCustomTokenResponse, error)
	GetOobConfirmationCode(ctx context.Context, req *identitytoolkit.Relyingparty) (*identitytoolkit.GetOobConfirmationCodeResponse, error)
}

// toolkitRelyingParty calls the Identity Toolkit v3 REST API with the project's web API key.
type toolkitRelyingParty struct {
	svc *identitytoolkit.Service
}

func (t *toolkitRelyingParty) VerifyPassword(ctx context.Context, req *identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest) (*identitytoolkit.VerifyPasswordResponse, error) {
	return t.svc.Relyingparty.VerifyPassword(req).Context(ctx).Do()
}

func (t *toolkitRelyingParty) SignupNewUser(ctx context.Context, req *identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest) (*identitytoolkit.SignupNewUserResponse, error) {
	return t.svc.Relyingparty.SignupNewUser(req).Context(ctx).Do()
}

func (t *toolkitRelyingParty) VerifyAssertion(ctx context.Context, req *identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest) (*identitytoolkit.VerifyAssertionResponse, error) {
	return t.svc.Relyingparty.VerifyAssertion(req).Context(ctx).Do()
}

func (t *toolkitRelyingParty) VerifyCustomToken(ctx context.Context, req *identitytoolkit.IdentitytoolkitRelyingpartyVerifyCustomTokenRequest) (*identitytoolkit.VerifyCustomTokenResponse, error) {
	return t.svc.Relyingparty.VerifyCustomToken(req).Context(ctx).Do()
}

func (t *toolkitRelyingParty) GetOobConfirmationCode(ctx context.Context, req *identitytoolkit.Relyingparty) (*identitytoolkit.GetOobConfirmationCodeResponse, error) {
	return t.svc.Relyingparty.GetOobConfirmationCode(req).Context(ctx).Do()
}

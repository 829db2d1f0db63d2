// Package secrets seals redirect state with a Go CDK secrets keeper.
package secrets

import (
	"context"
	"log/slog"

	"firelink/config"
	"firelink/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/secrets"
	"gocloud.dev/secrets/localsecrets"
)

// Params defines the parameters required for the sealer
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type keeperSealer struct {
	keeper *secrets.Keeper
}

// NewKeeperSealer wraps an existing keeper.
func NewKeeperSealer(keeper *secrets.Keeper) service.Sealer {
	return &keeperSealer{keeper: keeper}
}

// New opens the keeper named by the configured URL. Without a URL the sealer uses a random key,
// so sealed state does not survive a restart.
func New(params Params) (service.Sealer, error) {
	var (
		keeper *secrets.Keeper
		err    error
	)

	if params.Config.Secrets != nil && params.Config.Secrets.KeeperURL != "" {
		keeper, err = secrets.OpenKeeper(params.Ctx, params.Config.Secrets.KeeperURL)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open secrets keeper")
		}
	} else {
		key, err := localsecrets.NewRandomKey()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate sealing key")
		}
		params.Logger.Warn("No secrets keeper configured, sealing redirect state with an ephemeral key")
		keeper = localsecrets.NewKeeper(key)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(keeper.Close())
		},
	})

	return NewKeeperSealer(keeper), nil
}

func (s *keeperSealer) Seal(ctx context.Context, plaintext []byte) ([]byte, error) {
	ciphertext, err := s.keeper.Encrypt(ctx, plaintext)
	if err != nil {
		return nil, errors.Wrap(err, "failed to seal")
	}

	return ciphertext, nil
}

func (s *keeperSealer) Open(ctx context.Context, ciphertext []byte) ([]byte, error) {
	plaintext, err := s.keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sealed value")
	}

	return plaintext, nil
}

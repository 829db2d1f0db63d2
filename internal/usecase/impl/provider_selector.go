package impl

import (
	"context"
	"fmt"
	"log/slog"

	"firelink/internal/domain/entity"
	domainerrors "firelink/internal/domain/errors"
	"firelink/internal/domain/service"
	"firelink/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderSelectorParams holds dependencies for the provider selector, injected by Fx.
type ProviderSelectorParams struct {
	fx.In

	Prompter service.Prompter
	Logger   *slog.Logger
}

type providerSelector struct {
	prompter service.Prompter
	validate *validator.Validate
	logger   *slog.Logger
}

// NewProviderSelector is the constructor for the provider selector.
func NewProviderSelector(params ProviderSelectorParams) usecase.ProviderSelector {
	return &providerSelector{
		prompter: params.Prompter,
		validate: validator.New(),
		logger:   params.Logger,
	}
}

// SelectProvider prompts until the user submits a valid selection or cancels.
func (s *providerSelector) SelectProvider(
	ctx context.Context,
	methods entity.Providers,
	email string,
	pendingProvider, trustedProvider entity.Provider,
) (*entity.ProviderSelection, error) {
	choice := BuildProviderChoice(methods, email, pendingProvider, trustedProvider)

	selection, err := s.prompter.Prompt(ctx, choice, func(selection *entity.ProviderSelection) error {
		return s.validateSelection(choice, selection)
	})
	if err != nil {
		return nil, errors.Wrap(err, "provider prompt failed")
	}

	return selection, nil
}

// BuildProviderChoice lists the registered providers of email. When trustedProvider is among
// them, every other option is disabled.
func BuildProviderChoice(methods entity.Providers, email string, pendingProvider, trustedProvider entity.Provider) *entity.ProviderChoice {
	locked := trustedProvider != "" && methods.Contains(trustedProvider)

	choice := &entity.ProviderChoice{
		Email:           email,
		PendingProvider: pendingProvider,
		TrustedProvider: trustedProvider,
		Locked:          locked,
	}

	seen := make(map[entity.Provider]struct{}, len(methods))
	for _, method := range methods {
		if _, dup := seen[method]; dup {
			continue
		}
		seen[method] = struct{}{}

		choice.Methods = append(choice.Methods, method)
		choice.Options = append(choice.Options, entity.ProviderOption{
			Provider: method,
			Disabled: locked && method != trustedProvider,
		})
	}

	if locked {
		choice.Message = fmt.Sprintf("This account is registered with %s. Sign in with %s to link %s.",
			trustedProvider, trustedProvider, pendingProvider)
	}

	return choice
}

func (s *providerSelector) validateSelection(choice *entity.ProviderChoice, selection *entity.ProviderSelection) error {
	if selection == nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("a provider must be selected"))
	}

	if err := s.validate.Struct(selection); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			switch validationErrs[0].Field() {
			case "LinkProvider":
				return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("a provider must be selected"))
			case "Password":
				return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("a password is required"))
			}
		}

		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	if !choice.Methods.Contains(selection.LinkProvider) {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("%s is not registered for this account", selection.LinkProvider)))
	}

	if choice.Locked && selection.LinkProvider != choice.TrustedProvider {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("only %s can be used for this account", choice.TrustedProvider)))
	}

	return nil
}

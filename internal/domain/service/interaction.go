package service

import (
	"context"

	"firelink/internal/domain/entity"
)

// SelectionValidator rejects a selection the prompt must not accept.
type SelectionValidator func(selection *entity.ProviderSelection) error

// Prompter asks the user to pick a provider. It blocks until the user answers and returns
// nil, nil when the user cancels. Invalid answers are re-prompted with the validator's message.
type Prompter interface {
	Prompt(ctx context.Context, choice *entity.ProviderChoice, validate SelectionValidator) (*entity.ProviderSelection, error)
}

// Navigator sends the user agent to url. After Navigate returns the current flow must not
// touch the redirect state again.
type Navigator interface {
	Navigate(ctx context.Context, url string) error
}

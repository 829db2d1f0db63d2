package entity

// ProviderOption is one selectable row of the provider prompt.
type ProviderOption struct {
	Provider Provider `json:"provider"`
	Disabled bool     `json:"disabled"`
}

// ProviderChoice is what the user is asked to choose from.
type ProviderChoice struct {
	Email           string           `json:"email"`
	Methods         Providers        `json:"methods"`
	PendingProvider Provider         `json:"pendingProvider"`
	TrustedProvider Provider         `json:"trustedProvider,omitempty"`
	Locked          bool             `json:"locked"`
	Options         []ProviderOption `json:"options"`
	Message         string           `json:"message,omitempty"`
}

// ProviderSelection is the user's answer to a ProviderChoice.
type ProviderSelection struct {
	LinkProvider Provider `json:"linkProvider" validate:"required"`
	Password     string   `json:"password,omitempty" validate:"required_if=LinkProvider Password"`
}

package service

// FlowMetrics records the outcome of auth flows.
type FlowMetrics interface {
	// LinkOutcome counts one finished linking attempt.
	LinkOutcome(outcome string)

	// PasswordAttempts observes how many password attempts a linking attempt used.
	PasswordAttempts(attempts int)

	// RedirectCompletion counts one processed provider callback.
	RedirectCompletion(outcome string)

	// Rollback counts an account deleted because it was created unintentionally.
	Rollback(reason string)
}

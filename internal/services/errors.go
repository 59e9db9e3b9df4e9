package services

import "fmt"

// PreconditionError means the user has too little tracked data for the
// requested analysis. Never retried.
type PreconditionError struct {
	OffersCount int
	Required    int
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("at least %d analysed job offers are required for a career analysis, currently %d", e.Required, e.OffersCount)
}

// ValidationError means the caller supplied malformed parameters. Surfaced
// immediately, before any model call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// ParsingError means the model output never converged to valid structured
// data within the retry budget. Carries truncated excerpts for diagnostics.
type ParsingError struct {
	Attempts         int
	RawExcerpt       string
	CandidateExcerpt string
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("model response could not be parsed after %d attempts", e.Attempts)
}

// ProviderError wraps a transport or quota failure from the model provider.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("model provider failure: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

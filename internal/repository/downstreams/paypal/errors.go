package paypal

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthFailure means the credential exchange with the provider was
	// rejected or returned an unusable body.
	ErrAuthFailure = errors.New("provider credential exchange failed")

	// ErrDecodeFailure means a provider response body was not valid json
	// where json was expected.
	ErrDecodeFailure = errors.New("provider response could not be decoded")
)

// ProviderError carries a non-success response from the provider through to
// the caller. The status and body are passed on largely as-is, the caller
// needs the provider's own error code and message for diagnostics.
type ProviderError struct {
	Operation string
	Status    int
	Body      []byte
}

var _ error = (*ProviderError)(nil)

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider rejected %s with status %d", e.Operation, e.Status)
}

// IsUpstreamError reports whether err is a credential exchange or decode
// failure, both of which the caller should treat as a bad gateway.
func IsUpstreamError(err error) bool {
	return errors.Is(err, ErrAuthFailure) || errors.Is(err, ErrDecodeFailure)
}

// AsProviderError returns the ProviderError wrapped in err, or nil.
func AsProviderError(err error) *ProviderError {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr
	}
	return nil
}

package paypal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"
)

const tokenPath = "/v1/oauth2/token"

// credential is the current provider access token. Owned by the gateway,
// mutated only by a successful refresh.
type credential struct {
	accessToken string
	tokenType   string
	scope       string
	expiresAt   time.Time
}

// usableAt is a strict comparison, a credential expiring right now is expired.
// There is no grace skew.
func (c credential) usableAt(t time.Time) bool {
	return c.accessToken != "" && t.Before(c.expiresAt)
}

// validToken returns the cached access token, refreshing it through a
// client credentials exchange first if absent or expired. The mutex serializes
// the check-and-refresh sequence, so concurrent callers hitting an expired
// credential trigger a single token exchange rather than one each.
func (i *Impl) validToken(ctx context.Context) (string, error) {
	i.credMu.Lock()
	defer i.credMu.Unlock()

	if i.cred.usableAt(i.now()) {
		return i.cred.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	// **[]byte requests the raw response body instead of json unmarshalling
	var raw *[]byte
	response := aurestclientapi.ParsedResponse{
		Body: &raw,
	}
	if err := i.authClient.Perform(ctx, http.MethodPost, i.baseUrl+tokenPath, form, &response); err != nil {
		return "", fmt.Errorf("%w: %s", ErrAuthFailure, err.Error())
	}
	if response.Status != http.StatusOK {
		return "", fmt.Errorf("%w: token endpoint returned status %d", ErrAuthFailure, response.Status)
	}

	var responseBody []byte
	if raw != nil {
		responseBody = *raw
	}

	auth := authResponse{}
	if err := json.Unmarshal(responseBody, &auth); err != nil {
		return "", fmt.Errorf("%w: token response was not valid json: %s", ErrAuthFailure, err.Error())
	}
	if auth.AccessToken == "" {
		return "", fmt.Errorf("%w: token response contained no access token", ErrAuthFailure)
	}

	i.cred = credential{
		accessToken: auth.AccessToken,
		tokenType:   auth.TokenType,
		scope:       auth.Scope,
		expiresAt:   i.now().Add(time.Duration(auth.ExpiresIn) * time.Second),
	}

	return i.cred.accessToken, nil
}

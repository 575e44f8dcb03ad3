package downstreams

import (
	"context"
	"net/http"
	"time"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"
	auresthttpclient "github.com/StephanHCB/go-autumn-restclient/implementation/httpclient"
	aurestlogging "github.com/StephanHCB/go-autumn-restclient/implementation/requestlogging"
	"github.com/go-http-utils/headers"

	aurestbreaker "github.com/StephanHCB/go-autumn-restclient-circuitbreaker/implementation/breaker"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/eurofurence/reg-paypal-adapter/internal/common"
)

type ctxKeyAccessToken struct{}

// ContextWithAccessToken stores the bearer token for the outbound call in the
// context, where the request manipulator picks it up.
func ContextWithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKeyAccessToken{}, token)
}

func requestIDFromContext(ctx context.Context) string {
	if reqID, ok := ctx.Value(common.CtxKeyRequestID{}).(string); ok {
		return reqID
	}

	return "ffffffff"
}

// BasicAuthRequestManipulator authenticates requests with fixed client
// credentials, as required by the provider's token endpoint.
func BasicAuthRequestManipulator(clientID string, clientSecret string) aurestclientapi.RequestManipulatorCallback {
	return func(ctx context.Context, r *http.Request) {
		r.SetBasicAuth(clientID, clientSecret)
		r.Header.Add(chimiddleware.RequestIDHeader, requestIDFromContext(ctx))
	}
}

// AccessTokenRequestManipulator attaches the bearer token previously stored in
// the context via ContextWithAccessToken.
func AccessTokenRequestManipulator() aurestclientapi.RequestManipulatorCallback {
	return func(ctx context.Context, r *http.Request) {
		if token, ok := ctx.Value(ctxKeyAccessToken{}).(string); ok && token != "" {
			r.Header.Add(headers.Authorization, "Bearer "+token)
		}
		r.Header.Add(chimiddleware.RequestIDHeader, requestIDFromContext(ctx))
	}
}

func ClientWith(requestManipulator aurestclientapi.RequestManipulatorCallback, clientName string, requestTimeout time.Duration) (aurestclientapi.Client, error) {
	httpClient, err := auresthttpclient.New(0, nil, requestManipulator)
	if err != nil {
		return nil, err
	}

	requestLoggingClient := aurestlogging.New(httpClient)

	requestMetricsClient := NewMetricsWrapper(requestLoggingClient, clientName)

	circuitBreakerClient := aurestbreaker.New(requestMetricsClient,
		clientName+"-breaker",
		10,
		2*time.Minute,
		30*time.Second,
		requestTimeout,
	)

	return circuitBreakerClient, nil
}

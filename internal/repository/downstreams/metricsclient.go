package downstreams

import (
	"context"
	"time"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"

	"github.com/eurofurence/reg-paypal-adapter/internal/metrics"
)

// MetricsClientImpl records a counter and a duration observation for every
// downstream call, labeled with the client name.
type MetricsClientImpl struct {
	Wrapped    aurestclientapi.Client
	ClientName string
}

func NewMetricsWrapper(wrapped aurestclientapi.Client, clientName string) aurestclientapi.Client {
	return &MetricsClientImpl{
		Wrapped:    wrapped,
		ClientName: clientName,
	}
}

func (c *MetricsClientImpl) Perform(ctx context.Context, method string, requestUrl string, requestBody interface{}, response *aurestclientapi.ParsedResponse) error {
	before := time.Now()
	err := c.Wrapped.Perform(ctx, method, requestUrl, requestBody, response)
	metrics.ObserveDownstream(c.ClientName, method, response.Status, time.Since(before).Seconds())
	return err
}

package paypal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"

	"github.com/eurofurence/reg-paypal-adapter/internal/config"
	"github.com/eurofurence/reg-paypal-adapter/internal/entities"
	"github.com/eurofurence/reg-paypal-adapter/internal/repository/downstreams"
)

const (
	sandboxBaseUrl = "https://api-m.sandbox.paypal.com"
	liveBaseUrl    = "https://api-m.paypal.com"
)

type Impl struct {
	apiClient  aurestclientapi.Client
	authClient aurestclientapi.Client
	baseUrl    string
	brandName  string

	credMu sync.Mutex
	cred   credential
	now    func() time.Time
}

var _ Paypal = (*Impl)(nil)

func New(conf *config.PaypalConfig) (Paypal, error) {
	if conf == nil || conf.ClientID == "" || conf.ClientSecret == "" {
		return nil, errors.New("paypal.client_id and paypal.client_secret not configured. This service cannot function without provider credentials")
	}

	baseUrl := sandboxBaseUrl
	if conf.Mode == config.ModeLive {
		baseUrl = liveBaseUrl
	}

	return newWithBaseUrl(conf, baseUrl)
}

func newWithBaseUrl(conf *config.PaypalConfig, baseUrl string) (*Impl, error) {
	requestTimeout := time.Duration(conf.RequestTimeout) * time.Second

	authClient, err := downstreams.ClientWith(
		downstreams.BasicAuthRequestManipulator(conf.ClientID, conf.ClientSecret),
		"paypal-auth",
		requestTimeout,
	)
	if err != nil {
		return nil, err
	}

	apiClient, err := downstreams.ClientWith(
		downstreams.AccessTokenRequestManipulator(),
		"paypal-api",
		requestTimeout,
	)
	if err != nil {
		return nil, err
	}

	return &Impl{
		apiClient:  apiClient,
		authClient: authClient,
		baseUrl:    baseUrl,
		brandName:  conf.BrandName,
		now:        time.Now,
	}, nil
}

func (i *Impl) CreateOrder(ctx context.Context, order *entities.OrderRequest) (*entities.Order, error) {
	payload, err := encodeCreateOrder(order, i.brandName)
	if err != nil {
		return nil, err
	}

	body, err := i.perform(ctx, http.MethodPost, i.baseUrl+"/v2/checkout/orders", string(payload), "create order")
	if err != nil {
		return nil, err
	}

	return decodeOrder(body)
}

func (i *Impl) GetOrderStatus(ctx context.Context, orderID string) (*entities.Order, error) {
	url := fmt.Sprintf("%s/v2/checkout/orders/%s", i.baseUrl, orderID)
	body, err := i.perform(ctx, http.MethodGet, url, "", "order status")
	if err != nil {
		return nil, err
	}

	return decodeOrder(body)
}

func (i *Impl) CaptureOrder(ctx context.Context, orderID string) (*entities.OrderCapture, error) {
	url := fmt.Sprintf("%s/v2/checkout/orders/%s/capture", i.baseUrl, orderID)
	body, err := i.perform(ctx, http.MethodPost, url, "{}", "capture order")
	if err != nil {
		return nil, err
	}

	return decodeOrderCapture(body)
}

func (i *Impl) GetCaptureStatus(ctx context.Context, captureID string) (*entities.CaptureResult, error) {
	url := fmt.Sprintf("%s/v2/payments/captures/%s", i.baseUrl, captureID)
	body, err := i.perform(ctx, http.MethodGet, url, "", "capture status")
	if err != nil {
		return nil, err
	}

	return decodeCapture(body)
}

func (i *Impl) RefundCapture(ctx context.Context, refund *entities.RefundRequest) (*entities.RefundResult, error) {
	payload, err := encodeRefund(refund.Amount, refund.CurrencyCode)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v2/payments/captures/%s/refund", i.baseUrl, refund.CaptureID)
	body, err := i.perform(ctx, http.MethodPost, url, string(payload), "refund capture")
	if err != nil {
		return nil, err
	}

	return decodeRefund(body)
}

func (i *Impl) GetRefundStatus(ctx context.Context, refundID string) (*entities.RefundResult, error) {
	url := fmt.Sprintf("%s/v2/payments/refunds/%s", i.baseUrl, refundID)
	body, err := i.perform(ctx, http.MethodGet, url, "", "refund status")
	if err != nil {
		return nil, err
	}

	return decodeRefund(body)
}

func (i *Impl) ListTransactions(ctx context.Context, query *entities.TransactionReportQuery) ([]entities.TransactionRecord, error) {
	url := i.baseUrl + buildTransactionReportQuery(query)
	body, err := i.perform(ctx, http.MethodGet, url, "", "transaction report")
	if err != nil {
		return nil, err
	}

	return decodeTransactionList(body)
}

// perform obtains a valid bearer token, issues the call with the raw response
// body captured, and turns every non-success status into a *ProviderError.
// requestBody is passed through as-is when non-empty, it must already be json.
func (i *Impl) perform(ctx context.Context, method string, requestUrl string, requestBody string, operation string) ([]byte, error) {
	token, err := i.validToken(ctx)
	if err != nil {
		return nil, err
	}
	ctx = downstreams.ContextWithAccessToken(ctx, token)

	// **[]byte requests the raw response body instead of json unmarshalling
	var raw *[]byte
	response := aurestclientapi.ParsedResponse{
		Body: &raw,
	}

	var body interface{}
	if requestBody != "" {
		body = requestBody
	}

	if err := i.apiClient.Perform(ctx, method, requestUrl, body, &response); err != nil {
		return nil, err
	}

	var responseBody []byte
	if raw != nil {
		responseBody = *raw
	}

	if response.Status < 200 || response.Status >= 300 {
		return nil, &ProviderError{
			Operation: operation,
			Status:    response.Status,
			Body:      responseBody,
		}
	}

	return responseBody, nil
}

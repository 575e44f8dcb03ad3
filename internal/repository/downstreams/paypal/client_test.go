package paypal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eurofurence/reg-paypal-adapter/internal/config"
	"github.com/eurofurence/reg-paypal-adapter/internal/entities"
)

// providerStub serves the token endpoint plus one canned operation response
// and records what the gateway sent.
type providerStub struct {
	t *testing.T

	operationPath   string
	operationStatus int
	operationBody   string

	receivedMethod string
	receivedPath   string
	receivedQuery  string
	receivedBody   []byte
}

func (s *providerStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == tokenPath {
		fmt.Fprint(w, `{"access_token":"A-1","token_type":"Bearer","expires_in":3600,"scope":"test"}`)
		return
	}

	// every operation call carries the bearer token from the credential cache
	require.Equal(s.t, "Bearer A-1", r.Header.Get("Authorization"))

	s.receivedMethod = r.Method
	s.receivedPath = r.URL.Path
	s.receivedQuery = r.URL.RawQuery
	body, err := io.ReadAll(r.Body)
	require.NoError(s.t, err)
	s.receivedBody = body

	require.Equal(s.t, s.operationPath, r.URL.Path)

	if s.operationStatus != 0 {
		w.WriteHeader(s.operationStatus)
	}
	fmt.Fprint(w, s.operationBody)
}

func setupProvider(t *testing.T, operationPath string, status int, body string) (*providerStub, *Impl, func()) {
	stub := &providerStub{
		t:               t,
		operationPath:   operationPath,
		operationStatus: status,
		operationBody:   body,
	}
	srv := httptest.NewServer(stub)

	gateway := newTestGateway(t, srv.URL)

	return stub, gateway, srv.Close
}

func TestCreateOrder(t *testing.T) {
	stub, gateway, closeFunc := setupProvider(t, "/v2/checkout/orders", http.StatusCreated,
		`{"id":"O-1","status":"CREATED","links":[{"href":"https://approve","rel":"approve","method":"GET"}]}`)
	defer closeFunc()

	order, err := gateway.CreateOrder(context.Background(), &entities.OrderRequest{
		ReferenceID: "ORD-1",
		Amount:      entities.Amount{CurrencyCode: "USD", Value: "25.00"},
		ReturnURL:   "https://x/ret",
		CancelURL:   "https://x/can",
	})
	require.NoError(t, err)

	require.Equal(t, "O-1", order.ID)
	require.Equal(t, entities.OrderStatusCreated, order.Status)
	require.Len(t, order.Links, 1)
	require.Equal(t, "approve", order.Links[0].Relation)

	require.Equal(t, http.MethodPost, stub.receivedMethod)

	sent := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(stub.receivedBody, &sent))
	require.Equal(t, "CAPTURE", sent["intent"])
	units := sent["purchase_units"].([]interface{})
	require.Len(t, units, 1)
	unit := units[0].(map[string]interface{})
	require.Equal(t, "ORD-1", unit["reference_id"])
	amount := unit["amount"].(map[string]interface{})
	require.Equal(t, "25.00", amount["value"])
	require.Equal(t, "USD", amount["currency_code"])
}

func TestGetOrderStatus(t *testing.T) {
	stub, gateway, closeFunc := setupProvider(t, "/v2/checkout/orders/O-7", 0,
		`{"id":"O-7","status":"APPROVED"}`)
	defer closeFunc()

	order, err := gateway.GetOrderStatus(context.Background(), "O-7")
	require.NoError(t, err)
	require.Equal(t, entities.OrderStatusApproved, order.Status)
	require.Equal(t, http.MethodGet, stub.receivedMethod)
}

func TestCaptureOrder(t *testing.T) {
	stub, gateway, closeFunc := setupProvider(t, "/v2/checkout/orders/O-7/capture", http.StatusCreated,
		`{"id":"O-7","status":"COMPLETED","purchase_units":[{"reference_id":"ORD-7","payments":{"captures":[{"id":"C-7","status":"COMPLETED"}]}}]}`)
	defer closeFunc()

	capture, err := gateway.CaptureOrder(context.Background(), "O-7")
	require.NoError(t, err)
	require.Equal(t, entities.OrderStatusCompleted, capture.Status)
	require.Len(t, capture.Units, 1)
	require.Equal(t, "C-7", capture.Units[0].Captures[0].ID)
	require.Equal(t, http.MethodPost, stub.receivedMethod)
}

func TestRefundCaptureFullRefundPayload(t *testing.T) {
	stub, gateway, closeFunc := setupProvider(t, "/v2/payments/captures/C-7/refund", http.StatusCreated,
		`{"id":"R-7","status":"COMPLETED"}`)
	defer closeFunc()

	refund, err := gateway.RefundCapture(context.Background(), &entities.RefundRequest{
		CaptureID:    "C-7",
		CurrencyCode: "USD",
	})
	require.NoError(t, err)
	require.Equal(t, "R-7", refund.ID)

	// a full refund sends an empty object, not an empty amount
	require.Equal(t, `{}`, string(stub.receivedBody))
}

func TestListTransactionsNullDetails(t *testing.T) {
	stub, gateway, closeFunc := setupProvider(t, transactionReportPath, 0,
		`{"transaction_details": null}`)
	defer closeFunc()

	query := datesOnlyQuery()
	records, err := gateway.ListTransactions(context.Background(), &query)
	require.NoError(t, err)
	require.NotNil(t, records)
	require.Empty(t, records)

	require.Contains(t, stub.receivedQuery, "start_date=2024-03-01T00:00:00Z")
	require.Contains(t, stub.receivedQuery, "page_size=100&page=1")
}

func TestGetCaptureStatusProviderError(t *testing.T) {
	errorBody := `{"name":"RESOURCE_NOT_FOUND","message":"The specified resource does not exist."}`
	_, gateway, closeFunc := setupProvider(t, "/v2/payments/captures/C-404", http.StatusNotFound, errorBody)
	defer closeFunc()

	_, err := gateway.GetCaptureStatus(context.Background(), "C-404")
	require.Error(t, err)

	// provider failures pass through with the provider's own status and body
	providerErr := AsProviderError(err)
	require.NotNil(t, providerErr)
	require.Equal(t, http.StatusNotFound, providerErr.Status)
	require.JSONEq(t, errorBody, string(providerErr.Body))
}

func TestGetOrderStatusProviderErrorEmptyBody(t *testing.T) {
	_, gateway, closeFunc := setupProvider(t, "/v2/checkout/orders/O-503", http.StatusServiceUnavailable, "")
	defer closeFunc()

	_, err := gateway.GetOrderStatus(context.Background(), "O-503")
	require.Error(t, err)

	providerErr := AsProviderError(err)
	require.NotNil(t, providerErr)
	require.Equal(t, http.StatusServiceUnavailable, providerErr.Status)
	require.Empty(t, providerErr.Body)
}

func TestGetRefundStatus(t *testing.T) {
	_, gateway, closeFunc := setupProvider(t, "/v2/payments/refunds/R-9", 0,
		`{"id":"R-9","status":"PENDING","amount":{"currency_code":"EUR","value":"3.50"}}`)
	defer closeFunc()

	refund, err := gateway.GetRefundStatus(context.Background(), "R-9")
	require.NoError(t, err)
	require.Equal(t, entities.RefundStatusPending, refund.Status)
	require.Equal(t, "3.50", refund.Amount)
	require.Equal(t, "EUR", refund.Currency)
}

func TestNewRequiresCredentials(t *testing.T) {
	_, err := New(&config.PaypalConfig{Mode: config.ModeSandbox})
	require.Error(t, err)
}

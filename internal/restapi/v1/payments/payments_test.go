package v1payments

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/eurofurence/reg-paypal-adapter/internal/apierrors"
	"github.com/eurofurence/reg-paypal-adapter/internal/entities"
	"github.com/eurofurence/reg-paypal-adapter/internal/repository/downstreams/paypal"
)

type mockInteractor struct {
	createOrderFunc      func(ctx context.Context, order *entities.OrderRequest) (*entities.Order, error)
	getOrderStatusFunc   func(ctx context.Context, orderID string) (*entities.Order, error)
	captureOrderFunc     func(ctx context.Context, orderID string) (*entities.OrderCapture, error)
	getCaptureStatusFunc func(ctx context.Context, captureID string) (*entities.CaptureResult, error)
	refundCaptureFunc    func(ctx context.Context, refund *entities.RefundRequest) (*entities.RefundResult, error)
	getRefundStatusFunc  func(ctx context.Context, refundID string) (*entities.RefundResult, error)
	listTransactionsFunc func(ctx context.Context, query *entities.TransactionReportQuery) ([]entities.TransactionRecord, error)
}

func (m *mockInteractor) CreateOrder(ctx context.Context, order *entities.OrderRequest) (*entities.Order, error) {
	return m.createOrderFunc(ctx, order)
}

func (m *mockInteractor) GetOrderStatus(ctx context.Context, orderID string) (*entities.Order, error) {
	return m.getOrderStatusFunc(ctx, orderID)
}

func (m *mockInteractor) CaptureOrder(ctx context.Context, orderID string) (*entities.OrderCapture, error) {
	return m.captureOrderFunc(ctx, orderID)
}

func (m *mockInteractor) GetCaptureStatus(ctx context.Context, captureID string) (*entities.CaptureResult, error) {
	return m.getCaptureStatusFunc(ctx, captureID)
}

func (m *mockInteractor) RefundCapture(ctx context.Context, refund *entities.RefundRequest) (*entities.RefundResult, error) {
	return m.refundCaptureFunc(ctx, refund)
}

func (m *mockInteractor) GetRefundStatus(ctx context.Context, refundID string) (*entities.RefundResult, error) {
	return m.getRefundStatusFunc(ctx, refundID)
}

func (m *mockInteractor) ListTransactions(ctx context.Context, query *entities.TransactionReportQuery) ([]entities.TransactionRecord, error) {
	return m.listTransactionsFunc(ctx, query)
}

func newTestServer(t *testing.T, mock *mockInteractor) *httptest.Server {
	t.Helper()

	router := chi.NewRouter()
	Create(router, mock)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

func doRequest(t *testing.T, method string, url string, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(body)
}

func TestCreateOrderEndpoint(t *testing.T) {
	mock := &mockInteractor{
		createOrderFunc: func(ctx context.Context, order *entities.OrderRequest) (*entities.Order, error) {
			require.Equal(t, "ORD-1", order.ReferenceID)
			require.Equal(t, "25.00", order.Amount.Value)
			require.Equal(t, "USD", order.Amount.CurrencyCode)
			require.Equal(t, "https://x/ret", order.ReturnURL)
			require.Equal(t, "https://x/can", order.CancelURL)

			return &entities.Order{
				ID:     "O-1",
				Status: entities.OrderStatusCreated,
				Links: []entities.Link{
					{Href: "https://approve", Relation: "approve", Method: "GET"},
				},
			}, nil
		},
	}
	srv := newTestServer(t, mock)

	resp := doRequest(t, http.MethodPost, srv.URL+"/orders",
		`{"value":"25.00","currency":"USD","reference":"ORD-1","returnUrl":"https://x/ret","cancelUrl":"https://x/can"}`)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.JSONEq(t,
		`{"id":"O-1","status":"CREATED","links":[{"href":"https://approve","relation":"approve","method":"GET"}]}`,
		readBody(t, resp))
}

func TestCreateOrderEndpoint_ParseFailure(t *testing.T) {
	srv := newTestServer(t, &mockInteractor{})

	resp := doRequest(t, http.MethodPost, srv.URL+"/orders", `{"value":`)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, readBody(t, resp), "request.parse.failed")
}

func TestCreateOrderEndpoint_ForbiddenCurrency(t *testing.T) {
	mock := &mockInteractor{
		createOrderFunc: func(ctx context.Context, order *entities.OrderRequest) (*entities.Order, error) {
			return nil, apierrors.NewForbidden("currency JPY is not allowed")
		},
	}
	srv := newTestServer(t, mock)

	resp := doRequest(t, http.MethodPost, srv.URL+"/orders",
		`{"value":"100","currency":"JPY","reference":"ORD-2"}`)

	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Contains(t, readBody(t, resp), "auth.forbidden")
}

func TestGetOrderStatusEndpoint(t *testing.T) {
	mock := &mockInteractor{
		getOrderStatusFunc: func(ctx context.Context, orderID string) (*entities.Order, error) {
			require.Equal(t, "O-77", orderID)

			return &entities.Order{
				ID:     "O-77",
				Status: entities.OrderStatusApproved,
				Units: []entities.PurchaseUnit{
					{ReferenceID: "ORD-1", Amount: entities.Amount{CurrencyCode: "EUR", Value: "30.00"}},
				},
			}, nil
		},
	}
	srv := newTestServer(t, mock)

	resp := doRequest(t, http.MethodGet, srv.URL+"/orders/O-77", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t,
		`{"id":"O-77","status":"APPROVED","purchaseUnits":[{"referenceId":"ORD-1","amount":{"currencyCode":"EUR","value":"30.00"}}],"links":[]}`,
		readBody(t, resp))
}

func TestCaptureOrderEndpoint(t *testing.T) {
	mock := &mockInteractor{
		captureOrderFunc: func(ctx context.Context, orderID string) (*entities.OrderCapture, error) {
			require.Equal(t, "O-77", orderID)

			return &entities.OrderCapture{
				ID:     "O-77",
				Status: entities.OrderStatusCompleted,
				Units: []entities.CapturedUnit{
					{
						ReferenceID: "ORD-1",
						Captures: []entities.Capture{
							{
								ID:           "C-1",
								Status:       entities.CaptureStatusCompleted,
								Amount:       entities.Amount{CurrencyCode: "EUR", Value: "30.00"},
								FinalCapture: true,
							},
						},
					},
				},
			}, nil
		},
	}
	srv := newTestServer(t, mock)

	resp := doRequest(t, http.MethodPost, srv.URL+"/orders/O-77/capture", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t,
		`{"id":"O-77","status":"COMPLETED","purchaseUnits":[{"referenceId":"ORD-1","captures":[{"id":"C-1","status":"COMPLETED","amount":{"currencyCode":"EUR","value":"30.00"},"finalCapture":true}]}],"links":[]}`,
		readBody(t, resp))
}

func TestRefundCaptureEndpoint_FullRefundWithoutBody(t *testing.T) {
	mock := &mockInteractor{
		refundCaptureFunc: func(ctx context.Context, refund *entities.RefundRequest) (*entities.RefundResult, error) {
			require.Equal(t, "C-9", refund.CaptureID)
			require.Empty(t, refund.Amount)
			require.Empty(t, refund.CurrencyCode)

			return &entities.RefundResult{
				ID:     "R-1",
				Status: entities.RefundStatusCompleted,
			}, nil
		},
	}
	srv := newTestServer(t, mock)

	resp := doRequest(t, http.MethodPost, srv.URL+"/captures/C-9/refund", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"id":"R-1","status":"COMPLETED","amount":"","currency":""}`, readBody(t, resp))
}

func TestRefundCaptureEndpoint_PartialRefund(t *testing.T) {
	mock := &mockInteractor{
		refundCaptureFunc: func(ctx context.Context, refund *entities.RefundRequest) (*entities.RefundResult, error) {
			require.Equal(t, "C-9", refund.CaptureID)
			require.Equal(t, "10.00", refund.Amount)
			require.Equal(t, "USD", refund.CurrencyCode)

			return &entities.RefundResult{
				ID:       "R-2",
				Status:   entities.RefundStatusPending,
				Amount:   "10.00",
				Currency: "USD",
			}, nil
		},
	}
	srv := newTestServer(t, mock)

	resp := doRequest(t, http.MethodPost, srv.URL+"/captures/C-9/refund",
		`{"refundAmount":"10.00","currencyCode":"USD"}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"id":"R-2","status":"PENDING","amount":"10.00","currency":"USD"}`, readBody(t, resp))
}

func TestGetCaptureStatusEndpoint_ProviderErrorPassthrough(t *testing.T) {
	mock := &mockInteractor{
		getCaptureStatusFunc: func(ctx context.Context, captureID string) (*entities.CaptureResult, error) {
			return nil, &paypal.ProviderError{
				Operation: "capture status",
				Status:    http.StatusNotFound,
				Body:      []byte(`{"name":"RESOURCE_NOT_FOUND","message":"The specified resource does not exist."}`),
			}
		},
	}
	srv := newTestServer(t, mock)

	resp := doRequest(t, http.MethodGet, srv.URL+"/captures/C-404", "")

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.JSONEq(t,
		`{"name":"RESOURCE_NOT_FOUND","message":"The specified resource does not exist."}`,
		readBody(t, resp))
}

func TestGetRefundStatusEndpoint_UpstreamAuthFailure(t *testing.T) {
	mock := &mockInteractor{
		getRefundStatusFunc: func(ctx context.Context, refundID string) (*entities.RefundResult, error) {
			return nil, fmt.Errorf("%w: status 401", paypal.ErrAuthFailure)
		},
	}
	srv := newTestServer(t, mock)

	resp := doRequest(t, http.MethodGet, srv.URL+"/refunds/R-1", "")

	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	require.Contains(t, readBody(t, resp), "upstream.unavailable")
}

func TestListTransactionsEndpoint_AppliesDefaults(t *testing.T) {
	mock := &mockInteractor{
		listTransactionsFunc: func(ctx context.Context, query *entities.TransactionReportQuery) ([]entities.TransactionRecord, error) {
			require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), query.StartDate)
			require.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), query.EndDate)
			require.Equal(t, "transaction_info", query.Fields)
			require.Equal(t, "y", query.BalanceAffectingRecordsOnly)
			require.Equal(t, 100, query.PageSize)
			require.Equal(t, 1, query.Page)

			return []entities.TransactionRecord{
				{
					TransactionID:     "T-1",
					TransactionStatus: "S",
					Amount:            entities.Amount{CurrencyCode: "EUR", Value: "12.00"},
					TransactionDate:   time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
					PayerEmail:        "payer@example.com",
				},
			}, nil
		},
	}
	srv := newTestServer(t, mock)

	resp := doRequest(t, http.MethodGet, srv.URL+"/transactions?startDate=2024-03-01&endDate=2024-03-31", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t,
		`{"transactions":[{"transactionId":"T-1","transactionStatus":"S","amount":{"currencyCode":"EUR","value":"12.00"},"transactionDate":"2024-03-05T10:00:00Z","payerEmail":"payer@example.com"}]}`,
		readBody(t, resp))
}

func TestListTransactionsEndpoint_MissingDates(t *testing.T) {
	srv := newTestServer(t, &mockInteractor{})

	resp := doRequest(t, http.MethodGet, srv.URL+"/transactions", "")

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, readBody(t, resp), "request.parse.failed")
}

func TestListTransactionsEndpoint_ExplicitPaging(t *testing.T) {
	mock := &mockInteractor{
		listTransactionsFunc: func(ctx context.Context, query *entities.TransactionReportQuery) ([]entities.TransactionRecord, error) {
			require.Equal(t, 25, query.PageSize)
			require.Equal(t, 3, query.Page)
			require.Equal(t, "S", query.TransactionStatus)

			return []entities.TransactionRecord{}, nil
		},
	}
	srv := newTestServer(t, mock)

	resp := doRequest(t, http.MethodGet,
		srv.URL+"/transactions?startDate=2024-03-01&endDate=2024-03-31&pageSize=25&page=3&transactionStatus=S", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"transactions":[]}`, readBody(t, resp))
}

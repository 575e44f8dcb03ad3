package interaction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eurofurence/reg-paypal-adapter/internal/config"
	"github.com/eurofurence/reg-paypal-adapter/internal/entities"
	"github.com/eurofurence/reg-paypal-adapter/internal/logging"
	"github.com/eurofurence/reg-paypal-adapter/internal/repository/downstreams/paypal"
)

// paypalMock records the last call and returns canned values.
type paypalMock struct {
	lastOrder  *entities.OrderRequest
	lastRefund *entities.RefundRequest
	lastQuery  *entities.TransactionReportQuery

	orderResult   *entities.Order
	captureResult *entities.OrderCapture
	err           error
}

var _ paypal.Paypal = (*paypalMock)(nil)

func (m *paypalMock) CreateOrder(ctx context.Context, order *entities.OrderRequest) (*entities.Order, error) {
	m.lastOrder = order
	if m.err != nil {
		return nil, m.err
	}
	if m.orderResult != nil {
		return m.orderResult, nil
	}
	return &entities.Order{ID: "O-1", Status: entities.OrderStatusCreated}, nil
}

func (m *paypalMock) GetOrderStatus(ctx context.Context, orderID string) (*entities.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &entities.Order{ID: orderID, Status: entities.OrderStatusApproved}, nil
}

func (m *paypalMock) CaptureOrder(ctx context.Context, orderID string) (*entities.OrderCapture, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.captureResult != nil {
		return m.captureResult, nil
	}
	return &entities.OrderCapture{ID: orderID, Status: entities.OrderStatusCompleted}, nil
}

func (m *paypalMock) GetCaptureStatus(ctx context.Context, captureID string) (*entities.CaptureResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &entities.CaptureResult{ID: captureID, Status: entities.CaptureStatusCompleted}, nil
}

func (m *paypalMock) RefundCapture(ctx context.Context, refund *entities.RefundRequest) (*entities.RefundResult, error) {
	m.lastRefund = refund
	if m.err != nil {
		return nil, m.err
	}
	return &entities.RefundResult{ID: "R-1", Status: entities.RefundStatusCompleted}, nil
}

func (m *paypalMock) GetRefundStatus(ctx context.Context, refundID string) (*entities.RefundResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &entities.RefundResult{ID: refundID, Status: entities.RefundStatusPending}, nil
}

func (m *paypalMock) ListTransactions(ctx context.Context, query *entities.TransactionReportQuery) ([]entities.TransactionRecord, error) {
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	return []entities.TransactionRecord{}, nil
}

func testConfig() *config.Application {
	return &config.Application{
		Service: config.ServiceConfig{
			Name:              "Test Paypal Adapter",
			AllowedCurrencies: []string{"EUR", "USD"},
		},
		Paypal: config.PaypalConfig{
			Mode:      config.ModeSandbox,
			ReturnURL: "https://example.com/return",
			CancelURL: "https://example.com/cancel",
		},
		Security: config.SecurityConfig{
			Oidc: config.OpenIdConnectConfig{
				AdminRole: "admin",
			},
		},
	}
}

func TestNewServiceInteractor(t *testing.T) {
	type args struct {
		gateway paypal.Paypal
		conf    *config.Application
	}

	type expected struct {
		err error
	}

	tests := []struct {
		name     string
		args     args
		expected expected
	}{
		{
			name: "should return error when gateway client is missing",
			args: args{
				conf: testConfig(),
			},
			expected: expected{
				err: errors.New("no paypal gateway client provided"),
			},
		},
		{
			name: "should return error when config is missing",
			args: args{
				gateway: &paypalMock{},
			},
			expected: expected{
				err: errors.New("no application config provided"),
			},
		},
		{
			name: "should succeed when all values are set",
			args: args{
				gateway: &paypalMock{},
				conf:    testConfig(),
			},
			expected: expected{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, err := NewServiceInteractor(tt.args.gateway, tt.args.conf, logging.NewNoopLogger())
			if tt.expected.err != nil {
				require.EqualError(t, err, tt.expected.err.Error())
				require.Nil(t, i)
			} else {
				require.NoError(t, err)
				require.NotNil(t, i)
			}
		})
	}
}

package paypal

import (
	"context"

	"github.com/eurofurence/reg-paypal-adapter/internal/entities"
)

// Paypal is the gateway to the payment provider. One method per supported
// provider operation, each a direct mapping to one provider endpoint. Every
// method obtains a valid access credential first, refreshing it when expired.
//
// Errors are either ErrAuthFailure, ErrDecodeFailure, a *ProviderError, or a
// transport level error from the underlying client. No retries, no fallback.
type Paypal interface {
	CreateOrder(ctx context.Context, order *entities.OrderRequest) (*entities.Order, error)
	GetOrderStatus(ctx context.Context, orderID string) (*entities.Order, error)
	CaptureOrder(ctx context.Context, orderID string) (*entities.OrderCapture, error)
	GetCaptureStatus(ctx context.Context, captureID string) (*entities.CaptureResult, error)
	RefundCapture(ctx context.Context, refund *entities.RefundRequest) (*entities.RefundResult, error)
	GetRefundStatus(ctx context.Context, refundID string) (*entities.RefundResult, error)
	ListTransactions(ctx context.Context, query *entities.TransactionReportQuery) ([]entities.TransactionRecord, error)
}

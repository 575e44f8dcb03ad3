package interaction

import (
	"context"
	"errors"

	"github.com/eurofurence/reg-paypal-adapter/internal/config"
	"github.com/eurofurence/reg-paypal-adapter/internal/entities"
	"github.com/eurofurence/reg-paypal-adapter/internal/logging"
	"github.com/eurofurence/reg-paypal-adapter/internal/repository/downstreams/paypal"
)

var _ Interactor = (*serviceInteractor)(nil)

type Interactor interface {
	CreateOrder(ctx context.Context, order *entities.OrderRequest) (*entities.Order, error)
	GetOrderStatus(ctx context.Context, orderID string) (*entities.Order, error)
	CaptureOrder(ctx context.Context, orderID string) (*entities.OrderCapture, error)
	GetCaptureStatus(ctx context.Context, captureID string) (*entities.CaptureResult, error)
	RefundCapture(ctx context.Context, refund *entities.RefundRequest) (*entities.RefundResult, error)
	GetRefundStatus(ctx context.Context, refundID string) (*entities.RefundResult, error)
	ListTransactions(ctx context.Context, query *entities.TransactionReportQuery) ([]entities.TransactionRecord, error)
}

type serviceInteractor struct {
	logger        logging.Logger
	paypalGateway paypal.Paypal
	conf          *config.Application
}

func NewServiceInteractor(gateway paypal.Paypal, conf *config.Application, logger logging.Logger) (Interactor, error) {
	if gateway == nil {
		return nil, errors.New("no paypal gateway client provided")
	}

	if conf == nil {
		return nil, errors.New("no application config provided")
	}

	return &serviceInteractor{
		logger:        logger,
		paypalGateway: gateway,
		conf:          conf,
	}, nil
}

package interaction

import (
	"context"
	"fmt"

	"github.com/eurofurence/reg-paypal-adapter/internal/apierrors"
	"github.com/eurofurence/reg-paypal-adapter/internal/entities"
	"github.com/eurofurence/reg-paypal-adapter/internal/logging"
)

func (s *serviceInteractor) CreateOrder(ctx context.Context, order *entities.OrderRequest) (*entities.Order, error) {
	logger := logging.LoggerFromContext(ctx)

	if order.Amount.Value == "" {
		return nil, apierrors.NewBadRequest("an order requires an amount value")
	}
	if order.Amount.CurrencyCode == "" {
		return nil, apierrors.NewBadRequest("an order requires a currency code")
	}
	if order.ReferenceID == "" {
		return nil, apierrors.NewBadRequest("an order requires a reference id")
	}

	if !isCurrencyAllowed(s.conf.Service.AllowedCurrencies, order.Amount.CurrencyCode) {
		return nil, apierrors.NewForbidden(fmt.Sprintf("invalid currency %s provided", order.Amount.CurrencyCode))
	}

	// callers may leave the redirect targets to the configured defaults
	if order.ReturnURL == "" {
		order.ReturnURL = s.conf.Paypal.ReturnURL
	}
	if order.CancelURL == "" {
		order.CancelURL = s.conf.Paypal.CancelURL
	}

	result, err := s.paypalGateway.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	logger.Info("created order %s with status %s for reference %s", result.ID, result.Status, order.ReferenceID)
	return result, nil
}

func (s *serviceInteractor) GetOrderStatus(ctx context.Context, orderID string) (*entities.Order, error) {
	if orderID == "" {
		return nil, apierrors.NewBadRequest("an order id is required")
	}

	return s.paypalGateway.GetOrderStatus(ctx, orderID)
}

func (s *serviceInteractor) CaptureOrder(ctx context.Context, orderID string) (*entities.OrderCapture, error) {
	logger := logging.LoggerFromContext(ctx)

	if orderID == "" {
		return nil, apierrors.NewBadRequest("an order id is required")
	}

	capture, err := s.paypalGateway.CaptureOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	logger.Info("captured order %s with status %s", capture.ID, capture.Status)
	return capture, nil
}

func (s *serviceInteractor) GetCaptureStatus(ctx context.Context, captureID string) (*entities.CaptureResult, error) {
	if captureID == "" {
		return nil, apierrors.NewBadRequest("a capture id is required")
	}

	return s.paypalGateway.GetCaptureStatus(ctx, captureID)
}

func (s *serviceInteractor) RefundCapture(ctx context.Context, refund *entities.RefundRequest) (*entities.RefundResult, error) {
	logger := logging.LoggerFromContext(ctx)

	if refund.CaptureID == "" {
		return nil, apierrors.NewBadRequest("a capture id is required")
	}
	// a partial refund brings an amount and needs a currency with it
	if refund.Amount != "" && refund.CurrencyCode == "" {
		return nil, apierrors.NewBadRequest("a partial refund requires a currency code")
	}
	if refund.Amount != "" && !isCurrencyAllowed(s.conf.Service.AllowedCurrencies, refund.CurrencyCode) {
		return nil, apierrors.NewForbidden(fmt.Sprintf("invalid currency %s provided", refund.CurrencyCode))
	}

	result, err := s.paypalGateway.RefundCapture(ctx, refund)
	if err != nil {
		return nil, err
	}

	logger.Info("refunded capture %s, refund %s has status %s", refund.CaptureID, result.ID, result.Status)
	return result, nil
}

func (s *serviceInteractor) GetRefundStatus(ctx context.Context, refundID string) (*entities.RefundResult, error) {
	if refundID == "" {
		return nil, apierrors.NewBadRequest("a refund id is required")
	}

	return s.paypalGateway.GetRefundStatus(ctx, refundID)
}

func (s *serviceInteractor) ListTransactions(ctx context.Context, query *entities.TransactionReportQuery) ([]entities.TransactionRecord, error) {
	// the report exposes merchant wide financials, so only admins and
	// service to service calls may read it
	mgr := NewIdentityManager(ctx, s.conf.Security.Oidc.AdminRole)
	if !mgr.IsAdmin() && !mgr.IsAPITokenCall() {
		return nil, apierrors.NewForbidden("no permission to read the transaction report")
	}

	caller := mgr.Subject()
	if mgr.IsAPITokenCall() {
		caller = "api token"
	}
	logging.LoggerFromContext(ctx).Info("providing transaction report to %s", caller)

	if query.StartDate.IsZero() || query.EndDate.IsZero() {
		return nil, apierrors.NewBadRequest("a transaction report requires a start and an end date")
	}
	if !query.StartDate.Before(query.EndDate) {
		return nil, apierrors.NewBadRequest("the report start date must lie before the end date")
	}

	return s.paypalGateway.ListTransactions(ctx, query)
}

func isCurrencyAllowed(allowedCurrencies []string, currency string) bool {
	if len(allowedCurrencies) == 0 {
		return true
	}
	for _, allowed := range allowedCurrencies {
		if allowed == currency {
			return true
		}
	}
	return false
}

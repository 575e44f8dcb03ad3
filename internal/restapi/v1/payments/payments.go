package v1payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-http-utils/headers"

	"github.com/eurofurence/reg-paypal-adapter/internal/entities"
	"github.com/eurofurence/reg-paypal-adapter/internal/interaction"
	"github.com/eurofurence/reg-paypal-adapter/internal/logging"
	"github.com/eurofurence/reg-paypal-adapter/internal/restapi/common"
	"github.com/eurofurence/reg-paypal-adapter/internal/restapi/media"
)

type paymentsHandler struct {
	interactor interaction.Interactor
}

func Create(router chi.Router, i interaction.Interactor) {
	handler := paymentsHandler{
		interactor: i,
	}

	router.Post("/orders", common.CreateHandler(
		handler.CreateOrder,
		parseCreateOrderRequest,
		jsonResponseHandler[OrderResponse](http.StatusCreated),
	))
	router.Get("/orders/{order_id}", common.CreateHandler(
		handler.GetOrderStatus,
		parseGetOrderStatusRequest,
		jsonResponseHandler[OrderResponse](http.StatusOK),
	))
	router.Post("/orders/{order_id}/capture", common.CreateHandler(
		handler.CaptureOrder,
		parseCaptureOrderRequest,
		jsonResponseHandler[OrderCaptureResponse](http.StatusOK),
	))
	router.Get("/captures/{capture_id}", common.CreateHandler(
		handler.GetCaptureStatus,
		parseGetCaptureStatusRequest,
		jsonResponseHandler[CaptureStatusResponse](http.StatusOK),
	))
	router.Post("/captures/{capture_id}/refund", common.CreateHandler(
		handler.RefundCapture,
		parseRefundCaptureRequest,
		jsonResponseHandler[RefundResponse](http.StatusOK),
	))
	router.Get("/refunds/{refund_id}", common.CreateHandler(
		handler.GetRefundStatus,
		parseGetRefundStatusRequest,
		jsonResponseHandler[RefundResponse](http.StatusOK),
	))
	router.Get("/transactions", common.CreateHandler(
		handler.ListTransactions,
		parseListTransactionsRequest,
		jsonResponseHandler[TransactionReportResponse](http.StatusOK),
	))
}

// --- endpoints ---

func (h *paymentsHandler) CreateOrder(ctx context.Context, req *CreateOrderRequest, logger logging.Logger) (*OrderResponse, error) {
	order, err := h.interactor.CreateOrder(ctx, orderRequestFrom(req))
	if err != nil {
		return nil, err
	}

	return orderResponseFrom(order), nil
}

func (h *paymentsHandler) GetOrderStatus(ctx context.Context, req *GetOrderStatusRequest, logger logging.Logger) (*OrderResponse, error) {
	order, err := h.interactor.GetOrderStatus(ctx, req.OrderId)
	if err != nil {
		return nil, err
	}

	return orderResponseFrom(order), nil
}

func (h *paymentsHandler) CaptureOrder(ctx context.Context, req *CaptureOrderRequest, logger logging.Logger) (*OrderCaptureResponse, error) {
	capture, err := h.interactor.CaptureOrder(ctx, req.OrderId)
	if err != nil {
		return nil, err
	}

	return orderCaptureResponseFrom(capture), nil
}

func (h *paymentsHandler) GetCaptureStatus(ctx context.Context, req *GetCaptureStatusRequest, logger logging.Logger) (*CaptureStatusResponse, error) {
	result, err := h.interactor.GetCaptureStatus(ctx, req.CaptureId)
	if err != nil {
		return nil, err
	}

	return captureStatusResponseFrom(result), nil
}

func (h *paymentsHandler) RefundCapture(ctx context.Context, req *RefundCaptureRequest, logger logging.Logger) (*RefundResponse, error) {
	result, err := h.interactor.RefundCapture(ctx, refundRequestFrom(req))
	if err != nil {
		return nil, err
	}

	return refundResponseFrom(result), nil
}

func (h *paymentsHandler) GetRefundStatus(ctx context.Context, req *GetRefundStatusRequest, logger logging.Logger) (*RefundResponse, error) {
	result, err := h.interactor.GetRefundStatus(ctx, req.RefundId)
	if err != nil {
		return nil, err
	}

	return refundResponseFrom(result), nil
}

func (h *paymentsHandler) ListTransactions(ctx context.Context, req *entities.TransactionReportQuery, logger logging.Logger) (*TransactionReportResponse, error) {
	records, err := h.interactor.ListTransactions(ctx, req)
	if err != nil {
		return nil, err
	}

	return transactionReportResponseFrom(records), nil
}

// --- request parsing ---

func parseCreateOrderRequest(r *http.Request) (*CreateOrderRequest, error) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}

	return &req, nil
}

func parseGetOrderStatusRequest(r *http.Request) (*GetOrderStatusRequest, error) {
	orderId := chi.URLParam(r, "order_id")
	if orderId == "" {
		return nil, errors.New("order_id parameter is missing")
	}

	return &GetOrderStatusRequest{OrderId: orderId}, nil
}

func parseCaptureOrderRequest(r *http.Request) (*CaptureOrderRequest, error) {
	orderId := chi.URLParam(r, "order_id")
	if orderId == "" {
		return nil, errors.New("order_id parameter is missing")
	}

	return &CaptureOrderRequest{OrderId: orderId}, nil
}

func parseGetCaptureStatusRequest(r *http.Request) (*GetCaptureStatusRequest, error) {
	captureId := chi.URLParam(r, "capture_id")
	if captureId == "" {
		return nil, errors.New("capture_id parameter is missing")
	}

	return &GetCaptureStatusRequest{CaptureId: captureId}, nil
}

// an empty request body requests a full refund
func parseRefundCaptureRequest(r *http.Request) (*RefundCaptureRequest, error) {
	captureId := chi.URLParam(r, "capture_id")
	if captureId == "" {
		return nil, errors.New("capture_id parameter is missing")
	}

	var req RefundCaptureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	req.CaptureId = captureId

	return &req, nil
}

func parseGetRefundStatusRequest(r *http.Request) (*GetRefundStatusRequest, error) {
	refundId := chi.URLParam(r, "refund_id")
	if refundId == "" {
		return nil, errors.New("refund_id parameter is missing")
	}

	return &GetRefundStatusRequest{RefundId: refundId}, nil
}

func parseListTransactionsRequest(r *http.Request) (*entities.TransactionReportQuery, error) {
	return transactionReportQueryFrom(r.URL.Query())
}

// --- response encoding ---

func jsonResponseHandler[Res any](status int) common.ResponseHandler[Res] {
	return func(ctx context.Context, res *Res, w http.ResponseWriter) error {
		w.Header().Set(headers.ContentType, media.ContentTypeApplicationJson)
		w.WriteHeader(status)

		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		return encoder.Encode(res)
	}
}

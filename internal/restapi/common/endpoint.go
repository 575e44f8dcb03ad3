package common

import (
	"context"
	"net/http"

	"github.com/go-http-utils/headers"

	"github.com/eurofurence/reg-paypal-adapter/internal/apierrors"
	"github.com/eurofurence/reg-paypal-adapter/internal/common"
	"github.com/eurofurence/reg-paypal-adapter/internal/logging"
	"github.com/eurofurence/reg-paypal-adapter/internal/repository/downstreams/paypal"
	"github.com/eurofurence/reg-paypal-adapter/internal/restapi/media"
)

type RequestHandler[Req any] func(r *http.Request) (*Req, error)
type ResponseHandler[Res any] func(ctx context.Context, res *Res, w http.ResponseWriter) error
type Endpoint[Req, Res any] func(ctx context.Context, request *Req, logger logging.Logger) (*Res, error)

func CreateHandler[Req, Res any](endpoint Endpoint[Req, Res],
	requestHandler RequestHandler[Req],
	responseHandler ResponseHandler[Res]) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reqID := common.GetRequestID(ctx)
		logger := logging.LoggerFromContext(ctx)

		defer func() {
			err := r.Body.Close()
			if err != nil {
				logger.Error("Error when closing the request body. [error]: %v", err)
			}
		}()

		if requestHandler == nil {
			logger.Error("No request handler supplied")
			SendInternalServerError(w, reqID, UnknownErrorMessage, logger, "")
			return
		}

		if responseHandler == nil {
			logger.Error("No response handler supplied")
			SendInternalServerError(w, reqID, UnknownErrorMessage, logger, "")
			return
		}

		request, err := requestHandler(r)
		if err != nil {
			logger.Error("An error occurred while parsing the request. [error]: %v", err)
			SendBadRequestResponse(w, reqID, logger, err.Error())
			return
		}

		response, err := endpoint(ctx, request, logger)

		if err != nil {
			logger.Error("An error occurred during the request. [error]: %v", err)
			sendErrorResponse(w, reqID, logger, err)
			return
		}

		if err := responseHandler(ctx, response, w); err != nil {
			logger.Error("An error occurred during the handling of the response. [error]: %v", err)
			SendInternalServerError(w, reqID, UnknownErrorMessage, logger, "")
			return
		}

	})
}

func sendErrorResponse(w http.ResponseWriter, reqID string, logger logging.Logger, err error) {
	// provider rejections pass through with the provider's own status and
	// error body, the caller needs them for user facing diagnostics
	if providerErr := paypal.AsProviderError(err); providerErr != nil {
		w.Header().Set(headers.ContentType, media.ContentTypeApplicationJson)
		w.WriteHeader(providerErr.Status)
		if len(providerErr.Body) > 0 {
			if _, err := w.Write(providerErr.Body); err != nil {
				logger.Error("Could not write provider error body. [error]: %v", err)
			}
		}
		return
	}

	// credential exchange and decode failures are upstream faults, not ours
	if paypal.IsUpstreamError(err) {
		SendBadGatewayResponse(w, reqID, logger, err.Error())
		return
	}

	if status := apierrors.AsAPIStatus(err); status != nil {
		switch {
		case apierrors.IsBadRequestError(err):
			SendBadRequestResponse(w, reqID, logger, status.Status().Details)
		case apierrors.IsUnauthorizedError(err):
			SendUnauthorizedResponse(w, reqID, logger, status.Status().Details)
		case apierrors.IsForbiddenError(err):
			SendForbiddenResponse(w, reqID, logger, status.Status().Details)
		case apierrors.IsNotFoundError(err):
			SendStatusNotFoundResponse(w, reqID, logger, status.Status().Details)
		case apierrors.IsConflictError(err):
			SendConflictResponse(w, reqID, logger, status.Status().Details)
		case apierrors.IsBadGatewayError(err):
			SendBadGatewayResponse(w, reqID, logger, status.Status().Details)
		default:
			SendInternalServerError(w, reqID, APIErrorMessage(status.Status().Message), logger, status.Status().Details)
		}
		return
	}

	SendInternalServerError(w, reqID, InternalErrorMessage, logger, err.Error())
}

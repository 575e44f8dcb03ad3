package paypal

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/eurofurence/reg-paypal-adapter/internal/entities"
)

// encode/decode between the internal result types and the provider's wire
// shapes. Decoders fail only when the body is not valid json, missing fields
// come out as their zero values so partial provider data never turns into a
// hard failure.

const intentCapture = "CAPTURE"

func encodeCreateOrder(order *entities.OrderRequest, brandName string) ([]byte, error) {
	request := createOrderRequest{
		Intent: intentCapture,
		PurchaseUnits: []createOrderPurchaseUnit{
			{
				ReferenceID: order.ReferenceID,
				Amount: wireAmount{
					CurrencyCode: order.Amount.CurrencyCode,
					Value:        order.Amount.Value,
				},
			},
		},
		ApplicationContext: applicationContext{
			ReturnURL: order.ReturnURL,
			CancelURL: order.CancelURL,
			BrandName: brandName,
		},
	}

	return json.Marshal(request)
}

// encodeRefund produces exactly {} when no amount is given. A full refund is
// requested by omitting the amount object, not by sending an empty one.
func encodeRefund(amount string, currencyCode string) ([]byte, error) {
	request := refundRequest{}
	if amount != "" {
		request.Amount = &wireAmount{
			CurrencyCode: currencyCode,
			Value:        amount,
		}
	}

	return json.Marshal(request)
}

func decodeOrder(body []byte) (*entities.Order, error) {
	response := orderResponse{}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, decodeFailure("order", err)
	}

	order := entities.Order{
		ID:     response.ID,
		Status: entities.OrderStatus(response.Status),
		Units:  make([]entities.PurchaseUnit, 0, len(response.PurchaseUnits)),
		Links:  mapLinks(response.Links),
	}
	for _, unit := range response.PurchaseUnits {
		order.Units = append(order.Units, entities.PurchaseUnit{
			ReferenceID: unit.ReferenceID,
			Amount:      mapAmount(unit.Amount),
		})
	}

	return &order, nil
}

func decodeOrderCapture(body []byte) (*entities.OrderCapture, error) {
	response := orderCaptureResponse{}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, decodeFailure("order capture", err)
	}

	capture := entities.OrderCapture{
		ID:     response.ID,
		Status: entities.OrderStatus(response.Status),
		Units:  make([]entities.CapturedUnit, 0, len(response.PurchaseUnits)),
		Links:  mapLinks(response.Links),
	}
	for _, unit := range response.PurchaseUnits {
		mapped := entities.CapturedUnit{
			ReferenceID: unit.ReferenceID,
			Captures:    make([]entities.Capture, 0),
		}
		if unit.Payments != nil {
			for _, c := range unit.Payments.Captures {
				mapped.Captures = append(mapped.Captures, entities.Capture{
					ID:           c.ID,
					Status:       entities.CaptureStatus(c.Status),
					Amount:       mapAmount(c.Amount),
					FinalCapture: c.FinalCapture,
				})
			}
		}
		capture.Units = append(capture.Units, mapped)
	}

	return &capture, nil
}

func decodeCapture(body []byte) (*entities.CaptureResult, error) {
	response := captureResponse{}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, decodeFailure("capture", err)
	}

	amount := mapAmount(response.Amount)
	return &entities.CaptureResult{
		ID:       response.ID,
		Status:   entities.CaptureStatus(response.Status),
		Amount:   amount.Value,
		Currency: amount.CurrencyCode,
	}, nil
}

func decodeRefund(body []byte) (*entities.RefundResult, error) {
	response := refundResponse{}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, decodeFailure("refund", err)
	}

	amount := mapAmount(response.Amount)
	return &entities.RefundResult{
		ID:       response.ID,
		Status:   entities.RefundStatus(response.Status),
		Amount:   amount.Value,
		Currency: amount.CurrencyCode,
	}, nil
}

// decodeTransactionList maps the transaction_details array. An absent or null
// array decodes to an empty slice, never nil and never a failure.
func decodeTransactionList(body []byte) ([]entities.TransactionRecord, error) {
	response := transactionListResponse{}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, decodeFailure("transaction list", err)
	}

	records := make([]entities.TransactionRecord, 0, len(response.TransactionDetails))
	for _, detail := range response.TransactionDetails {
		record := entities.TransactionRecord{}
		if detail.TransactionInfo != nil {
			record.TransactionID = detail.TransactionInfo.TransactionID
			record.TransactionStatus = detail.TransactionInfo.TransactionStatus
			record.Amount = mapAmount(detail.TransactionInfo.TransactionAmount)
			record.TransactionDate = parseTransactionDate(detail.TransactionInfo.TransactionInitiationDate)
		}
		if detail.PayerInfo != nil {
			record.PayerEmail = detail.PayerInfo.EmailAddress
		}
		records = append(records, record)
	}

	return records, nil
}

func mapAmount(amount *wireAmount) entities.Amount {
	if amount == nil {
		return entities.Amount{}
	}
	return entities.Amount{
		CurrencyCode: amount.CurrencyCode,
		Value:        amount.Value,
	}
}

func mapLinks(links []wireLink) []entities.Link {
	mapped := make([]entities.Link, 0, len(links))
	for _, link := range links {
		mapped = append(mapped, entities.Link{
			Href:     link.Href,
			Relation: link.Rel,
			Method:   link.Method,
		})
	}
	return mapped
}

// the provider reports initiation dates with a colonless zone offset
var transactionDateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05-0700"}

func parseTransactionDate(value string) time.Time {
	for _, layout := range transactionDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func decodeFailure(shape string, err error) error {
	return fmt.Errorf("%w: %s response was not valid json: %s", ErrDecodeFailure, shape, err.Error())
}

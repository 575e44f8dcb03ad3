package v1payments

import "time"

// The inbound surface uses its own field names, not the provider's wire
// names. Translation to the provider shapes happens further down.

type AmountDto struct {
	CurrencyCode string `json:"currencyCode"`
	Value        string `json:"value"`
}

type LinkDto struct {
	Href     string `json:"href"`
	Relation string `json:"relation"`
	Method   string `json:"method"`
}

type PurchaseUnitDto struct {
	ReferenceId string    `json:"referenceId"`
	Amount      AmountDto `json:"amount"`
}

// request and response types
type (
	// CreateOrderRequest creates a new order with the provider. ReturnUrl and
	// CancelUrl may be left empty, the configured defaults are used then.
	CreateOrderRequest struct {
		Value     string `json:"value"`
		Currency  string `json:"currency"`
		Reference string `json:"reference"`
		ReturnUrl string `json:"returnUrl"`
		CancelUrl string `json:"cancelUrl"`
	}

	OrderResponse struct {
		Id            string            `json:"id"`
		Status        string            `json:"status"`
		PurchaseUnits []PurchaseUnitDto `json:"purchaseUnits,omitempty"`
		Links         []LinkDto         `json:"links"`
	}

	GetOrderStatusRequest struct {
		OrderId string
	}

	CaptureOrderRequest struct {
		OrderId string
	}

	CaptureDto struct {
		Id           string    `json:"id"`
		Status       string    `json:"status"`
		Amount       AmountDto `json:"amount"`
		FinalCapture bool      `json:"finalCapture"`
	}

	CapturedUnitDto struct {
		ReferenceId string       `json:"referenceId"`
		Captures    []CaptureDto `json:"captures"`
	}

	OrderCaptureResponse struct {
		Id            string            `json:"id"`
		Status        string            `json:"status"`
		PurchaseUnits []CapturedUnitDto `json:"purchaseUnits"`
		Links         []LinkDto         `json:"links"`
	}

	GetCaptureStatusRequest struct {
		CaptureId string
	}

	CaptureStatusResponse struct {
		Id       string `json:"id"`
		Status   string `json:"status"`
		Amount   string `json:"amount"`
		Currency string `json:"currency"`
	}

	// RefundCaptureRequest refunds a capture. Leaving RefundAmount empty
	// requests a full refund of the capture.
	RefundCaptureRequest struct {
		CaptureId    string `json:"-"`
		RefundAmount string `json:"refundAmount"`
		CurrencyCode string `json:"currencyCode"`
	}

	RefundResponse struct {
		Id       string `json:"id"`
		Status   string `json:"status"`
		Amount   string `json:"amount"`
		Currency string `json:"currency"`
	}

	GetRefundStatusRequest struct {
		RefundId string
	}

	TransactionRecordDto struct {
		TransactionId     string    `json:"transactionId"`
		TransactionStatus string    `json:"transactionStatus"`
		Amount            AmountDto `json:"amount"`
		TransactionDate   time.Time `json:"transactionDate"`
		PayerEmail        string    `json:"payerEmail,omitempty"`
	}

	TransactionReportResponse struct {
		Transactions []TransactionRecordDto `json:"transactions"`
	}
)

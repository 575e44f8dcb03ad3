package entities

// Amount is a monetary value in a given currency. The provider requires the
// value encoded as a decimal string, never as a number, so no floating point
// precision is lost. Keep it a string.
type Amount struct {
	// CurrencyCode is the ISO 4217 currency code
	CurrencyCode string
	Value        string
}

type OrderStatus string

const (
	OrderStatusCreated             OrderStatus = "CREATED"
	OrderStatusSaved               OrderStatus = "SAVED"
	OrderStatusApproved            OrderStatus = "APPROVED"
	OrderStatusVoided              OrderStatus = "VOIDED"
	OrderStatusCompleted           OrderStatus = "COMPLETED"
	OrderStatusPayerActionRequired OrderStatus = "PAYER_ACTION_REQUIRED"
)

func (o OrderStatus) IsValid() bool {
	switch o {
	case OrderStatusCreated, OrderStatusSaved, OrderStatusApproved,
		OrderStatusVoided, OrderStatusCompleted, OrderStatusPayerActionRequired:
		return true
	}

	return false
}

type CaptureStatus string

const (
	CaptureStatusCompleted         CaptureStatus = "COMPLETED"
	CaptureStatusDeclined          CaptureStatus = "DECLINED"
	CaptureStatusPartiallyRefunded CaptureStatus = "PARTIALLY_REFUNDED"
	CaptureStatusPending           CaptureStatus = "PENDING"
	CaptureStatusRefunded          CaptureStatus = "REFUNDED"
	CaptureStatusFailed            CaptureStatus = "FAILED"
)

func (c CaptureStatus) IsValid() bool {
	switch c {
	case CaptureStatusCompleted, CaptureStatusDeclined, CaptureStatusPartiallyRefunded,
		CaptureStatusPending, CaptureStatusRefunded, CaptureStatusFailed:
		return true
	}

	return false
}

type RefundStatus string

const (
	RefundStatusCompleted RefundStatus = "COMPLETED"
	RefundStatusCancelled RefundStatus = "CANCELLED"
	RefundStatusPending   RefundStatus = "PENDING"
	RefundStatusFailed    RefundStatus = "FAILED"
)

func (r RefundStatus) IsValid() bool {
	switch r {
	case RefundStatusCompleted, RefundStatusCancelled, RefundStatusPending, RefundStatusFailed:
		return true
	}

	return false
}

// Link is a hypermedia link returned by the provider, used by the caller to
// redirect the payer.
type Link struct {
	Href     string
	Relation string
	Method   string
}

// OrderRequest is what a caller supplies to create a new order with the provider.
type OrderRequest struct {
	ReferenceID string
	Amount      Amount
	ReturnURL   string
	CancelURL   string
}

type PurchaseUnit struct {
	ReferenceID string
	Amount      Amount
}

// Order is the normalized result of creating or looking up an order. Statuses
// outside the known set are passed through as opaque strings.
type Order struct {
	ID     string
	Status OrderStatus
	Units  []PurchaseUnit
	Links  []Link
}

// Capture is a single collection of funds within a captured order.
type Capture struct {
	ID           string
	Status       CaptureStatus
	Amount       Amount
	FinalCapture bool
}

type CapturedUnit struct {
	ReferenceID string
	Captures    []Capture
}

// OrderCapture is the result of capturing an order. The provider nests the
// captures inside the purchase units here, which makes this a different shape
// from the flat CaptureResult returned by a capture status lookup.
type OrderCapture struct {
	ID     string
	Status OrderStatus
	Units  []CapturedUnit
	Links  []Link
}

type CaptureResult struct {
	ID       string
	Status   CaptureStatus
	Amount   string
	Currency string
}

// RefundRequest asks for a refund of a capture. An empty Amount requests a
// full refund.
type RefundRequest struct {
	CaptureID    string
	Amount       string
	CurrencyCode string
}

type RefundResult struct {
	ID       string
	Status   RefundStatus
	Amount   string
	Currency string
}

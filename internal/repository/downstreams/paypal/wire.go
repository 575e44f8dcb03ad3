package paypal

// wire types as the provider sends and expects them. All response fields are
// optional, decoders substitute defaults for anything absent and ignore
// anything unknown.

type authResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}

type wireAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type wireLink struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

type applicationContext struct {
	ReturnURL string `json:"return_url"`
	CancelURL string `json:"cancel_url"`
	BrandName string `json:"brand_name,omitempty"`
}

type createOrderPurchaseUnit struct {
	ReferenceID string     `json:"reference_id"`
	Amount      wireAmount `json:"amount"`
}

type createOrderRequest struct {
	Intent             string                    `json:"intent"`
	PurchaseUnits      []createOrderPurchaseUnit `json:"purchase_units"`
	ApplicationContext applicationContext        `json:"application_context"`
}

type orderPurchaseUnit struct {
	ReferenceID string      `json:"reference_id"`
	Amount      *wireAmount `json:"amount"`
}

// orderResponse covers both order creation and order lookup.
type orderResponse struct {
	ID            string              `json:"id"`
	Status        string              `json:"status"`
	PurchaseUnits []orderPurchaseUnit `json:"purchase_units"`
	Links         []wireLink          `json:"links"`
}

type sellerProtection struct {
	Status            string   `json:"status"`
	DisputeCategories []string `json:"dispute_categories"`
}

type wireCapture struct {
	ID               string            `json:"id"`
	Status           string            `json:"status"`
	Amount           *wireAmount       `json:"amount"`
	FinalCapture     bool              `json:"final_capture"`
	SellerProtection *sellerProtection `json:"seller_protection"`
}

type capturedPayments struct {
	Captures []wireCapture `json:"captures"`
}

type capturedPurchaseUnit struct {
	ReferenceID string            `json:"reference_id"`
	Payments    *capturedPayments `json:"payments"`
}

// orderCaptureResponse is the order capture shape, with the captures nested
// inside purchase_units/payments/captures. Deliberately kept separate from
// captureResponse, the flat single-capture shape of a capture status lookup.
type orderCaptureResponse struct {
	ID            string                 `json:"id"`
	Status        string                 `json:"status"`
	PurchaseUnits []capturedPurchaseUnit `json:"purchase_units"`
	Links         []wireLink             `json:"links"`
}

type captureResponse struct {
	ID               string            `json:"id"`
	Status           string            `json:"status"`
	Amount           *wireAmount       `json:"amount"`
	FinalCapture     bool              `json:"final_capture"`
	SellerProtection *sellerProtection `json:"seller_protection"`
}

type refundRequest struct {
	Amount *wireAmount `json:"amount,omitempty"`
}

type refundResponse struct {
	ID     string      `json:"id"`
	Status string      `json:"status"`
	Amount *wireAmount `json:"amount"`
}

type transactionInfo struct {
	TransactionID             string      `json:"transaction_id"`
	TransactionStatus         string      `json:"transaction_status"`
	TransactionAmount         *wireAmount `json:"transaction_amount"`
	TransactionInitiationDate string      `json:"transaction_initiation_date"`
}

type payerInfo struct {
	EmailAddress string `json:"email_address"`
}

type transactionDetail struct {
	TransactionInfo *transactionInfo `json:"transaction_info"`
	PayerInfo       *payerInfo       `json:"payer_info"`
}

type transactionListResponse struct {
	TransactionDetails []transactionDetail `json:"transaction_details"`
	TotalItems         int                 `json:"total_items"`
	TotalPages         int                 `json:"total_pages"`
	Page               int                 `json:"page"`
}

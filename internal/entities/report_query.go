package entities

import "time"

// TransactionReportQuery selects a page of settled or pending payment events
// over a date range. All filters besides the date range are optional; an empty
// string means the filter is unset.
type TransactionReportQuery struct {
	StartDate time.Time
	EndDate   time.Time

	TransactionStatus     string
	TransactionID         string
	TransactionType       string
	TransactionAmount     string
	TransactionCurrency   string
	PaymentInstrumentType string
	StoreID               string
	TerminalID            string
	// Fields selects which response blocks the provider includes.
	Fields string
	// BalanceAffectingRecordsOnly is the provider's y/n flag.
	BalanceAffectingRecordsOnly string

	// PageSize defaults to 100, Page to 1 when left at zero.
	PageSize int
	Page     int
}

type TransactionRecord struct {
	TransactionID     string
	TransactionStatus string
	Amount            Amount
	TransactionDate   time.Time
	PayerEmail        string
}

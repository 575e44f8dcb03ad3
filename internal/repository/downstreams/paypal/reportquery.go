package paypal

import (
	"fmt"
	"strings"

	"github.com/eurofurence/reg-paypal-adapter/internal/entities"
)

const transactionReportPath = "/v1/reporting/transactions"

// second precision, no fractional seconds. The value is rendered in UTC first,
// the trailing Z is a literal.
const reportTimeLayout = "2006-01-02T15:04:05Z"

const (
	defaultPageSize = 100
	defaultPage     = 1
)

// buildTransactionReportQuery renders the path and query string for a
// transaction report. Parameter order is fixed so the same query always yields
// the same URL: the date range first, then any set optional filters in
// declaration order, then pagination last.
func buildTransactionReportQuery(query *entities.TransactionReportQuery) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s?start_date=%s&end_date=%s",
		transactionReportPath,
		query.StartDate.UTC().Format(reportTimeLayout),
		query.EndDate.UTC().Format(reportTimeLayout),
	)

	appendIfSet(&sb, "transaction_status", query.TransactionStatus)
	appendIfSet(&sb, "transaction_id", query.TransactionID)
	appendIfSet(&sb, "transaction_type", query.TransactionType)
	appendIfSet(&sb, "transaction_amount", query.TransactionAmount)
	appendIfSet(&sb, "transaction_currency", query.TransactionCurrency)
	appendIfSet(&sb, "payment_instrument_type", query.PaymentInstrumentType)
	appendIfSet(&sb, "store_id", query.StoreID)
	appendIfSet(&sb, "terminal_id", query.TerminalID)
	appendIfSet(&sb, "fields", query.Fields)
	appendIfSet(&sb, "balance_affecting_records_only", query.BalanceAffectingRecordsOnly)

	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	page := query.Page
	if page <= 0 {
		page = defaultPage
	}
	fmt.Fprintf(&sb, "&page_size=%d&page=%d", pageSize, page)

	return sb.String()
}

// an empty value and an absent filter are equivalent, both are omitted
func appendIfSet(sb *strings.Builder, name string, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(sb, "&%s=%s", name, value)
}

package v1payments

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/eurofurence/reg-paypal-adapter/internal/entities"
)

// report defaults match what the provider ui shows for settled payments
const (
	defaultReportFields        = "transaction_info"
	defaultBalanceAffecting    = "y"
	defaultReportPageSize      = 100
	defaultReportPage          = 1
	reportDateOnlyLayout       = "2006-01-02"
	queryParamStartDate        = "startDate"
	queryParamEndDate          = "endDate"
	queryParamPageSize         = "pageSize"
	queryParamPage             = "page"
	queryParamFields           = "fields"
	queryParamBalanceAffecting = "balanceAffectingRecordsOnly"
)

func orderRequestFrom(req *CreateOrderRequest) *entities.OrderRequest {
	return &entities.OrderRequest{
		ReferenceID: req.Reference,
		Amount: entities.Amount{
			CurrencyCode: req.Currency,
			Value:        req.Value,
		},
		ReturnURL: req.ReturnUrl,
		CancelURL: req.CancelUrl,
	}
}

func amountDtoFrom(amount entities.Amount) AmountDto {
	return AmountDto{
		CurrencyCode: amount.CurrencyCode,
		Value:        amount.Value,
	}
}

func linkDtosFrom(links []entities.Link) []LinkDto {
	result := make([]LinkDto, 0, len(links))
	for _, link := range links {
		result = append(result, LinkDto{
			Href:     link.Href,
			Relation: link.Relation,
			Method:   link.Method,
		})
	}

	return result
}

func orderResponseFrom(order *entities.Order) *OrderResponse {
	units := make([]PurchaseUnitDto, 0, len(order.Units))
	for _, unit := range order.Units {
		units = append(units, PurchaseUnitDto{
			ReferenceId: unit.ReferenceID,
			Amount:      amountDtoFrom(unit.Amount),
		})
	}

	return &OrderResponse{
		Id:            order.ID,
		Status:        string(order.Status),
		PurchaseUnits: units,
		Links:         linkDtosFrom(order.Links),
	}
}

func orderCaptureResponseFrom(capture *entities.OrderCapture) *OrderCaptureResponse {
	units := make([]CapturedUnitDto, 0, len(capture.Units))
	for _, unit := range capture.Units {
		captures := make([]CaptureDto, 0, len(unit.Captures))
		for _, c := range unit.Captures {
			captures = append(captures, CaptureDto{
				Id:           c.ID,
				Status:       string(c.Status),
				Amount:       amountDtoFrom(c.Amount),
				FinalCapture: c.FinalCapture,
			})
		}

		units = append(units, CapturedUnitDto{
			ReferenceId: unit.ReferenceID,
			Captures:    captures,
		})
	}

	return &OrderCaptureResponse{
		Id:            capture.ID,
		Status:        string(capture.Status),
		PurchaseUnits: units,
		Links:         linkDtosFrom(capture.Links),
	}
}

func captureStatusResponseFrom(result *entities.CaptureResult) *CaptureStatusResponse {
	return &CaptureStatusResponse{
		Id:       result.ID,
		Status:   string(result.Status),
		Amount:   result.Amount,
		Currency: result.Currency,
	}
}

func refundRequestFrom(req *RefundCaptureRequest) *entities.RefundRequest {
	return &entities.RefundRequest{
		CaptureID:    req.CaptureId,
		Amount:       req.RefundAmount,
		CurrencyCode: req.CurrencyCode,
	}
}

func refundResponseFrom(result *entities.RefundResult) *RefundResponse {
	return &RefundResponse{
		Id:       result.ID,
		Status:   string(result.Status),
		Amount:   result.Amount,
		Currency: result.Currency,
	}
}

func transactionReportResponseFrom(records []entities.TransactionRecord) *TransactionReportResponse {
	result := make([]TransactionRecordDto, 0, len(records))
	for _, record := range records {
		result = append(result, TransactionRecordDto{
			TransactionId:     record.TransactionID,
			TransactionStatus: record.TransactionStatus,
			Amount:            amountDtoFrom(record.Amount),
			TransactionDate:   record.TransactionDate,
			PayerEmail:        record.PayerEmail,
		})
	}

	return &TransactionReportResponse{Transactions: result}
}

// transactionReportQueryFrom binds the report query parameters. The date range
// is required, everything else falls back to a default or stays unset.
func transactionReportQueryFrom(values url.Values) (*entities.TransactionReportQuery, error) {
	startDate, err := parseReportDate(values.Get(queryParamStartDate))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", queryParamStartDate, err)
	}

	endDate, err := parseReportDate(values.Get(queryParamEndDate))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", queryParamEndDate, err)
	}

	pageSize, err := parsePositiveInt(values.Get(queryParamPageSize), defaultReportPageSize)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", queryParamPageSize, err)
	}

	page, err := parsePositiveInt(values.Get(queryParamPage), defaultReportPage)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", queryParamPage, err)
	}

	fields := values.Get(queryParamFields)
	if fields == "" {
		fields = defaultReportFields
	}

	balanceAffecting := values.Get(queryParamBalanceAffecting)
	if balanceAffecting == "" {
		balanceAffecting = defaultBalanceAffecting
	}

	return &entities.TransactionReportQuery{
		StartDate:                   startDate,
		EndDate:                     endDate,
		TransactionStatus:           values.Get("transactionStatus"),
		TransactionID:               values.Get("transactionId"),
		TransactionType:             values.Get("transactionType"),
		TransactionAmount:           values.Get("transactionAmount"),
		TransactionCurrency:         values.Get("transactionCurrency"),
		PaymentInstrumentType:       values.Get("paymentInstrumentType"),
		StoreID:                     values.Get("storeId"),
		TerminalID:                  values.Get("terminalId"),
		Fields:                      fields,
		BalanceAffectingRecordsOnly: balanceAffecting,
		PageSize:                    pageSize,
		Page:                        page,
	}, nil
}

func parseReportDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("date parameter is required")
	}

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}

	return time.Parse(reportDateOnlyLayout, value)
}

func parsePositiveInt(value string, defaultValue int) (int, error) {
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if parsed < 1 {
		return 0, fmt.Errorf("value must be positive")
	}

	return parsed, nil
}

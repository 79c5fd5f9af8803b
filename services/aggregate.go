package services

// QuotationTotals holds the quotation-level roll-up of every project's
// derived fields plus the advance/balance payment split.
type QuotationTotals struct {
	TotalSystemCost          float64
	TotalGSTAmount           float64
	TotalWithGST             float64
	TotalSubsidyAmount       float64
	TotalCustomerPayment     float64
	AdvancePaymentPercentage float64
	AdvanceAmount            float64
	BalanceAmount            float64
}

// AggregateQuotation recomputes the quotation totals from the full current
// project list. It always starts from zero rather than patching previous
// totals, so removed or replaced projects cannot leave stale amounts behind.
//
// The sum uses each project's stored projectValue; for service-only projects
// that is the per-unit price, not the quantity-multiplied customer payment,
// matching the per-project settlement behavior.
func AggregateQuotation(projects []Project, advancePct float64) QuotationTotals {
	t := QuotationTotals{AdvancePaymentPercentage: advancePct}
	for i := range projects {
		p := &projects[i]
		t.TotalSystemCost += p.BasePrice
		t.TotalGSTAmount += p.GSTAmount
		t.TotalWithGST += p.ProjectValue
		t.TotalSubsidyAmount += p.SubsidyAmount
	}
	t.TotalCustomerPayment = t.TotalWithGST - t.TotalSubsidyAmount
	t.AdvanceAmount = RoundMoney(t.TotalCustomerPayment * advancePct / 100)
	t.BalanceAmount = t.TotalCustomerPayment - t.AdvanceAmount
	return t
}

package handlers

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// loadQuotationProjects fetches every project record of a quotation in sort
// order, together with the rebuilt in-memory projects.
func loadQuotationProjects(app *pocketbase.PocketBase, quotationID string) ([]*core.Record, []services.Project, error) {
	records, err := app.FindRecordsByFilter(
		"projects",
		"quotation = {:quotationId}",
		"sort_order",
		0, 0,
		map[string]any{"quotationId": quotationID},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("could not query projects: %w", err)
	}

	projects := make([]services.Project, len(records))
	for i, rec := range records {
		projects[i] = projectFromRecord(rec)
	}
	return records, projects, nil
}

// recalcQuotationTotals re-aggregates a quotation from its full current
// project list and persists the totals. Called after every project mutation.
func recalcQuotationTotals(app *pocketbase.PocketBase, quotation *core.Record) (services.QuotationTotals, error) {
	_, projects, err := loadQuotationProjects(app, quotation.Id)
	if err != nil {
		return services.QuotationTotals{}, err
	}

	totals := services.AggregateQuotation(projects, quotation.GetFloat("advance_payment_percentage"))

	quotation.Set("total_system_cost", totals.TotalSystemCost)
	quotation.Set("total_gst_amount", totals.TotalGSTAmount)
	quotation.Set("total_with_gst", totals.TotalWithGST)
	quotation.Set("total_subsidy_amount", totals.TotalSubsidyAmount)
	quotation.Set("total_customer_payment", totals.TotalCustomerPayment)
	quotation.Set("advance_amount", totals.AdvanceAmount)
	quotation.Set("balance_amount", totals.BalanceAmount)

	if err := app.Save(quotation); err != nil {
		return totals, fmt.Errorf("could not save quotation totals: %w", err)
	}
	return totals, nil
}

// nextProjectSortOrder returns the next sort_order value for a quotation's
// project list.
func nextProjectSortOrder(app *pocketbase.PocketBase, quotationID string) int {
	existing, err := app.FindRecordsByFilter(
		"projects",
		"quotation = {:quotationId}",
		"-sort_order",
		1, 0,
		map[string]any{"quotationId": quotationID},
	)
	if err != nil || len(existing) == 0 {
		return 1
	}
	return existing[0].GetInt("sort_order") + 1
}

// nextQuotationNo generates a sequential quotation number like SQ-2026-004.
func nextQuotationNo(app *pocketbase.PocketBase, year int) string {
	existing, err := app.FindRecordsByFilter(
		"quotations",
		"quotation_no ~ {:prefix}",
		"-quotation_no",
		1, 0,
		map[string]any{"prefix": fmt.Sprintf("SQ-%d-", year)},
	)
	seq := 1
	if err == nil && len(existing) > 0 {
		var lastYear, lastSeq int
		if _, scanErr := fmt.Sscanf(existing[0].GetString("quotation_no"), "SQ-%d-%d", &lastYear, &lastSeq); scanErr == nil {
			seq = lastSeq + 1
		}
	}
	return fmt.Sprintf("SQ-%d-%03d", year, seq)
}

// totalsJSON is the wire shape of the quotation totals block.
type totalsJSON struct {
	TotalSystemCost          float64 `json:"totalSystemCost"`
	TotalGSTAmount           float64 `json:"totalGstAmount"`
	TotalWithGST             float64 `json:"totalWithGst"`
	TotalSubsidyAmount       float64 `json:"totalSubsidyAmount"`
	TotalCustomerPayment     float64 `json:"totalCustomerPayment"`
	AdvancePaymentPercentage float64 `json:"advancePaymentPercentage"`
	AdvanceAmount            float64 `json:"advanceAmount"`
	BalanceAmount            float64 `json:"balanceAmount"`
}

func totalsToJSON(t services.QuotationTotals) totalsJSON {
	return totalsJSON{
		TotalSystemCost:          t.TotalSystemCost,
		TotalGSTAmount:           t.TotalGSTAmount,
		TotalWithGST:             t.TotalWithGST,
		TotalSubsidyAmount:       t.TotalSubsidyAmount,
		TotalCustomerPayment:     t.TotalCustomerPayment,
		AdvancePaymentPercentage: t.AdvancePaymentPercentage,
		AdvanceAmount:            t.AdvanceAmount,
		BalanceAmount:            t.BalanceAmount,
	}
}

package services

import (
	"math"
	"testing"
)

func TestAggregateQuotation(t *testing.T) {
	tests := []struct {
		name       string
		projects   []Project
		advancePct float64
		expect     QuotationTotals
	}{
		{
			name: "two on-grid projects",
			projects: []Project{
				{Type: ProjectOnGrid, BasePrice: 50000, GSTAmount: 4450, ProjectValue: 54450},
				{Type: ProjectOnGrid, BasePrice: 70000, GSTAmount: 6230, ProjectValue: 76230},
			},
			advancePct: 30,
			expect: QuotationTotals{
				TotalSystemCost:          120000,
				TotalGSTAmount:           10680,
				TotalWithGST:             130680,
				TotalSubsidyAmount:       0,
				TotalCustomerPayment:     130680,
				AdvancePaymentPercentage: 30,
				AdvanceAmount:            39204,
				BalanceAmount:            91476,
			},
		},
		{
			name: "subsidy reduces customer payment",
			projects: []Project{
				{Type: ProjectOnGrid, BasePrice: 91827, GSTAmount: 8173, ProjectValue: 100000, SubsidyAmount: 78000},
			},
			advancePct: 50,
			expect: QuotationTotals{
				TotalSystemCost:          91827,
				TotalGSTAmount:           8173,
				TotalWithGST:             100000,
				TotalSubsidyAmount:       78000,
				TotalCustomerPayment:     22000,
				AdvancePaymentPercentage: 50,
				AdvanceAmount:            11000,
				BalanceAmount:            11000,
			},
		},
		{
			name: "service project sums per-unit value",
			projects: []Project{
				// Water heater, qty 3: projectValue stays the per-unit
				// price in the roll-up, not the quantity-multiplied
				// customer payment.
				{Type: ProjectWaterHeater, BasePrice: 10000, ProjectValue: 10000, CustomerPayment: 30000},
			},
			advancePct: 0,
			expect: QuotationTotals{
				TotalSystemCost:      10000,
				TotalWithGST:         10000,
				TotalCustomerPayment: 10000,
				BalanceAmount:        10000,
			},
		},
		{
			name:       "empty quotation",
			projects:   nil,
			advancePct: 30,
			expect:     QuotationTotals{AdvancePaymentPercentage: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateQuotation(tt.projects, tt.advancePct)
			if got != tt.expect {
				t.Errorf("AggregateQuotation = %+v, want %+v", got, tt.expect)
			}
		})
	}
}

func TestAggregateQuotationAdvanceRounding(t *testing.T) {
	projects := []Project{
		{Type: ProjectOnGrid, BasePrice: 33333, GSTAmount: 2967, ProjectValue: 36300},
	}
	got := AggregateQuotation(projects, 33)

	// 36300 x 0.33 = 11979; balance is the exact remainder.
	if got.AdvanceAmount != 11979 {
		t.Errorf("AdvanceAmount = %v, want 11979", got.AdvanceAmount)
	}
	if got.AdvanceAmount+got.BalanceAmount != got.TotalCustomerPayment {
		t.Errorf("advance %v + balance %v != customer payment %v",
			got.AdvanceAmount, got.BalanceAmount, got.TotalCustomerPayment)
	}
}

func TestAggregateQuotationFullRecompute(t *testing.T) {
	// Totals always restart from zero: removing a project must not leave
	// stale amounts behind.
	projects := []Project{
		{Type: ProjectOnGrid, BasePrice: 50000, GSTAmount: 4450, ProjectValue: 54450},
		{Type: ProjectOnGrid, BasePrice: 70000, GSTAmount: 6230, ProjectValue: 76230},
	}
	first := AggregateQuotation(projects, 30)
	second := AggregateQuotation(projects[:1], 30)

	if second.TotalWithGST != 54450 {
		t.Errorf("TotalWithGST = %v after removal, want 54450", second.TotalWithGST)
	}
	if math.Abs(first.TotalWithGST-second.TotalWithGST) < 1 {
		t.Error("removal did not change totals")
	}
}

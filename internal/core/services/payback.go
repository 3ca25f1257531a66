package services

import (
	"github.com/Pratiable/22percent/internal/adapters/persistence/models"
)

// PaybackTotals holds component sums over a set of payback rows
type PaybackTotals struct {
	Principal  int64 `json:"principal"`
	Interest   int64 `json:"interest"`
	Tax        int64 `json:"tax"`
	Commission int64 `json:"commission"`
}

// Add folds another totals value into t
func (t *PaybackTotals) Add(o PaybackTotals) {
	t.Principal += o.Principal
	t.Interest += o.Interest
	t.Tax += o.Tax
	t.Commission += o.Commission
}

// SumPaybacks sums principal, interest, tax and commission over all
// rows. An empty slice yields all-zero totals.
func SumPaybacks(rows []models.UserPayback) PaybackTotals {
	var totals PaybackTotals
	for _, row := range rows {
		totals.Principal += row.Principal
		totals.Interest += row.Interest
		totals.Tax += row.Tax
		totals.Commission += row.Commission
	}
	return totals
}

// SumPaidPaybacks sums only rows in state PAID
func SumPaidPaybacks(rows []models.UserPayback) PaybackTotals {
	var totals PaybackTotals
	for _, row := range rows {
		if !row.IsPaid() {
			continue
		}
		totals.Principal += row.Principal
		totals.Interest += row.Interest
		totals.Tax += row.Tax
		totals.Commission += row.Commission
	}
	return totals
}

// SumUnpaidPaybacks sums only rows not yet PAID
func SumUnpaidPaybacks(rows []models.UserPayback) PaybackTotals {
	var totals PaybackTotals
	for _, row := range rows {
		if row.IsPaid() {
			continue
		}
		totals.Principal += row.Principal
		totals.Interest += row.Interest
		totals.Tax += row.Tax
		totals.Commission += row.Commission
	}
	return totals
}

// CountPaid counts rows in state PAID
func CountPaid(rows []models.UserPayback) int {
	count := 0
	for _, row := range rows {
		if row.IsPaid() {
			count++
		}
	}
	return count
}

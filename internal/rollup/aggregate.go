package rollup

import (
	"fmt"

	"github.com/buildledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostKey identifies one cost code on one job.
type CostKey struct {
	JobID      uuid.UUID
	CostCodeID uuid.UUID
}

// AmountMap sums amounts per cost key. A missing key means zero.
type AmountMap map[CostKey]decimal.Decimal

func (m AmountMap) Add(key CostKey, amount decimal.Decimal) {
	m[key] = m[key].Add(amount)
}

// Get returns the sum for the key, defaulting to zero.
func (m AmountMap) Get(key CostKey) decimal.Decimal {
	if amount, ok := m[key]; ok {
		return amount
	}

	return decimal.Zero
}

// actualAmounts sums posted general ledger debits per cost key.
func actualAmounts(debits []JournalDebit) AmountMap {
	actual := AmountMap{}

	for _, debit := range debits {
		actual.Add(CostKey{JobID: debit.JobID, CostCodeID: debit.CostCodeID}, debit.Amount)
	}

	return actual
}

// invoiceAmounts sums paid, unlinked invoices per cost key. These are
// only part of the actual cost in report scope; invoices linked to a
// subcontract or purchase order are already counted as committed cost.
func invoiceAmounts(invoices []models.Invoice) AmountMap {
	amounts := AmountMap{}

	for _, invoice := range invoices {
		amounts.Add(CostKey{JobID: invoice.JobID, CostCodeID: invoice.CostCodeID}, invoice.Amount)
	}

	return amounts
}

// committedAmounts sums subcontract cost distributions and purchase
// order amounts per cost key.
//
// A subcontract whose cost distribution cannot be parsed contributes
// nothing; this degrades the committed figure instead of aborting, and a
// warning is returned so the underreporting is visible to operators.
func committedAmounts(subcontracts []models.Subcontract, orders []models.PurchaseOrder) (AmountMap, []Warning) {
	committed := AmountMap{}
	var warnings []Warning

	for _, subcontract := range subcontracts {
		entries, err := subcontract.ParseCostDistribution()
		if err != nil {
			warnings = append(warnings, Warning{
				ResourceID: subcontract.ID,
				Message:    fmt.Sprintf("subcontract %s has a malformed cost distribution, its committed costs are not included", subcontract.ID),
			})
			continue
		}

		for _, entry := range entries {
			committed.Add(CostKey{JobID: subcontract.JobID, CostCodeID: entry.CostCodeID}, entry.Amount)
		}
	}

	for _, order := range orders {
		committed.Add(CostKey{JobID: order.JobID, CostCodeID: order.CostCodeID}, order.Amount)
	}

	return committed, warnings
}

package rollup

import (
	"errors"

	"github.com/buildledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// JournalDebit is a single posted general ledger debit, flattened to the
// job and cost code it is charged against.
type JournalDebit struct {
	JobID      uuid.UUID
	CostCodeID uuid.UUID
	Amount     decimal.Decimal
}

// Source provides the cost data a rollup is computed over.
//
// All methods accept a job ID to scope the read to one job. Passing
// uuid.Nil reads company-wide, which is used for the budget report.
// Sources are expected to apply the status filters themselves: only
// posted journal debits, no cancelled subcontracts or purchase orders,
// and only paid invoices that are linked to neither a subcontract nor a
// purchase order.
type Source interface {
	BudgetLines(jobID uuid.UUID) ([]models.BudgetLine, error)
	JournalDebits(jobID uuid.UUID) ([]JournalDebit, error)
	Subcontracts(jobID uuid.UUID) ([]models.Subcontract, error)
	PurchaseOrders(jobID uuid.UUID) ([]models.PurchaseOrder, error)
	UnlinkedPaidInvoices(jobID uuid.UUID) ([]models.Invoice, error)
}

// GormSource reads cost data from the database.
type GormSource struct {
	DB *gorm.DB
}

var _ Source = GormSource{}

func (s GormSource) BudgetLines(jobID uuid.UUID) ([]models.BudgetLine, error) {
	var lines []models.BudgetLine

	q := s.DB.Preload("CostCode")
	if jobID != uuid.Nil {
		q = q.Where("budget_lines.job_id = ?", jobID)
	}

	err := q.Find(&lines).Error
	if err != nil {
		return nil, err
	}

	return lines, nil
}

func (s GormSource) JournalDebits(jobID uuid.UUID) ([]JournalDebit, error) {
	var debits []JournalDebit

	q := s.DB.Model(&models.JournalEntryLine{}).
		Select("journal_entries.job_id AS job_id, journal_entry_lines.cost_code_id AS cost_code_id, journal_entry_lines.debit_amount AS amount").
		Joins("JOIN journal_entries ON journal_entries.id = journal_entry_lines.journal_entry_id AND journal_entries.deleted_at IS NULL").
		Where("journal_entries.status = ?", models.JournalEntryStatusPosted)

	if jobID != uuid.Nil {
		q = q.Where("journal_entries.job_id = ?", jobID)
	}

	err := q.Scan(&debits).Error
	if err != nil {
		return nil, err
	}

	return debits, nil
}

func (s GormSource) Subcontracts(jobID uuid.UUID) ([]models.Subcontract, error) {
	var subcontracts []models.Subcontract

	q := s.DB.Where("status != ?", models.SubcontractStatusCancelled)
	if jobID != uuid.Nil {
		q = q.Where("job_id = ?", jobID)
	}

	err := q.Find(&subcontracts).Error
	if err != nil {
		return nil, err
	}

	return subcontracts, nil
}

func (s GormSource) PurchaseOrders(jobID uuid.UUID) ([]models.PurchaseOrder, error) {
	var orders []models.PurchaseOrder

	q := s.DB.Where("status != ?", models.PurchaseOrderStatusCancelled)
	if jobID != uuid.Nil {
		q = q.Where("job_id = ?", jobID)
	}

	err := q.Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (s GormSource) UnlinkedPaidInvoices(jobID uuid.UUID) ([]models.Invoice, error) {
	var invoices []models.Invoice

	q := s.DB.
		Where("status = ?", models.InvoiceStatusPaid).
		Where("subcontract_id IS NULL").
		Where("purchase_order_id IS NULL")

	if jobID != uuid.Nil {
		q = q.Where("job_id = ?", jobID)
	}

	err := q.Find(&invoices).Error
	if err != nil {
		return nil, err
	}

	return invoices, nil
}

// EnsureBudgetLines inserts a zero budget line for every active cost
// code of the job that does not have one yet.
//
// The missing-line check and the inserts are not wrapped in a
// transaction. Two concurrent calls can both decide a line is missing;
// the unique index on (job_id, cost_code_id) then rejects the second
// insert, which is not treated as an error here.
func (s GormSource) EnsureBudgetLines(jobID uuid.UUID) error {
	var codes []models.CostCode
	err := s.DB.Where("archived = ?", false).Find(&codes).Error
	if err != nil {
		return err
	}

	var existing []models.BudgetLine
	err = s.DB.Where("job_id = ?", jobID).Find(&existing).Error
	if err != nil {
		return err
	}

	present := make(map[uuid.UUID]bool, len(existing))
	for _, line := range existing {
		present[line.CostCodeID] = true
	}

	for _, code := range codes {
		if present[code.ID] {
			continue
		}

		line := models.BudgetLine{
			JobID:          jobID,
			CostCodeID:     code.ID,
			BudgetedAmount: decimal.Zero,
			IsDynamic:      code.IsDynamicGroup,
		}

		err = s.DB.Create(&line).Error
		if err != nil && !errors.Is(err, models.ErrBudgetLineNotUnique) {
			return err
		}
	}

	return nil
}

package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetLine is the budget allocation for one cost code on one job.
//
// A budget line is either a plain line, a dynamic group parent
// (IsDynamic), or a dynamic group child (ParentBudgetID set). A line can
// never be both parent and child at the same time.
type BudgetLine struct {
	DefaultModel
	JobID          uuid.UUID       `json:"jobId" gorm:"uniqueIndex:budget_line_job_cost_code"`
	Job            Job             `json:"-"`
	CostCodeID     uuid.UUID       `json:"costCodeId" gorm:"uniqueIndex:budget_line_job_cost_code"`
	CostCode       CostCode        `json:"-"`
	BudgetedAmount decimal.Decimal `json:"budgetedAmount" gorm:"type:DECIMAL(20,8)"`
	IsDynamic      bool            `json:"isDynamic"`
	ParentBudgetID *uuid.UUID      `json:"parentBudgetId"`
}

// BeforeSave enforces the budget line invariants.
//
// The check of a child's budgeted amount against the parent group is
// performed against the parent's nominal budget, not against the group's
// remaining capacity at the time of the edit.
func (b *BudgetLine) BeforeSave(tx *gorm.DB) error {
	// Ensure that the parent ID is nil and not a pointer to a nil UUID
	if b.ParentBudgetID != nil && *b.ParentBudgetID == uuid.Nil {
		b.ParentBudgetID = nil
	}

	if b.BudgetedAmount.IsNegative() {
		return ErrBudgetLineNegativeAmount
	}

	if b.IsDynamic && b.ParentBudgetID != nil {
		return ErrBudgetLineDynamicWithParent
	}

	if b.ParentBudgetID != nil {
		var parent BudgetLine
		err := tx.First(&parent, *b.ParentBudgetID).Error
		if err != nil {
			return ErrBudgetLineParentNotFound
		}

		if !parent.IsDynamic {
			return ErrBudgetLineParentNotDynamic
		}

		if parent.JobID != b.JobID {
			return ErrBudgetLineParentDifferentJob
		}

		if b.BudgetedAmount.GreaterThan(parent.BudgetedAmount) {
			return ErrBudgetLineExceedsParent
		}
	}

	return nil
}

package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Job errors
var ErrJobNameNotUnique = errors.New("the job name must be unique")

// CostCode errors
var (
	ErrCostCodeCodeNotUnique = errors.New("the cost code must be unique")
	ErrCostCodeInvalidType   = errors.New("the cost code type must be one of material, labor, sub, equipment, other")
)

// BudgetLine errors
var (
	ErrBudgetLineNotUnique          = errors.New("there is already a budget line for this job and cost code")
	ErrBudgetLineNegativeAmount     = errors.New("the budgeted amount must not be negative")
	ErrBudgetLineDynamicWithParent  = errors.New("a dynamic group parent cannot have a parent budget line itself")
	ErrBudgetLineParentNotFound     = errors.New("no existing budget line with specified ParentBudgetID")
	ErrBudgetLineParentNotDynamic   = errors.New("the referenced parent budget line is not a dynamic group")
	ErrBudgetLineExceedsParent      = errors.New("the budgeted amount must not exceed the parent group's budgeted amount")
	ErrBudgetLineParentDifferentJob = errors.New("the parent budget line must belong to the same job")
)

// JournalEntry errors
var ErrJournalEntryInvalidStatus = errors.New("the journal entry status must be one of draft, posted, void")

// Subcontract errors
var (
	ErrSubcontractInvalidStatus  = errors.New("the subcontract status must be one of active, complete, cancelled")
	ErrCostDistributionMalformed = errors.New("the cost distribution of the subcontract could not be parsed")
)

// PurchaseOrder errors
var ErrPurchaseOrderInvalidStatus = errors.New("the purchase order status must be one of open, received, cancelled")

// Invoice errors
var ErrInvoiceInvalidStatus = errors.New("the invoice status must be one of pending, approved, paid, void")

package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// InvoiceStatus is the approval state of an AP invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending  InvoiceStatus = "pending"
	InvoiceStatusApproved InvoiceStatus = "approved"
	InvoiceStatusPaid     InvoiceStatus = "paid"
	InvoiceStatusVoid     InvoiceStatus = "void"
)

var invoiceStatuses = []InvoiceStatus{
	InvoiceStatusPending,
	InvoiceStatusApproved,
	InvoiceStatusPaid,
	InvoiceStatusVoid,
}

// Invoice is a vendor invoice charged against a job and cost code.
//
// An invoice may be linked to the subcontract or purchase order it bills
// against. Paid invoices without such a link count as actual cost in
// reporting; linked invoices do not, as their amount is already captured
// as committed cost on the linked resource.
type Invoice struct {
	DefaultModel
	JobID           uuid.UUID       `json:"jobId"`
	Job             Job             `json:"-"`
	CostCodeID      uuid.UUID       `json:"costCodeId"`
	CostCode        CostCode        `json:"-"`
	Vendor          string          `json:"vendor"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Status          InvoiceStatus   `json:"status"`
	SubcontractID   *uuid.UUID      `json:"subcontractId"`
	PurchaseOrderID *uuid.UUID      `json:"purchaseOrderId"`
}

func (i *Invoice) BeforeSave(_ *gorm.DB) error {
	i.Vendor = strings.TrimSpace(i.Vendor)

	// Ensure that unset references are nil and not pointers to nil UUIDs
	if i.SubcontractID != nil && *i.SubcontractID == uuid.Nil {
		i.SubcontractID = nil
	}

	if i.PurchaseOrderID != nil && *i.PurchaseOrderID == uuid.Nil {
		i.PurchaseOrderID = nil
	}

	if i.Status == "" {
		i.Status = InvoiceStatusPending
	}

	if !slices.Contains(invoiceStatuses, i.Status) {
		return ErrInvoiceInvalidStatus
	}

	return nil
}

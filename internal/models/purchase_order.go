package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// PurchaseOrderStatus is the lifecycle state of a purchase order.
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusOpen      PurchaseOrderStatus = "open"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "received"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "cancelled"
)

var purchaseOrderStatuses = []PurchaseOrderStatus{
	PurchaseOrderStatusOpen,
	PurchaseOrderStatusReceived,
	PurchaseOrderStatusCancelled,
}

// PurchaseOrder is an order with a vendor, charged against a single cost
// code. It counts as committed cost unless cancelled.
type PurchaseOrder struct {
	DefaultModel
	JobID      uuid.UUID           `json:"jobId"`
	Job        Job                 `json:"-"`
	CostCodeID uuid.UUID           `json:"costCodeId"`
	CostCode   CostCode            `json:"-"`
	Vendor     string              `json:"vendor"`
	Amount     decimal.Decimal     `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Status     PurchaseOrderStatus `json:"status"`
}

func (p *PurchaseOrder) BeforeSave(_ *gorm.DB) error {
	p.Vendor = strings.TrimSpace(p.Vendor)

	if p.Status == "" {
		p.Status = PurchaseOrderStatusOpen
	}

	if !slices.Contains(purchaseOrderStatuses, p.Status) {
		return ErrPurchaseOrderInvalidStatus
	}

	return nil
}

package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// SubcontractStatus is the lifecycle state of a subcontract.
type SubcontractStatus string

const (
	SubcontractStatusActive    SubcontractStatus = "active"
	SubcontractStatusComplete  SubcontractStatus = "complete"
	SubcontractStatusCancelled SubcontractStatus = "cancelled"
)

var subcontractStatuses = []SubcontractStatus{
	SubcontractStatusActive,
	SubcontractStatusComplete,
	SubcontractStatusCancelled,
}

// Subcontract is a contract with a vendor for a job. Its contract amount
// is distributed over cost codes via the CostDistribution column and
// counts as committed cost unless the subcontract is cancelled.
type Subcontract struct {
	DefaultModel
	JobID            uuid.UUID         `json:"jobId"`
	Job              Job               `json:"-"`
	Vendor           string            `json:"vendor"`
	ContractAmount   decimal.Decimal   `json:"contractAmount" gorm:"type:DECIMAL(20,8)"`
	Status           SubcontractStatus `json:"status"`
	CostDistribution string            `json:"costDistribution"`
}

func (s *Subcontract) BeforeSave(_ *gorm.DB) error {
	s.Vendor = strings.TrimSpace(s.Vendor)
	s.CostDistribution = strings.TrimSpace(s.CostDistribution)

	if s.Status == "" {
		s.Status = SubcontractStatusActive
	}

	if !slices.Contains(subcontractStatuses, s.Status) {
		return ErrSubcontractInvalidStatus
	}

	return nil
}

// CostDistributionEntry is one cost code's share of a subcontract.
type CostDistributionEntry struct {
	CostCodeID uuid.UUID       `json:"costCodeId"`
	Amount     decimal.Decimal `json:"amount"`
}

// ParseCostDistribution normalizes the CostDistribution column into a
// list of entries.
//
// Historical data contains three shapes: a JSON array of entries, a JSON
// string that itself encodes such an array, and an object wrapping the
// array as {"items": [...]}. Anything else fails the parse; callers are
// expected to treat a failed parse as an empty distribution and report
// it, so that a malformed subcontract never aborts a rollup.
func (s Subcontract) ParseCostDistribution() ([]CostDistributionEntry, error) {
	raw := []byte(s.CostDistribution)
	if len(raw) == 0 {
		return nil, nil
	}

	// String-encoded arrays need one decode pass to unwrap
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		raw = []byte(encoded)
	}

	var entries []CostDistributionEntry
	if err := json.Unmarshal(raw, &entries); err == nil {
		return entries, nil
	}

	var wrapped struct {
		Items []CostDistributionEntry `json:"items"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Items != nil {
		return wrapped.Items, nil
	}

	return nil, ErrCostDistributionMalformed
}

package models

import (
	"strings"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// CostCodeType is the category of cost a cost code tracks.
type CostCodeType string

const (
	CostCodeTypeMaterial  CostCodeType = "material"
	CostCodeTypeLabor     CostCodeType = "labor"
	CostCodeTypeSub       CostCodeType = "sub"
	CostCodeTypeEquipment CostCodeType = "equipment"
	CostCodeTypeOther     CostCodeType = "other"
)

var costCodeTypes = []CostCodeType{
	CostCodeTypeMaterial,
	CostCodeTypeLabor,
	CostCodeTypeSub,
	CostCodeTypeEquipment,
	CostCodeTypeOther,
}

// CostCode identifies a category of cost within a job.
//
// Codes are dot-delimited and hierarchical, e.g. "05.01" is a cost code
// below the "05" base. A cost code marked as a dynamic group shares its
// budget allocation across the child budget lines referencing it.
type CostCode struct {
	DefaultModel
	Code           string       `json:"code" gorm:"uniqueIndex"`
	Description    string       `json:"description"`
	Type           CostCodeType `json:"type"`
	IsDynamicGroup bool         `json:"isDynamicGroup"`
	Archived       bool         `json:"archived"`
}

func (c *CostCode) BeforeSave(_ *gorm.DB) error {
	c.Code = strings.TrimSpace(c.Code)
	c.Description = strings.TrimSpace(c.Description)

	if c.Type == "" {
		c.Type = CostCodeTypeOther
	}

	if !slices.Contains(costCodeTypes, c.Type) {
		return ErrCostCodeInvalidType
	}

	return nil
}

// Base returns the numeric prefix of the code, up to the first dot.
// Cost codes sharing a base belong to the same visual grouping.
func (c CostCode) Base() string {
	base, _, _ := strings.Cut(c.Code, ".")
	return base
}

package v1

import (
	"github.com/buildledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// CostCodeEditable represents all user configurable parameters of a cost code
type CostCodeEditable struct {
	Code           string              `json:"code" example:"05.01" default:""`                     // Dot-delimited hierarchical code
	Description    string              `json:"description" example:"Concrete formwork" default:""`  // Description of the cost code
	Type           models.CostCodeType `json:"type" example:"material" default:"other"`             // One of material, labor, sub, equipment, other
	IsDynamicGroup bool                `json:"isDynamicGroup" example:"false" default:"false"`      // Does this cost code pool its budget across child lines?
	Archived       bool                `json:"archived" example:"false" default:"false"`            // Is the cost code archived?
}

func (editable CostCodeEditable) model() models.CostCode {
	return models.CostCode{
		Code:           editable.Code,
		Description:    editable.Description,
		Type:           editable.Type,
		IsDynamicGroup: editable.IsDynamicGroup,
		Archived:       editable.Archived,
	}
}

type CostCodeLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/cost-codes/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // The cost code itself
}

type CostCode struct {
	models.DefaultModel
	CostCodeEditable
	Links CostCodeLinks `json:"links"`
}

func newCostCode(c *gin.Context, model models.CostCode) CostCode {
	url := c.GetString(string(models.DBContextURL))

	return CostCode{
		DefaultModel: model.DefaultModel,
		CostCodeEditable: CostCodeEditable{
			Code:           model.Code,
			Description:    model.Description,
			Type:           model.Type,
			IsDynamicGroup: model.IsDynamicGroup,
			Archived:       model.Archived,
		},
		Links: CostCodeLinks{
			Self: url + "/v1/cost-codes/" + model.ID.String(),
		},
	}
}

type CostCodeListResponse struct {
	Data       []CostCode  `json:"data"`                                                          // List of cost codes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CostCodeCreateResponse struct {
	Data  []CostCodeResponse `json:"data"`                                                          // List of the created cost codes or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *CostCodeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CostCodeResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CostCodeResponse struct {
	Data  *CostCode `json:"data"`                                                          // Data for the cost code
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CostCodeQueryFilter struct {
	Code           string              `form:"code" filterField:"false"`   // By code prefix
	Type           models.CostCodeType `form:"type"`                       // By type
	IsDynamicGroup bool                `form:"dynamicGroup"`               // Dynamic group cost codes only
	Archived       bool                `form:"archived"`                   // Is the cost code archived?
	Search         string              `form:"search" filterField:"false"` // By string in code or description
	Offset         uint                `form:"offset" filterField:"false"` // The offset of the first cost code returned. Defaults to 0.
	Limit          int                 `form:"limit" filterField:"false"`  // Maximum number of cost codes to return. Defaults to 50.
}

func (f CostCodeQueryFilter) model() models.CostCode {
	return models.CostCode{
		Type:           f.Type,
		IsDynamicGroup: f.IsDynamicGroup,
		Archived:       f.Archived,
	}
}

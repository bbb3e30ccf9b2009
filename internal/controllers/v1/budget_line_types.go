package v1

import (
	"github.com/buildledger/backend/internal/models"
	bl_uuid "github.com/buildledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetLineEditable represents all user configurable parameters of a budget line
type BudgetLineEditable struct {
	JobID          uuid.UUID       `json:"jobId" example:"d85101f4-a073-4627-89fd-ff24e892c976"`          // ID of the job
	CostCodeID     uuid.UUID       `json:"costCodeId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`     // ID of the cost code
	BudgetedAmount decimal.Decimal `json:"budgetedAmount" example:"10000" default:"0"`                    // Budget allocated to the cost code
	IsDynamic      bool            `json:"isDynamic" example:"false" default:"false"`                     // Is this line a dynamic group parent?
	ParentBudgetID *uuid.UUID      `json:"parentBudgetId" example:"b2f59bbc-3f9b-4929-84e0-9832467c7c6a"` // ID of the dynamic group parent line, for children
}

func (editable BudgetLineEditable) model() models.BudgetLine {
	return models.BudgetLine{
		JobID:          editable.JobID,
		CostCodeID:     editable.CostCodeID,
		BudgetedAmount: editable.BudgetedAmount,
		IsDynamic:      editable.IsDynamic,
		ParentBudgetID: editable.ParentBudgetID,
	}
}

type BudgetLineLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budget-lines/b2f59bbc-3f9b-4929-84e0-9832467c7c6a"` // The budget line itself
	Job  string `json:"job" example:"https://example.com/api/v1/jobs/d85101f4-a073-4627-89fd-ff24e892c976"`          // The job this line belongs to
}

type BudgetLine struct {
	models.DefaultModel
	BudgetLineEditable
	Links BudgetLineLinks `json:"links"`
}

func newBudgetLine(c *gin.Context, model models.BudgetLine) BudgetLine {
	url := c.GetString(string(models.DBContextURL))

	return BudgetLine{
		DefaultModel: model.DefaultModel,
		BudgetLineEditable: BudgetLineEditable{
			JobID:          model.JobID,
			CostCodeID:     model.CostCodeID,
			BudgetedAmount: model.BudgetedAmount,
			IsDynamic:      model.IsDynamic,
			ParentBudgetID: model.ParentBudgetID,
		},
		Links: BudgetLineLinks{
			Self: url + "/v1/budget-lines/" + model.ID.String(),
			Job:  url + "/v1/jobs/" + model.JobID.String(),
		},
	}
}

type BudgetLineListResponse struct {
	Data       []BudgetLine `json:"data"`                                                          // List of budget lines
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type BudgetLineCreateResponse struct {
	Data  []BudgetLineResponse `json:"data"`                                                          // List of the created budget lines or their respective error
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *BudgetLineCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, BudgetLineResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetLineResponse struct {
	Data  *BudgetLine `json:"data"`                                                          // Data for the budget line
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetLineQueryFilter struct {
	JobID          bl_uuid.UUID `form:"job"`                        // By ID of the job
	CostCodeID     bl_uuid.UUID `form:"costCode"`                   // By ID of the cost code
	IsDynamic      bool         `form:"dynamic"`                    // Dynamic group parents only
	ParentBudgetID bl_uuid.UUID `form:"parent" filterField:"false"` // By ID of the dynamic group parent
	Offset         uint         `form:"offset" filterField:"false"` // The offset of the first budget line returned. Defaults to 0.
	Limit          int          `form:"limit" filterField:"false"`  // Maximum number of budget lines to return. Defaults to 50.
}

func (f BudgetLineQueryFilter) model() models.BudgetLine {
	return models.BudgetLine{
		JobID:      f.JobID.UUID,
		CostCodeID: f.CostCodeID.UUID,
		IsDynamic:  f.IsDynamic,
	}
}

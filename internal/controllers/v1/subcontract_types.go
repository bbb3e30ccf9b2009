package v1

import (
	"github.com/buildledger/backend/internal/models"
	bl_uuid "github.com/buildledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubcontractEditable represents all user configurable parameters of a subcontract
type SubcontractEditable struct {
	JobID            uuid.UUID                `json:"jobId" example:"d85101f4-a073-4627-89fd-ff24e892c976"`                                     // ID of the job
	Vendor           string                   `json:"vendor" example:"Acme Mechanical" default:""`                                              // Vendor the subcontract is with
	ContractAmount   decimal.Decimal          `json:"contractAmount" example:"185000" default:"0"`                                              // Total contract amount
	Status           models.SubcontractStatus `json:"status" example:"active" default:"active"`                                                 // One of active, complete, cancelled
	CostDistribution string                   `json:"costDistribution" example:"[{\"costCodeId\":\"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2\",\"amount\":185000}]" default:""` // JSON distribution of the contract amount over cost codes
}

func (editable SubcontractEditable) model() models.Subcontract {
	return models.Subcontract{
		JobID:            editable.JobID,
		Vendor:           editable.Vendor,
		ContractAmount:   editable.ContractAmount,
		Status:           editable.Status,
		CostDistribution: editable.CostDistribution,
	}
}

type SubcontractLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/subcontracts/9a2a7ed6-9e49-44a1-8ffe-ae48d0ed0261"` // The subcontract itself
	Job  string `json:"job" example:"https://example.com/api/v1/jobs/d85101f4-a073-4627-89fd-ff24e892c976"`          // The job this subcontract belongs to
}

type Subcontract struct {
	models.DefaultModel
	SubcontractEditable
	Links SubcontractLinks `json:"links"`
}

func newSubcontract(c *gin.Context, model models.Subcontract) Subcontract {
	url := c.GetString(string(models.DBContextURL))

	return Subcontract{
		DefaultModel: model.DefaultModel,
		SubcontractEditable: SubcontractEditable{
			JobID:            model.JobID,
			Vendor:           model.Vendor,
			ContractAmount:   model.ContractAmount,
			Status:           model.Status,
			CostDistribution: model.CostDistribution,
		},
		Links: SubcontractLinks{
			Self: url + "/v1/subcontracts/" + model.ID.String(),
			Job:  url + "/v1/jobs/" + model.JobID.String(),
		},
	}
}

type SubcontractListResponse struct {
	Data       []Subcontract `json:"data"`                                                          // List of subcontracts
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type SubcontractCreateResponse struct {
	Data  []SubcontractResponse `json:"data"`                                                          // List of the created subcontracts or their respective error
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *SubcontractCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, SubcontractResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SubcontractResponse struct {
	Data  *Subcontract `json:"data"`                                                          // Data for the subcontract
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SubcontractQueryFilter struct {
	JobID  bl_uuid.UUID             `form:"job"`                        // By ID of the job
	Vendor string                   `form:"vendor" filterField:"false"` // By vendor
	Status models.SubcontractStatus `form:"status"`                     // By status
	Offset uint                     `form:"offset" filterField:"false"` // The offset of the first subcontract returned. Defaults to 0.
	Limit  int                      `form:"limit" filterField:"false"`  // Maximum number of subcontracts to return. Defaults to 50.
}

func (f SubcontractQueryFilter) model() models.Subcontract {
	return models.Subcontract{
		JobID:  f.JobID.UUID,
		Status: f.Status,
	}
}

package v1

import (
	"github.com/buildledger/backend/internal/models"
	bl_uuid "github.com/buildledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceEditable represents all user configurable parameters of an invoice
type InvoiceEditable struct {
	JobID           uuid.UUID            `json:"jobId" example:"d85101f4-a073-4627-89fd-ff24e892c976"`                // ID of the job
	CostCodeID      uuid.UUID            `json:"costCodeId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`           // ID of the cost code this invoice is charged against
	Vendor          string               `json:"vendor" example:"Acme Mechanical" default:""`                         // Vendor the invoice was received from
	Amount          decimal.Decimal      `json:"amount" example:"4280.50" default:"0"`                                // Invoice amount
	Status          models.InvoiceStatus `json:"status" example:"pending" default:"pending"`                          // One of pending, approved, paid, void
	SubcontractID   *uuid.UUID           `json:"subcontractId" example:"9a2a7ed6-9e49-44a1-8ffe-ae48d0ed0261"`        // ID of the subcontract this invoice bills against. Can be empty.
	PurchaseOrderID *uuid.UUID           `json:"purchaseOrderId" example:"c1b96a52-0f5e-4bd9-a644-9b0995b121cb"`      // ID of the purchase order this invoice bills against. Can be empty.
}

func (editable InvoiceEditable) model() models.Invoice {
	return models.Invoice{
		JobID:           editable.JobID,
		CostCodeID:      editable.CostCodeID,
		Vendor:          editable.Vendor,
		Amount:          editable.Amount,
		Status:          editable.Status,
		SubcontractID:   editable.SubcontractID,
		PurchaseOrderID: editable.PurchaseOrderID,
	}
}

type InvoiceLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/invoices/6f8e2a0b-97ab-4a65-a1a3-87d2a1d5ebc6"`       // The invoice itself
	Job      string `json:"job" example:"https://example.com/api/v1/jobs/d85101f4-a073-4627-89fd-ff24e892c976"`            // The job this invoice belongs to
	CostCode string `json:"costCode" example:"https://example.com/api/v1/cost-codes/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // The cost code this invoice is charged against
}

type Invoice struct {
	models.DefaultModel
	InvoiceEditable
	Links InvoiceLinks `json:"links"`
}

func newInvoice(c *gin.Context, model models.Invoice) Invoice {
	url := c.GetString(string(models.DBContextURL))

	return Invoice{
		DefaultModel: model.DefaultModel,
		InvoiceEditable: InvoiceEditable{
			JobID:           model.JobID,
			CostCodeID:      model.CostCodeID,
			Vendor:          model.Vendor,
			Amount:          model.Amount,
			Status:          model.Status,
			SubcontractID:   model.SubcontractID,
			PurchaseOrderID: model.PurchaseOrderID,
		},
		Links: InvoiceLinks{
			Self:     url + "/v1/invoices/" + model.ID.String(),
			Job:      url + "/v1/jobs/" + model.JobID.String(),
			CostCode: url + "/v1/cost-codes/" + model.CostCodeID.String(),
		},
	}
}

type InvoiceListResponse struct {
	Data       []Invoice   `json:"data"`                                                          // List of invoices
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type InvoiceCreateResponse struct {
	Data  []InvoiceResponse `json:"data"`                                                          // List of the created invoices or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *InvoiceCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, InvoiceResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type InvoiceResponse struct {
	Data  *Invoice `json:"data"`                                                          // Data for the invoice
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type InvoiceQueryFilter struct {
	JobID      bl_uuid.UUID         `form:"job"`                        // By ID of the job
	CostCodeID bl_uuid.UUID         `form:"costCode"`                   // By ID of the cost code
	Vendor     string               `form:"vendor" filterField:"false"` // By vendor
	Status     models.InvoiceStatus `form:"status"`                     // By status
	Offset     uint                 `form:"offset" filterField:"false"` // The offset of the first invoice returned. Defaults to 0.
	Limit      int                  `form:"limit" filterField:"false"`  // Maximum number of invoices to return. Defaults to 50.
}

func (f InvoiceQueryFilter) model() models.Invoice {
	return models.Invoice{
		JobID:      f.JobID.UUID,
		CostCodeID: f.CostCodeID.UUID,
		Status:     f.Status,
	}
}

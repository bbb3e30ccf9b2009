package v1

import (
	"github.com/buildledger/backend/internal/models"
	bl_uuid "github.com/buildledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrderEditable represents all user configurable parameters of a purchase order
type PurchaseOrderEditable struct {
	JobID      uuid.UUID                  `json:"jobId" example:"d85101f4-a073-4627-89fd-ff24e892c976"`      // ID of the job
	CostCodeID uuid.UUID                  `json:"costCodeId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // ID of the cost code this order is charged against
	Vendor     string                     `json:"vendor" example:"Apex Lumber Supply" default:""`            // Vendor the order is placed with
	Amount     decimal.Decimal            `json:"amount" example:"12500" default:"0"`                        // Order amount
	Status     models.PurchaseOrderStatus `json:"status" example:"open" default:"open"`                      // One of open, received, cancelled
}

func (editable PurchaseOrderEditable) model() models.PurchaseOrder {
	return models.PurchaseOrder{
		JobID:      editable.JobID,
		CostCodeID: editable.CostCodeID,
		Vendor:     editable.Vendor,
		Amount:     editable.Amount,
		Status:     editable.Status,
	}
}

type PurchaseOrderLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/purchase-orders/c1b96a52-0f5e-4bd9-a644-9b0995b121cb"` // The purchase order itself
	Job      string `json:"job" example:"https://example.com/api/v1/jobs/d85101f4-a073-4627-89fd-ff24e892c976"`             // The job this order belongs to
	CostCode string `json:"costCode" example:"https://example.com/api/v1/cost-codes/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`  // The cost code this order is charged against
}

type PurchaseOrder struct {
	models.DefaultModel
	PurchaseOrderEditable
	Links PurchaseOrderLinks `json:"links"`
}

func newPurchaseOrder(c *gin.Context, model models.PurchaseOrder) PurchaseOrder {
	url := c.GetString(string(models.DBContextURL))

	return PurchaseOrder{
		DefaultModel: model.DefaultModel,
		PurchaseOrderEditable: PurchaseOrderEditable{
			JobID:      model.JobID,
			CostCodeID: model.CostCodeID,
			Vendor:     model.Vendor,
			Amount:     model.Amount,
			Status:     model.Status,
		},
		Links: PurchaseOrderLinks{
			Self:     url + "/v1/purchase-orders/" + model.ID.String(),
			Job:      url + "/v1/jobs/" + model.JobID.String(),
			CostCode: url + "/v1/cost-codes/" + model.CostCodeID.String(),
		},
	}
}

type PurchaseOrderListResponse struct {
	Data       []PurchaseOrder `json:"data"`                                                          // List of purchase orders
	Error      *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination     `json:"pagination"`                                                    // Pagination information
}

type PurchaseOrderCreateResponse struct {
	Data  []PurchaseOrderResponse `json:"data"`                                                          // List of the created purchase orders or their respective error
	Error *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *PurchaseOrderCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, PurchaseOrderResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PurchaseOrderResponse struct {
	Data  *PurchaseOrder `json:"data"`                                                          // Data for the purchase order
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PurchaseOrderQueryFilter struct {
	JobID      bl_uuid.UUID               `form:"job"`                        // By ID of the job
	CostCodeID bl_uuid.UUID               `form:"costCode"`                   // By ID of the cost code
	Vendor     string                     `form:"vendor" filterField:"false"` // By vendor
	Status     models.PurchaseOrderStatus `form:"status"`                     // By status
	Offset     uint                       `form:"offset" filterField:"false"` // The offset of the first purchase order returned. Defaults to 0.
	Limit      int                        `form:"limit" filterField:"false"`  // Maximum number of purchase orders to return. Defaults to 50.
}

func (f PurchaseOrderQueryFilter) model() models.PurchaseOrder {
	return models.PurchaseOrder{
		JobID:      f.JobID.UUID,
		CostCodeID: f.CostCodeID.UUID,
		Status:     f.Status,
	}
}

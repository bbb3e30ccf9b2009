package v1

import (
	"fmt"
	"net/http"

	"github.com/buildledger/backend/internal/httputil"
	"github.com/buildledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterPurchaseOrderRoutes registers the routes for purchase orders with
// the RouterGroup that is passed.
func RegisterPurchaseOrderRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPurchaseOrderList)
		r.GET("", GetPurchaseOrders)
		r.POST("", CreatePurchaseOrders)
	}

	// PurchaseOrder with ID
	{
		r.OPTIONS("/:id", OptionsPurchaseOrderDetail)
		r.GET("/:id", GetPurchaseOrder)
		r.PATCH("/:id", UpdatePurchaseOrder)
		r.DELETE("/:id", DeletePurchaseOrder)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			PurchaseOrders
// @Success		204
// @Router			/v1/purchase-orders [options]
func OptionsPurchaseOrderList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			PurchaseOrders
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/purchase-orders/{id} [options]
func OptionsPurchaseOrderDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.PurchaseOrder{})
}

// @Summary		Create purchase orders
// @Description	Creates new purchase orders
// @Tags			PurchaseOrders
// @Accept			json
// @Produce		json
// @Success		201				{object}	PurchaseOrderCreateResponse
// @Failure		400				{object}	PurchaseOrderCreateResponse
// @Failure		500				{object}	PurchaseOrderCreateResponse
// @Param			purchaseOrders	body		[]PurchaseOrderEditable	true	"PurchaseOrders"
// @Router			/v1/purchase-orders [post]
func CreatePurchaseOrders(c *gin.Context) {
	var editables []PurchaseOrderEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseOrderCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := PurchaseOrderCreateResponse{}

	for _, editable := range editables {
		order := editable.model()

		err := models.DB.Create(&order).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newPurchaseOrder(c, order)
		r.Data = append(r.Data, PurchaseOrderResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List purchase orders
// @Description	Returns a list of purchase orders
// @Tags			PurchaseOrders
// @Produce		json
// @Success		200	{object}	PurchaseOrderListResponse
// @Failure		400	{object}	PurchaseOrderListResponse
// @Failure		500	{object}	PurchaseOrderListResponse
// @Router			/v1/purchase-orders [get]
// @Param			job			query	string	false	"Filter by job ID"
// @Param			costCode	query	string	false	"Filter by cost code ID"
// @Param			vendor		query	string	false	"Filter by vendor"
// @Param			status		query	string	false	"Filter by status"
// @Param			offset		query	uint	false	"The offset of the first purchase order returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of purchase orders to return. Defaults to 50."
func GetPurchaseOrders(c *gin.Context) {
	var filter PurchaseOrderQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, PurchaseOrderListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("vendor ASC").
		Where(filter.model(), queryFields...)

	if filter.Vendor != "" {
		q = q.Where("vendor LIKE ?", fmt.Sprintf("%%%s%%", filter.Vendor))
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var orders []models.PurchaseOrder
	err := q.Find(&orders).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseOrderListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseOrderListResponse{
			Error: &e,
		})
		return
	}

	data := make([]PurchaseOrder, 0, len(orders))
	for _, order := range orders {
		data = append(data, newPurchaseOrder(c, order))
	}

	c.JSON(http.StatusOK, PurchaseOrderListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get purchase order
// @Description	Returns a specific purchase order
// @Tags			PurchaseOrders
// @Produce		json
// @Success		200	{object}	PurchaseOrderResponse
// @Failure		400	{object}	PurchaseOrderResponse
// @Failure		404	{object}	PurchaseOrderResponse
// @Failure		500	{object}	PurchaseOrderResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/purchase-orders/{id} [get]
func GetPurchaseOrder(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseOrderResponse{
			Error: &s,
		})
		return
	}

	var order models.PurchaseOrder
	err = models.DB.First(&order, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseOrderResponse{
			Error: &s,
		})
		return
	}

	data := newPurchaseOrder(c, order)
	c.JSON(http.StatusOK, PurchaseOrderResponse{Data: &data})
}

// @Summary		Update purchase order
// @Description	Update an existing purchase order. Only values to be updated need to be specified.
// @Tags			PurchaseOrders
// @Accept			json
// @Produce		json
// @Success		200				{object}	PurchaseOrderResponse
// @Failure		400				{object}	PurchaseOrderResponse
// @Failure		404				{object}	PurchaseOrderResponse
// @Failure		500				{object}	PurchaseOrderResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			purchaseOrder	body		PurchaseOrderEditable	true	"PurchaseOrder"
// @Router			/v1/purchase-orders/{id} [patch]
func UpdatePurchaseOrder(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseOrderResponse{
			Error: &s,
		})
		return
	}

	var order models.PurchaseOrder
	err = models.DB.First(&order, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseOrderResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PurchaseOrderEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseOrderResponse{
			Error: &s,
		})
		return
	}

	var data PurchaseOrderEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseOrderResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&order).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseOrderResponse{
			Error: &s,
		})
		return
	}

	r := newPurchaseOrder(c, order)
	c.JSON(http.StatusOK, PurchaseOrderResponse{Data: &r})
}

// @Summary		Delete purchase order
// @Description	Deletes a purchase order
// @Tags			PurchaseOrders
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/purchase-orders/{id} [delete]
func DeletePurchaseOrder(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var order models.PurchaseOrder
	err = models.DB.First(&order, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&order).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

package v1

import (
	"fmt"
	"net/http"

	"github.com/buildledger/backend/internal/httputil"
	"github.com/buildledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterSubcontractRoutes registers the routes for subcontracts with
// the RouterGroup that is passed.
func RegisterSubcontractRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSubcontractList)
		r.GET("", GetSubcontracts)
		r.POST("", CreateSubcontracts)
	}

	// Subcontract with ID
	{
		r.OPTIONS("/:id", OptionsSubcontractDetail)
		r.GET("/:id", GetSubcontract)
		r.PATCH("/:id", UpdateSubcontract)
		r.DELETE("/:id", DeleteSubcontract)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subcontracts
// @Success		204
// @Router			/v1/subcontracts [options]
func OptionsSubcontractList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subcontracts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subcontracts/{id} [options]
func OptionsSubcontractDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Subcontract{})
}

// @Summary		Create subcontracts
// @Description	Creates new subcontracts
// @Tags			Subcontracts
// @Accept			json
// @Produce		json
// @Success		201				{object}	SubcontractCreateResponse
// @Failure		400				{object}	SubcontractCreateResponse
// @Failure		500				{object}	SubcontractCreateResponse
// @Param			subcontracts	body		[]SubcontractEditable	true	"Subcontracts"
// @Router			/v1/subcontracts [post]
func CreateSubcontracts(c *gin.Context) {
	var editables []SubcontractEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubcontractCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SubcontractCreateResponse{}

	for _, editable := range editables {
		subcontract := editable.model()

		err := models.DB.Create(&subcontract).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newSubcontract(c, subcontract)
		r.Data = append(r.Data, SubcontractResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List subcontracts
// @Description	Returns a list of subcontracts
// @Tags			Subcontracts
// @Produce		json
// @Success		200	{object}	SubcontractListResponse
// @Failure		400	{object}	SubcontractListResponse
// @Failure		500	{object}	SubcontractListResponse
// @Router			/v1/subcontracts [get]
// @Param			job		query	string	false	"Filter by job ID"
// @Param			vendor	query	string	false	"Filter by vendor"
// @Param			status	query	string	false	"Filter by status"
// @Param			offset	query	uint	false	"The offset of the first subcontract returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of subcontracts to return. Defaults to 50."
func GetSubcontracts(c *gin.Context) {
	var filter SubcontractQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, SubcontractListResponse{
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

	var subcontracts []models.Subcontract
	err := q.Find(&subcontracts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubcontractListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubcontractListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Subcontract, 0, len(subcontracts))
	for _, subcontract := range subcontracts {
		data = append(data, newSubcontract(c, subcontract))
	}

	c.JSON(http.StatusOK, SubcontractListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get subcontract
// @Description	Returns a specific subcontract
// @Tags			Subcontracts
// @Produce		json
// @Success		200	{object}	SubcontractResponse
// @Failure		400	{object}	SubcontractResponse
// @Failure		404	{object}	SubcontractResponse
// @Failure		500	{object}	SubcontractResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subcontracts/{id} [get]
func GetSubcontract(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubcontractResponse{
			Error: &s,
		})
		return
	}

	var subcontract models.Subcontract
	err = models.DB.First(&subcontract, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubcontractResponse{
			Error: &s,
		})
		return
	}

	data := newSubcontract(c, subcontract)
	c.JSON(http.StatusOK, SubcontractResponse{Data: &data})
}

// @Summary		Update subcontract
// @Description	Update an existing subcontract. Only values to be updated need to be specified.
// @Tags			Subcontracts
// @Accept			json
// @Produce		json
// @Success		200			{object}	SubcontractResponse
// @Failure		400			{object}	SubcontractResponse
// @Failure		404			{object}	SubcontractResponse
// @Failure		500			{object}	SubcontractResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			subcontract	body		SubcontractEditable	true	"Subcontract"
// @Router			/v1/subcontracts/{id} [patch]
func UpdateSubcontract(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubcontractResponse{
			Error: &s,
		})
		return
	}

	var subcontract models.Subcontract
	err = models.DB.First(&subcontract, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubcontractResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SubcontractEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubcontractResponse{
			Error: &s,
		})
		return
	}

	var data SubcontractEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubcontractResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&subcontract).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubcontractResponse{
			Error: &s,
		})
		return
	}

	r := newSubcontract(c, subcontract)
	c.JSON(http.StatusOK, SubcontractResponse{Data: &r})
}

// @Summary		Delete subcontract
// @Description	Deletes a subcontract
// @Tags			Subcontracts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subcontracts/{id} [delete]
func DeleteSubcontract(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var subcontract models.Subcontract
	err = models.DB.First(&subcontract, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&subcontract).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

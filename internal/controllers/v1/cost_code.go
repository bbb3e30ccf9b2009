package v1

import (
	"fmt"
	"net/http"

	"github.com/buildledger/backend/internal/httputil"
	"github.com/buildledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterCostCodeRoutes registers the routes for cost codes with
// the RouterGroup that is passed.
func RegisterCostCodeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCostCodeList)
		r.GET("", GetCostCodes)
		r.POST("", CreateCostCodes)
	}

	// Cost code with ID
	{
		r.OPTIONS("/:id", OptionsCostCodeDetail)
		r.GET("/:id", GetCostCode)
		r.PATCH("/:id", UpdateCostCode)
		r.DELETE("/:id", DeleteCostCode)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CostCodes
// @Success		204
// @Router			/v1/cost-codes [options]
func OptionsCostCodeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CostCodes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cost-codes/{id} [options]
func OptionsCostCodeDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.CostCode{})
}

// @Summary		Create cost codes
// @Description	Creates new cost codes
// @Tags			CostCodes
// @Accept			json
// @Produce		json
// @Success		201			{object}	CostCodeCreateResponse
// @Failure		400			{object}	CostCodeCreateResponse
// @Failure		500			{object}	CostCodeCreateResponse
// @Param			costCodes	body		[]CostCodeEditable	true	"Cost codes"
// @Router			/v1/cost-codes [post]
func CreateCostCodes(c *gin.Context) {
	var editables []CostCodeEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CostCodeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CostCodeCreateResponse{}

	for _, editable := range editables {
		costCode := editable.model()

		err := models.DB.Create(&costCode).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCostCode(c, costCode)
		r.Data = append(r.Data, CostCodeResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List cost codes
// @Description	Returns a list of cost codes
// @Tags			CostCodes
// @Produce		json
// @Success		200	{object}	CostCodeListResponse
// @Failure		500	{object}	CostCodeListResponse
// @Router			/v1/cost-codes [get]
// @Param			code			query	string	false	"Filter by code prefix"
// @Param			type			query	string	false	"Filter by type"
// @Param			dynamicGroup	query	bool	false	"Dynamic group cost codes only"
// @Param			archived		query	bool	false	"Is the cost code archived?"
// @Param			search			query	string	false	"Search for this text in code and description"
// @Param			offset			query	uint	false	"The offset of the first cost code returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of cost codes to return. Defaults to 50."
func GetCostCodes(c *gin.Context) {
	var filter CostCodeQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("code ASC").
		Where(filter.model(), queryFields...)

	if filter.Code != "" {
		q = q.Where("code LIKE ?", fmt.Sprintf("%s%%", filter.Code))
	}

	if filter.Search != "" {
		q = q.Where(
			models.DB.Where("code LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)).Or(
				models.DB.Where("description LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)),
			),
		)
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var costCodes []models.CostCode
	err := q.Find(&costCodes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CostCodeListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CostCodeListResponse{
			Error: &e,
		})
		return
	}

	data := make([]CostCode, 0, len(costCodes))
	for _, costCode := range costCodes {
		data = append(data, newCostCode(c, costCode))
	}

	c.JSON(http.StatusOK, CostCodeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get cost code
// @Description	Returns a specific cost code
// @Tags			CostCodes
// @Produce		json
// @Success		200	{object}	CostCodeResponse
// @Failure		400	{object}	CostCodeResponse
// @Failure		404	{object}	CostCodeResponse
// @Failure		500	{object}	CostCodeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cost-codes/{id} [get]
func GetCostCode(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CostCodeResponse{
			Error: &s,
		})
		return
	}

	var costCode models.CostCode
	err = models.DB.First(&costCode, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CostCodeResponse{
			Error: &s,
		})
		return
	}

	data := newCostCode(c, costCode)
	c.JSON(http.StatusOK, CostCodeResponse{Data: &data})
}

// @Summary		Update cost code
// @Description	Update an existing cost code. Only values to be updated need to be specified.
// @Tags			CostCodes
// @Accept			json
// @Produce		json
// @Success		200			{object}	CostCodeResponse
// @Failure		400			{object}	CostCodeResponse
// @Failure		404			{object}	CostCodeResponse
// @Failure		500			{object}	CostCodeResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			costCode	body		CostCodeEditable	true	"Cost code"
// @Router			/v1/cost-codes/{id} [patch]
func UpdateCostCode(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CostCodeResponse{
			Error: &s,
		})
		return
	}

	var costCode models.CostCode
	err = models.DB.First(&costCode, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CostCodeResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CostCodeEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CostCodeResponse{
			Error: &s,
		})
		return
	}

	var data CostCodeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CostCodeResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&costCode).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CostCodeResponse{
			Error: &s,
		})
		return
	}

	r := newCostCode(c, costCode)
	c.JSON(http.StatusOK, CostCodeResponse{Data: &r})
}

// @Summary		Delete cost code
// @Description	Deletes a cost code
// @Tags			CostCodes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cost-codes/{id} [delete]
func DeleteCostCode(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var costCode models.CostCode
	err = models.DB.First(&costCode, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&costCode).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

package v1

import (
	"net/http"

	"github.com/buildledger/backend/internal/httputil"
	"github.com/buildledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// RegisterBudgetLineRoutes registers the routes for budget lines with
// the RouterGroup that is passed.
func RegisterBudgetLineRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetLineList)
		r.GET("", GetBudgetLines)
		r.POST("", CreateBudgetLines)
	}

	// Budget line with ID
	{
		r.OPTIONS("/:id", OptionsBudgetLineDetail)
		r.GET("/:id", GetBudgetLine)
		r.PATCH("/:id", UpdateBudgetLine)
		r.DELETE("/:id", DeleteBudgetLine)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BudgetLines
// @Success		204
// @Router			/v1/budget-lines [options]
func OptionsBudgetLineList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BudgetLines
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-lines/{id} [options]
func OptionsBudgetLineDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.BudgetLine{})
}

// @Summary		Create budget lines
// @Description	Creates new budget lines
// @Tags			BudgetLines
// @Accept			json
// @Produce		json
// @Success		201			{object}	BudgetLineCreateResponse
// @Failure		400			{object}	BudgetLineCreateResponse
// @Failure		500			{object}	BudgetLineCreateResponse
// @Param			budgetLines	body		[]BudgetLineEditable	true	"Budget lines"
// @Router			/v1/budget-lines [post]
func CreateBudgetLines(c *gin.Context) {
	var editables []BudgetLineEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetLineCreateResponse{}

	for _, editable := range editables {
		budgetLine := editable.model()

		err := models.DB.Create(&budgetLine).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBudgetLine(c, budgetLine)
		r.Data = append(r.Data, BudgetLineResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List budget lines
// @Description	Returns a list of budget lines
// @Tags			BudgetLines
// @Produce		json
// @Success		200	{object}	BudgetLineListResponse
// @Failure		400	{object}	BudgetLineListResponse
// @Failure		500	{object}	BudgetLineListResponse
// @Router			/v1/budget-lines [get]
// @Param			job			query	string	false	"Filter by job ID"
// @Param			costCode	query	string	false	"Filter by cost code ID"
// @Param			dynamic		query	bool	false	"Dynamic group parents only"
// @Param			parent		query	string	false	"Filter by dynamic group parent ID"
// @Param			offset		query	uint	false	"The offset of the first budget line returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of budget lines to return. Defaults to 50."
func GetBudgetLines(c *gin.Context) {
	var filter BudgetLineQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, BudgetLineListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Joins("CostCode").
		Order("CostCode__code ASC").
		Where(filter.model(), queryFields...)

	if filter.ParentBudgetID.UUID != uuid.Nil {
		q = q.Where("budget_lines.parent_budget_id = ?", filter.ParentBudgetID.UUID)
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var budgetLines []models.BudgetLine
	err := q.Find(&budgetLines).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineListResponse{
			Error: &e,
		})
		return
	}

	data := make([]BudgetLine, 0, len(budgetLines))
	for _, budgetLine := range budgetLines {
		data = append(data, newBudgetLine(c, budgetLine))
	}

	c.JSON(http.StatusOK, BudgetLineListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get budget line
// @Description	Returns a specific budget line
// @Tags			BudgetLines
// @Produce		json
// @Success		200	{object}	BudgetLineResponse
// @Failure		400	{object}	BudgetLineResponse
// @Failure		404	{object}	BudgetLineResponse
// @Failure		500	{object}	BudgetLineResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-lines/{id} [get]
func GetBudgetLine(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &s,
		})
		return
	}

	var budgetLine models.BudgetLine
	err = models.DB.First(&budgetLine, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &s,
		})
		return
	}

	data := newBudgetLine(c, budgetLine)
	c.JSON(http.StatusOK, BudgetLineResponse{Data: &data})
}

// @Summary		Update budget line
// @Description	Update an existing budget line. Only values to be updated need to be specified.
// @Tags			BudgetLines
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetLineResponse
// @Failure		400			{object}	BudgetLineResponse
// @Failure		404			{object}	BudgetLineResponse
// @Failure		500			{object}	BudgetLineResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budgetLine	body		BudgetLineEditable	true	"Budget line"
// @Router			/v1/budget-lines/{id} [patch]
func UpdateBudgetLine(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &s,
		})
		return
	}

	var budgetLine models.BudgetLine
	err = models.DB.First(&budgetLine, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetLineEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &s,
		})
		return
	}

	var data BudgetLineEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&budgetLine).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &s,
		})
		return
	}

	r := newBudgetLine(c, budgetLine)
	c.JSON(http.StatusOK, BudgetLineResponse{Data: &r})
}

// @Summary		Delete budget line
// @Description	Deletes a budget line
// @Tags			BudgetLines
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-lines/{id} [delete]
func DeleteBudgetLine(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var budgetLine models.BudgetLine
	err = models.DB.First(&budgetLine, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&budgetLine).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

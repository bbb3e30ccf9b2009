package v1

import (
	"net/http"

	"github.com/buildledger/backend/internal/httputil"
	"github.com/buildledger/backend/internal/models"
	"github.com/buildledger/backend/internal/rollup"
	bl_uuid "github.com/buildledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/budget", OptionsBudgetReport)
	r.GET("/budget", GetBudgetReport)
}

// BudgetResponse wraps a budget rollup.
type BudgetResponse struct {
	Data  *rollup.Result `json:"data"`                                                          // The computed budget status
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// BudgetReportQueryFilter are the query parameters of the budget report.
type BudgetReportQueryFilter struct {
	JobID bl_uuid.UUID `form:"job"` // Limit the report to one job
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Jobs
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/jobs/{id}/budget [options]
func OptionsJobBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var job models.Job
	err = models.DB.First(&job, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get job budget status
// @Description	Computes the budget status of a job. Creates missing zero budget lines for active cost codes, then returns every line with its actual cost from posted journal entries, its committed cost from subcontracts and purchase orders, and the resulting variance.
// @Tags			Jobs
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/jobs/{id}/budget [get]
func GetJobBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var job models.Job
	err = models.DB.First(&job, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	source := rollup.GormSource{DB: models.DB}

	err = source.EnsureBudgetLines(job.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	result, err := rollup.Compute(source, job.ID, rollup.ScopeInteractive)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &result})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/budget [options]
func OptionsBudgetReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get budget report
// @Description	Computes the company-wide budget status over all jobs. Unlike the interactive job budget, the report also counts paid invoices that are not linked to a subcontract or purchase order as actual cost.
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			job	query		string	false	"Limit the report to one job"
// @Router			/v1/reports/budget [get]
func GetBudgetReport(c *gin.Context) {
	var filter BudgetReportQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{
			Error: &s,
		})
		return
	}

	source := rollup.GormSource{DB: models.DB}

	result, err := rollup.Compute(source, filter.JobID.UUID, rollup.ScopeReport)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &result})
}

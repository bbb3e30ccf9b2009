package v1

import (
	"net/http"

	"github.com/buildledger/backend/internal/httputil"
	"github.com/buildledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterJobRoutes registers the routes for jobs with
// the RouterGroup that is passed.
func RegisterJobRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsJobList)
		r.GET("", GetJobs)
		r.POST("", CreateJobs)
	}

	// Job with ID
	{
		r.OPTIONS("/:id", OptionsJobDetail)
		r.GET("/:id", GetJob)
		r.PATCH("/:id", UpdateJob)
		r.DELETE("/:id", DeleteJob)
		r.OPTIONS("/:id/budget", OptionsJobBudget)
		r.GET("/:id/budget", GetJobBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Jobs
// @Success		204
// @Router			/v1/jobs [options]
func OptionsJobList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Jobs
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/jobs/{id} [options]
func OptionsJobDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Job{})
}

// @Summary		Create jobs
// @Description	Creates new jobs
// @Tags			Jobs
// @Accept			json
// @Produce		json
// @Success		201		{object}	JobCreateResponse
// @Failure		400		{object}	JobCreateResponse
// @Failure		500		{object}	JobCreateResponse
// @Param			jobs	body		[]JobEditable	true	"Jobs"
// @Router			/v1/jobs [post]
func CreateJobs(c *gin.Context) {
	var editables []JobEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), JobCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := JobCreateResponse{}

	for _, editable := range editables {
		job := editable.model()

		err := models.DB.Create(&job).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newJob(c, job)
		r.Data = append(r.Data, JobResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List jobs
// @Description	Returns a list of jobs
// @Tags			Jobs
// @Produce		json
// @Success		200	{object}	JobListResponse
// @Failure		500	{object}	JobListResponse
// @Router			/v1/jobs [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			number		query	string	false	"Filter by job number"
// @Param			note		query	string	false	"Filter by note"
// @Param			archived	query	bool	false	"Is the job archived?"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first job returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of jobs to return. Defaults to 50."
func GetJobs(c *gin.Context) {
	var filter JobQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 jobs and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var jobs []models.Job
	err := q.Find(&jobs).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JobListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), JobListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Job, 0, len(jobs))
	for _, job := range jobs {
		data = append(data, newJob(c, job))
	}

	c.JSON(http.StatusOK, JobListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get job
// @Description	Returns a specific job
// @Tags			Jobs
// @Produce		json
// @Success		200	{object}	JobResponse
// @Failure		400	{object}	JobResponse
// @Failure		404	{object}	JobResponse
// @Failure		500	{object}	JobResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/jobs/{id} [get]
func GetJob(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JobResponse{
			Error: &s,
		})
		return
	}

	var job models.Job
	err = models.DB.First(&job, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JobResponse{
			Error: &s,
		})
		return
	}

	data := newJob(c, job)
	c.JSON(http.StatusOK, JobResponse{Data: &data})
}

// @Summary		Update job
// @Description	Update an existing job. Only values to be updated need to be specified.
// @Tags			Jobs
// @Accept			json
// @Produce		json
// @Success		200	{object}	JobResponse
// @Failure		400	{object}	JobResponse
// @Failure		404	{object}	JobResponse
// @Failure		500	{object}	JobResponse
// @Param			id	path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			job	body		JobEditable	true	"Job"
// @Router			/v1/jobs/{id} [patch]
func UpdateJob(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JobResponse{
			Error: &s,
		})
		return
	}

	var job models.Job
	err = models.DB.First(&job, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JobResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, JobEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JobResponse{
			Error: &s,
		})
		return
	}

	var data JobEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JobResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&job).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JobResponse{
			Error: &s,
		})
		return
	}

	r := newJob(c, job)
	c.JSON(http.StatusOK, JobResponse{Data: &r})
}

// @Summary		Delete job
// @Description	Deletes a job
// @Tags			Jobs
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/jobs/{id} [delete]
func DeleteJob(c *gin.Context) {
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

	err = models.DB.Delete(&job).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

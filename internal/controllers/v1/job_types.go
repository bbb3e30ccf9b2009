package v1

import (
	"github.com/buildledger/backend/internal/models"
	bl_uuid "github.com/buildledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// JobEditable represents all user configurable parameters of a job
type JobEditable struct {
	Name     string `json:"name" example:"Highway 12 Bridge" default:""`      // Name of the job
	Number   string `json:"number" example:"2025-017" default:""`             // Job number used on documents
	Note     string `json:"note" example:"Fixed price, 14 months" default:""` // Notes about the job
	Archived bool   `json:"archived" example:"true" default:"false"`          // Is the job archived?
}

func (editable JobEditable) model() models.Job {
	return models.Job{
		Name:     editable.Name,
		Number:   editable.Number,
		Note:     editable.Note,
		Archived: editable.Archived,
	}
}

type JobLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/jobs/d85101f4-a073-4627-89fd-ff24e892c976"`               // The job itself
	Budget      string `json:"budget" example:"https://example.com/api/v1/jobs/d85101f4-a073-4627-89fd-ff24e892c976/budget"`      // Budget status for this job
	BudgetLines string `json:"budgetLines" example:"https://example.com/api/v1/budget-lines?job=d85101f4-a073-4627-89fd-ff24e892c976"` // Budget lines for this job
}

type Job struct {
	models.DefaultModel
	JobEditable
	Links JobLinks `json:"links"`
}

func newJob(c *gin.Context, model models.Job) Job {
	url := c.GetString(string(models.DBContextURL))

	return Job{
		DefaultModel: model.DefaultModel,
		JobEditable: JobEditable{
			Name:     model.Name,
			Number:   model.Number,
			Note:     model.Note,
			Archived: model.Archived,
		},
		Links: JobLinks{
			Self:        url + "/v1/jobs/" + model.ID.String(),
			Budget:      url + "/v1/jobs/" + model.ID.String() + "/budget",
			BudgetLines: url + "/v1/budget-lines?job=" + model.ID.String(),
		},
	}
}

type JobListResponse struct {
	Data       []Job       `json:"data"`                                                          // List of jobs
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type JobCreateResponse struct {
	Data  []JobResponse `json:"data"`                                                          // List of the created jobs or their respective error
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (j *JobCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	j.Data = append(j.Data, JobResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type JobResponse struct {
	Data  *Job    `json:"data"`                                                          // Data for the job
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type JobQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Number   string `form:"number"`                     // By job number
	Note     string `form:"note" filterField:"false"`   // By note
	Archived bool   `form:"archived"`                   // Is the job archived?
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first job returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of jobs to return. Defaults to 50.
}

func (f JobQueryFilter) model() models.Job {
	return models.Job{
		Number:   f.Number,
		Archived: f.Archived,
	}
}

// URIJob is used for endpoints nested below a job.
type URIJob struct {
	JobID bl_uuid.UUID `uri:"jobId" binding:"required" format:"UUID"` // ID of the job
}

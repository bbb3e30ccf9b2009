package v1

import (
	"time"

	"github.com/buildledger/backend/internal/models"
	bl_uuid "github.com/buildledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JournalEntryLineEditable represents one debit/credit line of a journal entry
type JournalEntryLineEditable struct {
	CostCodeID   uuid.UUID       `json:"costCodeId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // ID of the cost code the line is charged against
	DebitAmount  decimal.Decimal `json:"debitAmount" example:"1250.50" default:"0"`                 // Debit amount
	CreditAmount decimal.Decimal `json:"creditAmount" example:"0" default:"0"`                      // Credit amount
	Memo         string          `json:"memo" example:"Rebar delivery" default:""`                  // Memo for the line
}

func (editable JournalEntryLineEditable) model() models.JournalEntryLine {
	return models.JournalEntryLine{
		CostCodeID:   editable.CostCodeID,
		DebitAmount:  editable.DebitAmount,
		CreditAmount: editable.CreditAmount,
		Memo:         editable.Memo,
	}
}

// JournalEntryEditable represents all user configurable parameters of a journal entry
type JournalEntryEditable struct {
	JobID     uuid.UUID                  `json:"jobId" example:"d85101f4-a073-4627-89fd-ff24e892c976"` // ID of the job
	Reference string                     `json:"reference" example:"JE-2025-0113" default:""`          // Reference used on documents
	Date      time.Time                  `json:"date" example:"2025-06-30T00:00:00Z"`                  // Date of the entry
	Status    models.JournalEntryStatus  `json:"status" example:"posted" default:"draft"`              // One of draft, posted, void
	Lines     []JournalEntryLineEditable `json:"lines"`                                                // Lines of the entry
}

func (editable JournalEntryEditable) model() models.JournalEntry {
	lines := make([]models.JournalEntryLine, 0, len(editable.Lines))
	for _, line := range editable.Lines {
		lines = append(lines, line.model())
	}

	return models.JournalEntry{
		JobID:     editable.JobID,
		Reference: editable.Reference,
		Date:      editable.Date,
		Status:    editable.Status,
		Lines:     lines,
	}
}

type JournalEntryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/journal-entries/a6ef24b0-2447-4cb5-b0b2-52e11e250bd7"` // The journal entry itself
	Job  string `json:"job" example:"https://example.com/api/v1/jobs/d85101f4-a073-4627-89fd-ff24e892c976"`             // The job this entry belongs to
}

type JournalEntry struct {
	models.DefaultModel
	JournalEntryEditable
	Links JournalEntryLinks `json:"links"`
}

func newJournalEntry(c *gin.Context, model models.JournalEntry) JournalEntry {
	url := c.GetString(string(models.DBContextURL))

	lines := make([]JournalEntryLineEditable, 0, len(model.Lines))
	for _, line := range model.Lines {
		lines = append(lines, JournalEntryLineEditable{
			CostCodeID:   line.CostCodeID,
			DebitAmount:  line.DebitAmount,
			CreditAmount: line.CreditAmount,
			Memo:         line.Memo,
		})
	}

	return JournalEntry{
		DefaultModel: model.DefaultModel,
		JournalEntryEditable: JournalEntryEditable{
			JobID:     model.JobID,
			Reference: model.Reference,
			Date:      model.Date,
			Status:    model.Status,
			Lines:     lines,
		},
		Links: JournalEntryLinks{
			Self: url + "/v1/journal-entries/" + model.ID.String(),
			Job:  url + "/v1/jobs/" + model.JobID.String(),
		},
	}
}

type JournalEntryListResponse struct {
	Data       []JournalEntry `json:"data"`                                                          // List of journal entries
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type JournalEntryCreateResponse struct {
	Data  []JournalEntryResponse `json:"data"`                                                          // List of the created journal entries or their respective error
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *JournalEntryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, JournalEntryResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type JournalEntryResponse struct {
	Data  *JournalEntry `json:"data"`                                                          // Data for the journal entry
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type JournalEntryQueryFilter struct {
	JobID     bl_uuid.UUID              `form:"job"`                        // By ID of the job
	Status    models.JournalEntryStatus `form:"status"`                     // By status
	Reference string                    `form:"reference"`                  // By reference
	Offset    uint                      `form:"offset" filterField:"false"` // The offset of the first journal entry returned. Defaults to 0.
	Limit     int                       `form:"limit" filterField:"false"`  // Maximum number of journal entries to return. Defaults to 50.
}

func (f JournalEntryQueryFilter) model() models.JournalEntry {
	return models.JournalEntry{
		JobID:     f.JobID.UUID,
		Status:    f.Status,
		Reference: f.Reference,
	}
}

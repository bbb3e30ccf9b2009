package v1

import (
	"net/http"

	"github.com/buildledger/backend/internal/httputil"
	"github.com/buildledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterJournalEntryRoutes registers the routes for journal entries
// with the RouterGroup that is passed.
func RegisterJournalEntryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsJournalEntryList)
		r.GET("", GetJournalEntries)
		r.POST("", CreateJournalEntries)
	}

	// Journal entry with ID
	{
		r.OPTIONS("/:id", OptionsJournalEntryDetail)
		r.GET("/:id", GetJournalEntry)
		r.PATCH("/:id", UpdateJournalEntry)
		r.DELETE("/:id", DeleteJournalEntry)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			JournalEntries
// @Success		204
// @Router			/v1/journal-entries [options]
func OptionsJournalEntryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			JournalEntries
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/journal-entries/{id} [options]
func OptionsJournalEntryDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.JournalEntry{})
}

// @Summary		Create journal entries
// @Description	Creates new journal entries with their lines
// @Tags			JournalEntries
// @Accept			json
// @Produce		json
// @Success		201				{object}	JournalEntryCreateResponse
// @Failure		400				{object}	JournalEntryCreateResponse
// @Failure		500				{object}	JournalEntryCreateResponse
// @Param			journalEntries	body		[]JournalEntryEditable	true	"Journal entries"
// @Router			/v1/journal-entries [post]
func CreateJournalEntries(c *gin.Context) {
	var editables []JournalEntryEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), JournalEntryCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := JournalEntryCreateResponse{}

	for _, editable := range editables {
		entry := editable.model()

		// The lines are created together with the entry
		err := models.DB.Create(&entry).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newJournalEntry(c, entry)
		r.Data = append(r.Data, JournalEntryResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List journal entries
// @Description	Returns a list of journal entries with their lines
// @Tags			JournalEntries
// @Produce		json
// @Success		200	{object}	JournalEntryListResponse
// @Failure		400	{object}	JournalEntryListResponse
// @Failure		500	{object}	JournalEntryListResponse
// @Router			/v1/journal-entries [get]
// @Param			job			query	string	false	"Filter by job ID"
// @Param			status		query	string	false	"Filter by status"
// @Param			reference	query	string	false	"Filter by reference"
// @Param			offset		query	uint	false	"The offset of the first journal entry returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of journal entries to return. Defaults to 50."
func GetJournalEntries(c *gin.Context) {
	var filter JournalEntryQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, JournalEntryListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Preload("Lines").
		Order("date DESC").
		Where(filter.model(), queryFields...)

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var entries []models.JournalEntry
	err := q.Find(&entries).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JournalEntryListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), JournalEntryListResponse{
			Error: &e,
		})
		return
	}

	data := make([]JournalEntry, 0, len(entries))
	for _, entry := range entries {
		data = append(data, newJournalEntry(c, entry))
	}

	c.JSON(http.StatusOK, JournalEntryListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get journal entry
// @Description	Returns a specific journal entry with its lines
// @Tags			JournalEntries
// @Produce		json
// @Success		200	{object}	JournalEntryResponse
// @Failure		400	{object}	JournalEntryResponse
// @Failure		404	{object}	JournalEntryResponse
// @Failure		500	{object}	JournalEntryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/journal-entries/{id} [get]
func GetJournalEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JournalEntryResponse{
			Error: &s,
		})
		return
	}

	var entry models.JournalEntry
	err = models.DB.Preload("Lines").First(&entry, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JournalEntryResponse{
			Error: &s,
		})
		return
	}

	data := newJournalEntry(c, entry)
	c.JSON(http.StatusOK, JournalEntryResponse{Data: &data})
}

// @Summary		Update journal entry
// @Description	Update an existing journal entry. Only values to be updated need to be specified. When lines are specified, they replace all existing lines of the entry.
// @Tags			JournalEntries
// @Accept			json
// @Produce		json
// @Success		200				{object}	JournalEntryResponse
// @Failure		400				{object}	JournalEntryResponse
// @Failure		404				{object}	JournalEntryResponse
// @Failure		500				{object}	JournalEntryResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			journalEntry	body		JournalEntryEditable	true	"Journal entry"
// @Router			/v1/journal-entries/{id} [patch]
func UpdateJournalEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JournalEntryResponse{
			Error: &s,
		})
		return
	}

	var entry models.JournalEntry
	err = models.DB.Preload("Lines").First(&entry, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JournalEntryResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, JournalEntryEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JournalEntryResponse{
			Error: &s,
		})
		return
	}

	var data JournalEntryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), JournalEntryResponse{
			Error: &s,
		})
		return
	}

	// Replace the lines when they are part of the request
	linesSet := false
	headerFields := make([]any, 0, len(updateFields))
	for _, field := range updateFields {
		if field == "Lines" {
			linesSet = true
			continue
		}
		headerFields = append(headerFields, field)
	}
	updateFields = headerFields

	if linesSet {
		err = models.DB.Where("journal_entry_id = ?", entry.ID).Delete(&models.JournalEntryLine{}).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), JournalEntryResponse{
				Error: &s,
			})
			return
		}

		lines := make([]models.JournalEntryLine, 0, len(data.Lines))
		for _, line := range data.Lines {
			l := line.model()
			l.JournalEntryID = entry.ID
			lines = append(lines, l)
		}

		if len(lines) > 0 {
			err = models.DB.Create(&lines).Error
			if err != nil {
				s := err.Error()
				c.JSON(status(err), JournalEntryResponse{
					Error: &s,
				})
				return
			}
		}

		entry.Lines = lines
	}

	if len(updateFields) > 0 {
		err = models.DB.Model(&entry).Select("", updateFields...).Omit("Lines").Updates(data.model()).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), JournalEntryResponse{
				Error: &s,
			})
			return
		}
	}

	r := newJournalEntry(c, entry)
	c.JSON(http.StatusOK, JournalEntryResponse{Data: &r})
}

// @Summary		Delete journal entry
// @Description	Deletes a journal entry and its lines
// @Tags			JournalEntries
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/journal-entries/{id} [delete]
func DeleteJournalEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var entry models.JournalEntry
	err = models.DB.First(&entry, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Where("journal_entry_id = ?", entry.ID).Delete(&models.JournalEntryLine{}).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&entry).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

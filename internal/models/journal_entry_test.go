package models_test

import (
	"time"

	"github.com/buildledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestJournalEntryDefaults() {
	entry := suite.createTestJournalEntry(models.JournalEntry{
		JobID:     suite.createTestJob(models.Job{}).ID,
		Reference: " AP-2024-0412 ",
	})

	assert.Equal(suite.T(), models.JournalEntryStatusDraft, entry.Status)
	assert.Equal(suite.T(), "AP-2024-0412", entry.Reference)
	assert.False(suite.T(), entry.Date.IsZero())
	assert.Equal(suite.T(), time.UTC, entry.Date.Location())
}

func (suite *TestSuiteStandard) TestJournalEntryInvalidStatus() {
	entry := models.JournalEntry{
		JobID:  suite.createTestJob(models.Job{}).ID,
		Status: "reverted",
	}
	err := models.DB.Create(&entry).Error

	assert.ErrorIs(suite.T(), err, models.ErrJournalEntryInvalidStatus)
}

func (suite *TestSuiteStandard) TestJournalEntryLines() {
	costCode := suite.createTestCostCode(models.CostCode{})

	entry := suite.createTestJournalEntry(models.JournalEntry{
		JobID:  suite.createTestJob(models.Job{}).ID,
		Status: models.JournalEntryStatusPosted,
		Lines: []models.JournalEntryLine{
			{
				CostCodeID:  costCode.ID,
				DebitAmount: decimal.NewFromInt(1500),
				Memo:        " Rebar delivery ",
			},
		},
	})

	var reloaded models.JournalEntry
	err := models.DB.Preload("Lines").First(&reloaded, entry.ID).Error
	require.NoError(suite.T(), err)

	require.Len(suite.T(), reloaded.Lines, 1)
	assert.Equal(suite.T(), entry.ID, reloaded.Lines[0].JournalEntryID)
	assert.Equal(suite.T(), "Rebar delivery", reloaded.Lines[0].Memo)
	assert.True(suite.T(), reloaded.Lines[0].DebitAmount.Equal(decimal.NewFromInt(1500)))
}

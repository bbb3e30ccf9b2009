package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// JournalEntryStatus is the posting state of a journal entry.
type JournalEntryStatus string

const (
	JournalEntryStatusDraft  JournalEntryStatus = "draft"
	JournalEntryStatusPosted JournalEntryStatus = "posted"
	JournalEntryStatusVoid   JournalEntryStatus = "void"
)

var journalEntryStatuses = []JournalEntryStatus{
	JournalEntryStatusDraft,
	JournalEntryStatusPosted,
	JournalEntryStatusVoid,
}

// JournalEntry is a general ledger entry for a job.
//
// Only posted entries contribute to actual cost.
type JournalEntry struct {
	DefaultModel
	JobID     uuid.UUID          `json:"jobId"`
	Job       Job                `json:"-"`
	Reference string             `json:"reference"`
	Date      time.Time          `json:"date"`
	Status    JournalEntryStatus `json:"status"`
	Lines     []JournalEntryLine `json:"lines"`
}

func (j *JournalEntry) BeforeSave(_ *gorm.DB) error {
	j.Reference = strings.TrimSpace(j.Reference)

	if j.Status == "" {
		j.Status = JournalEntryStatusDraft
	}

	if !slices.Contains(journalEntryStatuses, j.Status) {
		return ErrJournalEntryInvalidStatus
	}

	if j.Date.IsZero() {
		j.Date = time.Now().In(time.UTC)
	} else {
		j.Date = j.Date.In(time.UTC)
	}

	return nil
}

func (j *JournalEntry) AfterFind(tx *gorm.DB) error {
	err := j.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	j.Date = j.Date.In(time.UTC)
	return nil
}

// JournalEntryLine is a single debit/credit line of a journal entry,
// charged against a cost code.
type JournalEntryLine struct {
	DefaultModel
	JournalEntryID uuid.UUID       `json:"journalEntryId"`
	CostCodeID     uuid.UUID       `json:"costCodeId"`
	CostCode       CostCode        `json:"-"`
	DebitAmount    decimal.Decimal `json:"debitAmount" gorm:"type:DECIMAL(20,8)"`
	CreditAmount   decimal.Decimal `json:"creditAmount" gorm:"type:DECIMAL(20,8)"`
	Memo           string          `json:"memo"`
}

func (l *JournalEntryLine) BeforeSave(_ *gorm.DB) error {
	l.Memo = strings.TrimSpace(l.Memo)
	return nil
}

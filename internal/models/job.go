package models

import (
	"strings"

	"gorm.io/gorm"
)

// Job represents a construction job.
//
// A job is the highest level of organization in BuildLedger, all cost
// data references it directly or transitively.
type Job struct {
	DefaultModel
	Name     string `json:"name" gorm:"uniqueIndex"`
	Number   string `json:"number"`
	Note     string `json:"note"`
	Archived bool   `json:"archived"`
}

func (j *Job) BeforeSave(_ *gorm.DB) error {
	j.Name = strings.TrimSpace(j.Name)
	j.Number = strings.TrimSpace(j.Number)
	j.Note = strings.TrimSpace(j.Note)

	return nil
}

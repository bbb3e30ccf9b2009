package models_test

import (
	"github.com/buildledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestJobTrimWhitespace() {
	name := "  Riverside Apartments\t"
	number := " 24-017 "
	note := " GC contract signed 2024-03-01\t"

	job := suite.createTestJob(models.Job{
		Name:   name,
		Number: number,
		Note:   note,
	})

	assert.Equal(suite.T(), "Riverside Apartments", job.Name)
	assert.Equal(suite.T(), "24-017", job.Number)
	assert.Equal(suite.T(), "GC contract signed 2024-03-01", job.Note)
}

func (suite *TestSuiteStandard) TestJobNameUnique() {
	suite.createTestJob(models.Job{Name: "Riverside Apartments"})

	job := models.Job{Name: "Riverside Apartments"}
	err := models.DB.Create(&job).Error

	assert.ErrorIs(suite.T(), err, models.ErrJobNameNotUnique)
}

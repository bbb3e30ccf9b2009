package models_test

import (
	"github.com/buildledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestInvoiceDefaultStatus() {
	invoice := suite.createTestInvoice(models.Invoice{
		JobID:      suite.createTestJob(models.Job{}).ID,
		CostCodeID: suite.createTestCostCode(models.CostCode{}).ID,
	})

	assert.Equal(suite.T(), models.InvoiceStatusPending, invoice.Status)
}

func (suite *TestSuiteStandard) TestInvoiceInvalidStatus() {
	invoice := models.Invoice{
		JobID:  suite.createTestJob(models.Job{}).ID,
		Status: "disputed",
	}
	err := models.DB.Create(&invoice).Error

	assert.ErrorIs(suite.T(), err, models.ErrInvoiceInvalidStatus)
}

func (suite *TestSuiteStandard) TestInvoiceNilLinksNormalized() {
	subID := uuid.Nil
	poID := uuid.Nil

	invoice := suite.createTestInvoice(models.Invoice{
		JobID:           suite.createTestJob(models.Job{}).ID,
		CostCodeID:      suite.createTestCostCode(models.CostCode{}).ID,
		SubcontractID:   &subID,
		PurchaseOrderID: &poID,
	})

	assert.Nil(suite.T(), invoice.SubcontractID)
	assert.Nil(suite.T(), invoice.PurchaseOrderID)
}

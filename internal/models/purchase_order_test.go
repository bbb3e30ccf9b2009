package models_test

import (
	"github.com/buildledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestPurchaseOrderDefaultStatus() {
	order := suite.createTestPurchaseOrder(models.PurchaseOrder{
		JobID:      suite.createTestJob(models.Job{}).ID,
		CostCodeID: suite.createTestCostCode(models.CostCode{}).ID,
		Vendor:     " Apex Lumber Supply ",
	})

	assert.Equal(suite.T(), models.PurchaseOrderStatusOpen, order.Status)
	assert.Equal(suite.T(), "Apex Lumber Supply", order.Vendor)
}

func (suite *TestSuiteStandard) TestPurchaseOrderInvalidStatus() {
	order := models.PurchaseOrder{
		JobID:  suite.createTestJob(models.Job{}).ID,
		Status: "backordered",
	}
	err := models.DB.Create(&order).Error

	assert.ErrorIs(suite.T(), err, models.ErrPurchaseOrderInvalidStatus)
}

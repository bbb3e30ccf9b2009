package models_test

import (
	"testing"

	"github.com/buildledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetLineUnique() {
	job := suite.createTestJob(models.Job{})
	costCode := suite.createTestCostCode(models.CostCode{})

	suite.createTestBudgetLine(models.BudgetLine{JobID: job.ID, CostCodeID: costCode.ID})

	duplicate := models.BudgetLine{JobID: job.ID, CostCodeID: costCode.ID}
	err := models.DB.Create(&duplicate).Error

	assert.ErrorIs(suite.T(), err, models.ErrBudgetLineNotUnique)
}

func (suite *TestSuiteStandard) TestBudgetLineNegativeAmount() {
	job := suite.createTestJob(models.Job{})
	costCode := suite.createTestCostCode(models.CostCode{})

	budgetLine := models.BudgetLine{
		JobID:          job.ID,
		CostCodeID:     costCode.ID,
		BudgetedAmount: decimal.NewFromInt(-1),
	}
	err := models.DB.Create(&budgetLine).Error

	assert.ErrorIs(suite.T(), err, models.ErrBudgetLineNegativeAmount)
}

func (suite *TestSuiteStandard) TestBudgetLineNilParentNormalized() {
	job := suite.createTestJob(models.Job{})
	costCode := suite.createTestCostCode(models.CostCode{})

	parentID := uuid.Nil
	budgetLine := suite.createTestBudgetLine(models.BudgetLine{
		JobID:          job.ID,
		CostCodeID:     costCode.ID,
		ParentBudgetID: &parentID,
	})

	assert.Nil(suite.T(), budgetLine.ParentBudgetID)
}

func (suite *TestSuiteStandard) TestBudgetLineDynamicWithParent() {
	job := suite.createTestJob(models.Job{})
	parent := suite.createTestBudgetLine(models.BudgetLine{
		JobID:          job.ID,
		CostCodeID:     suite.createTestCostCode(models.CostCode{}).ID,
		BudgetedAmount: decimal.NewFromInt(1000),
		IsDynamic:      true,
	})

	budgetLine := models.BudgetLine{
		JobID:          job.ID,
		CostCodeID:     suite.createTestCostCode(models.CostCode{}).ID,
		IsDynamic:      true,
		ParentBudgetID: &parent.ID,
	}
	err := models.DB.Create(&budgetLine).Error

	assert.ErrorIs(suite.T(), err, models.ErrBudgetLineDynamicWithParent)
}

func (suite *TestSuiteStandard) TestBudgetLineParentChecks() {
	job := suite.createTestJob(models.Job{})
	otherJob := suite.createTestJob(models.Job{})

	parent := suite.createTestBudgetLine(models.BudgetLine{
		JobID:          job.ID,
		CostCodeID:     suite.createTestCostCode(models.CostCode{}).ID,
		BudgetedAmount: decimal.NewFromInt(10000),
		IsDynamic:      true,
	})

	plain := suite.createTestBudgetLine(models.BudgetLine{
		JobID:      job.ID,
		CostCodeID: suite.createTestCostCode(models.CostCode{}).ID,
	})

	missing := uuid.New()

	tests := []struct {
		name string
		line models.BudgetLine
		err  error
	}{
		{
			"parent does not exist",
			models.BudgetLine{JobID: job.ID, ParentBudgetID: &missing},
			models.ErrBudgetLineParentNotFound,
		},
		{
			"parent is not dynamic",
			models.BudgetLine{JobID: job.ID, ParentBudgetID: &plain.ID},
			models.ErrBudgetLineParentNotDynamic,
		},
		{
			"parent belongs to another job",
			models.BudgetLine{JobID: otherJob.ID, ParentBudgetID: &parent.ID},
			models.ErrBudgetLineParentDifferentJob,
		},
		{
			"child exceeds parent budget",
			models.BudgetLine{
				JobID:          job.ID,
				ParentBudgetID: &parent.ID,
				BudgetedAmount: decimal.NewFromInt(10001),
			},
			models.ErrBudgetLineExceedsParent,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			tt.line.CostCodeID = suite.createTestCostCode(models.CostCode{}).ID

			err := models.DB.Create(&tt.line).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetLineChildWithinParent() {
	job := suite.createTestJob(models.Job{})

	parent := suite.createTestBudgetLine(models.BudgetLine{
		JobID:          job.ID,
		CostCodeID:     suite.createTestCostCode(models.CostCode{}).ID,
		BudgetedAmount: decimal.NewFromInt(10000),
		IsDynamic:      true,
	})

	child := suite.createTestBudgetLine(models.BudgetLine{
		JobID:          job.ID,
		CostCodeID:     suite.createTestCostCode(models.CostCode{}).ID,
		BudgetedAmount: decimal.NewFromInt(10000),
		ParentBudgetID: &parent.ID,
	})

	require.NotNil(suite.T(), child.ParentBudgetID)
	assert.Equal(suite.T(), parent.ID, *child.ParentBudgetID)
}

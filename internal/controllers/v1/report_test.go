package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/buildledger/backend/internal/controllers/v1"
	"github.com/buildledger/backend/internal/models"
	"github.com/buildledger/backend/internal/rollup"
	"github.com/buildledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestJobBudgetOptions() {
	tests := []struct {
		name   string
		id     string // path at the budget endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Job with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Job exists", createTestJob(suite.T(), v1.JobEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("http://example.com/v1/jobs/%s/budget", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetReportOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/reports/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

// getJobBudget requests the budget status for a job and decodes the result.
func getJobBudget(t *testing.T, jobID uuid.UUID) rollup.Result {
	r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/jobs/%s/budget", jobID), "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Data)

	return *response.Data
}

// TestJobBudgetFails verifies the error cases of the job budget endpoint.
func (suite *TestSuiteStandard) TestJobBudgetFails() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Job with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/jobs/%s/budget", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestJobBudgetCreatesMissingLines verifies that requesting the budget
// status creates zero budget lines for active cost codes that have none.
func (suite *TestSuiteStandard) TestJobBudgetCreatesMissingLines() {
	job := createTestJob(suite.T(), v1.JobEditable{})

	_ = createTestCostCode(suite.T(), v1.CostCodeEditable{Code: "03.30"})
	_ = createTestCostCode(suite.T(), v1.CostCodeEditable{Code: "26.05", Archived: true})

	result := getJobBudget(suite.T(), job.Data.ID)

	// Only the active cost code gets a line
	require.Len(suite.T(), result.Lines, 1)
	assert.Equal(suite.T(), "03.30", result.Lines[0].Code)
	assert.True(suite.T(), result.Lines[0].BudgetedAmount.IsZero())
	assert.Equal(suite.T(), rollup.LineKindPlain, result.Lines[0].Kind)

	// The lines are persisted
	var re v1.BudgetLineListResponse
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/budget-lines?job=%s", job.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &re)
	assert.Len(suite.T(), re.Data, 1)
}

// TestJobBudgetVariance verifies actual and committed aggregation and the
// variance calculation for plain lines.
func (suite *TestSuiteStandard) TestJobBudgetVariance() {
	job := createTestJob(suite.T(), v1.JobEditable{})
	costCode := createTestCostCode(suite.T(), v1.CostCodeEditable{Code: "03.30"})

	_ = createTestBudgetLine(suite.T(), v1.BudgetLineEditable{
		JobID:          job.Data.ID,
		CostCodeID:     costCode.Data.ID,
		BudgetedAmount: decimal.NewFromInt(5000),
	})

	// Posted entries count, draft entries do not
	_ = createTestJournalEntry(suite.T(), v1.JournalEntryEditable{
		JobID:  job.Data.ID,
		Status: models.JournalEntryStatusPosted,
		Lines: []v1.JournalEntryLineEditable{
			{CostCodeID: costCode.Data.ID, DebitAmount: decimal.NewFromInt(1500)},
		},
	})
	_ = createTestJournalEntry(suite.T(), v1.JournalEntryEditable{
		JobID:  job.Data.ID,
		Status: models.JournalEntryStatusDraft,
		Lines: []v1.JournalEntryLineEditable{
			{CostCodeID: costCode.Data.ID, DebitAmount: decimal.NewFromInt(99999)},
		},
	})

	// Open orders count, cancelled orders do not
	_ = createTestPurchaseOrder(suite.T(), v1.PurchaseOrderEditable{
		JobID:      job.Data.ID,
		CostCodeID: costCode.Data.ID,
		Amount:     decimal.NewFromInt(500),
	})
	_ = createTestPurchaseOrder(suite.T(), v1.PurchaseOrderEditable{
		JobID:      job.Data.ID,
		CostCodeID: costCode.Data.ID,
		Amount:     decimal.NewFromInt(99999),
		Status:     models.PurchaseOrderStatusCancelled,
	})

	// Subcontract committed costs come from the cost distribution
	_ = createTestSubcontract(suite.T(), v1.SubcontractEditable{
		JobID:            job.Data.ID,
		ContractAmount:   decimal.NewFromInt(1000),
		CostDistribution: fmt.Sprintf(`[{"costCodeId":"%s","amount":1000}]`, costCode.Data.ID),
	})

	// A paid invoice without subcontract or purchase order is ignored in
	// the interactive budget
	_ = createTestInvoice(suite.T(), v1.InvoiceEditable{
		JobID:      job.Data.ID,
		CostCodeID: costCode.Data.ID,
		Amount:     decimal.NewFromInt(700),
		Status:     models.InvoiceStatusPaid,
	})

	result := getJobBudget(suite.T(), job.Data.ID)

	require.Len(suite.T(), result.Lines, 1)
	line := result.Lines[0]

	assert.True(suite.T(), line.Actual.Equal(decimal.NewFromInt(1500)), "actual is %s", line.Actual)
	assert.True(suite.T(), line.Committed.Equal(decimal.NewFromInt(1500)), "committed is %s", line.Committed)
	assert.True(suite.T(), line.Remaining.Equal(decimal.NewFromInt(2000)), "remaining is %s", line.Remaining)
	assert.True(suite.T(), line.PercentUsed.Equal(decimal.NewFromInt(60)), "percent used is %s", line.PercentUsed)
	assert.False(suite.T(), line.OverBudget)

	assert.True(suite.T(), result.Totals.Budgeted.Equal(decimal.NewFromInt(5000)))
	assert.True(suite.T(), result.Totals.Actual.Equal(decimal.NewFromInt(1500)))
	assert.True(suite.T(), result.Totals.Committed.Equal(decimal.NewFromInt(1500)))
	assert.True(suite.T(), result.Totals.Remaining.Equal(decimal.NewFromInt(2000)))

	assert.Empty(suite.T(), result.Warnings)
}

// TestJobBudgetDynamicGroup verifies that children of a dynamic group draw
// from the shared budget pool of the parent.
func (suite *TestSuiteStandard) TestJobBudgetDynamicGroup() {
	job := createTestJob(suite.T(), v1.JobEditable{})

	groupCode := createTestCostCode(suite.T(), v1.CostCodeEditable{Code: "20.00", IsDynamicGroup: true})
	childCode1 := createTestCostCode(suite.T(), v1.CostCodeEditable{Code: "20.01"})
	childCode2 := createTestCostCode(suite.T(), v1.CostCodeEditable{Code: "20.02"})

	parent := createTestBudgetLine(suite.T(), v1.BudgetLineEditable{
		JobID:          job.Data.ID,
		CostCodeID:     groupCode.Data.ID,
		BudgetedAmount: decimal.NewFromInt(10000),
		IsDynamic:      true,
	})

	_ = createTestBudgetLine(suite.T(), v1.BudgetLineEditable{
		JobID:          job.Data.ID,
		CostCodeID:     childCode1.Data.ID,
		ParentBudgetID: &parent.Data.ID,
	})
	_ = createTestBudgetLine(suite.T(), v1.BudgetLineEditable{
		JobID:          job.Data.ID,
		CostCodeID:     childCode2.Data.ID,
		ParentBudgetID: &parent.Data.ID,
	})

	_ = createTestJournalEntry(suite.T(), v1.JournalEntryEditable{
		JobID:  job.Data.ID,
		Status: models.JournalEntryStatusPosted,
		Lines: []v1.JournalEntryLineEditable{
			{CostCodeID: childCode1.Data.ID, DebitAmount: decimal.NewFromInt(3000)},
			{CostCodeID: childCode2.Data.ID, DebitAmount: decimal.NewFromInt(2000)},
		},
	})

	_ = createTestPurchaseOrder(suite.T(), v1.PurchaseOrderEditable{
		JobID:      job.Data.ID,
		CostCodeID: childCode1.Data.ID,
		Amount:     decimal.NewFromInt(1000),
	})
	_ = createTestPurchaseOrder(suite.T(), v1.PurchaseOrderEditable{
		JobID:      job.Data.ID,
		CostCodeID: childCode2.Data.ID,
		Amount:     decimal.NewFromInt(500),
	})

	result := getJobBudget(suite.T(), job.Data.ID)

	// Children follow their parent in the line order
	require.Len(suite.T(), result.Lines, 3)
	group := result.Lines[0]
	child1 := result.Lines[1]
	child2 := result.Lines[2]

	assert.Equal(suite.T(), rollup.LineKindGroup, group.Kind)
	assert.True(suite.T(), group.Actual.Equal(decimal.NewFromInt(5000)), "group actual is %s", group.Actual)
	assert.True(suite.T(), group.Committed.Equal(decimal.NewFromInt(1500)), "group committed is %s", group.Committed)
	assert.True(suite.T(), group.Remaining.Equal(decimal.NewFromInt(3500)), "group remaining is %s", group.Remaining)
	assert.True(suite.T(), group.PercentUsed.Equal(decimal.NewFromInt(65)), "group percent used is %s", group.PercentUsed)
	assert.False(suite.T(), group.OverBudget)

	// Children report their own spend, but the group's budget figures
	for _, child := range []rollup.StatusLine{child1, child2} {
		assert.Equal(suite.T(), rollup.LineKindChild, child.Kind)
		require.NotNil(suite.T(), child.ParentID)
		assert.Equal(suite.T(), parent.Data.ID, *child.ParentID)
		assert.True(suite.T(), child.BudgetedAmount.Equal(decimal.NewFromInt(10000)))
		assert.True(suite.T(), child.Remaining.Equal(decimal.NewFromInt(3500)))
	}

	assert.True(suite.T(), child1.Actual.Equal(decimal.NewFromInt(3000)))
	assert.True(suite.T(), child2.Actual.Equal(decimal.NewFromInt(2000)))

	// Children do not count into the budgeted total
	assert.True(suite.T(), result.Totals.Budgeted.Equal(decimal.NewFromInt(10000)))
	assert.True(suite.T(), result.Totals.Remaining.Equal(decimal.NewFromInt(3500)))
}

// TestJobBudgetWarnings verifies that defective resources produce warnings
// instead of aborting the rollup.
func (suite *TestSuiteStandard) TestJobBudgetWarnings() {
	job := createTestJob(suite.T(), v1.JobEditable{})
	costCode := createTestCostCode(suite.T(), v1.CostCodeEditable{Code: "03.30"})

	_ = createTestBudgetLine(suite.T(), v1.BudgetLineEditable{
		JobID:          job.Data.ID,
		CostCodeID:     costCode.Data.ID,
		BudgetedAmount: decimal.NewFromInt(5000),
	})

	sub := createTestSubcontract(suite.T(), v1.SubcontractEditable{
		JobID:            job.Data.ID,
		CostDistribution: `{"what":"ever"}`,
	})

	result := getJobBudget(suite.T(), job.Data.ID)

	require.Len(suite.T(), result.Lines, 1)
	assert.True(suite.T(), result.Lines[0].Committed.IsZero())

	require.Len(suite.T(), result.Warnings, 1)
	assert.Equal(suite.T(), sub.Data.ID, result.Warnings[0].ResourceID)
	assert.Contains(suite.T(), result.Warnings[0].Message, "malformed cost distribution")
}

// TestBudgetReport verifies the company-wide report and its handling of
// paid invoices that are not linked to a subcontract or purchase order.
func (suite *TestSuiteStandard) TestBudgetReport() {
	j1 := createTestJob(suite.T(), v1.JobEditable{})
	j2 := createTestJob(suite.T(), v1.JobEditable{})
	costCode := createTestCostCode(suite.T(), v1.CostCodeEditable{Code: "03.30"})

	_ = createTestBudgetLine(suite.T(), v1.BudgetLineEditable{
		JobID:          j1.Data.ID,
		CostCodeID:     costCode.Data.ID,
		BudgetedAmount: decimal.NewFromInt(5000),
	})
	_ = createTestBudgetLine(suite.T(), v1.BudgetLineEditable{
		JobID:          j2.Data.ID,
		CostCodeID:     costCode.Data.ID,
		BudgetedAmount: decimal.NewFromInt(2000),
	})

	_ = createTestJournalEntry(suite.T(), v1.JournalEntryEditable{
		JobID:  j1.Data.ID,
		Status: models.JournalEntryStatusPosted,
		Lines: []v1.JournalEntryLineEditable{
			{CostCodeID: costCode.Data.ID, DebitAmount: decimal.NewFromInt(1000)},
		},
	})

	// Counts as actual cost in the report
	_ = createTestInvoice(suite.T(), v1.InvoiceEditable{
		JobID:      j1.Data.ID,
		CostCodeID: costCode.Data.ID,
		Amount:     decimal.NewFromInt(700),
		Status:     models.InvoiceStatusPaid,
	})

	// Linked and unpaid invoices do not
	sub := createTestSubcontract(suite.T(), v1.SubcontractEditable{JobID: j1.Data.ID})
	_ = createTestInvoice(suite.T(), v1.InvoiceEditable{
		JobID:         j1.Data.ID,
		CostCodeID:    costCode.Data.ID,
		Amount:        decimal.NewFromInt(99999),
		Status:        models.InvoiceStatusPaid,
		SubcontractID: &sub.Data.ID,
	})
	_ = createTestInvoice(suite.T(), v1.InvoiceEditable{
		JobID:      j1.Data.ID,
		CostCodeID: costCode.Data.ID,
		Amount:     decimal.NewFromInt(99999),
		Status:     models.InvoiceStatusApproved,
	})

	tests := []struct {
		name     string
		query    string
		lines    int
		actual   decimal.Decimal
		budgeted decimal.Decimal
	}{
		{"All jobs", "", 2, decimal.NewFromInt(1700), decimal.NewFromInt(7000)},
		{"Job 1", fmt.Sprintf("job=%s", j1.Data.ID), 1, decimal.NewFromInt(1700), decimal.NewFromInt(5000)},
		{"Job 2", fmt.Sprintf("job=%s", j2.Data.ID), 1, decimal.Zero, decimal.NewFromInt(2000)},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/budget?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Data)

			assert.Len(t, response.Data.Lines, tt.lines)
			assert.True(t, response.Data.Totals.Actual.Equal(tt.actual), "actual is %s", response.Data.Totals.Actual)
			assert.True(t, response.Data.Totals.Budgeted.Equal(tt.budgeted), "budgeted is %s", response.Data.Totals.Budgeted)
		})
	}
}

// TestBudgetReportFails verifies the error cases of the report endpoint.
func (suite *TestSuiteStandard) TestBudgetReportFails() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Invalid job ID",
			func(t *testing.T) {
				r := test.Request(t, http.MethodGet, "http://example.com/v1/reports/budget?job=notaUUID", "")
				test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			},
		},
		{
			"DB closed",
			func(t *testing.T) {
				suite.CloseDB()

				r := test.Request(t, http.MethodGet, "http://example.com/v1/reports/budget", "")
				test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)

				var response v1.BudgetResponse
				test.DecodeResponse(t, &r, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			tt.test(t)
		})
	}
}

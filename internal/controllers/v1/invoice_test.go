package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "github.com/buildledger/backend/internal/controllers/v1"
	"github.com/buildledger/backend/internal/models"
	"github.com/buildledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestInvoice(t *testing.T, i v1.InvoiceEditable, expectedStatus ...int) v1.InvoiceResponse {
	if i.JobID == uuid.Nil {
		i.JobID = createTestJob(t, v1.JobEditable{}).Data.ID
	}

	if i.CostCodeID == uuid.Nil {
		i.CostCodeID = createTestCostCode(t, v1.CostCodeEditable{}).Data.ID
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.InvoiceEditable{i}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/invoices", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var invoice v1.InvoiceCreateResponse
	test.DecodeResponse(t, &r, &invoice)

	if r.Code == http.StatusCreated {
		return invoice.Data[0]
	}

	return v1.InvoiceResponse{}
}

// TestInvoicesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestInvoicesDBClosed() {
	j := createTestJob(suite.T(), v1.JobEditable{})
	c := createTestCostCode(suite.T(), v1.CostCodeEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestInvoice(t, v1.InvoiceEditable{JobID: j.Data.ID, CostCodeID: c.Data.ID}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/invoices", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.InvoiceListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestInvoicesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestInvoicesOptions() {
	tests := []struct {
		name   string
		id     string // path at the Invoices endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Invoice with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Invoice exists", createTestInvoice(suite.T(), v1.InvoiceEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/invoices", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestInvoicesGetSingle verifies that requests for the resource endpoints
// are handled correctly.
func (suite *TestSuiteStandard) TestInvoicesGetSingle() {
	i := createTestInvoice(suite.T(), v1.InvoiceEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Invoice", i.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Invoice with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/invoices/%s", tt.id), "")

			var invoice v1.InvoiceResponse
			test.DecodeResponse(t, &r, &invoice)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestInvoicesLinks verifies that subcontract and purchase order references
// are persisted and that a nil UUID reference is treated as unset.
func (suite *TestSuiteStandard) TestInvoicesLinks() {
	s := createTestSubcontract(suite.T(), v1.SubcontractEditable{})
	o := createTestPurchaseOrder(suite.T(), v1.PurchaseOrderEditable{})

	linked := createTestInvoice(suite.T(), v1.InvoiceEditable{
		SubcontractID: &s.Data.ID,
	})
	assert.Equal(suite.T(), s.Data.ID, *linked.Data.SubcontractID)
	assert.Nil(suite.T(), linked.Data.PurchaseOrderID)

	orderLinked := createTestInvoice(suite.T(), v1.InvoiceEditable{
		PurchaseOrderID: &o.Data.ID,
	})
	assert.Equal(suite.T(), o.Data.ID, *orderLinked.Data.PurchaseOrderID)

	nilID := uuid.Nil
	unlinked := createTestInvoice(suite.T(), v1.InvoiceEditable{
		SubcontractID:   &nilID,
		PurchaseOrderID: &nilID,
	})
	assert.Nil(suite.T(), unlinked.Data.SubcontractID)
	assert.Nil(suite.T(), unlinked.Data.PurchaseOrderID)
}

func (suite *TestSuiteStandard) TestInvoicesGetFilter() {
	j1 := createTestJob(suite.T(), v1.JobEditable{})
	j2 := createTestJob(suite.T(), v1.JobEditable{})
	c := createTestCostCode(suite.T(), v1.CostCodeEditable{})

	_ = createTestInvoice(suite.T(), v1.InvoiceEditable{
		JobID:      j1.Data.ID,
		CostCodeID: c.Data.ID,
		Vendor:     "Acme Mechanical",
		Amount:     decimal.NewFromInt(4280),
		Status:     models.InvoiceStatusPaid,
	})

	_ = createTestInvoice(suite.T(), v1.InvoiceEditable{
		JobID:  j1.Data.ID,
		Vendor: "Valley Concrete",
	})

	_ = createTestInvoice(suite.T(), v1.InvoiceEditable{
		JobID:  j2.Data.ID,
		Vendor: "Acme Rentals",
		Status: models.InvoiceStatusVoid,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Job 1", fmt.Sprintf("job=%s", j1.Data.ID), 2},
		{"Job 2", fmt.Sprintf("job=%s", j2.Data.ID), 1},
		{"Cost code", fmt.Sprintf("costCode=%s", c.Data.ID), 1},
		{"Paid", "status=paid", 1},
		{"Pending", "status=pending", 1},
		{"Void", "status=void", 1},
		{"Fuzzy vendor", "vendor=Acme", 2},
		{"Vendor not existing", "vendor=Summit", 0},
		{"Offset 2", "offset=2", 1},
		{"Limit 2", "limit=2", 2},
		{"Limit 0", "limit=0", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.InvoiceListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/invoices?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestInvoicesCreateFails() {
	tests := []struct {
		name     string
		body     any
		status   int                                            // expected HTTP status
		testFunc func(t *testing.T, i v1.InvoiceCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "vendor": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, i v1.InvoiceCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field InvoiceEditable.vendor of type string", *i.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, i v1.InvoiceCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *i.Error)
			},
		},
		{
			"Invalid status",
			[]v1.InvoiceEditable{
				{
					JobID:      createTestJob(suite.T(), v1.JobEditable{}).Data.ID,
					CostCodeID: createTestCostCode(suite.T(), v1.CostCodeEditable{}).Data.ID,
					Status:     "rejected",
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, i v1.InvoiceCreateResponse) {
				assert.Equal(t, models.ErrInvoiceInvalidStatus.Error(), *i.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/invoices", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var i v1.InvoiceCreateResponse
			test.DecodeResponse(t, &r, &i)

			if tt.testFunc != nil {
				tt.testFunc(t, i)
			}
		})
	}
}

// Verify that updating invoices works as desired
func (suite *TestSuiteStandard) TestInvoicesUpdate() {
	invoice := createTestInvoice(suite.T(), v1.InvoiceEditable{
		Vendor: "Acme Mechanical",
		Amount: decimal.NewFromInt(4280),
	})

	tests := []struct {
		name     string                                   // name of the test
		invoice  map[string]any                           // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, i v1.InvoiceResponse) // tests to perform against the updated invoice resource
	}{
		{
			"Vendor, Amount",
			map[string]any{
				"vendor": "Acme Mechanical LLC",
				"amount": 4300,
			},
			func(t *testing.T, i v1.InvoiceResponse) {
				assert.Equal(t, "Acme Mechanical LLC", i.Data.Vendor)
				assert.True(t, i.Data.Amount.Equal(decimal.NewFromInt(4300)))
			},
		},
		{
			"Status",
			map[string]any{
				"status": "paid",
			},
			func(t *testing.T, i v1.InvoiceResponse) {
				assert.Equal(t, models.InvoiceStatusPaid, i.Data.Status)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, invoice.Data.Links.Self, tt.invoice)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var i v1.InvoiceResponse
			test.DecodeResponse(t, &r, &i)

			if tt.testFunc != nil {
				tt.testFunc(t, i)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestInvoicesUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"vendor": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "vendor": 2" }`, http.StatusBadRequest},
		{"Invalid status", "", `{"status": "rejected"}`, http.StatusBadRequest},
		{"Non-existing Invoice", uuid.New().String(), `{"vendor": "Acme"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				invoice := createTestInvoice(suite.T(), v1.InvoiceEditable{})
				tt.id = invoice.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/invoices/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestInvoicesDelete verifies all cases for invoice deletions.
func (suite *TestSuiteStandard) TestInvoicesDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing Invoice", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				i := createTestInvoice(t, v1.InvoiceEditable{})
				tt.id = i.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/invoices/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

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
	"github.com/stretchr/testify/require"
)

func createTestJournalEntry(t *testing.T, e v1.JournalEntryEditable, expectedStatus ...int) v1.JournalEntryResponse {
	if e.JobID == uuid.Nil {
		e.JobID = createTestJob(t, v1.JobEditable{}).Data.ID
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.JournalEntryEditable{e}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/journal-entries", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var entry v1.JournalEntryCreateResponse
	test.DecodeResponse(t, &r, &entry)

	if r.Code == http.StatusCreated {
		return entry.Data[0]
	}

	return v1.JournalEntryResponse{}
}

// TestJournalEntriesDBClosed verifies that errors are processed correctly
// when the database is closed.
func (suite *TestSuiteStandard) TestJournalEntriesDBClosed() {
	j := createTestJob(suite.T(), v1.JobEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestJournalEntry(t, v1.JournalEntryEditable{JobID: j.Data.ID}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/journal-entries", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.JournalEntryListResponse
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

// TestJournalEntriesOptions verifies that OPTIONS requests are handled
// correctly.
func (suite *TestSuiteStandard) TestJournalEntriesOptions() {
	tests := []struct {
		name   string
		id     string // path at the JournalEntries endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No JournalEntry with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"JournalEntry exists", createTestJournalEntry(suite.T(), v1.JournalEntryEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/journal-entries", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestJournalEntriesGetSingle verifies that requests for the resource
// endpoints are handled correctly.
func (suite *TestSuiteStandard) TestJournalEntriesGetSingle() {
	e := createTestJournalEntry(suite.T(), v1.JournalEntryEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing JournalEntry", e.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No JournalEntry with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/journal-entries/%s", tt.id), "")

			var entry v1.JournalEntryResponse
			test.DecodeResponse(t, &r, &entry)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestJournalEntriesCreateLines verifies that lines are created together
// with the entry and returned on reads.
func (suite *TestSuiteStandard) TestJournalEntriesCreateLines() {
	c1 := createTestCostCode(suite.T(), v1.CostCodeEditable{})
	c2 := createTestCostCode(suite.T(), v1.CostCodeEditable{})

	e := createTestJournalEntry(suite.T(), v1.JournalEntryEditable{
		Reference: "JE-2025-0113",
		Status:    models.JournalEntryStatusPosted,
		Lines: []v1.JournalEntryLineEditable{
			{CostCodeID: c1.Data.ID, DebitAmount: decimal.NewFromInt(1250), Memo: "Rebar delivery"},
			{CostCodeID: c2.Data.ID, CreditAmount: decimal.NewFromInt(1250)},
		},
	})

	r := test.Request(suite.T(), http.MethodGet, e.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var entry v1.JournalEntryResponse
	test.DecodeResponse(suite.T(), &r, &entry)

	require.Len(suite.T(), entry.Data.Lines, 2)
	assert.Equal(suite.T(), "Rebar delivery", entry.Data.Lines[0].Memo)
	assert.True(suite.T(), entry.Data.Lines[0].DebitAmount.Equal(decimal.NewFromInt(1250)))
	assert.True(suite.T(), entry.Data.Lines[1].CreditAmount.Equal(decimal.NewFromInt(1250)))
}

func (suite *TestSuiteStandard) TestJournalEntriesGetFilter() {
	j1 := createTestJob(suite.T(), v1.JobEditable{})
	j2 := createTestJob(suite.T(), v1.JobEditable{})

	_ = createTestJournalEntry(suite.T(), v1.JournalEntryEditable{
		JobID:     j1.Data.ID,
		Reference: "JE-2025-0001",
		Status:    models.JournalEntryStatusPosted,
	})

	_ = createTestJournalEntry(suite.T(), v1.JournalEntryEditable{
		JobID:     j1.Data.ID,
		Reference: "JE-2025-0002",
	})

	_ = createTestJournalEntry(suite.T(), v1.JournalEntryEditable{
		JobID:     j2.Data.ID,
		Reference: "JE-2025-0003",
		Status:    models.JournalEntryStatusVoid,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Job 1", fmt.Sprintf("job=%s", j1.Data.ID), 2},
		{"Job 2", fmt.Sprintf("job=%s", j2.Data.ID), 1},
		{"Job not existing", "job=c9e4ee7a-e702-4f92-b168-11a95b22c7aa", 0},
		{"Posted", "status=posted", 1},
		{"Draft", "status=draft", 1},
		{"Void", "status=void", 1},
		{"Reference", "reference=JE-2025-0002", 1},
		{"Reference not existing", "reference=JE-1999-0001", 0},
		{"Offset 2", "offset=2", 1},
		{"Limit 2", "limit=2", 2},
		{"Limit 0", "limit=0", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.JournalEntryListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/journal-entries?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestJournalEntriesCreateFails() {
	tests := []struct {
		name     string
		body     any
		status   int                                                 // expected HTTP status
		testFunc func(t *testing.T, e v1.JournalEntryCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "reference": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, e v1.JournalEntryCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field JournalEntryEditable.reference of type string", *e.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, e v1.JournalEntryCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *e.Error)
			},
		},
		{
			"Invalid status",
			[]v1.JournalEntryEditable{
				{
					JobID:  createTestJob(suite.T(), v1.JobEditable{}).Data.ID,
					Status: "approved",
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, e v1.JournalEntryCreateResponse) {
				assert.Equal(t, models.ErrJournalEntryInvalidStatus.Error(), *e.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/journal-entries", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var e v1.JournalEntryCreateResponse
			test.DecodeResponse(t, &r, &e)

			if tt.testFunc != nil {
				tt.testFunc(t, e)
			}
		})
	}
}

// Verify that updating journal entries works as desired
func (suite *TestSuiteStandard) TestJournalEntriesUpdate() {
	costCode := createTestCostCode(suite.T(), v1.CostCodeEditable{})

	entry := createTestJournalEntry(suite.T(), v1.JournalEntryEditable{
		Reference: "JE-2025-0050",
		Lines: []v1.JournalEntryLineEditable{
			{CostCodeID: costCode.Data.ID, DebitAmount: decimal.NewFromInt(100)},
		},
	})

	tests := []struct {
		name     string                                        // name of the test
		entry    map[string]any                                // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, e v1.JournalEntryResponse) // tests to perform against the updated journal entry resource
	}{
		{
			"Reference, Status",
			map[string]any{
				"reference": "JE-2025-0051",
				"status":    "posted",
			},
			func(t *testing.T, e v1.JournalEntryResponse) {
				assert.Equal(t, "JE-2025-0051", e.Data.Reference)
				assert.Equal(t, models.JournalEntryStatusPosted, e.Data.Status)
			},
		},
		{
			"Replace lines",
			map[string]any{
				"lines": []map[string]any{
					{"costCodeId": costCode.Data.ID, "debitAmount": 250, "memo": "Corrected amount"},
					{"costCodeId": costCode.Data.ID, "creditAmount": 250},
				},
			},
			func(t *testing.T, e v1.JournalEntryResponse) {
				require.Len(t, e.Data.Lines, 2)
				assert.Equal(t, "Corrected amount", e.Data.Lines[0].Memo)
				assert.True(t, e.Data.Lines[0].DebitAmount.Equal(decimal.NewFromInt(250)))
			},
		},
		{
			"Remove all lines",
			map[string]any{
				"lines": []map[string]any{},
			},
			func(t *testing.T, e v1.JournalEntryResponse) {
				assert.Len(t, e.Data.Lines, 0)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, entry.Data.Links.Self, tt.entry)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var e v1.JournalEntryResponse
			test.DecodeResponse(t, &r, &e)

			if tt.testFunc != nil {
				tt.testFunc(t, e)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestJournalEntriesUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"reference": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "reference": 2" }`, http.StatusBadRequest},
		{"Invalid status", "", `{"status": "planned"}`, http.StatusBadRequest},
		{"Non-existing JournalEntry", uuid.New().String(), `{"reference": "JE"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				entry := createTestJournalEntry(suite.T(), v1.JournalEntryEditable{})
				tt.id = entry.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/journal-entries/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestJournalEntriesDelete verifies all cases for journal entry deletions.
func (suite *TestSuiteStandard) TestJournalEntriesDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing JournalEntry", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				e := createTestJournalEntry(t, v1.JournalEntryEditable{})
				tt.id = e.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/journal-entries/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

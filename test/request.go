package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"testing"

	"github.com/buildledger/backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestBody converts the body argument into a buffer the request can
// read. Strings are sent as-is, structs, maps and slices are marshalled
// to JSON, anything else is expected to already be a *bytes.Buffer.
func requestBody(t *testing.T, body any) *bytes.Buffer {
	switch reflect.TypeOf(body).Kind() {
	case reflect.String:
		return bytes.NewBufferString(body.(string))

	case reflect.Struct, reflect.Map, reflect.Slice:
		encoded, err := json.Marshal(body)
		if err != nil {
			assert.Fail(t, "request body could not be marshalled to JSON", err)
		}
		return bytes.NewBuffer(encoded)

	default:
		return body.(*bytes.Buffer)
	}
}

// Request builds a full router, performs a single request against it and
// returns the recorded response. The base URL is taken from the API_URL
// environment variable.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		assert.FailNow(t, "environment variable API_URL must be set")
	}

	baseURL, err := url.Parse(apiURL)
	if err != nil {
		assert.FailNow(t, "environment variable API_URL must be a valid URL")
	}

	r, err := router.Config(baseURL)
	if err != nil {
		assert.FailNow(t, "router could not be initialized")
	}

	err = router.AttachRoutes(r.Group("/"))
	if err != nil {
		assert.FailNow(t, "routes could not be attached")
	}
	defer router.DetachRoutes()

	req, _ := http.NewRequest(method, reqURL, requestBody(t, body))
	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes an HTTP response body into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		assert.FailNow(t, "parsing error", "unable to parse response %q into %v: %v, Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// AssertHTTPStatus verifies that the response status is one of the
// expected values.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}

package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"reflect"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetURLFields inspects which query parameters are set for a filter
// struct. The "form" struct tag names the query parameter for a field.
//
// queryFields holds the names of all set fields that can be passed
// directly to a gorm Where statement as the field list. gorm takes
// interface{} there, so the slice is []any and not []string.
//
// setFields holds the names of all set fields, including the ones
// excluded from queryFields. Filtering on zero values needs this since
// the filter structs do not use pointer fields.
//
// A `filterField:"false"` struct tag keeps a field out of queryFields
// for parameters that need explicit handling in the controller.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	structVal := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < structVal.NumField(); i++ {
		field := structVal.Type().Field(i)

		if !url.Query().Has(field.Tag.Get("form")) {
			continue
		}

		setFields = append(setFields, field.Name)
		if field.Tag.Get("filterField") != "false" {
			queryFields = append(queryFields, field.Name)
		}
	}

	return queryFields, setFields
}

// GetBodyFields returns the names of the resource's fields that are
// present in the request body, matched via the "json" struct tag. A field
// set to null still counts as present.
//
// The request body is restored afterwards, but this has to run before any
// of gin's bind methods consume it.
func GetBodyFields(c *gin.Context, resource any) ([]any, error) {
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return []any{}, ErrInvalidBody
	}

	var bodyFields []any
	structVal := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < structVal.NumField(); i++ {
		field := structVal.Type().Field(i)

		if _, ok := decoded[field.Tag.Get("json")]; ok {
			bodyFields = append(bodyFields, field.Name)
		}
	}

	return bodyFields, nil
}

package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields returns the names of all fields of filter whose "form"
// parameter is present in the query string of url.
//
// queryFields only contains the fields that can be used directly in a
// gorm Where statement. Fields tagged with filterField:"false" are
// processed by explicit logic and only appear in setFields.
func GetURLFields(url *url.URL, filter any) (queryFields []any, setFields []string) {
	query := url.Query()

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)
		param := field.Tag.Get("form")

		if param == "" || !query.Has(param) {
			continue
		}

		setFields = append(setFields, field.Name)
		if field.Tag.Get("filterField") != "false" {
			queryFields = append(queryFields, field.Name)
		}
	}

	return queryFields, setFields
}

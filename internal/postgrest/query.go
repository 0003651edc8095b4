// Package postgrest parses PostgREST-style query parameters of the form
// column=operator.value, plus the pagination keys the API reserves.
package postgrest

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// reservedKeys are pagination/selection parameters, never treated as filters.
var reservedKeys = map[string]bool{
	"limit":  true,
	"offset": true,
	"order":  true,
	"select": true,
}

// operatorPattern matches a PostgREST filter operator.
var operatorPattern = regexp.MustCompile(`^[a-z]+$`)

// uuidPattern matches RFC-4122 version 1-5 UUIDs.
var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// Filter is one column=operator.value triple.
type Filter struct {
	Column   string
	Operator string
	Value    string
}

// EqID extracts the value of an id=eq.<value> parameter. Only that exact shape
// is accepted; id=neq.x or a bare id=x yields false.
func EqID(params url.Values) (string, bool) {
	raw := params.Get("id")
	if raw == "" {
		return "", false
	}
	value, found := strings.CutPrefix(raw, "eq.")
	if !found || value == "" {
		return "", false
	}
	return value, true
}

// ParseFilters extracts all column=operator.value triples from a raw query
// string, in the query's own order. Reserved pagination keys and parameters
// that do not match the operator.value shape are skipped.
func ParseFilters(rawQuery string) []Filter {
	var filters []Filter

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, rawValue, found := strings.Cut(pair, "=")
		if !found {
			continue
		}

		column, err := url.QueryUnescape(key)
		if err != nil || column == "" || reservedKeys[column] {
			continue
		}

		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}

		operator, operand, found := strings.Cut(value, ".")
		if !found || !operatorPattern.MatchString(operator) {
			continue
		}

		filters = append(filters, Filter{Column: column, Operator: operator, Value: operand})
	}

	return filters
}

// ParsePagination reads limit and offset parameters, applying the default
// page size and capping limit at maxLimit. Malformed values fall back to
// the defaults.
func ParsePagination(params url.Values) (limit, offset int) {
	limit = defaultLimit

	if raw := params.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if raw := params.Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			offset = n
		}
	}

	return limit, offset
}

// IsUUID reports whether s is a structurally valid RFC-4122 version 1-5 UUID.
// Used to reject malformed identifiers before they reach the store.
func IsUUID(s string) bool {
	return uuidPattern.MatchString(s)
}

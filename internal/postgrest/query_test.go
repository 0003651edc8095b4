package postgrest

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqID(t *testing.T) {
	params, err := url.ParseQuery("id=eq.3fa85f64-5717-4562-b3fc-2c963f66afa6")
	assert.NoError(t, err)

	value, ok := EqID(params)
	assert.True(t, ok)
	assert.Equal(t, "3fa85f64-5717-4562-b3fc-2c963f66afa6", value)
}

func TestEqID_RejectsOtherShapes(t *testing.T) {
	queries := []string{
		"id=neq.foo",
		"id=foo",
		"id=eq.",
		"account_id=eq.foo",
		"",
	}

	for _, q := range queries {
		params, err := url.ParseQuery(q)
		assert.NoError(t, err)

		_, ok := EqID(params)
		assert.False(t, ok, q)
	}
}

func TestParseFilters_Order(t *testing.T) {
	filters := ParseFilters("category_id=eq.abc&amount_cents=gte.100&transaction_type=eq.income")

	assert.Equal(t, []Filter{
		{Column: "category_id", Operator: "eq", Value: "abc"},
		{Column: "amount_cents", Operator: "gte", Value: "100"},
		{Column: "transaction_type", Operator: "eq", Value: "income"},
	}, filters)
}

func TestParseFilters_SkipsReservedAndMalformed(t *testing.T) {
	filters := ParseFilters("limit=10&offset=20&order=created_at&select=id&name=plain&desc=eq.coffee")

	assert.Equal(t, []Filter{
		{Column: "desc", Operator: "eq", Value: "coffee"},
	}, filters)
}

func TestParseFilters_Empty(t *testing.T) {
	assert.Empty(t, ParseFilters(""))
}

func TestParseFilters_EscapedValue(t *testing.T) {
	filters := ParseFilters("description=ilike.coffee%20shop")

	assert.Equal(t, []Filter{
		{Column: "description", Operator: "ilike", Value: "coffee shop"},
	}, filters)
}

func TestParsePagination(t *testing.T) {
	params, _ := url.ParseQuery("limit=50&offset=40")
	limit, offset := ParsePagination(params)
	assert.Equal(t, 50, limit)
	assert.Equal(t, 40, offset)
}

func TestParsePagination_Defaults(t *testing.T) {
	limit, offset := ParsePagination(url.Values{})
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)
}

func TestParsePagination_CapsAndFallbacks(t *testing.T) {
	params, _ := url.ParseQuery("limit=500&offset=bad")
	limit, offset := ParsePagination(params)
	assert.Equal(t, 100, limit)
	assert.Equal(t, 0, offset)
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("3fa85f64-5717-4562-b3fc-2c963f66afa6"))
	assert.True(t, IsUUID("550e8400-e29b-41d4-a716-446655440000"))

	assert.False(t, IsUUID("3fa85f64-5717-0562-b3fc-2c963f66afa6")) // version 0
	assert.False(t, IsUUID("3fa85f6457174562b3fc2c963f66afa6"))
	assert.False(t, IsUUID("not-a-uuid"))
	assert.False(t, IsUUID(""))
}

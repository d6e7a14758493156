package checks

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyFields(t *testing.T) {
	t.Run("clean payload passes", func(t *testing.T) {
		result := EmptyFields(input(convRecord("s", "u", `{"title":"lease","total":120.5}`)))
		assert.True(t, result.Passed)
		assert.Equal(t, 0, result.Stats["examples_with_empties"])
	})

	t.Run("null and whitespace values are flagged with paths", func(t *testing.T) {
		payload := `{"title":"  ","amount":null,"vendor":{"name":"Northbank"}}`
		result := EmptyFields(input(convRecord("s", "u", payload)))
		assert.False(t, result.Passed)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "amount")
		assert.Contains(t, result.Errors[0], "title")
		assert.NotContains(t, result.Errors[0], "vendor.name")
	})

	t.Run("nested list paths use indexed notation", func(t *testing.T) {
		payload := `{"line_items":[{"total":"10"},{"desc":"x","total":""},{"total":""}]}`
		result := EmptyFields(input(convRecord("s", "u", payload)))
		assert.False(t, result.Passed)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "line_items[1].total")
		assert.Contains(t, result.Errors[0], "line_items[2].total")
	})

	t.Run("absent optional fields are not flagged", func(t *testing.T) {
		result := EmptyFields(input(convRecord("s", "u", `{"present":"yes"}`)))
		assert.True(t, result.Passed)
	})

	t.Run("unparseable payloads are skipped", func(t *testing.T) {
		result := EmptyFields(input(convRecord("s", "u", "no json here")))
		assert.True(t, result.Passed)
	})

	t.Run("details cap at 10 then aggregate", func(t *testing.T) {
		in := Input{Label: "[x]"}
		for i := 0; i < 13; i++ {
			in.Records = append(in.Records, convRecord("s", fmt.Sprintf("u%d", i), `{"field":null}`))
		}
		result := EmptyFields(in)
		require.Len(t, result.Errors, 11)
		assert.Contains(t, result.Errors[10], "13 total examples with empty fields")
		assert.Equal(t, 13, result.Stats["examples_with_empties"])
	})
}

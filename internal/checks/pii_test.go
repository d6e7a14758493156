package checks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLuhnValid(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   bool
	}{
		{"valid 16-digit number", "4111111111111111", true},
		{"valid 15-digit number", "378282246310005", true},
		{"valid number with separators", "4111-1111-1111-1111", true},
		{"invalid checksum", "1234567890123456", false},
		{"too few digits", "4111111", false},
		{"no digits", "not-a-number", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LuhnValid(tt.number))
		})
	}
}

func TestPII_Suppression(t *testing.T) {
	t.Run("reserved placeholder SSN is not flagged", func(t *testing.T) {
		result := PII(input(convRecord("s", "u", `{"ssn":"123-45-6789"}`)))
		assert.True(t, result.Passed)
		assert.Empty(t, result.Errors)
	})

	t.Run("all-zero SSN is not flagged", func(t *testing.T) {
		result := PII(input(convRecord("s", "u", `{"ssn":"000-00-0000"}`)))
		assert.True(t, result.Passed)
	})

	t.Run("reserved example domains are not flagged", func(t *testing.T) {
		result := PII(input(
			convRecord("s", "u", `{"email":"user@example.com"}`),
			convRecord("s", "u", `{"email":"someone@test.com"}`),
		))
		assert.True(t, result.Passed)
	})

	t.Run("Luhn-invalid card-shaped digits are not flagged", func(t *testing.T) {
		result := PII(input(convRecord("s", "u", `{"card":"1234567890123456"}`)))
		assert.True(t, result.Passed)
	})

	t.Run("placeholder tokens suppress any family", func(t *testing.T) {
		result := PII(input(convRecord("s", "u", `{"email":"jane.doe@sample.org"}`)))
		assert.True(t, result.Passed)
	})
}

func TestPII_Detection(t *testing.T) {
	t.Run("real-looking SSN is flagged", func(t *testing.T) {
		result := PII(input(convRecord("s", "u", `{"ssn":"529-38-4521"}`)))
		assert.False(t, result.Passed)
		joined := strings.Join(result.Errors, "\n")
		assert.Contains(t, joined, "potential ssn detected")
		assert.Contains(t, joined, "1 total PII matches found")
	})

	t.Run("real-looking email is flagged", func(t *testing.T) {
		result := PII(input(convRecord("s", "u", `{"contact":"jsmith@northbank.com"}`)))
		assert.False(t, result.Passed)
		assert.Contains(t, strings.Join(result.Errors, "\n"), "potential email detected")
	})

	t.Run("US phone number is flagged", func(t *testing.T) {
		result := PII(input(convRecord("s", "u", `{"phone":"415-555-0199"}`)))
		assert.False(t, result.Passed)
		assert.Contains(t, strings.Join(result.Errors, "\n"), "potential phone_us detected")
	})

	t.Run("Luhn-valid card with no placeholder indicator is flagged", func(t *testing.T) {
		result := PII(input(convRecord("s", "u", `{"card":"4111111111111111"}`)))
		assert.False(t, result.Passed)
		joined := strings.Join(result.Errors, "\n")
		assert.Contains(t, joined, "potential credit_card detected")
	})

	t.Run("stats carry per-family counts", func(t *testing.T) {
		result := PII(input(
			convRecord("s", "u", `{"ssn":"529-38-4521"}`),
			convRecord("s", "u", `{"contact":"jsmith@northbank.com"}`),
		))
		assert.Contains(t, result.Stats["pii_counts"], "ssn=1")
		assert.Contains(t, result.Stats["pii_counts"], "email=1")
	})

	t.Run("details cap per family with aggregate total", func(t *testing.T) {
		in := Input{Label: "[x]"}
		ssns := []string{"529-38-4521", "387-65-4320", "219-09-8761", "461-55-2093", "530-12-7784"}
		for _, ssn := range ssns {
			in.Records = append(in.Records, convRecord("s", "u", `{"ssn":"`+ssn+`"}`))
		}
		result := PII(in)
		assert.False(t, result.Passed)
		// 3 detailed + 1 aggregate
		require.Len(t, result.Errors, 4)
		assert.Contains(t, result.Errors[3], "5 total PII matches found")
	})

	t.Run("suppressed and real matches coexist", func(t *testing.T) {
		result := PII(input(convRecord("s", "u", `{"a":"123-45-6789","b":"529-38-4521"}`)))
		assert.False(t, result.Passed)
		assert.Contains(t, result.Stats["pii_counts"], "ssn=1")
	})
}

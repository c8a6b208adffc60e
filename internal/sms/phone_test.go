package sms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmgrid/internal/errors"
)

func TestNormalizePhone_KenyanForms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plus international", raw: "+254712345678", want: "254712345678"},
		{name: "international without plus", raw: "254712345678", want: "254712345678"},
		{name: "local with leading zero", raw: "0712345678", want: "254712345678"},
		{name: "bare subscriber number", raw: "712345678", want: "254712345678"},
		{name: "safaricom 1-prefix", raw: "0112345678", want: "254112345678"},
		{name: "with spaces and dashes", raw: "+254 712-345-678", want: "254712345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePhone_CanonicalFormsConverge(t *testing.T) {
	forms := []string{"+254712345678", "254712345678", "0712345678", "712345678"}

	for _, raw := range forms {
		got, err := NormalizePhone(raw)
		require.NoError(t, err)
		assert.Equal(t, "254712345678", got, "input %q", raw)
	}
}

func TestNormalizePhone_International(t *testing.T) {
	got, err := NormalizePhone("+8869123456789")
	require.NoError(t, err)
	assert.Equal(t, "8869123456789", got)
}

func TestNormalizePhone_BareDigits(t *testing.T) {
	// Long enough to be a phone number but not a Kenyan subscriber number.
	got, err := NormalizePhone("38212345678")
	require.NoError(t, err)
	assert.Equal(t, "38212345678", got)
}

func TestIsValidKenyanPhone(t *testing.T) {
	valid := []string{"+254712345678", "254712345678", "0712345678", "712345678", "0112345678"}
	for _, raw := range valid {
		assert.True(t, IsValidKenyanPhone(raw), "input %q", raw)
	}

	invalid := []string{"", "abc", "+8869123456789", "0812345678", "07123456789"}
	for _, raw := range invalid {
		assert.False(t, IsValidKenyanPhone(raw), "input %q", raw)
	}
}

func TestNormalizePhone_Invalid(t *testing.T) {
	for _, raw := range []string{"", "abc", "12345", "+0123456", "07123"} {
		_, err := NormalizePhone(raw)
		assert.True(t, errors.Is(err, ErrInvalidPhoneFormat), "input %q", raw)
	}
}

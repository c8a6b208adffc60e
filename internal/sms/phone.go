package sms

import (
	"regexp"
	"strings"

	"farmgrid/internal/errors"
)

// ErrInvalidPhoneFormat is returned when a phone number matches no accepted format.
var ErrInvalidPhoneFormat = errors.New("invalid phone number format")

var (
	// Kenyan mobile numbers: +254XXXXXXXXX, 254XXXXXXXXX, 0XXXXXXXXX or a
	// bare 9-digit subscriber number starting with 1 or 7.
	kenyanPattern = regexp.MustCompile(`^(?:\+?254|0)?([17]\d{8})$`)

	// International numbers in E.164-ish form with an explicit plus.
	internationalPattern = regexp.MustCompile(`^\+[1-9]\d{4,17}$`)

	// Bare digit strings long enough to plausibly be a phone number.
	barePattern = regexp.MustCompile(`^\d{9,15}$`)
)

// NormalizePhone converts a phone number to its canonical storage form:
// digits only, country code first, no plus. Kenyan numbers in any accepted
// spelling collapse to 254XXXXXXXXX so the same operator always resolves to
// the same row.
func NormalizePhone(raw string) (string, error) {
	cleaned := cleanPhone(raw)
	if cleaned == "" {
		return "", errors.WithStack(ErrInvalidPhoneFormat)
	}

	if m := kenyanPattern.FindStringSubmatch(cleaned); m != nil {
		return "254" + m[1], nil
	}

	if internationalPattern.MatchString(cleaned) {
		return strings.TrimPrefix(cleaned, "+"), nil
	}

	if barePattern.MatchString(cleaned) {
		return cleaned, nil
	}

	return "", errors.WithStack(ErrInvalidPhoneFormat)
}

// IsValidKenyanPhone reports whether raw is an accepted Kenyan mobile number
// in any spelling. Used to pre-validate phone numbers supplied in
// registration commands before normalizing.
func IsValidKenyanPhone(raw string) bool {
	return kenyanPattern.MatchString(cleanPhone(raw))
}

// cleanPhone strips whitespace and separators, keeping digits and a leading plus.
func cleanPhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)

			continue
		}
		if r == '+' && b.Len() == 0 {
			b.WriteRune(r)
		}
	}

	return b.String()
}

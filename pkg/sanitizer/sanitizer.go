package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

// SanitizeName trims and collapses internal whitespace.
func SanitizeName(input string) string {
	p := Pipeline{TrimAndNormalize}
	return p.Apply(input)
}

// SanitizeEmail trims and lowercases so lookups match regardless of the
// casing the form was filled in with.
func SanitizeEmail(input string) string {
	p := Pipeline{strings.TrimSpace, strings.ToLower}
	return p.Apply(input)
}

// SanitizePhone normalizes international numbers to E.164 when they parse;
// anything else is kept as typed. Bookings accept free-form phone text.
func SanitizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return phone
	}

	parsed, err := phonenumbers.Parse(phone, "")
	if err != nil {
		return phone
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}

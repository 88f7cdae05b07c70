package docid

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidFormat is returned when an identifier does not reduce to the
// expected digit count.
var ErrInvalidFormat = errors.New("invalid identifier format")

const (
	cnpjDigits = 14
	cpfDigits  = 11
)

// Digits strips every non-digit rune from s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCNPJ normalizes a company tax identifier to the canonical
// NN.NNN.NNN/NNNN-NN form. The input may carry any mix of punctuation and
// whitespace; it must reduce to exactly 14 digits.
func FormatCNPJ(raw string) (string, error) {
	d := Digits(raw)
	if len(d) != cnpjDigits {
		return "", fmt.Errorf("%w: CNPJ must contain exactly 14 digits, got %d", ErrInvalidFormat, len(d))
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", d[:2], d[2:5], d[5:8], d[8:12], d[12:]), nil
}

// FormatCPF normalizes a person identifier to the canonical
// NNN.NNN.NNN-NN form. The input must reduce to exactly 11 digits.
func FormatCPF(raw string) (string, error) {
	d := Digits(raw)
	if len(d) != cpfDigits {
		return "", fmt.Errorf("%w: CPF must contain exactly 11 digits, got %d", ErrInvalidFormat, len(d))
	}
	return fmt.Sprintf("%s.%s.%s-%s", d[:3], d[3:6], d[6:9], d[9:]), nil
}

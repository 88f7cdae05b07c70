package docid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCNPJ_Canonical(t *testing.T) {
	formatted, err := FormatCNPJ("12345678000195")
	require.NoError(t, err)
	assert.Equal(t, "12.345.678/0001-95", formatted)
}

func TestFormatCNPJ_StripsNoise(t *testing.T) {
	inputs := []string{
		"12.345.678/0001-95",
		" 12 345 678 0001 95 ",
		"CNPJ: 12.345.678/0001-95",
	}
	for _, in := range inputs {
		formatted, err := FormatCNPJ(in)
		require.NoError(t, err, in)
		assert.Equal(t, "12.345.678/0001-95", formatted)
	}
}

func TestFormatCNPJ_RoundTrip(t *testing.T) {
	formatted, err := FormatCNPJ("04252011000110")
	require.NoError(t, err)
	assert.Equal(t, "04252011000110", Digits(formatted))
}

func TestFormatCNPJ_WrongDigitCount(t *testing.T) {
	for _, in := range []string{"", "123", "123456780001957", "abc"} {
		_, err := FormatCNPJ(in)
		assert.ErrorIs(t, err, ErrInvalidFormat, in)
	}
}

func TestFormatCPF_Canonical(t *testing.T) {
	formatted, err := FormatCPF("52998224725")
	require.NoError(t, err)
	assert.Equal(t, "529.982.247-25", formatted)
}

func TestFormatCPF_RoundTrip(t *testing.T) {
	formatted, err := FormatCPF("529.982.247-25")
	require.NoError(t, err)
	assert.Equal(t, "52998224725", Digits(formatted))
}

func TestFormatCPF_WrongDigitCount(t *testing.T) {
	for _, in := range []string{"", "5299822472", "529982247255"} {
		_, err := FormatCPF(in)
		assert.ErrorIs(t, err, ErrInvalidFormat, in)
	}
}

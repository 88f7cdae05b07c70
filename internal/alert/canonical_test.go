package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize_KnownCategories(t *testing.T) {
	cases := map[string]string{
		"CRLV":                      "CRLV",
		"crlv 2024":                 "CRLV",
		"CRLV DIGITAL":              "CRLV",
		"CNH":                       "CNH",
		"Renovação CNH":             "CNH",
		"REGISTRO ANTT":             "ANTT",
		"AET FEDERAL":               "AET",
		"ALVARÁ DE FUNCIONAMENTO":   "ALVARÁ",
		"LICENÇA AMBIENTAL ESTADUAL": "LICENÇA AMBIENTAL",
	}
	for raw, want := range cases {
		assert.Equal(t, want, Canonicalize(raw), raw)
	}
}

func TestCanonicalize_MetadataSuffixStripped(t *testing.T) {
	assert.Equal(t, "CNH", Canonicalize("CNH NOME: JOSE DA SILVA"))
	assert.Equal(t, "CRLV", Canonicalize("crlv TIPO: renovação"))
}

func TestCanonicalize_FallbackCleansLabel(t *testing.T) {
	assert.Equal(t, "SEGURO RCF", Canonicalize("Documento Seguro RCF 2024"))
	assert.Equal(t, "TACÓGRAFO", Canonicalize("TACÓGRAFO - 01/2025"))
}

func TestCanonicalize_EmptyAfterCleaning(t *testing.T) {
	assert.Equal(t, "", Canonicalize(""))
	assert.Equal(t, "", Canonicalize("DOCUMENTO 123"))
	assert.Equal(t, "", Canonicalize("   "))
}

func TestCanonicalize_FirstMatchWins(t *testing.T) {
	// CRLV precedes CNH in the table, so a label mentioning both resolves
	// to CRLV.
	assert.Equal(t, "CRLV", Canonicalize("CNH E CRLV"))
}

package category

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSender(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Supermercado Boa Vista", "Supermercado Boa Vista"},
		{"PIX 12345678901 Maria Silva", "PIX Maria Silva"},
		{"Pagamento 12/05 Joao", "Pagamento Joao"},
		{"Docto. 1234 Loja Azul", "1234 Loja Azul"},
		{"  Loja   com    espacos  ", "Loja com espacos"},
		{"Uma descricao extremamente longa que passa facil dos quarenta caracteres", "Uma descricao extremamente longa que pas"},
		// Ⱥ grows under case conversion; token removal must not slice
		// at shifted offsets.
		{"ȺȺȺȺdocto.", "ȺȺȺȺ"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeSender(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeSenderCapKeepsValidUTF8(t *testing.T) {
	long := "a" + strings.Repeat("ç", 30)
	got := NormalizeSender(long)

	assert.LessOrEqual(t, len(got), 40)
	assert.True(t, utf8.ValidString(got), "cap must cut on a rune boundary: %q", got)
}

func TestClassifySpecificBeatsGeneric(t *testing.T) {
	m := Mappings{
		"padaria central":       "Alimentação",
		"padaria central-12.00": "Café",
	}
	assert.Equal(t, "Café", Classify("Padaria Central", 12, "", m, ""))
	assert.Equal(t, "Alimentação", Classify("Padaria Central", 30, "", m, ""))
}

func TestClassifyGenericCaseInsensitive(t *testing.T) {
	m := Mappings{"loja azul": "Vestuário"}
	assert.Equal(t, "Vestuário", Classify("LOJA AZUL", 99.9, "", m, ""))
}

func TestClassifyKeywordTable(t *testing.T) {
	m := Mappings{}
	assert.Equal(t, "Mercado", Classify("Supermercado Pague Menos", 150, "", m, ""))
	assert.Equal(t, "Transporte", Classify("", 23.5, "UBER *TRIP", m, ""))
	assert.Equal(t, "Assinaturas", Classify("Netflix.com", 39.9, "", m, ""))
}

func TestClassifyFallback(t *testing.T) {
	assert.Equal(t, "Outros", Classify("Zzz Desconhecido", 10, "", Mappings{}, ""))
	assert.Equal(t, "Diversos", Classify("Zzz Desconhecido", 10, "", Mappings{}, "Diversos"))
}

func TestLearnIsPureAndIdempotent(t *testing.T) {
	m := Mappings{}
	m2 := Learn(m, "Padaria Central", "Alimentação")
	assert.Empty(t, m, "input map must not be mutated")
	assert.Equal(t, "Alimentação", m2["padaria central"])

	m3 := Learn(m2, "Padaria Central", "Alimentação")
	assert.Equal(t, m2, m3)
}

func TestLearnSpecific(t *testing.T) {
	m := LearnSpecific(Mappings{}, "Padaria Central", 12, "Café")
	assert.Equal(t, "Café", m["padaria central-12.00"])
}

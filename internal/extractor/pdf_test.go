package extractor

import (
	"strings"
	"testing"
)

func TestIsReadableText(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  bool
	}{
		{
			"statement text",
			[]string{"Extrato de conta corrente\n06/11/2025 PIX TRANSF MARIA 150,00 saldo 1.850,00"},
			true,
		},
		{
			"accented portuguese",
			[]string{"Transferência recebida pelo Pix\nLançamentos do mês de março, agência 1234 conta 56789-0"},
			true,
		},
		{
			"too short",
			[]string{"saldo"},
			false,
		},
		{
			"garbage glyphs",
			[]string{strings.Repeat("\x01\x02�\x7f", 50)},
			false,
		},
		{
			"readable but no statement words",
			[]string{strings.Repeat("lorem ipsum dolor sit amet consectetur ", 5)},
			false,
		},
		{
			"empty",
			nil,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isReadableText(tt.pages); got != tt.want {
				t.Errorf("isReadableText: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTextQuality(t *testing.T) {
	if q := textQuality([]string{"saldo em conta: R$ 1.234,56"}); q < 0.9 {
		t.Errorf("clean text quality: got %f, want >= 0.9", q)
	}
	if q := textQuality([]string{strings.Repeat("\x01\x02\x03\x04", 25)}); q > 0.1 {
		t.Errorf("binary junk quality: got %f, want <= 0.1", q)
	}
	if q := textQuality(nil); q != 0 {
		t.Errorf("empty quality: got %f, want 0", q)
	}
}

// Package category resolves a spending category for parsed transactions.
// Lookup order: learned sender+amount mapping, learned sender mapping,
// static keyword table, configured default.
package category

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/locale"
)

// DefaultCategory is the fallback when nothing matches.
const DefaultCategory = "Outros"

// Mappings is the learned lookup table. Keys come in two shapes:
// "<normalized-sender>-<amount 2dp>" (specific) and "<normalized-sender>"
// (generic). Keys are stored lowercase; specific entries win.
type Mappings map[string]string

const maxSenderLen = 40

var (
	longDigitRun  = regexp.MustCompile(`\d{9,}`)
	dayMonthToken = regexp.MustCompile(`\b\d{1,2}/\d{1,2}\b`)
	// Boilerplate tokens banks embed next to counterparty names.
	senderNoise = regexp.MustCompile(`(?i)docto\.?|ref[:.]`)
	multiSpace  = regexp.MustCompile(`\s{2,}`)
)

// NormalizeSender cleans a counterparty label for use as a mapping key:
// reference numbers, embedded dd/mm tokens and statement boilerplate are
// stripped and the result is capped at 40 bytes on a rune boundary.
func NormalizeSender(sender string) string {
	s := longDigitRun.ReplaceAllString(sender, "")
	s = dayMonthToken.ReplaceAllString(s, "")
	s = senderNoise.ReplaceAllString(s, "")
	s = multiSpace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if len(s) > maxSenderLen {
		cut := maxSenderLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = strings.TrimSpace(s[:cut])
	}
	return s
}

// SpecificKey builds the sender+amount mapping key.
func SpecificKey(sender string, amount float64) string {
	return strings.ToLower(NormalizeSender(sender)) + "-" + locale.FormatAmount(amount)
}

// GenericKey builds the sender-only mapping key.
func GenericKey(sender string) string {
	return strings.ToLower(NormalizeSender(sender))
}

// keywordRule maps a substring to a category. Order matters: the first
// containment match against sender+description wins.
type keywordRule struct {
	keyword  string
	category string
}

var keywordTable = []keywordRule{
	{"supermercado", "Mercado"},
	{"mercado", "Mercado"},
	{"atacadao", "Mercado"},
	{"hortifruti", "Mercado"},
	{"ifood", "Alimentação"},
	{"restaurante", "Alimentação"},
	{"lanchonete", "Alimentação"},
	{"padaria", "Alimentação"},
	{"pizzaria", "Alimentação"},
	{"uber", "Transporte"},
	{"99app", "Transporte"},
	{"99 tecnologia", "Transporte"},
	{"posto ", "Transporte"},
	{"combustivel", "Transporte"},
	{"estacionamento", "Transporte"},
	{"farmacia", "Saúde"},
	{"farmácia", "Saúde"},
	{"drogaria", "Saúde"},
	{"academia", "Saúde"},
	{"netflix", "Assinaturas"},
	{"spotify", "Assinaturas"},
	{"prime video", "Assinaturas"},
	{"disney", "Assinaturas"},
	{"aluguel", "Moradia"},
	{"condominio", "Moradia"},
	{"condomínio", "Moradia"},
	{"energia", "Contas"},
	{"enel", "Contas"},
	{"sabesp", "Contas"},
	{"internet", "Contas"},
	{"vivo ", "Contas"},
	{"claro ", "Contas"},
	{"tim s.a", "Contas"},
	{"salario", "Renda"},
	{"salário", "Renda"},
	{"rendimento", "Renda"},
	{"fatura", "Cartão"},
}

// Classify resolves the category for a transaction. The default is used
// when no learned mapping or keyword matches; pass "" for the built-in
// default.
func Classify(sender string, amount float64, description string, m Mappings, fallback string) string {
	if fallback == "" {
		fallback = DefaultCategory
	}

	if sender != "" {
		if cat, ok := m[SpecificKey(sender, amount)]; ok {
			return cat
		}
		if cat, ok := m[GenericKey(sender)]; ok {
			return cat
		}
	}

	haystack := strings.ToLower(sender + " " + description)
	for _, rule := range keywordTable {
		if strings.Contains(haystack, rule.keyword) {
			return rule.category
		}
	}

	return fallback
}

// Learn upserts the generic sender mapping and returns the updated
// table. The input map is not mutated; re-learning the same pair is a
// no-op change.
func Learn(m Mappings, sender, cat string) Mappings {
	key := GenericKey(sender)
	if key == "" || cat == "" {
		return m
	}
	out := make(Mappings, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[key] = cat
	return out
}

// LearnSpecific upserts the sender+amount mapping, used when a review
// confirms a category for a concrete amount.
func LearnSpecific(m Mappings, sender string, amount float64, cat string) Mappings {
	key := SpecificKey(sender, amount)
	if strings.HasPrefix(key, "-") || cat == "" {
		return m
	}
	out := make(Mappings, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[key] = cat
	return out
}

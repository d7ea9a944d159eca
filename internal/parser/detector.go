package parser

import (
	"strings"

	"github.com/MysterySalsicha/PlanejamentoFinanceiro-sub000/internal/models"
)

// detectionRules is ordered: some keywords can co-occur (a wallet name
// cited inside a bank statement), so the first match wins.
var detectionRules = []struct {
	provider models.Provider
	keywords []string
}{
	{models.ProviderBradesco, []string{"bradesco"}},
	{models.ProviderNubank, []string{"nu pagamentos", "nubank"}},
	{models.ProviderPicPay, []string{"picpay"}},
	{models.ProviderInter, []string{"banco inter", "inter s.a"}},
}

// Detect classifies a raw text blob into one of the known source
// formats by keyword sniffing, or ProviderGeneric when nothing matches.
// Pure function, no side effects.
func Detect(text string) models.Provider {
	lower := strings.ToLower(text)
	for _, rule := range detectionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.provider
			}
		}
	}
	return models.ProviderGeneric
}

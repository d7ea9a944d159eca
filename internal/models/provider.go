package models

// Provider identifies a recognized statement source format.
type Provider string

const (
	ProviderBradesco Provider = "bradesco"
	ProviderNubank   Provider = "nubank"
	ProviderPicPay   Provider = "picpay"
	ProviderInter    Provider = "inter"
	ProviderGeneric  Provider = "generic"
)

// ImportMode selects how a raw blob is interpreted.
type ImportMode string

const (
	// ModeStatement runs provider detection before parsing.
	ModeStatement ImportMode = "statement"
	// ModeFreeList skips detection and treats the input as a hand-typed list.
	ModeFreeList ImportMode = "free-list"
)

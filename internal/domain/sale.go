package domain

// SalesSummary representa o resumo de vendas de um usuário em um período,
// obtido da base interna de vendas por UTM source
type SalesSummary struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

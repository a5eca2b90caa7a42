package domain

// Settings é a linha única de configuracoes (id = 1). A existência da
// linha é garantida pela migração inicial e pelo caminho de leitura.
type Settings struct {
	ID             int64   `json:"id"`
	TaxPercent     float64 `json:"imposto_percent"`
	ExpensePercent float64 `json:"despesas_percent"`
	AutoSync       bool    `json:"auto_sync"`
}

// DefaultSettings retorna a configuração usada quando a linha singleton
// ainda não existe.
func DefaultSettings() *Settings {
	return &Settings{ID: 1}
}

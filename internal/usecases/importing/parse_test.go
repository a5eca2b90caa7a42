package importing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSaleDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected *time.Time
	}{
		{
			name:     "Formato livre pt-BR do export",
			raw:      "12 de março de 2025 14:35",
			expected: timePtr(time.Date(2025, time.March, 12, 14, 35, 0, 0, time.UTC)),
		},
		{
			name:     "Mês sem acento",
			raw:      "3 de marco de 2025 08:05",
			expected: timePtr(time.Date(2025, time.March, 3, 8, 5, 0, 0, time.UTC)),
		},
		{
			name:     "ISO com hora",
			raw:      "2025-01-31T10:20:30",
			expected: timePtr(time.Date(2025, time.January, 31, 10, 20, 30, 0, time.UTC)),
		},
		{
			name:     "Somente data",
			raw:      "2025-01-31",
			expected: timePtr(time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "Data brasileira com barras",
			raw:      "31/01/2025",
			expected: timePtr(time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "Vazio vira nil",
			raw:      "",
			expected: nil,
		},
		{
			name:     "Lixo vira nil",
			raw:      "amanhã de tarde",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseSaleDate(tt.raw)
			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.True(t, tt.expected.Equal(*result), "esperado %v, obtido %v", tt.expected, result)
		})
	}
}

func TestNormalizeUF(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected *string
	}{
		{name: "Nome completo com acento", raw: "São Paulo", expected: stringPtr("SP")},
		{name: "Nome completo sem acento", raw: "sao paulo", expected: stringPtr("SP")},
		{name: "Sigla válida passa direto", raw: "rj", expected: stringPtr("RJ")},
		{name: "Prefixo descartado por sufixo", raw: "Estado de São Paulo", expected: stringPtr("SP")},
		{name: "Nome composto", raw: "Rio Grande do Sul", expected: stringPtr("RS")},
		{name: "Não reconhecido vira nil, nunca fragmento", raw: "Gotham", expected: nil},
		{name: "Sigla inexistente vira nil", raw: "XX", expected: nil},
		{name: "Vazio vira nil", raw: "  ", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeUF(tt.raw)
			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, *tt.expected, *result)
		})
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{name: "Decimal com ponto", raw: "1234.56", expected: 1234.56},
		{name: "Decimal brasileiro", raw: "1.234,56", expected: 1234.56},
		{name: "Com símbolo de moeda", raw: "R$ 99,90", expected: 99.90},
		{name: "Negativo", raw: "-10,50", expected: -10.50},
		{name: "Vazio vira zero", raw: "", expected: 0},
		{name: "Lixo vira zero", raw: "abc", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseFloat(tt.raw))
		})
	}
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 3, ParseInt("3"))
	assert.Equal(t, 3, ParseInt("3.0"))
	assert.Equal(t, 0, ParseInt(""))
	assert.Equal(t, 0, ParseInt("x"))
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func stringPtr(s string) *string {
	return &s
}

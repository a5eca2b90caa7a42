package importing

import "github.com/pkg/errors"

var (
	// ErrUnexpectedFormat indica que a planilha não tem as colunas
	// esperadas por nenhum layout conhecido; nada é persistido.
	ErrUnexpectedFormat = errors.New("planilha não está no formato esperado")

	// ErrMissingSKUColumn indica planilha de catálogo sem coluna SKU.
	ErrMissingSKUColumn = errors.New("planilha deve ter uma coluna 'SKU'")
)

package catalog

import "github.com/pkg/errors"

var (
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrSKUAlreadyInUse   = errors.New("já existe um produto com esse SKU")
	ErrNameRequired      = errors.New("nome do produto é obrigatório")
	ErrInvalidAdjustment = errors.New("ajuste de estoque inválido: tipo deve ser entrada ou saida e a quantidade positiva")
)

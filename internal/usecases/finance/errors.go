package finance

import "github.com/pkg/errors"

var (
	ErrUnknownAction = errors.New("ação de caixa desconhecida")
	ErrInvalidDate   = errors.New("data inválida, use o formato AAAA-MM-DD")
)

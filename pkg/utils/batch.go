package utils

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NewImportBatchID gera o identificador de um lote de importação:
// timestamp ISO com um sufixo curto para lotes iniciados no mesmo segundo.
func NewImportBatchID(now time.Time) string {
	suffix, err := gonanoid.Generate(characters, 6)
	if err != nil {
		return now.Format("2006-01-02T15:04:05")
	}
	return fmt.Sprintf("%s-%s", now.Format("2006-01-02T15:04:05"), suffix)
}

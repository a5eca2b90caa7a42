package postgres

import (
	"database/sql"
)

// Queryer é o subconjunto de operações compartilhado por *sql.DB e
// *sql.Tx, o que permite aos repositórios executar dentro ou fora de uma
// transação.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

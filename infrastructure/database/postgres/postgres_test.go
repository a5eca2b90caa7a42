package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Driver mínimo em memória, só para observar commit e rollback.
type stubDriver struct {
	conn *stubConn
}

func (d *stubDriver) Open(string) (driver.Conn, error) {
	return d.conn, nil
}

type stubConn struct {
	rollbackErr error
	rolledBack  bool
	committed   bool
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("não suportado")
}

func (c *stubConn) Close() error {
	return nil
}

func (c *stubConn) Begin() (driver.Tx, error) {
	return &stubTx{conn: c}, nil
}

type stubTx struct {
	conn *stubConn
}

func (t *stubTx) Commit() error {
	t.conn.committed = true
	return nil
}

func (t *stubTx) Rollback() error {
	t.conn.rolledBack = true
	return t.conn.rollbackErr
}

func openStub(t *testing.T, name string, conn *stubConn) *Connection {
	t.Helper()

	sql.Register(name, &stubDriver{conn: conn})
	db, err := sql.Open(name, "")
	require.NoError(t, err)

	return &Connection{DB: db}
}

func TestRunInTransaction(t *testing.T) {
	t.Run("Sucesso commita a transação", func(t *testing.T) {
		conn := &stubConn{}
		c := openStub(t, "stub-commit", conn)

		err := c.RunInTransaction(context.Background(), func(*sql.Tx) error {
			return nil
		})

		require.NoError(t, err)
		assert.True(t, conn.committed)
		assert.False(t, conn.rolledBack)
	})

	t.Run("Erro da função faz rollback e é devolvido", func(t *testing.T) {
		conn := &stubConn{}
		c := openStub(t, "stub-rollback", conn)

		opErr := errors.New("falha na operação")
		err := c.RunInTransaction(context.Background(), func(*sql.Tx) error {
			return opErr
		})

		assert.ErrorIs(t, err, opErr)
		assert.True(t, conn.rolledBack)
		assert.False(t, conn.committed)
	})

	t.Run("Falha no rollback não engole o erro da função", func(t *testing.T) {
		conn := &stubConn{rollbackErr: errors.New("rollback indisponível")}
		c := openStub(t, "stub-rollback-falho", conn)

		opErr := errors.New("falha na operação")
		err := c.RunInTransaction(context.Background(), func(*sql.Tx) error {
			return opErr
		})

		assert.ErrorIs(t, err, opErr)
		assert.True(t, conn.rolledBack)
	})
}

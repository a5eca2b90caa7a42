package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/metrifypremium/metrify-api/infrastructure/database/postgres"
	"github.com/metrifypremium/metrify-api/internal/domain"
)

const usersTable = "usuarios"

type UserRepository interface {
	GetByUsername(username string) (*domain.User, error)
	GetByID(userID int) (*domain.User, error)
	Create(user *domain.User) (*domain.User, error)
	CreateIfAbsent(user *domain.User) error
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetByUsername(username string) (*domain.User, error) {
	return r.getBy(squirrel.Eq{"username": username})
}

func (r *userRepository) GetByID(userID int) (*domain.User, error) {
	return r.getBy(squirrel.Eq{"id": userID})
}

func (r *userRepository) getBy(whereClause map[string]interface{}) (*domain.User, error) {
	query, args, err := squirrel.
		Select("id, username, password_hash, papel, ativo").
		From(usersTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	user := &domain.User{}
	err = r.conn.QueryRow(query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.Active,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) Create(user *domain.User) (*domain.User, error) {
	query, args, err := squirrel.
		Insert(usersTable).
		Columns("username", "password_hash", "papel", "ativo").
		Values(user.Username, user.PasswordHash, user.Role, user.Active).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&user.ID); err != nil {
		return nil, fmt.Errorf("erro ao inserir usuário: %w", err)
	}

	return user, nil
}

// CreateIfAbsent insere o usuário ignorando conflito de username. Usado
// na semeadura do usuário padrão no boot.
func (r *userRepository) CreateIfAbsent(user *domain.User) error {
	query, args, err := squirrel.
		Insert(usersTable).
		Columns("username", "password_hash", "papel", "ativo").
		Values(user.Username, user.PasswordHash, user.Role, user.Active).
		Suffix("ON CONFLICT (username) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir usuário: %w", err)
	}

	return nil
}

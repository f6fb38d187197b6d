package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"degen/internal/models"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

// PostgresStorage implements Storage using PostgreSQL
type PostgresStorage struct {
	db *sql.DB
}

// NewPostgresStorage creates a new PostgreSQL-backed storage
func NewPostgresStorage(dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresStorage{db: db}, nil
}

// DB exposes the underlying connection pool for metrics registration
func (ps *PostgresStorage) DB() *sql.DB {
	return ps.db
}

// CreateWallet stores a new wallet
func (ps *PostgresStorage) CreateWallet(wallet *models.Wallet) error {
	query := `
		INSERT INTO wallets (id, address, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := ps.db.Exec(query,
		wallet.ID,
		wallet.Address,
		wallet.Name,
		wallet.CreatedAt,
		wallet.UpdatedAt,
	)

	if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}

	return nil
}

// GetWallet returns the wallet with the given ID
func (ps *PostgresStorage) GetWallet(id string) (*models.Wallet, error) {
	query := `
		SELECT id, address, name, created_at, updated_at
		FROM wallets
		WHERE id = $1
	`

	wallet := &models.Wallet{}
	err := ps.db.QueryRow(query, id).Scan(
		&wallet.ID,
		&wallet.Address,
		&wallet.Name,
		&wallet.CreatedAt,
		&wallet.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	return wallet, nil
}

// ListWallets returns one page of wallets, newest first, with the total count
func (ps *PostgresStorage) ListWallets(page, perPage int) ([]*models.Wallet, int, error) {
	var total int
	if err := ps.db.QueryRow(`SELECT COUNT(*) FROM wallets`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count wallets: %w", err)
	}

	query := `
		SELECT id, address, name, created_at, updated_at
		FROM wallets
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := ps.db.Query(query, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list wallets: %w", err)
	}
	defer rows.Close()

	wallets := []*models.Wallet{}
	for rows.Next() {
		wallet := &models.Wallet{}
		if err := rows.Scan(
			&wallet.ID,
			&wallet.Address,
			&wallet.Name,
			&wallet.CreatedAt,
			&wallet.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan wallet: %w", err)
		}
		wallets = append(wallets, wallet)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate wallets: %w", err)
	}

	return wallets, total, nil
}

// Close closes the database connection
func (ps *PostgresStorage) Close() error {
	return ps.db.Close()
}

package storage

import (
	"errors"

	"degen/internal/models"
)

var (
	// ErrNotFound is returned when a requested wallet does not exist
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a wallet with the same address already exists
	ErrConflict = errors.New("already exists")
)

// Storage defines the interface for storing and retrieving wallets
type Storage interface {
	// CreateWallet stores a new wallet. Returns ErrConflict if a wallet
	// with the same address already exists.
	CreateWallet(wallet *models.Wallet) error

	// GetWallet returns the wallet with the given ID (UUID string)
	GetWallet(id string) (*models.Wallet, error)

	// ListWallets returns one page of wallets, newest first, along with
	// the total wallet count. page is 1-based.
	ListWallets(page, perPage int) ([]*models.Wallet, int, error)

	// Close closes the database connection
	Close() error
}

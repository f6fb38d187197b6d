package storage

import (
	"errors"
	"sort"
	"sync"

	"degen/internal/models"
)

// errInjected is returned by injected failures so tests can distinguish
// storage errors from the sentinel errors
var errInjected = errors.New("injected storage error")

// MockStorage is an in-memory implementation of the Storage interface for testing
type MockStorage struct {
	mu sync.RWMutex

	wallets   map[string]*models.Wallet // key: wallet ID
	byAddress map[string]string         // address -> wallet ID

	// Error injection
	shouldErrorOnCreate bool
	shouldErrorOnGet    bool
	shouldErrorOnList   bool
}

// NewMockStorage creates a new mock storage instance
func NewMockStorage() *MockStorage {
	return &MockStorage{
		wallets:   make(map[string]*models.Wallet),
		byAddress: make(map[string]string),
	}
}

// FailCreate makes subsequent CreateWallet calls return an error
func (m *MockStorage) FailCreate() { m.shouldErrorOnCreate = true }

// FailGet makes subsequent GetWallet calls return an error
func (m *MockStorage) FailGet() { m.shouldErrorOnGet = true }

// FailList makes subsequent ListWallets calls return an error
func (m *MockStorage) FailList() { m.shouldErrorOnList = true }

// CreateWallet stores a new wallet
func (m *MockStorage) CreateWallet(wallet *models.Wallet) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shouldErrorOnCreate {
		return errInjected
	}

	if _, exists := m.byAddress[wallet.Address]; exists {
		return ErrConflict
	}

	m.wallets[wallet.ID.String()] = wallet
	m.byAddress[wallet.Address] = wallet.ID.String()
	return nil
}

// GetWallet returns the wallet with the given ID
func (m *MockStorage) GetWallet(id string) (*models.Wallet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.shouldErrorOnGet {
		return nil, errInjected
	}

	wallet, exists := m.wallets[id]
	if !exists {
		return nil, ErrNotFound
	}
	return wallet, nil
}

// ListWallets returns one page of wallets, newest first, with the total count
func (m *MockStorage) ListWallets(page, perPage int) ([]*models.Wallet, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.shouldErrorOnList {
		return nil, 0, errInjected
	}

	wallets := make([]*models.Wallet, 0, len(m.wallets))
	for _, wallet := range m.wallets {
		wallets = append(wallets, wallet)
	}

	sort.Slice(wallets, func(i, j int) bool {
		return wallets[i].CreatedAt.After(wallets[j].CreatedAt)
	})

	total := len(wallets)
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return wallets[start:end], total, nil
}

// Close is a no-op for the mock
func (m *MockStorage) Close() error {
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// HealthResponse represents the health check response
// @Description Health check response with service and database status
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`          // Overall service status (ok or error)
	Service  string `json:"service" example:"degen-api"`  // Service name
	Database string `json:"database" example:"connected"` // Database connection status (connected or disconnected)
}

// Wallet represents a cryptocurrency wallet in the system
// @Description A tracked cryptocurrency wallet with its blockchain address and timestamps
type Wallet struct {
	ID        uuid.UUID `json:"id" example:"123e4567-e89b-12d3-a456-426614174000"`              // Unique wallet identifier
	Address   string    `json:"address" example:"4Nd1mYvabzF5QkRzCcBTtGbDdSBEGyXJ6oLKsJMADWbR"` // Blockchain address of the wallet
	Name      *string   `json:"name" example:"My Solana Wallet"`                                // Optional display name
	CreatedAt time.Time `json:"created_at"`                                                     // When the wallet was first added
	UpdatedAt time.Time `json:"updated_at"`                                                     // When the wallet was last updated
}

// CreateWallet is the request payload for creating a new wallet
// @Description Request payload with the blockchain address and an optional name
type CreateWallet struct {
	Address string  `json:"address" example:"4Nd1mYvabzF5QkRzCcBTtGbDdSBEGyXJ6oLKsJMADWbR"` // Blockchain address of the wallet
	Name    *string `json:"name" example:"My Wallet"`                                       // Optional display name
}

// PaginatedWallets is one page of wallets with pagination metadata
// @Description Paginated wallet list with total count and page information
type PaginatedWallets struct {
	Items      []*Wallet `json:"items"`                   // Wallets on this page
	Total      int       `json:"total" example:"2"`       // Total number of wallets
	Page       int       `json:"page" example:"1"`        // Current page (1-based)
	PerPage    int       `json:"per_page" example:"50"`   // Page size
	TotalPages int       `json:"total_pages" example:"1"` // Total number of pages
}

// ErrorResponse is the error payload returned by all endpoints
// @Description Error response with a human-readable message and a machine-readable code
type ErrorResponse struct {
	Error string `json:"error" example:"wallet not found"`
	Code  string `json:"code,omitempty" example:"not_found"` // Error code for programmatic handling
}

package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"gopkg.in/yaml.v3"

	"degen/internal/logger"
	"degen/internal/metrics"
	"degen/internal/models"
	"degen/internal/storage"
)

// maxAddressLength is the longest accepted wallet address. Solana addresses
// are base58-encoded 32-byte public keys, at most 44 characters.
const maxAddressLength = 44

// Pagination bounds for wallet listing
const (
	defaultPerPage = 50
	maxPerPage     = 100
)

// healthProbeID is a well-formed UUID that never matches a wallet; looking
// it up exercises the database without touching real data.
const healthProbeID = "00000000-0000-0000-0000-000000000000"

// Handlers contains HTTP handlers
type Handlers struct {
	storage storage.Storage
}

// New creates a new Handlers instance
func New(store storage.Storage) *Handlers {
	return &Handlers{storage: store}
}

// errorCodes maps HTTP statuses to the machine-readable codes carried in
// error payloads
var errorCodes = map[int]string{
	http.StatusBadRequest:          "bad_request",
	http.StatusNotFound:            "not_found",
	http.StatusConflict:            "conflict",
	http.StatusUnprocessableEntity: "unprocessable_entity",
	http.StatusInternalServerError: "internal_server_error",
	http.StatusServiceUnavailable:  "service_unavailable",
}

// respondError writes an error payload with the code matching the status
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, models.ErrorResponse{Error: message, Code: errorCodes[status]})
}

// Health returns server health status
// @Summary     Health check
// @Description Returns the health status of the service, including database connectivity. Useful for monitoring and load balancer health checks.
// @Tags        Health
// @Accept      json
// @Produce     json
// @Success     200  {object}  models.HealthResponse  "Service is healthy and database is connected"
// @Success     503  {object}  models.HealthResponse  "Service is unhealthy or database is disconnected"
// @Router      /health [get]
func (h *Handlers) Health(c *gin.Context) {
	_, err := h.storage.GetWallet(healthProbeID)
	if err != nil && err != storage.ErrNotFound {
		c.JSON(http.StatusServiceUnavailable, models.HealthResponse{
			Status:   "error",
			Service:  "degen-api",
			Database: "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:   "ok",
		Service:  "degen-api",
		Database: "connected",
	})
}

// AddWallet creates a new wallet
// @Summary     Create a new wallet
// @Description Creates a new wallet with the provided blockchain address. The address must be non-empty, at most 44 characters, and valid base58.
// @Tags        Wallets
// @Accept      json
// @Produce     json
// @Param       request  body      models.CreateWallet  true  "Wallet to create"
// @Success     201      {object}  models.Wallet        "Wallet created successfully"
// @Failure     400      {object}  models.ErrorResponse "Invalid request payload"
// @Failure     409      {object}  models.ErrorResponse "Wallet with this address already exists"
// @Failure     422      {object}  models.ErrorResponse "Invalid wallet address"
// @Failure     500      {object}  models.ErrorResponse "Internal server error"
// @Router      /wallets [post]
func (h *Handlers) AddWallet(c *gin.Context) {
	var req models.CreateWallet
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	address := strings.TrimSpace(req.Address)
	if address == "" {
		respondError(c, http.StatusUnprocessableEntity, "wallet address cannot be empty")
		return
	}
	if len(address) > maxAddressLength {
		respondError(c, http.StatusUnprocessableEntity, "invalid wallet address length")
		return
	}
	if _, err := base58.Decode(address); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "invalid wallet address format")
		return
	}

	id, err := uuid.NewV7()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to generate wallet ID")
		respondError(c, http.StatusInternalServerError, "failed to create wallet")
		return
	}

	now := time.Now().UTC()
	wallet := &models.Wallet{
		ID:        id,
		Address:   address,
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.storage.CreateWallet(wallet); err != nil {
		if err == storage.ErrConflict {
			respondError(c, http.StatusConflict, "wallet with this address already exists")
			return
		}
		logger.Logger.Error().Err(err).Str("address", address).Msg("Failed to create wallet")
		respondError(c, http.StatusInternalServerError, "failed to create wallet")
		return
	}

	metrics.WalletsCreatedTotal.Inc()
	logger.FromContext(c).Str("wallet_id", wallet.ID.String()).Msg("Wallet created")

	c.JSON(http.StatusCreated, wallet)
}

// GetWallet returns a wallet by ID
// @Summary     Get a wallet by ID
// @Description Returns the wallet with the specified ID if it exists.
// @Tags        Wallets
// @Accept      json
// @Produce     json
// @Param       id   path      string  true  "Wallet ID (UUID)"
// @Success     200  {object}  models.Wallet        "Wallet found"
// @Failure     400  {object}  models.ErrorResponse "Invalid wallet ID"
// @Failure     404  {object}  models.ErrorResponse "Wallet not found"
// @Failure     500  {object}  models.ErrorResponse "Internal server error"
// @Router      /wallets/{id} [get]
func (h *Handlers) GetWallet(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, http.StatusBadRequest, "invalid wallet id")
		return
	}

	wallet, err := h.storage.GetWallet(id)
	if err != nil {
		if err == storage.ErrNotFound {
			respondError(c, http.StatusNotFound, "wallet not found")
			return
		}
		logger.Logger.Error().Err(err).Str("wallet_id", id).Msg("Failed to get wallet")
		respondError(c, http.StatusInternalServerError, "failed to retrieve wallet")
		return
	}

	c.JSON(http.StatusOK, wallet)
}

// ListWallets returns a page of wallets
// @Summary     List all wallets
// @Description Returns a paginated list of wallets, newest first.
// @Tags        Wallets
// @Accept      json
// @Produce     json
// @Param       page      query     int  false  "Page number (1-based)"          default(1)
// @Param       per_page  query     int  false  "Wallets per page (max 100)"     default(50)
// @Success     200  {object}  models.PaginatedWallets  "Page of wallets"
// @Failure     500  {object}  models.ErrorResponse     "Internal server error"
// @Router      /wallets [get]
func (h *Handlers) ListWallets(c *gin.Context) {
	page, perPage := paginationParams(c)

	wallets, total, err := h.storage.ListWallets(page, perPage)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list wallets")
		respondError(c, http.StatusInternalServerError, "failed to retrieve wallets")
		return
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + perPage - 1) / perPage
	}

	c.JSON(http.StatusOK, models.PaginatedWallets{
		Items:      wallets,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	})
}

// paginationParams reads page and per_page from the query string. Values
// that are missing, malformed, or out of range fall back to the defaults:
// page 1, per_page 50, capped at 100.
func paginationParams(c *gin.Context) (page, perPage int) {
	page = 1
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v >= 1 {
		page = v
	}

	perPage = defaultPerPage
	if v, err := strconv.Atoi(c.DefaultQuery("per_page", "")); err == nil && v >= 1 {
		perPage = v
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// GetOpenAPISpecYAML returns the OpenAPI specification in YAML format
// @Summary     OpenAPI specification (YAML)
// @Description Returns the OpenAPI 3.0 specification in YAML format
// @Tags        Health
// @Produce     application/x-yaml
// @Success     200  {string}  string  "OpenAPI specification"
// @Router      /openapi.yaml [get]
func (h *Handlers) GetOpenAPISpecYAML(c *gin.Context) {
	specPath := h.findSpecFile("api/openapi.yaml")
	if specPath == "" {
		respondError(c, http.StatusInternalServerError, "failed to load OpenAPI specification")
		return
	}

	specData, err := os.ReadFile(specPath)
	if err != nil {
		logger.Logger.Error().Err(err).Str("path", specPath).Msg("Failed to read OpenAPI spec")
		respondError(c, http.StatusInternalServerError, "failed to load OpenAPI specification")
		return
	}

	c.Data(http.StatusOK, "application/x-yaml", specData)
}

// GetOpenAPISpecJSON returns the OpenAPI specification in JSON format
// @Summary     OpenAPI specification (JSON)
// @Description Returns the OpenAPI 3.0 specification in JSON format
// @Tags        Health
// @Produce     application/json
// @Success     200  {object}  map[string]interface{}  "OpenAPI specification"
// @Router      /openapi.json [get]
func (h *Handlers) GetOpenAPISpecJSON(c *gin.Context) {
	if specPath := h.findSpecFile("api/openapi.json"); specPath != "" {
		specData, err := os.ReadFile(specPath)
		if err == nil {
			var spec map[string]interface{}
			if err := json.Unmarshal(specData, &spec); err == nil {
				c.JSON(http.StatusOK, spec)
				return
			}
		}
	}

	// Fall back to converting the YAML document
	specPath := h.findSpecFile("api/openapi.yaml")
	if specPath == "" {
		respondError(c, http.StatusInternalServerError, "failed to load OpenAPI specification")
		return
	}

	specData, err := os.ReadFile(specPath)
	if err != nil {
		logger.Logger.Error().Err(err).Str("path", specPath).Msg("Failed to read OpenAPI spec")
		respondError(c, http.StatusInternalServerError, "failed to load OpenAPI specification")
		return
	}

	var spec map[string]interface{}
	if err := yaml.Unmarshal(specData, &spec); err != nil {
		logger.Logger.Error().Err(err).Str("path", specPath).Msg("Failed to parse OpenAPI spec")
		respondError(c, http.StatusInternalServerError, "failed to parse OpenAPI specification")
		return
	}

	c.JSON(http.StatusOK, spec)
}

// findSpecFile tries to locate a spec file in multiple possible locations
func (h *Handlers) findSpecFile(relativePath string) string {
	// Try current working directory first
	if _, err := os.Stat(relativePath); err == nil {
		return relativePath
	}

	// Try relative to executable location
	execPath, err := os.Executable()
	if err == nil {
		absPath := filepath.Join(filepath.Dir(execPath), relativePath)
		if _, err := os.Stat(absPath); err == nil {
			return absPath
		}
	}

	return ""
}

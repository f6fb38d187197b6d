package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"degen/internal/models"
	"degen/internal/storage"
)

// validAddress is a well-formed base58 Solana-style address
const validAddress = "4Nd1mYvabzF5QkRzCcBTtGbDdSBEGyXJ6oLKsJMADWbR"

func setupRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", h.Health)
	r.POST("/wallets", h.AddWallet)
	r.GET("/wallets", h.ListWallets)
	r.GET("/wallets/:id", h.GetWallet)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandlers_Health(t *testing.T) {
	t.Run("healthy database", func(t *testing.T) {
		h := New(storage.NewMockStorage())
		w := get(setupRouter(h), "/health")

		assert.Equal(t, http.StatusOK, w.Code)

		var response models.HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "ok", response.Status)
		assert.Equal(t, "degen-api", response.Service)
		assert.Equal(t, "connected", response.Database)
	})

	t.Run("unhealthy database", func(t *testing.T) {
		mock := storage.NewMockStorage()
		mock.FailGet()
		h := New(mock)
		w := get(setupRouter(h), "/health")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response models.HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "error", response.Status)
		assert.Equal(t, "disconnected", response.Database)
	})
}

func TestHandlers_AddWallet(t *testing.T) {
	name := "My Wallet"

	tests := []struct {
		name           string
		body           interface{}
		rawBody        string
		setupStore     func(*storage.MockStorage)
		expectedStatus int
		expectedError  string
		expectedCode   string
	}{
		{
			name:           "valid wallet",
			body:           models.CreateWallet{Address: validAddress, Name: &name},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "valid wallet without name",
			body:           models.CreateWallet{Address: validAddress},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "address is trimmed",
			body:           models.CreateWallet{Address: "  " + validAddress + "  "},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "empty address",
			body:           models.CreateWallet{Address: "   "},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "wallet address cannot be empty",
			expectedCode:   "unprocessable_entity",
		},
		{
			name:           "address too long",
			body:           models.CreateWallet{Address: strings.Repeat("1", 45)},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "invalid wallet address length",
			expectedCode:   "unprocessable_entity",
		},
		{
			name: "not base58",
			// Ethereum-style hex is rejected: 0, O, I and l are not
			// part of the base58 alphabet
			body:           models.CreateWallet{Address: "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "invalid wallet address format",
			expectedCode:   "unprocessable_entity",
		},
		{
			name:           "invalid JSON",
			rawBody:        `{"address": `,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid JSON payload",
			expectedCode:   "bad_request",
		},
		{
			name: "duplicate address",
			body: models.CreateWallet{Address: validAddress},
			setupStore: func(m *storage.MockStorage) {
				wallet := &models.Wallet{ID: uuid.New(), Address: validAddress, CreatedAt: time.Now(), UpdatedAt: time.Now()}
				require.NoError(t, m.CreateWallet(wallet))
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "wallet with this address already exists",
			expectedCode:   "conflict",
		},
		{
			name: "storage failure",
			body: models.CreateWallet{Address: validAddress},
			setupStore: func(m *storage.MockStorage) {
				m.FailCreate()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to create wallet",
			expectedCode:   "internal_server_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := storage.NewMockStorage()
			if tt.setupStore != nil {
				tt.setupStore(mock)
			}
			r := setupRouter(New(mock))

			var w *httptest.ResponseRecorder
			if tt.rawBody != "" {
				req := httptest.NewRequest(http.MethodPost, "/wallets", bytes.NewReader([]byte(tt.rawBody)))
				req.Header.Set("Content-Type", "application/json")
				w = httptest.NewRecorder()
				r.ServeHTTP(w, req)
			} else {
				w = postJSON(r, "/wallets", tt.body)
			}

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				var response models.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedError, response.Error)
				assert.Equal(t, tt.expectedCode, response.Code)
				return
			}

			var wallet models.Wallet
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &wallet))
			assert.NotEqual(t, uuid.Nil, wallet.ID)
			assert.Equal(t, validAddress, wallet.Address)
			assert.False(t, wallet.CreatedAt.IsZero())
			assert.Equal(t, wallet.CreatedAt, wallet.UpdatedAt)
		})
	}
}

func TestHandlers_GetWallet(t *testing.T) {
	mock := storage.NewMockStorage()
	wallet := &models.Wallet{
		ID:        uuid.New(),
		Address:   validAddress,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, mock.CreateWallet(wallet))
	r := setupRouter(New(mock))

	t.Run("existing wallet", func(t *testing.T) {
		w := get(r, "/wallets/"+wallet.ID.String())
		assert.Equal(t, http.StatusOK, w.Code)

		var got models.Wallet
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, wallet.ID, got.ID)
		assert.Equal(t, validAddress, got.Address)
	})

	t.Run("unknown wallet", func(t *testing.T) {
		w := get(r, "/wallets/"+uuid.New().String())
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid wallet id", func(t *testing.T) {
		w := get(r, "/wallets/not-a-uuid")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "invalid wallet id", response.Error)
		assert.Equal(t, "bad_request", response.Code)
	})
}

func listWallets(t *testing.T, r *gin.Engine, path string) models.PaginatedWallets {
	t.Helper()
	w := get(r, path)
	require.Equal(t, http.StatusOK, w.Code)

	var page models.PaginatedWallets
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	return page
}

func TestHandlers_ListWallets(t *testing.T) {
	t.Run("empty page keeps defaults", func(t *testing.T) {
		r := setupRouter(New(storage.NewMockStorage()))
		w := get(r, "/wallets")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[]`)

		var page models.PaginatedWallets
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, 0, page.Total)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 50, page.PerPage)
		assert.Equal(t, 0, page.TotalPages)
	})

	t.Run("newest first", func(t *testing.T) {
		mock := storage.NewMockStorage()
		older := &models.Wallet{ID: uuid.New(), Address: validAddress, CreatedAt: time.Now().Add(-time.Hour)}
		newer := &models.Wallet{ID: uuid.New(), Address: "11111111111111111111111111111111", CreatedAt: time.Now()}
		require.NoError(t, mock.CreateWallet(older))
		require.NoError(t, mock.CreateWallet(newer))

		page := listWallets(t, setupRouter(New(mock)), "/wallets")
		assert.Equal(t, 2, page.Total)
		require.Len(t, page.Items, 2)
		assert.Equal(t, newer.ID, page.Items[0].ID)
		assert.Equal(t, older.ID, page.Items[1].ID)
	})

	t.Run("pages through wallets", func(t *testing.T) {
		mock := storage.NewMockStorage()
		now := time.Now()
		for i := 0; i < 3; i++ {
			w := &models.Wallet{ID: uuid.New(), Address: fmt.Sprintf("addr%d", i), CreatedAt: now.Add(time.Duration(i) * time.Minute)}
			require.NoError(t, mock.CreateWallet(w))
		}
		r := setupRouter(New(mock))

		first := listWallets(t, r, "/wallets?page=1&per_page=2")
		assert.Equal(t, 3, first.Total)
		assert.Equal(t, 1, first.Page)
		assert.Equal(t, 2, first.PerPage)
		assert.Equal(t, 2, first.TotalPages)
		assert.Len(t, first.Items, 2)

		second := listWallets(t, r, "/wallets?page=2&per_page=2")
		assert.Equal(t, 2, second.Page)
		assert.Len(t, second.Items, 1)
	})

	t.Run("per_page is capped", func(t *testing.T) {
		page := listWallets(t, setupRouter(New(storage.NewMockStorage())), "/wallets?per_page=1000")
		assert.Equal(t, 100, page.PerPage)
	})

	t.Run("out of range values fall back to defaults", func(t *testing.T) {
		page := listWallets(t, setupRouter(New(storage.NewMockStorage())), "/wallets?page=0&per_page=0")
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 50, page.PerPage)

		page = listWallets(t, setupRouter(New(storage.NewMockStorage())), "/wallets?page=abc&per_page=xyz")
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 50, page.PerPage)
	})

	t.Run("storage failure", func(t *testing.T) {
		mock := storage.NewMockStorage()
		mock.FailList()

		w := get(setupRouter(New(mock)), "/wallets")
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "internal_server_error", response.Code)
	})
}

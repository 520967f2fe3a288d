package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	contractapp "github.com/curio/backend/internal/application/contract"
	invoicingapp "github.com/curio/backend/internal/application/invoicing"
	"github.com/curio/backend/internal/infrastructure/persistence"
	"github.com/curio/backend/internal/infrastructure/persistence/models"
	"github.com/curio/backend/internal/infrastructure/printing"
	"github.com/curio/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// newTestRouter builds the full stack over an in-memory database, with
// authentication stubbed to a fixed owner per request header.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.InvoiceModel{},
		&models.ContractModel{},
		&models.CounterModel{},
	))

	invoiceRepo := persistence.NewGormInvoiceRepository(db)
	contractRepo := persistence.NewGormContractRepository(db)
	counterRepo := persistence.NewGormCounterRepository(db)

	log := zap.NewNop()
	invoiceService := invoicingapp.NewInvoiceService(invoiceRepo, counterRepo, log)
	contractService := contractapp.NewContractService(contractRepo, counterRepo, log)

	engine, err := printing.NewTemplateEngine()
	require.NoError(t, err)
	studio := printing.StudioInfo{Name: "Curio Studio", Currency: "GHS"}

	invoiceHandler := NewInvoiceHandler(invoiceService, engine, studio)
	contractHandler := NewContractHandler(contractService, engine, studio)

	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(func(c *gin.Context) {
		if owner := c.GetHeader("X-Test-Owner"); owner != "" {
			c.Set(middleware.OwnerIDKey, owner)
		}
		c.Next()
	})
	invoiceHandler.RegisterRoutes(api)
	contractHandler.RegisterRoutes(api)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, owner string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if owner != "" {
		req.Header.Set("X-Test-Owner", owner)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRaw(t *testing.T, r *gin.Engine, method, path, owner, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if owner != "" {
		req.Header.Set("X-Test-Owner", owner)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "expected success envelope, got %s", w.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) (code, message string) {
	t.Helper()

	var envelope struct {
		Success bool `json:"success"`
		Error   *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	return envelope.Error.Code, envelope.Error.Message
}

func mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}

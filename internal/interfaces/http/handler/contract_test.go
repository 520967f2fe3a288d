package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/curio/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contractPayload(client string) map[string]any {
	return map[string]any{
		"client_name":     client,
		"project_title":   "Brand campaign",
		"agreed_amount":   "5000",
		"deposit_percent": "50",
		"deliverables":    "40 edited photos",
		"license_type":    "Commercial",
	}
}

func createContract(t *testing.T, r *gin.Engine, owner, client string) dto.ContractResponse {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/contracts", owner, contractPayload(client))
	mustStatus(t, w, http.StatusCreated)

	var resp dto.ContractResponse
	decodeData(t, w, &resp)
	return resp
}

func TestContractCreate(t *testing.T) {
	r := newTestRouter(t)

	resp := createContract(t, r, "owner-1", "Akosua Mensah")

	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("CTR-%d-001", year), resp.ContractNumber)
	assert.Equal(t, "DRAFT", resp.Status)
	assert.Equal(t, "Commercial", resp.LicenseType)
	assert.Equal(t, "2500", resp.DepositAmount.String())
	assert.Equal(t, "2500", resp.BalanceAmount.String())

	second := createContract(t, r, "owner-1", "Kwame Boateng")
	assert.Equal(t, fmt.Sprintf("CTR-%d-002", year), second.ContractNumber)
}

func TestContractUpdateOnlyWhileDraft(t *testing.T) {
	r := newTestRouter(t)
	created := createContract(t, r, "owner-1", "Akosua Mensah")
	path := "/api/v1/contracts/" + created.ID.String()

	update := contractPayload("Akosua Mensah")
	update["agreed_amount"] = "6000"
	w := doJSON(t, r, http.MethodPut, path, "owner-1", update)
	mustStatus(t, w, http.StatusOK)

	var resp dto.ContractResponse
	decodeData(t, w, &resp)
	assert.Equal(t, "6000", resp.AgreedAmount.String())

	// Send it, then editing is rejected
	w = doJSON(t, r, http.MethodPost, path+"/transition", "owner-1", map[string]any{"status": "SENT"})
	mustStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodPut, path, "owner-1", update)
	mustStatus(t, w, http.StatusUnprocessableEntity)
	code, _ := decodeError(t, w)
	assert.Equal(t, "NOT_EDITABLE", code)
}

func TestContractLifecycle(t *testing.T) {
	r := newTestRouter(t)
	created := createContract(t, r, "owner-1", "Akosua Mensah")
	path := "/api/v1/contracts/" + created.ID.String() + "/transition"

	for _, target := range []string{"SENT", "SIGNED", "ACTIVE", "COMPLETED"} {
		w := doJSON(t, r, http.MethodPost, path, "owner-1", map[string]any{"status": target})
		mustStatus(t, w, http.StatusOK)

		var resp dto.ContractResponse
		decodeData(t, w, &resp)
		assert.Equal(t, target, resp.Status)
		if target == "SIGNED" {
			assert.NotNil(t, resp.SignedAt)
		}
	}

	// Terminal state rejects further moves
	w := doJSON(t, r, http.MethodPost, path, "owner-1", map[string]any{"status": "CANCELLED"})
	mustStatus(t, w, http.StatusUnprocessableEntity)
	code, _ := decodeError(t, w)
	assert.Equal(t, "INVALID_TRANSITION", code)
}

func TestContractSkippingStatesRejected(t *testing.T) {
	r := newTestRouter(t)
	created := createContract(t, r, "owner-1", "Akosua Mensah")
	path := "/api/v1/contracts/" + created.ID.String() + "/transition"

	w := doJSON(t, r, http.MethodPost, path, "owner-1", map[string]any{"status": "ACTIVE"})
	mustStatus(t, w, http.StatusUnprocessableEntity)
	code, _ := decodeError(t, w)
	assert.Equal(t, "INVALID_TRANSITION", code)
}

func TestContractDuplicate(t *testing.T) {
	r := newTestRouter(t)
	created := createContract(t, r, "owner-1", "Akosua Mensah")
	base := "/api/v1/contracts/" + created.ID.String()

	// Complete the source first; duplicates always start as drafts
	for _, target := range []string{"SENT", "SIGNED", "ACTIVE", "COMPLETED"} {
		w := doJSON(t, r, http.MethodPost, base+"/transition", "owner-1", map[string]any{"status": target})
		mustStatus(t, w, http.StatusOK)
	}

	w := doJSON(t, r, http.MethodPost, base+"/duplicate", "owner-1", nil)
	mustStatus(t, w, http.StatusCreated)

	var dup dto.ContractResponse
	decodeData(t, w, &dup)
	assert.NotEqual(t, created.ID, dup.ID)
	assert.NotEqual(t, created.ContractNumber, dup.ContractNumber)
	assert.Equal(t, "DRAFT", dup.Status)
	assert.Nil(t, dup.SignedAt)
	assert.Equal(t, created.ClientName, dup.ClientName)
}

func TestContractOwnerIsolation(t *testing.T) {
	r := newTestRouter(t)
	created := createContract(t, r, "owner-1", "Akosua Mensah")

	w := doJSON(t, r, http.MethodGet, "/api/v1/contracts/"+created.ID.String(), "owner-2", nil)
	mustStatus(t, w, http.StatusNotFound)
	code, _ := decodeError(t, w)
	assert.Equal(t, "CONTRACT_NOT_FOUND", code)
}

func TestContractDelete(t *testing.T) {
	r := newTestRouter(t)
	created := createContract(t, r, "owner-1", "Akosua Mensah")
	path := "/api/v1/contracts/" + created.ID.String()

	w := doJSON(t, r, http.MethodDelete, path, "owner-1", nil)
	mustStatus(t, w, http.StatusNoContent)

	w = doJSON(t, r, http.MethodGet, path, "owner-1", nil)
	mustStatus(t, w, http.StatusNotFound)
}

func TestContractList(t *testing.T) {
	r := newTestRouter(t)
	createContract(t, r, "owner-1", "Akosua Mensah")
	createContract(t, r, "owner-1", "Kwame Boateng")

	w := doJSON(t, r, http.MethodGet, "/api/v1/contracts", "owner-1", nil)
	mustStatus(t, w, http.StatusOK)

	var list dto.ContractListResponse
	decodeData(t, w, &list)
	assert.Equal(t, 2, list.Count)
}

func TestContractStatistics(t *testing.T) {
	r := newTestRouter(t)
	createContract(t, r, "owner-1", "Akosua Mensah")
	signed := createContract(t, r, "owner-1", "Kwame Boateng")

	path := "/api/v1/contracts/" + signed.ID.String() + "/transition"
	for _, target := range []string{"SENT", "SIGNED"} {
		w := doJSON(t, r, http.MethodPost, path, "owner-1", map[string]any{"status": target})
		mustStatus(t, w, http.StatusOK)
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/contracts/statistics", "owner-1", nil)
	mustStatus(t, w, http.StatusOK)

	var stats dto.ContractStatisticsResponse
	decodeData(t, w, &stats)
	assert.Equal(t, 2, stats.TotalContracts)
	assert.Equal(t, 1, stats.DraftCount)
	assert.Equal(t, 1, stats.SignedCount)
	assert.Equal(t, "5000", stats.SignedValue.String())

	// Another owner sees an empty board
	w = doJSON(t, r, http.MethodGet, "/api/v1/contracts/statistics", "owner-2", nil)
	mustStatus(t, w, http.StatusOK)
	decodeData(t, w, &stats)
	assert.Equal(t, 0, stats.TotalContracts)
}

func TestContractPrintAgreement(t *testing.T) {
	r := newTestRouter(t)
	created := createContract(t, r, "owner-1", "Akosua Mensah")

	w := doJSON(t, r, http.MethodGet, "/api/v1/contracts/"+created.ID.String()+"/document", "owner-1", nil)
	mustStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), created.ContractNumber)
	assert.Contains(t, w.Body.String(), "Akosua Mensah")
}

package handler

import (
	appcontract "github.com/curio/backend/internal/application/contract"
	"github.com/curio/backend/internal/domain/contract"
	"github.com/curio/backend/internal/infrastructure/printing"
	"github.com/curio/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContractHandler handles contract endpoints
type ContractHandler struct {
	BaseHandler
	contractService *appcontract.ContractService
	engine          *printing.TemplateEngine
	studio          printing.StudioInfo
}

// NewContractHandler creates a new ContractHandler
func NewContractHandler(
	contractService *appcontract.ContractService,
	engine *printing.TemplateEngine,
	studio printing.StudioInfo,
) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
		engine:          engine,
		studio:          studio,
	}
}

// RegisterRoutes mounts the contract routes on the given group
func (h *ContractHandler) RegisterRoutes(rg *gin.RouterGroup) {
	contracts := rg.Group("/contracts")
	contracts.GET("", h.List)
	contracts.POST("", h.Create)
	contracts.GET("/statistics", h.Statistics)
	contracts.GET("/:id", h.Get)
	contracts.PUT("/:id", h.Update)
	contracts.DELETE("/:id", h.Delete)
	contracts.POST("/:id/transition", h.Transition)
	contracts.POST("/:id/duplicate", h.Duplicate)
	contracts.GET("/:id/document", h.PrintAgreement)
}

// List returns the owner's contracts, most recently saved first
func (h *ContractHandler) List(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	contracts, err := h.contractService.ListContracts(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]dto.ContractResponse, len(contracts))
	for i := range contracts {
		responses[i] = dto.ContractResponseFromDomain(&contracts[i])
	}
	h.Success(c, dto.ContractListResponse{Contracts: responses, Count: len(responses)})
}

// Get returns one contract
func (h *ContractHandler) Get(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID")
		return
	}

	result, err := h.contractService.GetContract(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ContractResponseFromDomain(result))
}

// Create validates and persists a new draft contract
func (h *ContractHandler) Create(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, 400, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	result, err := h.contractService.CreateContract(c.Request.Context(), appcontract.CreateContractRequest{
		OwnerID:            ownerID,
		ClientName:         req.ClientName,
		ClientAddress:      req.ClientAddress,
		ClientEmail:        req.ClientEmail,
		ProjectTitle:       req.ProjectTitle,
		ProjectDescription: req.ProjectDescription,
		Deliverables:       req.Deliverables,
		Terms:              req.Terms,
		LicenseType:        req.LicenseType,
		AgreedAmount:       req.AgreedAmount,
		DepositPercent:     req.DepositPercent,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.ContractResponseFromDomain(result))
}

// Update edits a draft contract
func (h *ContractHandler) Update(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID")
		return
	}

	var req dto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, 400, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	result, err := h.contractService.UpdateContract(c.Request.Context(), appcontract.UpdateContractRequest{
		OwnerID:            ownerID,
		ContractID:         id,
		ClientName:         req.ClientName,
		ProjectTitle:       req.ProjectTitle,
		ProjectDescription: req.ProjectDescription,
		Deliverables:       req.Deliverables,
		Terms:              req.Terms,
		LicenseType:        req.LicenseType,
		AgreedAmount:       req.AgreedAmount,
		DepositPercent:     req.DepositPercent,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ContractResponseFromDomain(result))
}

// Statistics returns the owner's contract dashboard snapshot
func (h *ContractHandler) Statistics(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	stats, err := h.contractService.GetStatistics(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ContractStatisticsResponseFromDomain(stats))
}

// Transition moves a contract to a new lifecycle state
func (h *ContractHandler) Transition(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID")
		return
	}

	var req dto.TransitionContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, 400, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	result, err := h.contractService.TransitionContract(c.Request.Context(), ownerID, id, contract.ContractStatus(req.Status))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ContractResponseFromDomain(result))
}

// Duplicate copies a contract into a fresh draft with a new number
func (h *ContractHandler) Duplicate(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID")
		return
	}

	result, err := h.contractService.DuplicateContract(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.ContractResponseFromDomain(result))
}

// Delete removes a contract permanently
func (h *ContractHandler) Delete(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID")
		return
	}

	if err := h.contractService.DeleteContract(c.Request.Context(), ownerID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// PrintAgreement renders the contract as a printable HTML agreement
func (h *ContractHandler) PrintAgreement(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID")
		return
	}

	result, err := h.contractService.GetContract(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	html, err := h.engine.Render(printing.TemplateAgreement, printing.AgreementDocument{
		Studio:   h.studio,
		Contract: result,
	})
	if err != nil {
		h.InternalError(c, "Failed to render agreement")
		return
	}
	h.HTML(c, html)
}

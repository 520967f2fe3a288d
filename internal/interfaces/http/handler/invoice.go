package handler

import (
	appinvoicing "github.com/curio/backend/internal/application/invoicing"
	"github.com/curio/backend/internal/infrastructure/printing"
	"github.com/curio/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles invoice endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *appinvoicing.InvoiceService
	engine         *printing.TemplateEngine
	studio         printing.StudioInfo
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(
	invoiceService *appinvoicing.InvoiceService,
	engine *printing.TemplateEngine,
	studio printing.StudioInfo,
) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		engine:         engine,
		studio:         studio,
	}
}

// RegisterRoutes mounts the invoice routes on the given group
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	invoices.GET("", h.List)
	invoices.POST("", h.Create)
	invoices.GET("/next-number", h.NextNumber)
	invoices.GET("/:id", h.Get)
	invoices.PUT("/:id", h.Update)
	invoices.DELETE("/:id", h.Delete)
	invoices.POST("/:id/payments", h.RecordPayment)
	invoices.GET("/:id/receipt", h.GetReceipt)
	invoices.GET("/:id/document", h.PrintInvoice)
	invoices.GET("/:id/receipt/document", h.PrintReceipt)

	rg.GET("/statistics", h.Statistics)
}

// List returns the owner's invoices, most recently saved first
func (h *InvoiceHandler) List(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]dto.InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = dto.InvoiceResponseFromDomain(&invoices[i])
	}
	h.Success(c, dto.InvoiceListResponse{Invoices: responses, Count: len(responses)})
}

// Get returns one invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.InvoiceResponseFromDomain(invoice))
}

// NextNumber previews the number the next created invoice will receive
func (h *InvoiceHandler) NextNumber(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	number, err := h.invoiceService.PreviewNextInvoiceNumber(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NextNumberResponse{Number: number})
}

// Create validates and saves a new invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, 400, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	result, err := h.invoiceService.SaveInvoice(c.Request.Context(), appinvoicing.SaveInvoiceRequest{
		OwnerID: ownerID,
		Draft:   req.ToDraft(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := dto.SaveInvoiceResponse{Invoice: dto.InvoiceResponseFromDomain(result.Invoice)}
	if result.NextDraft != nil {
		resp.NextDraft = &dto.DraftResponse{
			PaymentAccountNumber: result.NextDraft.PaymentAccountNumber,
			PaymentInstitution:   result.NextDraft.PaymentInstitution,
			PaymentBeneficiary:   result.NextDraft.PaymentBeneficiary,
			PaymentLink:          result.NextDraft.PaymentLink,
		}
	}
	h.Created(c, resp)
}

// Update overwrites an existing invoice with an edited draft
func (h *InvoiceHandler) Update(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req dto.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, 400, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	result, err := h.invoiceService.SaveInvoice(c.Request.Context(), appinvoicing.SaveInvoiceRequest{
		OwnerID:   ownerID,
		InvoiceID: &id,
		Draft:     req.ToDraft(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.SaveInvoiceResponse{Invoice: dto.InvoiceResponseFromDomain(result.Invoice)})
}

// Delete removes an invoice permanently
func (h *InvoiceHandler) Delete(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), ownerID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RecordPayment records a part payment against an invoice
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, 400, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	result, err := h.invoiceService.RecordPayment(c.Request.Context(), appinvoicing.RecordPaymentRequest{
		OwnerID:     ownerID,
		InvoiceID:   id,
		Amount:      req.Amount,
		Method:      req.Method,
		PaymentDate: req.PaymentDate,
		Notes:       req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.RecordPaymentResponse{
		Invoice: dto.InvoiceResponseFromDomain(result.Invoice),
		Entry: dto.PaymentEntryResponse{
			ID:          result.Entry.ID,
			Amount:      result.Entry.Amount,
			Method:      result.Entry.Method,
			PaymentDate: result.Entry.PaymentDate,
			Notes:       result.Entry.Notes,
			RecordedAt:  result.Entry.RecordedAt,
		},
		Receipt: dto.ReceiptResponseFromDomain(result.Receipt),
	})
}

// GetReceipt derives a receipt. Without an entry query parameter it is
// the full-settlement receipt; with one it reproduces the receipt for
// that recorded payment.
func (h *InvoiceHandler) GetReceipt(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	var entryID *uuid.UUID
	if raw := c.Query("entry"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid payment entry ID")
			return
		}
		entryID = &parsed
	}

	snap, err := h.invoiceService.GetReceipt(c.Request.Context(), ownerID, id, entryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ReceiptResponseFromDomain(*snap))
}

// PrintReceipt renders the receipt as a printable HTML document
func (h *InvoiceHandler) PrintReceipt(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	var entryID *uuid.UUID
	if raw := c.Query("entry"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid payment entry ID")
			return
		}
		entryID = &parsed
	}

	snap, err := h.invoiceService.GetReceipt(c.Request.Context(), ownerID, id, entryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	html, err := h.engine.Render(printing.TemplateReceipt, printing.ReceiptDocument{
		Studio:  h.studio,
		Receipt: *snap,
	})
	if err != nil {
		h.InternalError(c, "Failed to render receipt")
		return
	}
	h.HTML(c, html)
}

// PrintInvoice renders the invoice as a printable HTML document
func (h *InvoiceHandler) PrintInvoice(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	html, err := h.engine.Render(printing.TemplateInvoice, printing.InvoiceDocument{
		Studio:  h.studio,
		Invoice: invoice,
	})
	if err != nil {
		h.InternalError(c, "Failed to render invoice")
		return
	}
	h.HTML(c, html)
}

// Statistics returns the owner's dashboard snapshot
func (h *InvoiceHandler) Statistics(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	stats, err := h.invoiceService.GetStatistics(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.StatisticsResponseFromDomain(stats))
}

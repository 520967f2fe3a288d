package invoicing

import (
	"context"
	"fmt"
	"time"

	"github.com/curio/backend/internal/domain/invoicing"
	"github.com/curio/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// InvoiceService coordinates the invoice lifecycle: number allocation,
// save and edit, payment recording, receipt derivation and the
// dashboard statistics. All operations are scoped to the calling owner.
type InvoiceService struct {
	invoiceRepo invoicing.InvoiceRepository
	counterRepo invoicing.CounterRepository
	logger      *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo invoicing.InvoiceRepository,
	counterRepo invoicing.CounterRepository,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		counterRepo: counterRepo,
		logger:      logger,
	}
}

// SaveInvoiceRequest carries a draft into the save path. A nil
// InvoiceID means create; a set one means edit that invoice.
type SaveInvoiceRequest struct {
	OwnerID   string
	InvoiceID *uuid.UUID
	Draft     invoicing.Draft
}

// SaveInvoiceResult is the outcome of a save. NextDraft is only set on
// create: the blank follow-up draft with payment defaults carried over.
type SaveInvoiceResult struct {
	Invoice   *invoicing.Invoice
	NextDraft *invoicing.Draft
	Created   bool
}

// PreviewNextInvoiceNumber returns the number the next created invoice
// will receive, without consuming it.
func (s *InvoiceService) PreviewNextInvoiceNumber(ctx context.Context, ownerID string) (string, error) {
	counter, err := s.counterRepo.Get(ctx, ownerID, invoicing.CounterScopeInvoice)
	if err != nil {
		s.logger.Error("Failed to read invoice counter", zap.Error(err))
		return "", fmt.Errorf("failed to read invoice counter: %w", err)
	}
	return invoicing.FormatInvoiceNumber(time.Now().Year(), counter), nil
}

// SaveInvoice validates and persists the draft. On create it allocates
// the owner's next invoice number and advances the counter; on edit it
// reuses the stored id and number and preserves the payment history.
// Edits never touch the counter.
func (s *InvoiceService) SaveInvoice(ctx context.Context, req SaveInvoiceRequest) (*SaveInvoiceResult, error) {
	if req.InvoiceID != nil {
		return s.editInvoice(ctx, req)
	}
	return s.createInvoice(ctx, req)
}

func (s *InvoiceService) createInvoice(ctx context.Context, req SaveInvoiceRequest) (*SaveInvoiceResult, error) {
	counter, err := s.counterRepo.Get(ctx, req.OwnerID, invoicing.CounterScopeInvoice)
	if err != nil {
		s.logger.Error("Failed to read invoice counter", zap.Error(err))
		return nil, fmt.Errorf("failed to read invoice counter: %w", err)
	}

	number := invoicing.FormatInvoiceNumber(time.Now().Year(), counter)
	invoice, err := invoicing.NewInvoice(req.OwnerID, number, req.Draft)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		s.logger.Error("Failed to save invoice", zap.Error(err))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	// Counter only advances after a successful save, so a rejected or
	// failed save never burns a number.
	if err := s.counterRepo.Set(ctx, req.OwnerID, invoicing.CounterScopeInvoice, counter+1); err != nil {
		s.logger.Error("Failed to advance invoice counter",
			zap.String("invoice_number", number), zap.Error(err))
		return nil, fmt.Errorf("failed to advance invoice counter: %w", err)
	}

	s.logger.Info("Invoice created",
		zap.String("invoice_number", number),
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("status", invoice.Status.String()))

	next := req.Draft.NextDraft()
	return &SaveInvoiceResult{Invoice: invoice, NextDraft: &next, Created: true}, nil
}

func (s *InvoiceService) editInvoice(ctx context.Context, req SaveInvoiceRequest) (*SaveInvoiceResult, error) {
	invoice, err := s.loadInvoice(ctx, req.OwnerID, *req.InvoiceID)
	if err != nil {
		return nil, err
	}

	if err := invoice.ApplyEdit(req.Draft); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		s.logger.Error("Failed to save invoice", zap.Error(err))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.logger.Info("Invoice updated",
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("invoice_id", invoice.ID.String()))

	return &SaveInvoiceResult{Invoice: invoice, Created: false}, nil
}

// GetInvoice returns one invoice owned by the caller
func (s *InvoiceService) GetInvoice(ctx context.Context, ownerID string, id uuid.UUID) (*invoicing.Invoice, error) {
	return s.loadInvoice(ctx, ownerID, id)
}

// ListInvoices returns the owner's invoices, most recently saved first
func (s *InvoiceService) ListInvoices(ctx context.Context, ownerID string) ([]invoicing.Invoice, error) {
	invoices, err := s.invoiceRepo.FindAllForOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to list invoices", zap.Error(err))
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

// RecordPaymentRequest carries one payment against an invoice
type RecordPaymentRequest struct {
	OwnerID     string
	InvoiceID   uuid.UUID
	Amount      decimal.Decimal
	Method      string
	PaymentDate time.Time
	Notes       string
}

// RecordPaymentResult is the outcome of a recorded payment, including
// the receipt for the entry just recorded.
type RecordPaymentResult struct {
	Invoice *invoicing.Invoice
	Entry   *invoicing.PaymentEntry
	Receipt invoicing.ReceiptSnapshot
}

// RecordPayment records a part payment and persists the updated
// invoice. Rejected payments leave the stored invoice untouched.
func (s *InvoiceService) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*RecordPaymentResult, error) {
	invoice, err := s.loadInvoice(ctx, req.OwnerID, req.InvoiceID)
	if err != nil {
		return nil, err
	}

	entry, err := invoice.RecordPayment(req.Amount, req.Method, req.PaymentDate, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		s.logger.Error("Failed to save invoice after payment", zap.Error(err))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.logger.Info("Payment recorded",
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("amount", req.Amount.StringFixed(2)),
		zap.String("status", invoice.Status.String()))

	return &RecordPaymentResult{
		Invoice: invoice,
		Entry:   entry,
		Receipt: invoicing.DeriveReceipt(invoice, entry),
	}, nil
}

// GetReceipt derives a receipt without recording anything. With a nil
// entryID it is the full-settlement receipt; with one it reproduces the
// receipt for that recorded payment.
func (s *InvoiceService) GetReceipt(ctx context.Context, ownerID string, invoiceID uuid.UUID, entryID *uuid.UUID) (*invoicing.ReceiptSnapshot, error) {
	invoice, err := s.loadInvoice(ctx, ownerID, invoiceID)
	if err != nil {
		return nil, err
	}

	var entry *invoicing.PaymentEntry
	if entryID != nil {
		for i := range invoice.PaymentHistory {
			if invoice.PaymentHistory[i].ID == *entryID {
				entry = &invoice.PaymentHistory[i]
				break
			}
		}
		if entry == nil {
			return nil, shared.NewDomainError("PAYMENT_NOT_FOUND", "Payment entry not found on this invoice")
		}
	}

	snap := invoicing.DeriveReceipt(invoice, entry)
	return &snap, nil
}

// DeleteInvoice removes an invoice permanently. There is no recycle
// bin; the history goes with it.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, ownerID string, id uuid.UUID) error {
	// Load first so a missing id surfaces as NOT_FOUND rather than a
	// silent no-op delete.
	invoice, err := s.loadInvoice(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if err := s.invoiceRepo.DeleteForOwner(ctx, ownerID, id); err != nil {
		s.logger.Error("Failed to delete invoice", zap.Error(err))
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	s.logger.Info("Invoice deleted",
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("invoice_id", id.String()))
	return nil
}

// GetStatistics folds the owner's invoices into the dashboard snapshot
func (s *InvoiceService) GetStatistics(ctx context.Context, ownerID string) (*invoicing.Statistics, error) {
	invoices, err := s.invoiceRepo.FindAllForOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to load invoices for statistics", zap.Error(err))
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	stats := invoicing.ComputeStatistics(invoices, time.Now())
	return &stats, nil
}

func (s *InvoiceService) loadInvoice(ctx context.Context, ownerID string, id uuid.UUID) (*invoicing.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		s.logger.Error("Failed to find invoice", zap.Error(err))
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}
	if invoice == nil {
		return nil, shared.NewDomainError("INVOICE_NOT_FOUND", "Invoice not found")
	}
	return invoice, nil
}

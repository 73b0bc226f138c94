// Package service wires the chain reader and the invoice document code into the generate and verify flows.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/txinvoice-backend/internal/invoice"
	"github.com/goodnatureofminers/txinvoice-backend/internal/model"
)

// GeneratedInvoice is a rendered invoice ready for download.
type GeneratedInvoice struct {
	FileName    string
	Document    []byte
	Transaction model.TransactionRecord
}

// InvoiceService generates invoices for on-chain payments.
type InvoiceService struct {
	logger   *zap.Logger
	networks model.Networks
	reader   TransactionReader
	renderer DocumentRenderer
	metrics  InvoiceMetrics
}

// NewInvoiceService constructs an InvoiceService.
func NewInvoiceService(
	logger *zap.Logger,
	networks model.Networks,
	reader TransactionReader,
	renderer DocumentRenderer,
	metrics InvoiceMetrics,
) *InvoiceService {
	return &InvoiceService{
		logger:   logger,
		networks: networks,
		reader:   reader,
		renderer: renderer,
		metrics:  metrics,
	}
}

// Networks returns the configured network table.
func (s *InvoiceService) Networks() []model.Network {
	return s.networks.Sorted()
}

// Lookup fetches the transaction details shown while the invoice form is filled in.
func (s *InvoiceService) Lookup(ctx context.Context, networkID model.NetworkID, hash string) (*model.TransactionRecord, error) {
	return s.reader.FetchTransaction(ctx, networkID, hash)
}

// Generate renders the invoice for form. The transaction is looked up on the form's
// network; when the lookup fails or finds nothing the invoice is still produced with
// empty customer and amount.
func (s *InvoiceService) Generate(ctx context.Context, form model.InvoiceForm) (*GeneratedInvoice, error) {
	network, err := s.networks.Lookup(form.Network)
	if err != nil {
		return nil, err
	}

	tx := s.transactionDetails(ctx, network.ID, form.TransactionHash)
	doc, err := s.renderer.Render(form, tx, network)
	s.metrics.ObserveGenerate(network.ID, err)
	if err != nil {
		return nil, fmt.Errorf("generate invoice for %s: %w", form.TransactionHash, err)
	}

	return &GeneratedInvoice{
		FileName:    invoice.FileName,
		Document:    doc,
		Transaction: tx,
	}, nil
}

func (s *InvoiceService) transactionDetails(ctx context.Context, networkID model.NetworkID, hash string) model.TransactionRecord {
	if hash == "" {
		return model.TransactionRecord{}
	}
	record, err := s.reader.FetchTransaction(ctx, networkID, hash)
	if err != nil {
		s.logger.Error("Error fetching transaction details",
			zap.String("network", string(networkID)),
			zap.String("hash", hash),
			zap.Error(err))
		return model.TransactionRecord{}
	}
	if record == nil {
		s.logger.Info("Transaction not found",
			zap.String("network", string(networkID)),
			zap.String("hash", hash))
		return model.TransactionRecord{}
	}
	return *record
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/txinvoice-backend/internal/evm"
	"github.com/goodnatureofminers/txinvoice-backend/internal/invoice"
	"github.com/goodnatureofminers/txinvoice-backend/internal/model"
	"github.com/goodnatureofminers/txinvoice-backend/pkg/workerpool"
)

// NotFoundDetails is reported when the embedded transaction does not exist on chain.
const NotFoundDetails = "Transaction not found on the blockchain"

// Upload is one invoice document submitted for verification.
type Upload struct {
	Name     string
	Document []byte
}

// BatchItem is the verification outcome of one Upload.
type BatchItem struct {
	Name   string
	Result *model.VerificationResult
	Err    error
}

// Verifier checks uploaded invoices against the chain.
type Verifier struct {
	logger   *zap.Logger
	networks model.Networks
	reader   TransactionReader
	metrics  InvoiceMetrics
	extract  func(document []byte) (model.InvoiceMetadata, error)
	workers  int
}

// NewVerifier constructs a Verifier; workers bounds VerifyBatch concurrency.
func NewVerifier(
	logger *zap.Logger,
	networks model.Networks,
	reader TransactionReader,
	metrics InvoiceMetrics,
	workers int,
) *Verifier {
	return &Verifier{
		logger:   logger,
		networks: networks,
		reader:   reader,
		metrics:  metrics,
		extract:  invoice.Extract,
		workers:  workers,
	}
}

// Verify extracts the metadata embedded in document and compares it with the live
// transaction on networkID. Extraction failures wrap invoice.ErrExtraction and node
// failures are *evm.TransportError; in both cases no result is produced. A transaction
// the node does not know yields an invalid result, not an error.
func (v *Verifier) Verify(ctx context.Context, networkID model.NetworkID, document []byte) (*model.VerificationResult, error) {
	started := time.Now()
	outcome := OutcomeRejected
	label := model.NetworkID("")
	defer func() {
		v.metrics.ObserveVerify(label, outcome, started)
	}()

	network, err := v.networks.Lookup(networkID)
	if err != nil {
		return nil, err
	}
	label = network.ID

	meta, err := v.extract(document)
	if err != nil {
		outcome = OutcomeExtractionError
		return nil, err
	}

	live, err := v.reader.FetchTransaction(ctx, network.ID, meta.TransactionHash)
	if err != nil {
		var transportErr *evm.TransportError
		if errors.As(err, &transportErr) {
			outcome = OutcomeTransportError
		}
		return nil, fmt.Errorf("verify invoice %s: %w", meta.TransactionHash, err)
	}

	result := &model.VerificationResult{
		TransactionHash: meta.TransactionHash,
		Customer:        meta.Customer,
		Amount:          meta.Amount,
		Currency:        network.Currency,
		Fingerprint:     invoice.Fingerprint(document),
	}
	if live == nil {
		result.Details = NotFoundDetails
		outcome = OutcomeNotFound
		return result, nil
	}

	// Amounts compare as text, so "1.0" and "1" differ.
	result.AmountMatch = meta.Amount == live.Value
	result.CustomerMatch = model.SameAddress(meta.Customer, live.From)
	result.IsValid = result.AmountMatch && result.CustomerMatch
	result.Details = fmt.Sprintf("Amount match: %t, Customer match: %t", result.AmountMatch, result.CustomerMatch)

	outcome = OutcomeInvalid
	if result.IsValid {
		outcome = OutcomeValid
	}
	return result, nil
}

// VerifyBatch verifies several uploads concurrently. Failures are reported per item and
// results keep the order of uploads.
func (v *Verifier) VerifyBatch(ctx context.Context, networkID model.NetworkID, uploads []Upload) ([]BatchItem, error) {
	if _, err := v.networks.Lookup(networkID); err != nil {
		return nil, err
	}
	return workerpool.Map(ctx, v.workers, uploads, func(ctx context.Context, upload Upload) (BatchItem, error) {
		result, err := v.Verify(ctx, networkID, upload.Document)
		if err != nil {
			v.logger.Warn("Invoice verification failed",
				zap.String("name", upload.Name),
				zap.Error(err))
		}
		return BatchItem{Name: upload.Name, Result: result, Err: err}, nil
	})
}

package transport

import (
	"context"

	"github.com/goodnatureofminers/txinvoice-backend/internal/model"
	"github.com/goodnatureofminers/txinvoice-backend/internal/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	InvoiceGenerator interface {
		Networks() []model.Network
		Lookup(ctx context.Context, networkID model.NetworkID, hash string) (*model.TransactionRecord, error)
		Generate(ctx context.Context, form model.InvoiceForm) (*service.GeneratedInvoice, error)
	}
	InvoiceVerifier interface {
		Verify(ctx context.Context, networkID model.NetworkID, document []byte) (*model.VerificationResult, error)
		VerifyBatch(ctx context.Context, networkID model.NetworkID, uploads []service.Upload) ([]service.BatchItem, error)
	}
)

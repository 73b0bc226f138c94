package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/txinvoice-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TransactionReader interface {
		FetchTransaction(ctx context.Context, networkID model.NetworkID, hash string) (*model.TransactionRecord, error)
	}
	DocumentRenderer interface {
		Render(form model.InvoiceForm, tx model.TransactionRecord, network model.Network) ([]byte, error)
	}
	InvoiceMetrics interface {
		ObserveGenerate(network model.NetworkID, err error)
		ObserveVerify(network model.NetworkID, outcome string, started time.Time)
	}
)

// Verification outcomes, used as metric labels.
const (
	OutcomeValid           = "valid"
	OutcomeInvalid         = "invalid"
	OutcomeNotFound        = "not_found"
	OutcomeExtractionError = "extraction_error"
	OutcomeTransportError  = "transport_error"
	OutcomeRejected        = "rejected"
)

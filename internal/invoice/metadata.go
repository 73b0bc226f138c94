// Package invoice renders invoice documents and reads back the metadata embedded in them.
package invoice

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/txinvoice-backend/internal/model"
)

// ErrExtraction is returned when no usable metadata can be read from a document.
var ErrExtraction = errors.New("invoice metadata extraction failed")

// EncodeMetadata serializes the record stored in the document subject.
func EncodeMetadata(meta model.InvoiceMetadata) (string, error) {
	raw, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("encode invoice metadata: %w", err)
	}
	return string(raw), nil
}

// DecodeMetadata parses a subject string. A record without a transaction hash is rejected
// since there is nothing to verify it against.
func DecodeMetadata(subject string) (model.InvoiceMetadata, error) {
	var meta model.InvoiceMetadata
	if err := json.Unmarshal([]byte(subject), &meta); err != nil {
		return model.InvoiceMetadata{}, fmt.Errorf("%w: decode subject: %w", ErrExtraction, err)
	}
	if meta.TransactionHash == "" {
		return model.InvoiceMetadata{}, fmt.Errorf("%w: subject has no transaction hash", ErrExtraction)
	}
	return meta, nil
}

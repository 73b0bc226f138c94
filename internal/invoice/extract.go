package invoice

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/zeebo/blake3"

	"github.com/goodnatureofminers/txinvoice-backend/internal/model"
)

// Extract reads the metadata record from the subject of a PDF document.
// Every failure, including a malformed file, wraps ErrExtraction.
func Extract(document []byte) (meta model.InvoiceMetadata, err error) {
	defer func() {
		// the parser panics on some malformed object streams
		if r := recover(); r != nil {
			meta = model.InvoiceMetadata{}
			err = fmt.Errorf("%w: malformed document: %v", ErrExtraction, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(document), int64(len(document)))
	if err != nil {
		return model.InvoiceMetadata{}, fmt.Errorf("%w: open document: %w", ErrExtraction, err)
	}

	subject := reader.Trailer().Key("Info").Key("Subject")
	if subject.Kind() != pdf.String || subject.Text() == "" {
		return model.InvoiceMetadata{}, fmt.Errorf("%w: document has no subject", ErrExtraction)
	}
	return DecodeMetadata(subject.Text())
}

// Fingerprint returns the hex BLAKE3-256 digest of a document.
func Fingerprint(document []byte) string {
	sum := blake3.Sum256(document)
	return hex.EncodeToString(sum[:])
}

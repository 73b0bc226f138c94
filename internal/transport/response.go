package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/txinvoice-backend/internal/evm"
	"github.com/goodnatureofminers/txinvoice-backend/internal/invoice"
	"github.com/goodnatureofminers/txinvoice-backend/internal/model"
)

// Messages shown to the user by the screen.
const (
	MissingFileMessage  = "Please upload an invoice file first."
	VerifyFailedMessage = "Failed to verify the invoice. Please make sure it's a valid PDF file and the transaction exists on the blockchain."
	LookupFailedMessage = "Failed to fetch transaction details."
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type batchItemResponse struct {
	Name   string                    `json:"name"`
	Result *model.VerificationResult `json:"result,omitempty"`
	Error  string                    `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// statusFor maps service errors to an HTTP status and the message returned to the
// client. fallback is used for extraction and node failures.
func statusFor(err error, fallback string) (int, string) {
	var transportErr *evm.TransportError
	switch {
	case errors.Is(err, model.ErrUnknownNetwork):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, invoice.ErrExtraction):
		return http.StatusUnprocessableEntity, fallback
	case errors.As(err, &transportErr):
		return http.StatusBadGateway, fallback
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status, message := statusFor(err, fallback)
	fields := []zap.Field{
		zap.String("request_id", RequestIDFromContext(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", fields...)
	} else {
		h.logger.Warn("Request rejected", fields...)
	}
	writeError(w, status, message)
}

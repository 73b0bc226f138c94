// Package transport exposes the invoice service over HTTP.
package transport

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/txinvoice-backend/internal/model"
	"github.com/goodnatureofminers/txinvoice-backend/internal/service"
)

// Handler serves the invoice screen and the API behind it.
type Handler struct {
	logger         *zap.Logger
	invoices       InvoiceGenerator
	verifier       InvoiceVerifier
	maxUploadBytes int64
}

// NewHandler returns a Handler. Uploads larger than maxUploadBytes are rejected.
func NewHandler(logger *zap.Logger, invoices InvoiceGenerator, verifier InvoiceVerifier, maxUploadBytes int64) *Handler {
	return &Handler{
		logger:         logger,
		invoices:       invoices,
		verifier:       verifier,
		maxUploadBytes: maxUploadBytes,
	}
}

// Index renders the generate/verify screen.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, indexData{Networks: h.invoices.Networks()}); err != nil {
		h.fail(w, r, fmt.Errorf("render index: %w", err), "")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// Health reports server health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
}

// Networks lists the configured networks.
func (h *Handler) Networks(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.invoices.Networks())
}

// Transaction returns the sender and value of a transaction for the form preview.
func (h *Handler) Transaction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	record, err := h.invoices.Lookup(r.Context(), model.NetworkID(vars["network"]), vars["hash"])
	if err != nil {
		h.fail(w, r, err, LookupFailedMessage)
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, service.NotFoundDetails)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// Generate renders an invoice from the submitted form and returns it as a download.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.rejectForm(w, err)
		return
	}

	form := model.InvoiceForm{
		BusinessName:    r.FormValue("businessName"),
		TransactionHash: r.FormValue("transactionHash"),
		InvoiceDate:     r.FormValue("invoiceDate"),
		ProductName:     r.FormValue("productName"),
		Category:        r.FormValue("category"),
		Quantity:        r.FormValue("quantity"),
		Network:         model.NetworkID(r.FormValue("network")),
	}
	generated, err := h.invoices.Generate(r.Context(), form)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", generated.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(generated.Document)
}

// Verify checks one uploaded invoice against the chain.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	if !h.parseUpload(w, r) {
		return
	}
	file, _, err := r.FormFile("invoice")
	if err != nil {
		writeError(w, http.StatusBadRequest, MissingFileMessage)
		return
	}
	defer file.Close()

	document, err := io.ReadAll(file)
	if err != nil {
		h.fail(w, r, fmt.Errorf("read upload: %w", err), "")
		return
	}

	result, err := h.verifier.Verify(r.Context(), model.NetworkID(r.FormValue("network")), document)
	if err != nil {
		h.fail(w, r, err, VerifyFailedMessage)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// VerifyBatch checks several uploaded invoices; each file gets its own entry in the
// response, in upload order.
func (h *Handler) VerifyBatch(w http.ResponseWriter, r *http.Request) {
	if !h.parseUpload(w, r) {
		return
	}
	headers := r.MultipartForm.File["invoices"]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, MissingFileMessage)
		return
	}

	uploads := make([]service.Upload, 0, len(headers))
	for _, header := range headers {
		document, err := readPart(header)
		if err != nil {
			h.fail(w, r, fmt.Errorf("read upload %s: %w", header.Filename, err), "")
			return
		}
		uploads = append(uploads, service.Upload{Name: header.Filename, Document: document})
	}

	items, err := h.verifier.VerifyBatch(r.Context(), model.NetworkID(r.FormValue("network")), uploads)
	if err != nil {
		h.fail(w, r, err, VerifyFailedMessage)
		return
	}

	resp := make([]batchItemResponse, 0, len(items))
	for _, item := range items {
		entry := batchItemResponse{Name: item.Name, Result: item.Result}
		if item.Err != nil {
			_, entry.Error = statusFor(item.Err, VerifyFailedMessage)
		}
		resp = append(resp, entry)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) parseUpload(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			writeError(w, http.StatusBadRequest, MissingFileMessage)
			return false
		}
		h.rejectForm(w, err)
		return false
	}
	return true
}

func (h *Handler) rejectForm(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit))
		return
	}
	writeError(w, http.StatusBadRequest, "malformed form")
}

func readPart(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

type indexData struct {
	Networks []model.Network
}

var indexTemplate = template.Must(template.ParseFS(webFS, "web/index.html"))

package transport

import (
	"embed"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

//go:embed web/index.html
var webFS embed.FS

// NewRouter registers the screen, the API and the metrics endpoint.
func NewRouter(logger *zap.Logger, h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID, AccessLog(logger), Recover(logger))

	r.HandleFunc("/", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/networks", h.Networks).Methods(http.MethodGet)
	api.HandleFunc("/networks/{network}/transactions/{hash}", h.Transaction).Methods(http.MethodGet)
	api.HandleFunc("/invoices", h.Generate).Methods(http.MethodPost)
	api.HandleFunc("/invoices/verify", h.Verify).Methods(http.MethodPost)
	api.HandleFunc("/invoices/verify/batch", h.VerifyBatch).Methods(http.MethodPost)
	return r
}

// WithCORS allows the API to be called from other origins.
func WithCORS(h http.Handler) http.Handler {
	return cors.Default().Handler(h)
}

// Package httpapi exposes a board over HTTP: the HTML page, a JSON view and
// one endpoint per user action.
package httpapi

import (
	"net/http"

	"github.com/as3d12/instaboard/internal/httpapi/recovery"
	"github.com/as3d12/instaboard/presentation"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter registers every route for board.
func NewRouter(board *presentation.Board) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	h := NewHandler(board)

	router.HandleFunc("/", h.Page).Methods(http.MethodGet)
	router.HandleFunc("/api/health", h.Health).Methods(http.MethodGet)
	router.HandleFunc("/api/view", h.View).Methods(http.MethodGet)
	router.HandleFunc("/api/retry", h.Retry).Methods(http.MethodPost)
	router.HandleFunc("/api/load-more", h.LoadMore).Methods(http.MethodPost)
	router.HandleFunc("/api/query", h.SetQuery).Methods(http.MethodPut)
	router.HandleFunc("/api/cards/{id:[0-9]+}/like", h.Like).Methods(http.MethodPost)
	router.HandleFunc("/api/cards/{id:[0-9]+}/email", h.ToggleEmail).Methods(http.MethodPost)
	router.HandleFunc("/api/display-mode", h.ToggleDisplayMode).Methods(http.MethodPost)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return router
}

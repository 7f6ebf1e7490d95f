package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/as3d12/instaboard/directory"
	"github.com/as3d12/instaboard/internal/httpapi/respond"
	"github.com/as3d12/instaboard/presentation"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

const maxQueryBody = 4 << 10

// Handler serves one board.
type Handler struct {
	board *presentation.Board
}

// NewHandler creates a handler for board.
func NewHandler(board *presentation.Board) *Handler {
	return &Handler{board: board}
}

// ViewResponse is the body of GET /api/view.
type ViewResponse struct {
	directory.View

	DisplayMode string                         `json:"displayMode"`
	Cards       map[int]presentation.CardState `json:"cards"`
}

// ActionResponse reports whether an action was accepted.
type ActionResponse struct {
	Accepted bool            `json:"accepted"`
	Phase    directory.Phase `json:"phase"`
}

type queryRequest struct {
	Query *string `json:"query"`
}

// Page renders the board as HTML.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.board.RenderHTML(w, h.board.View()); err != nil {
		log.Error().Err(err).Msg("render page")
	}
}

// Health always reports ok; the directory has no dependency worth probing.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// View returns the current snapshot plus screen state.
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	v := h.board.View()
	respond.WriteJSON(w, http.StatusOK, ViewResponse{
		View:        v,
		DisplayMode: h.board.Mode.Name(),
		Cards:       h.board.Cards.Snapshot(),
	})
}

// Retry maps to DirectoryState.Retry: 202 when a fetch started, 409 otherwise.
func (h *Handler) Retry(w http.ResponseWriter, r *http.Request) {
	h.action(w, h.board.Dir.Retry(), "retry is only available after a failed fetch")
}

// LoadMore maps to DirectoryState.LoadMore: 202 when a fetch started, 409 otherwise.
func (h *Handler) LoadMore(w http.ResponseWriter, r *http.Request) {
	h.action(w, h.board.Dir.LoadMore(), "load more is only available when ready")
}

func (h *Handler) action(w http.ResponseWriter, accepted bool, msg string) {
	if !accepted {
		respond.WriteConflict(w, msg)
		return
	}
	respond.WriteJSON(w, http.StatusAccepted, ActionResponse{Accepted: true, Phase: h.board.Dir.View().Phase})
}

// SetQuery replaces the search text.
func (h *Handler) SetQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxQueryBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON body")
		return
	}
	if req.Query == nil {
		respond.WriteBadRequest(w, "query is required")
		return
	}
	h.board.Dir.SetQuery(*req.Query)
	h.View(w, r)
}

// Like increments a card's like counter.
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	id, ok := cardID(w, r)
	if !ok {
		return
	}
	likes, err := h.board.Like(id)
	if err != nil {
		cardError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]int{"id": id, "likes": likes})
}

// ToggleEmail flips a card's email visibility.
func (h *Handler) ToggleEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := cardID(w, r)
	if !ok {
		return
	}
	visible, err := h.board.ToggleEmail(id)
	if err != nil {
		cardError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"id": id, "emailVisible": visible})
}

// ToggleDisplayMode flips light/dark.
func (h *Handler) ToggleDisplayMode(w http.ResponseWriter, r *http.Request) {
	h.board.Mode.Toggle()
	respond.WriteJSON(w, http.StatusOK, map[string]string{"displayMode": h.board.Mode.Name()})
}

func cardID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respond.WriteBadRequest(w, "card id must be an integer")
		return 0, false
	}
	return id, true
}

func cardError(w http.ResponseWriter, err error) {
	if errors.Is(err, presentation.ErrUnknownCard) {
		respond.WriteNotFound(w, err.Error())
		return
	}
	respond.WriteInternalError(w, err.Error())
}

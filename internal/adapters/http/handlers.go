package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"svw.info/sudoku-enum/internal/domain"
	"svw.info/sudoku-enum/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/enumerate", h.handleEnumerate)
	mux.HandleFunc("/api/count", h.handleCount)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

// rejectGivens pre-validates the givens so a malformed grid gets a
// diagnosed 422 instead of the search's undefined behavior.
func (h *Handler) rejectGivens(w http.ResponseWriter, r *http.Request, g *domain.Grid) bool {
	ok, conflicts, err := h.UC.Validate(r.Context(), g)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return true
	}
	if !ok {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":     "conflicting givens",
			"conflicts": conflicts,
		})
		return true
	}
	return false
}

// ---- Enumerate ----

type enumerateReq struct {
	Grid domain.Grid `json:"grid"`
	// Limit caps how many solutions are returned (and searched for);
	// 0 means unlimited. The full search space of a sparse grid is
	// astronomically large, so callers should set it.
	Limit int `json:"limit,omitempty"`
}

type enumerateResp struct {
	Solutions  []domain.Solution `json:"solutions"`
	Count      int               `json:"count"`
	Truncated  bool              `json:"truncated,omitempty"`
	Nodes      int               `json:"nodes,omitempty"`
	DurationMs int64             `json:"durationMs"`
	Error      string            `json:"error,omitempty"`
}

func (h *Handler) handleEnumerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req enumerateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(enumerateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if h.rejectGivens(w, r, &req.Grid) {
		return
	}
	sols, truncated, st, err := h.UC.EnumerateUpTo(r.Context(), &req.Grid, req.Limit)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(enumerateResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds()})
		return
	}
	if sols == nil {
		sols = []domain.Solution{}
	}
	_ = json.NewEncoder(w).Encode(enumerateResp{
		Solutions:  sols,
		Count:      st.Solutions,
		Truncated:  truncated,
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Count ----

type countReq struct {
	Grid domain.Grid `json:"grid"`
}
type countResp struct {
	Count      int    `json:"count"`
	Nodes      int    `json:"nodes,omitempty"`
	DurationMs int64  `json:"durationMs"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) handleCount(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req countReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(countResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if h.rejectGivens(w, r, &req.Grid) {
		return
	}
	n, st, err := h.UC.Count(r.Context(), &req.Grid)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(countResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds()})
		return
	}
	_ = json.NewEncoder(w).Encode(countResp{Count: n, Nodes: st.Nodes, DurationMs: st.Duration.Milliseconds()})
}

// ---- Validate ----

type validateReq struct {
	Grid domain.Grid `json:"grid"`
}
type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), &req.Grid)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}
type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	if ps == nil {
		ps = []domain.PuzzleMeta{}
	}
	_ = json.NewEncoder(w).Encode(listResp{Puzzles: ps})
}

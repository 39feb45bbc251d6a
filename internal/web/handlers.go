package web

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pcadley/satchel/internal/config"
	"github.com/pcadley/satchel/internal/errors"
	"github.com/pcadley/satchel/internal/logger"
	"github.com/pcadley/satchel/internal/ops"
)

// Handlers holds dependencies for the HTTP handlers.
type Handlers struct {
	db  *sql.DB
	cfg *config.Config
	log logger.Logger
}

// HandleListSites serves GET /api/sites?filter=&folder=.
func (h *Handlers) HandleListSites(w http.ResponseWriter, r *http.Request) {
	input := ops.ListSitesInput{
		Filter: r.URL.Query().Get("filter"),
	}
	if raw := r.URL.Query().Get("folder"); raw != "" {
		folderID, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, errors.NewInvalidRequest("folder must be an integer"))
			return
		}
		input.FolderID = folderID
	}

	out, err := ops.ListSites(h.db, input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

// HandleAddSite serves POST /api/sites.
func (h *Handlers) HandleAddSite(w http.ResponseWriter, r *http.Request) {
	var input ops.AddSiteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, errors.NewInvalidRequest(err.Error()))
		return
	}

	out, err := ops.AddSite(h.db, h.cfg, input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

// HandleRemoveSite serves DELETE /api/sites.
func (h *Handlers) HandleRemoveSite(w http.ResponseWriter, r *http.Request) {
	var input ops.RemoveSiteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, errors.NewInvalidRequest(err.Error()))
		return
	}

	out, err := ops.RemoveSite(h.db, input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

// HandleMoveSite serves POST /api/sites/move.
func (h *Handlers) HandleMoveSite(w http.ResponseWriter, r *http.Request) {
	var input ops.MoveSiteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, errors.NewInvalidRequest(err.Error()))
		return
	}

	out, err := ops.MoveSite(h.db, input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

// HandleSetFavicon serves POST /api/sites/favicon.
func (h *Handlers) HandleSetFavicon(w http.ResponseWriter, r *http.Request) {
	var input ops.SetFaviconInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, errors.NewInvalidRequest(err.Error()))
		return
	}

	out, err := ops.SetFavicon(h.db, input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

// HandleFolderTree serves GET /api/folders?exclude=.
func (h *Handlers) HandleFolderTree(w http.ResponseWriter, r *http.Request) {
	input := ops.FolderTreeInput{}
	if raw := r.URL.Query().Get("exclude"); raw != "" {
		exclude, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, errors.NewInvalidRequest("exclude must be an integer"))
			return
		}
		input.ExcludeFolderID = exclude
	}

	out, err := ops.FolderTree(h.db, input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

// HandleRecents serves GET /api/recents.
func (h *Handlers) HandleRecents(w http.ResponseWriter, r *http.Request) {
	out, err := ops.Recents(h.db, h.cfg)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

// HandleClearHistory serves POST /api/history/clear.
func (h *Handlers) HandleClearHistory(w http.ResponseWriter, r *http.Request) {
	out, err := ops.ClearHistory(h.db)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("failed to encode response", logger.Error(err))
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	sErr, ok := err.(*errors.SatchelError)
	if !ok {
		sErr = errors.NewInternal(err)
	}
	h.writeJSON(w, sErr.Status, map[string]any{
		"error": map[string]any{
			"code":    string(sErr.Code),
			"message": sErr.Message,
			"status":  sErr.Status,
		},
	})
}

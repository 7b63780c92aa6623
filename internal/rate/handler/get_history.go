package handler

import (
	"net/http"
	"strconv"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

type GetHistoryResponse struct {
	Conversions []ConvertResponse `json:"conversions"`
}

// GetHistory godoc
// @Summary List recent conversions
// @Description Most recent conversions, newest first
// @Tags Conversions
// @Produce json
// @Param limit query int false "Maximum number of records" default(10)
// @Success 200 {object} GetHistoryResponse
// @Failure 400 {object} errorResponse
// @Router /conversions [get]
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records := h.converter.History(limit)

	res := GetHistoryResponse{Conversions: make([]ConvertResponse, 0, len(records))}
	for _, rec := range records {
		res.Conversions = append(res.Conversions, ConvertResponse{
			ID:          rec.ID.String(),
			From:        rec.From,
			To:          rec.To,
			Amount:      rec.Amount,
			Result:      rec.Result,
			ConvertedAt: rec.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, res)
}

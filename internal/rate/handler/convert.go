package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"currex/internal/domain"

	"github.com/sirupsen/logrus"
)

type ConvertRequest struct {
	From   string `json:"from" example:"USD"`
	To     string `json:"to" example:"EUR"`
	Amount string `json:"amount" example:"100"`
}

type ConvertResponse struct {
	ID          string    `json:"id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
	From        string    `json:"from" example:"USD"`
	To          string    `json:"to" example:"EUR"`
	Amount      float64   `json:"amount" example:"100"`
	Result      float64   `json:"result" example:"93.0"`
	ConvertedAt time.Time `json:"converted_at" example:"2025-01-02T15:04:05Z"`
}

// Convert godoc
// @Summary Convert an amount
// @Description Convert an amount between two supported currencies using the latest known rates
// @Tags Conversions
// @Accept json
// @Produce json
// @Param request body ConvertRequest true "Conversion request"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /conversions [post]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 256)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req ConvertRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	from := strings.ToUpper(strings.TrimSpace(req.From))
	to := strings.ToUpper(strings.TrimSpace(req.To))

	rec, err := h.converter.ConvertString(from, to, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrCurrencyNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			msg := "ups, couldn't convert this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "Convert", "from": from, "to": to}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	writeJSON(w, http.StatusOK, ConvertResponse{
		ID:          rec.ID.String(),
		From:        rec.From,
		To:          rec.To,
		Amount:      rec.Amount,
		Result:      rec.Result,
		ConvertedAt: rec.CreatedAt,
	})
}

package handler

import (
	"errors"
	"net/http"
	"strings"

	"currex/internal/domain"

	"github.com/go-chi/chi/v5"
)

// GetCurrency godoc
// @Summary Get one currency
// @Description Current rate and metadata for a single currency code
// @Tags Currencies
// @Produce json
// @Param code path string true "Currency code"
// @Success 200 {object} CurrencyView
// @Failure 404 {object} errorResponse
// @Router /currencies/{code} [get]
func (h *Handler) GetCurrency(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "code")))

	cur, err := h.rates.Get(code)
	if err != nil {
		if errors.Is(err, domain.ErrCurrencyNotFound) {
			writeError(w, http.StatusNotFound, "currency not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to read currency")
		return
	}

	writeJSON(w, http.StatusOK, CurrencyView{
		Code:   cur.Code,
		Name:   cur.Name,
		Symbol: cur.Symbol,
		Rate:   cur.Rate,
	})
}

package handler

import (
	"net/http"
	"time"
)

type CurrencyView struct {
	Code   string  `json:"code" example:"USD"`
	Name   string  `json:"name" example:"United States Dollar"`
	Symbol string  `json:"symbol" example:"$"`
	Rate   float64 `json:"rate" example:"1.0"`
}

type GetCurrenciesResponse struct {
	LastUpdated *time.Time     `json:"last_updated" example:"2025-01-02T15:04:05Z"`
	Currencies  []CurrencyView `json:"currencies"`
}

// GetCurrencies godoc
// @Summary List currencies
// @Description One consistent snapshot of every supported currency with its current rate
// @Tags Currencies
// @Produce json
// @Success 200 {object} GetCurrenciesResponse
// @Router /currencies [get]
func (h *Handler) GetCurrencies(w http.ResponseWriter, _ *http.Request) {
	snap := h.rates.Snapshot()

	res := GetCurrenciesResponse{
		Currencies: make([]CurrencyView, 0, len(snap.Currencies)),
	}
	if !snap.LastUpdated.IsZero() {
		res.LastUpdated = &snap.LastUpdated
	}
	for _, cur := range snap.Currencies {
		res.Currencies = append(res.Currencies, CurrencyView{
			Code:   cur.Code,
			Name:   cur.Name,
			Symbol: cur.Symbol,
			Rate:   cur.Rate,
		})
	}

	writeJSON(w, http.StatusOK, res)
}

package handler

import (
	"encoding/json"
	"net/http"

	"currex/internal/domain"
	"currex/internal/rate"
)

type RateReader interface {
	Get(code string) (domain.Currency, error)
	Snapshot() rate.Snapshot
}

type ConverterService interface {
	ConvertString(from, to, amount string) (domain.ConversionRecord, error)
	History(limit int) []domain.ConversionRecord
}

type Handler struct {
	rates     RateReader
	converter ConverterService
}

func NewRateHandler(rates RateReader, converter ConverterService) *Handler {
	return &Handler{rates: rates, converter: converter}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

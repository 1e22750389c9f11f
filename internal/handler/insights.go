package handler

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Dan9191/fintrack/internal/projection"
	"github.com/Dan9191/fintrack/internal/service"
)

const maxUploadSize = 10 << 20

// queryFloat reads an optional numeric query parameter
func queryFloat(q url.Values, key string, fallback float64) (float64, error) {
	raw := q.Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be a number", service.ErrInvalidInput, key)
	}
	return v, nil
}

func assumptionsFromQuery(q url.Values, defaults projection.Assumptions) (projection.Assumptions, error) {
	var (
		a   projection.Assumptions
		err error
	)
	if a.ExpectedReturn, err = queryFloat(q, "expectedReturn", defaults.ExpectedReturn); err != nil {
		return a, err
	}
	if a.Inflation, err = queryFloat(q, "inflation", defaults.Inflation); err != nil {
		return a, err
	}
	if a.ExpenseGrowth, err = queryFloat(q, "expenseGrowth", defaults.ExpenseGrowth); err != nil {
		return a, err
	}
	return a, nil
}

// Dashboard returns the dashboard totals
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Dashboard(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// InsightMetrics returns the projection metrics for the caller's records
func (h *Handler) InsightMetrics(w http.ResponseWriter, r *http.Request) {
	a, err := assumptionsFromQuery(r.URL.Query(), h.svc.DefaultAssumptions())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	metrics, err := h.svc.InsightMetrics(r.Context(), a)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

// SIPProjection tabulates a monthly SIP given ?monthly=&rate=
func (h *Handler) SIPProjection(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	monthly, err := queryFloat(q, "monthly", 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rate, err := queryFloat(q, "rate", h.svc.DefaultAssumptions().ExpectedReturn)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.SIPProjection(monthly, rate))
}

// Insights returns the savings overview and advice
func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.svc.Insights(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, insights)
}

// NetWorthProjection returns current assets grown to 1, 5 and 10 years
func (h *Handler) NetWorthProjection(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.NetWorthProjection(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// SavingsProjection returns the provident fund retirement projection
func (h *Handler) SavingsProjection(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.SavingsProjection(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ReferenceRate returns the central bank key rate plus the bank margin
func (h *Handler) ReferenceRate(w http.ResponseWriter, r *http.Request) {
	if h.rates == nil {
		writeMessage(w, http.StatusServiceUnavailable, "Reference rate is not configured")
		return
	}
	rate, err := h.rates.GetReferenceRate(r.Context())
	if err != nil {
		h.log.Errorf("Failed to get reference rate: %v", err)
		writeMessage(w, http.StatusBadGateway, "Failed to get reference rate")
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

// ImportCSV imports transactions from the multipart field "file", or
// "csvFile" as sent by the upload form
func (h *Handler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeMessage(w, http.StatusBadRequest, "Expected a multipart upload")
		return
	}
	file, _, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		file, _, err = r.FormFile("csvFile")
	}
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Missing file")
		return
	}
	defer file.Close()

	result, err := h.svc.ImportCSV(r.Context(), file)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

package handler

import (
	"context"
	"net/http"

	"github.com/Dan9191/fintrack/internal/models"
)

func listRecords[T any](h *Handler, list func(context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := list(r.Context())
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func createRecord[T any](h *Handler, create func(context.Context, *T) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item := new(T)
		if err := decodeJSON(r, item); err != nil {
			h.writeError(w, r, err)
			return
		}
		if err := create(r.Context(), item); err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, item)
	}
}

func updateRecord[U, T any](h *Handler, update func(context.Context, int64, U) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		var patch U
		if err := decodeJSON(r, &patch); err != nil {
			h.writeError(w, r, err)
			return
		}
		item, err := update(r.Context(), id, patch)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func deleteRecord(h *Handler, del func(context.Context, int64) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		if err := del(r.Context(), id); err != nil {
			h.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// CreateIncome accepts a partial payload so an omitted isActive stays true
func (h *Handler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	var payload models.IncomeUpdate
	if err := decodeJSON(r, &payload); err != nil {
		h.writeError(w, r, err)
		return
	}
	income, err := h.svc.CreateIncome(r.Context(), payload)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, income)
}

package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"cooleradmin/internal/domain"
	"cooleradmin/internal/ports"
)

func pageFromQuery(r *http.Request) ports.Page {
	var p ports.Page
	if v := r.URL.Query().Get("limit"); v != "" {
		p.Limit, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		p.Offset, _ = strconv.Atoi(v)
	}
	return p
}

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	list, err := s.customers.List(r.Context(), pageFromQuery(r))
	if err != nil {
		respondError(w, s.logger, "list customers", err)
		return
	}
	writeData(w, http.StatusOK, list)
}

func (s *Server) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	cust, err := s.customers.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, s.logger, "get customer", err)
		return
	}
	writeData(w, http.StatusOK, cust)
}

func (s *Server) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var nc domain.NewCustomer
	if err := json.NewDecoder(r.Body).Decode(&nc); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON, err.Error())
		return
	}
	cust, err := s.customers.Create(r.Context(), nc)
	if err != nil {
		respondError(w, s.logger, "create customer", err)
		return
	}
	writeData(w, http.StatusCreated, cust)
}

func (s *Server) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var patch domain.CustomerPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON, err.Error())
		return
	}
	cust, err := s.customers.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, s.logger, "update customer", err)
		return
	}
	writeData(w, http.StatusOK, cust)
}

func (s *Server) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := s.customers.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, s.logger, "delete customer", err)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleMagicLink(w http.ResponseWriter, r *http.Request) {
	link, err := s.customers.MagicLink(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, s.logger, "magic link", err)
		return
	}
	writeData(w, http.StatusCreated, link)
}

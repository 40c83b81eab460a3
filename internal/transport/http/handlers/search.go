package handlers

import (
	"net/http"

	"github.com/nearlive/event-search-service/internal/application/search"
	"github.com/nearlive/event-search-service/internal/transport/http/response"
)

type SearchHandler struct {
	svc *search.Service
}

func NewSearchHandler(svc *search.Service) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Events handles GET /search/events.
func (h *SearchHandler) Events(w http.ResponseWriter, r *http.Request) {
	q, err := search.ParseQuery(r.URL.Query())
	if err != nil {
		response.Err(w, err)
		return
	}

	res, err := h.svc.Search(r.Context(), q)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.JSON(w, http.StatusOK, res)
}

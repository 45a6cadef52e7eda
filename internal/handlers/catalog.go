package handlers

import (
	"net/http"

	"klarhub-backend/internal/models"
)

type CatalogHandler struct {
	catalog models.Catalog
}

func NewCatalogHandler(catalog models.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog)
}

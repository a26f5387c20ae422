package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/photomatch/photomatch-backend/internal/usecase/catalog"
)

type CatalogHandler struct {
	catalogUseCase *catalog.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

// ListPhotographers handles GET /photographers
// @Summary List the photographer catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /photographers [get]
func (h *CatalogHandler) ListPhotographers(c *gin.Context) {
	snapshot, err := h.catalogUseCase.Snapshot(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"snapshot_version": snapshot.Version,
		"photographers":    snapshot.Photographers,
	})
}

// GetPhotographer handles GET /photographers/:id
// @Summary Get one photographer profile
// @Tags catalog
// @Produce json
// @Param id path int true "Photographer ID"
// @Success 200 {object} domain.Photographer
// @Failure 404 {object} ErrorResponse
// @Router /photographers/{id} [get]
func (h *CatalogHandler) GetPhotographer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Kind: "validation", Error: "photographer id must be an integer"})
		return
	}

	photographer, err := h.catalogUseCase.GetPhotographer(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, photographer)
}

// Refresh handles POST /catalog/refresh
// @Summary Rebuild the catalog snapshot
// @Description Reload the catalog and recompute normalization bounds; call after any upstream catalog mutation
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /catalog/refresh [post]
func (h *CatalogHandler) Refresh(c *gin.Context) {
	snapshot, err := h.catalogUseCase.Refresh(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"snapshot_version": snapshot.Version,
		"created_at":       snapshot.CreatedAt,
		"photographers":    len(snapshot.Photographers),
	})
}

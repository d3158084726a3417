package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nexus/models"
	"nexus/services/catalog"
	"nexus/utils"
)

type CatalogHandler struct {
	Catalog catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: svc}
}

// ListProviders filters the catalog. lat/lng supply the origin for distance
// annotation and ascending distance ordering; without them (and without a
// working locator) results come back in catalog order.
func (h *CatalogHandler) ListProviders(c *gin.Context) {
	filter := catalog.Filter{
		Category: models.Category(c.Query("category")),
		City:     c.Query("city"),
		Mode:     models.Mode(c.Query("mode")),
	}
	if v := c.Query("maxDistanceKm"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "maxDistanceKm must be a number")
			return
		}
		filter.MaxDistanceKm = d
	}
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat != nil || errLng != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "lat and lng must be numbers")
			return
		}
		filter.Origin = &models.GeoPoint{Lat: lat, Lng: lng}
	}

	results, err := h.Catalog.ListProviders(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "catalog search failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": results})
}

func (h *CatalogHandler) GetProvider(c *gin.Context) {
	p, err := h.Catalog.GetProvider(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "provider not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": p})
}

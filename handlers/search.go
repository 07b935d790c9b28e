package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"medagenda/models"
	"medagenda/services/search"
	"medagenda/utils"
)

// SearchHandler exposes the nearby-doctor search.
type SearchHandler struct {
	Svc search.SearchService
}

func NewSearchHandler(svc search.SearchService) *SearchHandler {
	return &SearchHandler{Svc: svc}
}

// FindNearbyDoctorsHandler ranks doctors around a point. lat, lng and
// radiusKm are required query parameters.
func (h *SearchHandler) FindNearbyDoctorsHandler(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "lat and lng must be valid coordinates")
		return
	}

	radiusKm := 10.0
	if raw := c.Query("radiusKm"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			radiusKm = v
		}
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	q := search.Query{
		Center:       models.GeoPoint{Latitude: lat, Longitude: lng},
		RadiusKm:     radiusKm,
		Profession:   c.Query("profession"),
		VerifiedOnly: c.Query("verifiedOnly") == "true",
		Limit:        limit,
	}

	doctors, err := h.Svc.FindNearbyDoctors(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, search.ErrInvalidCenter) {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "internal server error", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors, "count": len(doctors)})
}

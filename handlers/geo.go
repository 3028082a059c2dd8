package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"laundrybook/services/geo"
)

// GeoHandler serves the address-lookup endpoints.
type GeoHandler struct {
	Geo geo.Validator
}

func NewGeoHandler(geoSvc geo.Validator) *GeoHandler {
	return &GeoHandler{Geo: geoSvc}
}

// ResolvePostcode checks one postcode against the service area. Out-of-range
// is reported distinctly from an invalid postcode; lookup failures collapse
// into the invalid case by contract.
func (h *GeoHandler) ResolvePostcode(c *gin.Context) {
	code := c.Param("code")
	res := h.Geo.ResolvePostcode(c.Request.Context(), code)

	if res.OutOfRange {
		c.JSON(http.StatusOK, gin.H{
			"valid":      false,
			"outOfRange": true,
			"message":    "Sorry, this postcode is outside our service area (10 miles from Stanmore).",
		})
		return
	}
	if !res.Valid {
		c.JSON(http.StatusOK, gin.H{
			"valid":   false,
			"message": "Invalid postcode. Please try again.",
		})
		return
	}
	c.JSON(http.StatusOK, res)
}

// Autocomplete suggests postcodes for a partial query. The optional seq
// token is echoed verbatim so clients can discard responses from superseded
// requests.
func (h *GeoHandler) Autocomplete(c *gin.Context) {
	suggestions := h.Geo.Autocomplete(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"result": suggestions,
		"seq":    c.Query("seq"),
	})
}

// SearchByAddress runs a free-text search filtered to the service area. The
// optional seq token is echoed like in Autocomplete.
func (h *GeoHandler) SearchByAddress(c *gin.Context) {
	matches := h.Geo.SearchByAddress(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"result": matches,
		"seq":    c.Query("seq"),
	})
}

// SearchHotels filters the static hotel list by name or address.
func (h *GeoHandler) SearchHotels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"result": geo.FilterHotels(c.Query("q"))})
}

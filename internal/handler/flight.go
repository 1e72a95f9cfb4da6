package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-booking/internal/repository"
)

// FlightHandler serves the flight catalog search.
type FlightHandler struct {
	Flights *repository.FlightRepo
}

func NewFlightHandler(f *repository.FlightRepo) *FlightHandler {
	return &FlightHandler{Flights: f}
}

// Search handles GET /flights.  All four query filters are optional and
// combine with AND; price bounds must parse as numbers and are rejected
// with 400 before any store access.  With no filters the entire catalog
// comes back, in store order.
func (h *FlightHandler) Search(c echo.Context) error {
	var filter repository.FlightFilter

	if src := strings.TrimSpace(c.QueryParam("source")); src != "" {
		filter.Source = &src
	}
	if dst := strings.TrimSpace(c.QueryParam("destination")); dst != "" {
		filter.Destination = &dst
	}
	if raw := strings.TrimSpace(c.QueryParam("minPrice")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "minPrice must be a number"})
		}
		filter.MinPrice = &v
	}
	if raw := strings.TrimSpace(c.QueryParam("maxPrice")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "maxPrice must be a number"})
		}
		filter.MaxPrice = &v
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	flights, err := h.Flights.Search(ctx, filter)
	if err != nil {
		c.Logger().Errorf("flights: search failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	return c.JSON(http.StatusOK, flights)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"retailbrain-dashboard/pkg/services"
	"retailbrain-dashboard/pkg/viewstate"
)

const promptEnterProduct = "Enter product name"

// Forecast handles the forecast form submission. An empty product name
// aborts with a prompt and issues no backend request.
func (h *ViewHandler) Forecast(c *gin.Context) {
	h.state.SetActivePage(viewstate.PageForecast)

	input := services.ForecastInput{
		Product:      c.PostForm("product"),
		Days:         c.PostForm("days"),
		LeadTimeDays: c.PostForm("lead_time_days"),
		ServiceLevel: c.PostForm("service_level"),
	}

	_, err := h.forecast.Load(c.Request.Context(), input)
	switch {
	case err == nil:
		h.respondPage(c, http.StatusOK, viewstate.PageForecast, pageExtras{})
	case errors.Is(err, services.ErrProductRequired):
		h.respondPage(c, http.StatusBadRequest, viewstate.PageForecast, pageExtras{Prompt: promptEnterProduct})
	default:
		h.log.Error().Err(err).Msg("forecast failed")
		h.respondPage(c, http.StatusBadGateway, viewstate.PageForecast, pageExtras{Failure: err.Error()})
	}
}

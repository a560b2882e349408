package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"retailbrain-dashboard/pkg/render"
)

// Fragment endpoints return a single region of a page, so a client can
// refresh one widget from the current view-state without a full page render.

// DashboardFragment serves the dashboard widgets.
func (h *ViewHandler) DashboardFragment(c *gin.Context) {
	view, ok := h.state.Dashboard()
	if !ok {
		view = normalizedDashboard()
	}

	body, err := render.Dashboard(view)
	h.respondFragment(c, body, err)
}

// ForecastFragment serves the last forecast result, or nothing before the
// first successful forecast.
func (h *ViewHandler) ForecastFragment(c *gin.Context) {
	view, ok := h.state.Forecast()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}

	body, err := render.ForecastResult(view)
	h.respondFragment(c, body, err)
}

// TranscriptFragment serves the session's chat transcript.
func (h *ViewHandler) TranscriptFragment(c *gin.Context) {
	body, err := render.Transcript(h.state.Transcript(sessionID(c)))
	h.respondFragment(c, body, err)
}

// ProductOptionsFragment serves the forecast autocomplete options.
func (h *ViewHandler) ProductOptionsFragment(c *gin.Context) {
	body, err := render.ProductOptions(h.state.Catalog())
	h.respondFragment(c, body, err)
}

func (h *ViewHandler) respondFragment(c *gin.Context, body string, err error) {
	if err != nil {
		h.log.Error().Err(err).Msg("render failed")
		c.String(http.StatusInternalServerError, "render failed")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
}

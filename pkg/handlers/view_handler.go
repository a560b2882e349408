package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"retailbrain-dashboard/pkg/logger"
	"retailbrain-dashboard/pkg/models"
	"retailbrain-dashboard/pkg/render"
	"retailbrain-dashboard/pkg/services"
	"retailbrain-dashboard/pkg/viewstate"
)

// ViewHandler binds the four view controllers to HTTP. Each page is rendered
// server-side from the shared view-state; actions mutate the state through
// the services and re-render the owning page.
type ViewHandler struct {
	state    *viewstate.State
	nav      *services.NavigationService
	upload   *services.UploadService
	forecast *services.ForecastService
	copilot  *services.CopilotService
	log      *logger.Logger
}

// NewViewHandler wires the view controllers.
func NewViewHandler(
	state *viewstate.State,
	nav *services.NavigationService,
	upload *services.UploadService,
	forecast *services.ForecastService,
	copilot *services.CopilotService,
	log *logger.Logger,
) *ViewHandler {
	return &ViewHandler{
		state:    state,
		nav:      nav,
		upload:   upload,
		forecast: forecast,
		copilot:  copilot,
		log:      log,
	}
}

// Home redirects to the upload page, the entry view.
func (h *ViewHandler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/pages/"+string(viewstate.PageUpload))
}

// ShowPage activates a page (running its refresh action) and renders it.
func (h *ViewHandler) ShowPage(c *gin.Context) {
	page, err := h.nav.Activate(c.Request.Context(), c.Param("page"))
	if err != nil {
		c.String(http.StatusNotFound, "page not found")
		return
	}

	h.respondPage(c, http.StatusOK, page, pageExtras{})
}

// pageExtras carries transient, per-response decorations: a validation
// prompt or a transport failure banner. Neither is part of the view-state.
type pageExtras struct {
	Prompt  string
	Failure string
}

func (h *ViewHandler) respondPage(c *gin.Context, code int, page viewstate.Page, extras pageExtras) {
	content, err := h.pageContent(c, page, extras)
	if err == nil {
		var body string
		body, err = render.Shell(string(page), content)
		if err == nil {
			c.Data(code, "text/html; charset=utf-8", []byte(body))
			return
		}
	}

	h.log.Error().Err(err).Str("page", string(page)).Msg("render failed")
	c.String(http.StatusInternalServerError, "render failed")
}

func (h *ViewHandler) pageContent(c *gin.Context, page viewstate.Page, extras pageExtras) (template.HTML, error) {
	var (
		body string
		err  error
	)

	switch page {
	case viewstate.PageDashboard:
		view, ok := h.state.Dashboard()
		if !ok {
			view = normalizedDashboard()
		}
		body, err = render.DashboardPage(render.DashboardPageData{Failure: extras.Failure, View: view})

	case viewstate.PageForecast:
		data := render.ForecastPageData{
			Prompt:  extras.Prompt,
			Failure: extras.Failure,
			Options: h.state.Catalog(),
		}
		if view, ok := h.state.Forecast(); ok {
			data.Result = &view
		}
		body, err = render.ForecastPage(data)

	case viewstate.PageCopilot:
		body, err = render.CopilotPage(render.CopilotPageData{
			Transcript: h.state.Transcript(sessionID(c)),
		})

	default:
		data := render.UploadPageData{Prompt: extras.Prompt, Failure: extras.Failure}
		if view, ok := h.state.Upload(); ok {
			data.Status = &view
		}
		body, err = render.UploadPage(data)
	}

	return template.HTML(body), err
}

// normalizedDashboard is what the dashboard page shows before its first
// successful load: a snapshot with every default in place.
func normalizedDashboard() models.DashboardView {
	return models.DashboardView{
		TopProduct:  models.ProductLeader{Name: "--"},
		SlowProduct: models.ProductLeader{Name: "--"},
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"retailbrain-dashboard/pkg/viewstate"
)

// Chat handles a copilot submission. Empty input is a no-op re-render; any
// other outcome (answer, missing answer, unreachable service) has already
// been folded into the transcript by the copilot service, so the page always
// renders a complete conversation.
func (h *ViewHandler) Chat(c *gin.Context) {
	h.state.SetActivePage(viewstate.PageCopilot)

	h.copilot.Ask(c.Request.Context(), sessionID(c), c.PostForm("query"))

	h.respondPage(c, http.StatusOK, viewstate.PageCopilot, pageExtras{})
}

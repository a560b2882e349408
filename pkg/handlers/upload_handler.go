package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"retailbrain-dashboard/pkg/services"
	"retailbrain-dashboard/pkg/viewstate"
)

// User-visible validation prompts for the upload form.
const (
	promptSelectFile      = "Select a file"
	promptUnsupportedFile = "Unsupported file format. Upload a .csv or .xlsx file."
	promptNotEnoughRows   = "The file needs a header row and at least one data row."
	promptFileTooLarge    = "The file is too large to upload."
)

// Upload handles the upload form submission. A missing file aborts with a
// prompt before any network traffic; everything else is delegated to the
// upload service and the page is re-rendered with the outcome.
func (h *ViewHandler) Upload(c *gin.Context) {
	h.state.SetActivePage(viewstate.PageUpload)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.respondPage(c, http.StatusBadRequest, viewstate.PageUpload, pageExtras{Prompt: promptSelectFile})
		return
	}
	defer file.Close()

	_, err = h.upload.Upload(c.Request.Context(), header.Filename, file)
	switch {
	case err == nil:
		h.respondPage(c, http.StatusOK, viewstate.PageUpload, pageExtras{})
	case errors.Is(err, services.ErrFileRequired):
		h.respondPage(c, http.StatusBadRequest, viewstate.PageUpload, pageExtras{Prompt: promptSelectFile})
	case errors.Is(err, services.ErrUnsupportedFile):
		h.respondPage(c, http.StatusBadRequest, viewstate.PageUpload, pageExtras{Prompt: promptUnsupportedFile})
	case errors.Is(err, services.ErrNotEnoughRows):
		h.respondPage(c, http.StatusBadRequest, viewstate.PageUpload, pageExtras{Prompt: promptNotEnoughRows})
	case errors.Is(err, services.ErrFileTooLarge):
		h.respondPage(c, http.StatusBadRequest, viewstate.PageUpload, pageExtras{Prompt: promptFileTooLarge})
	default:
		h.log.Error().Err(err).Msg("upload failed")
		h.respondPage(c, http.StatusBadGateway, viewstate.PageUpload, pageExtras{Failure: err.Error()})
	}
}

package viewstate

import (
	"sync"

	"retailbrain-dashboard/pkg/models"
)

// Page identifies one of the four dashboard views.
type Page string

const (
	PageUpload    Page = "upload"
	PageDashboard Page = "dashboard"
	PageForecast  Page = "forecast"
	PageCopilot   Page = "copilot"
)

// ParsePage validates a page identifier coming from the URL.
func ParsePage(id string) (Page, bool) {
	switch Page(id) {
	case PageUpload, PageDashboard, PageForecast, PageCopilot:
		return Page(id), true
	}
	return "", false
}

// State is the single mutable view-state shared by all controllers. It owns
// the active page, the last normalized snapshot per view, the product
// autocomplete catalog, per-session chat transcripts and a request generation
// per controller. Handlers run concurrently, so every access goes through the
// mutex; the generation counters make the concurrent-fetch race deterministic
// by letting controllers discard responses that were superseded while in
// flight.
type State struct {
	mu sync.RWMutex

	activePage Page

	dashboard    models.DashboardView
	hasDashboard bool

	forecast    models.ForecastView
	hasForecast bool

	upload    models.UploadView
	hasUpload bool

	catalog []string

	generations map[string]uint64

	transcripts map[string][]models.ChatMessage
}

// New creates an empty state with no active page.
func New() *State {
	return &State{
		generations: make(map[string]uint64),
		transcripts: make(map[string][]models.ChatMessage),
	}
}

// ActivePage returns the current page, or "" before the first activation.
func (s *State) ActivePage() Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activePage
}

// SetActivePage records the single active page.
func (s *State) SetActivePage(page Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activePage = page
}

// NextGeneration issues a new request generation for the named controller.
func (s *State) NextGeneration(controller string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[controller]++
	return s.generations[controller]
}

// CurrentGeneration reports the latest issued generation for a controller.
func (s *State) CurrentGeneration(controller string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generations[controller]
}

// SetDashboard replaces the dashboard snapshot wholesale.
func (s *State) SetDashboard(view models.DashboardView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboard = view
	s.hasDashboard = true
}

// Dashboard returns the last dashboard snapshot, if any.
func (s *State) Dashboard() (models.DashboardView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dashboard, s.hasDashboard
}

// SetForecast replaces the forecast snapshot wholesale.
func (s *State) SetForecast(view models.ForecastView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forecast = view
	s.hasForecast = true
}

// Forecast returns the last forecast snapshot, if any.
func (s *State) Forecast() (models.ForecastView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.forecast, s.hasForecast
}

// SetUpload replaces the upload outcome.
func (s *State) SetUpload(view models.UploadView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upload = view
	s.hasUpload = true
}

// Upload returns the last upload outcome, if any.
func (s *State) Upload() (models.UploadView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.upload, s.hasUpload
}

// SetCatalog replaces the product autocomplete source wholesale.
func (s *State) SetCatalog(products []string) {
	copied := make([]string, len(products))
	copy(copied, products)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = copied
}

// Catalog returns a copy of the product autocomplete source.
func (s *State) Catalog() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// AppendMessage adds one turn to a session transcript. Transcripts are
// append-only for the lifetime of the process.
func (s *State) AppendMessage(sessionID, role, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts[sessionID] = append(s.transcripts[sessionID], models.ChatMessage{Role: role, Text: text})
}

// Transcript returns a copy of a session's transcript in append order.
func (s *State) Transcript(sessionID string) []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messages := s.transcripts[sessionID]
	out := make([]models.ChatMessage, len(messages))
	copy(out, messages)
	return out
}

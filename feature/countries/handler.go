package countries

import (
	"bytes"
	"errors"

	"country-explorer/core/country"
	"country-explorer/core/export"
	"country-explorer/core/logger"
	"country-explorer/core/middleware/auth"
	"country-explorer/core/query"
	"country-explorer/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ListResponse is the body of GET /countries.
type ListResponse struct {
	Count     int               `json:"count"`
	Countries []country.Record  `json:"countries"`
	Stats     *query.Stats      `json:"stats"`
	Warnings  []string          `json:"warnings"`
	Summary   reconcile.Summary `json:"summary"`
}

// RefreshResponse is the body of POST /countries/refresh.
type RefreshResponse struct {
	Summary reconcile.Summary `json:"summary"`
	Error   string            `json:"error,omitempty"`
}

// Handler serves the country routes.
type Handler struct {
	service *Service
	logger  *zap.Logger
	apiKey  string
	view    *view
}

// NewHandler creates a new HTTP handler. apiKey guards the /countries API
// when not empty.
func NewHandler(service *Service, logger *zap.Logger, apiKey string) *Handler {
	return &Handler{service: service, logger: logger, apiKey: apiKey, view: newView()}
}

// RegisterRoutes registers the HTML view and the JSON API.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleIndex)
	app.Get("/refresh", h.HandleRefreshRedirect)

	group := app.Group("/countries", auth.New(auth.Config{ApiKey: h.apiKey}))
	group.Get("/", h.HandleList)
	group.Get("/stats", h.HandleStats)
	group.Get("/export", h.HandleExport)
	group.Post("/export", h.HandleExportObject)
	group.Post("/refresh", h.HandleRefresh)
}

// HandleList returns the filtered and sorted records.
// @Summary List countries
// @Description Filters and sorts the merged record set. Invalid bounds are ignored and an invalid sort key falls back to name ascending; both are reported in warnings.
// @Tags countries
// @Produce json
// @Param name query string false "Name text"
// @Param exact query bool false "Exact name match"
// @Param continent query string false "Continent"
// @Param min_population query int false "Minimum population"
// @Param max_population query int false "Maximum population"
// @Param min_area query int false "Minimum area"
// @Param max_area query int false "Maximum area"
// @Param sort query string false "name, population or area" default(name)
// @Param asc query bool false "Ascending order" default(true)
// @Success 200 {object} ListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /countries [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	p, warnings := parseParams(c)
	listing := h.service.Query(c.Context(), p, warnings)

	return c.JSON(ListResponse{
		Count:     len(listing.Records),
		Countries: listing.Records,
		Stats:     listing.Stats,
		Warnings:  listing.Warnings,
		Summary:   listing.Summary,
	})
}

// HandleStats returns statistics of the filtered records.
// @Summary Country statistics
// @Description Count, most and least populous, means and per-continent counts of the filtered set. Null when the set is empty.
// @Tags countries
// @Produce json
// @Success 200 {object} query.Stats
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /countries/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	p, warnings := parseParams(c)
	listing := h.service.Query(c.Context(), p, warnings)
	return c.JSON(listing.Stats)
}

// HandleExport streams the filtered records as CSV.
// @Summary Export countries as CSV
// @Tags countries
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /countries/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	p, warnings := parseParams(c)
	listing := h.service.Query(c.Context(), p, warnings)

	var buf bytes.Buffer
	if err := export.Write(&buf, listing.Records); err != nil {
		logger.WithRayID(h.logger, c).Error("CSV encoding failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Attachment("countries.csv")
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(buf.Bytes())
}

// HandleExportObject uploads the filtered records to object storage.
// @Summary Export countries to object storage
// @Tags countries
// @Produce json
// @Param object query string true "Object name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Missing object name"
// @Failure 501 {object} map[string]string "Storage disabled"
// @Failure 502 {object} map[string]string "Upload failed"
// @Router /countries/export [post]
func (h *Handler) HandleExportObject(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	p, warnings := parseParams(c)
	listing := h.service.Query(c.Context(), p, warnings)

	object := c.Query("object")
	err := h.service.ExportObject(c.Context(), object, listing.Records)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"object": object, "count": len(listing.Records)})
	case errors.Is(err, ErrStorageDisabled):
		return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{"error": err.Error()})
	case country.IsKind(err, country.KindInvalidArgument):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("Export upload failed", zap.String("object", object), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
}

// HandleRefresh reloads both sources.
// @Summary Refresh data
// @Description Reloads the tabular and remote sources and merges them again. Returns 503 when no source produced records.
// @Tags countries
// @Produce json
// @Success 200 {object} RefreshResponse
// @Failure 503 {object} RefreshResponse
// @Router /countries/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	l.Info("Refresh requested")

	summary, err := h.service.Refresh(c.Context())
	if err != nil {
		l.Warn("Refresh produced no data", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(RefreshResponse{Summary: summary, Error: err.Error()})
	}
	return c.JSON(RefreshResponse{Summary: summary})
}

// HandleRefreshRedirect reloads and sends the browser back to the view.
func (h *Handler) HandleRefreshRedirect(c *fiber.Ctx) error {
	if _, err := h.service.Refresh(c.Context()); err != nil {
		logger.WithRayID(h.logger, c).Warn("Refresh produced no data", zap.Error(err))
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleIndex renders the HTML view.
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	p, warnings := parseParams(c)
	listing := h.service.Query(c.Context(), p, warnings)

	var buf bytes.Buffer
	if err := h.view.render(&buf, p, listing); err != nil {
		logger.WithRayID(h.logger, c).Error("Rendering view failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("internal error")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

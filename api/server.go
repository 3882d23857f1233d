package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weekendly.app/config"
	weekenderr "weekendly.app/errors"
	"weekendly.app/models"
	"weekendly.app/planner"
	"weekendly.app/providers"
	"weekendly.app/service"
)

// StatsProvider exposes a point-in-time stats snapshot for the metrics endpoint
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// ServerOptions bundles the dependencies needed to construct a Server
type ServerOptions struct {
	Config            *config.Config
	PlanService       service.PlanServiceInterface
	WeatherService    service.WeatherServiceInterface
	SuggestionService service.SuggestionServiceInterface
	PlanStats         StatsProvider
	SuggestionStats   StatsProvider
}

// Server represents the HTTP server and API handler
type Server struct {
	router            *gin.Engine
	config            *config.Config
	planService       service.PlanServiceInterface
	weatherService    service.WeatherServiceInterface
	suggestionService service.SuggestionServiceInterface
	planStats         StatsProvider
	suggestionStats   StatsProvider
}

// validateClockTime validates the zero-padded HH:MM binding tag
func validateClockTime(fl validator.FieldLevel) bool {
	return models.IsValidClockTime(fl.Field().String())
}

// NewServer creates and configures a new HTTP server
func NewServer(opts ServerOptions) (*Server, error) {
	if opts.Config == nil {
		return nil, weekenderr.NewConfigurationError("server config cannot be nil", nil)
	}
	if opts.PlanService == nil {
		return nil, weekenderr.NewConfigurationError("plan service cannot be nil", nil)
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("clocktime", validateClockTime); err != nil {
			slog.Warn("Failed to register clocktime validator", "error", err)
		}
	}

	server := &Server{
		router:            gin.Default(),
		config:            opts.Config,
		planService:       opts.PlanService,
		weatherService:    opts.WeatherService,
		suggestionService: opts.SuggestionService,
		planStats:         opts.PlanStats,
		suggestionStats:   opts.SuggestionStats,
	}

	server.setupRoutes()
	return server, nil
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/plan", s.getPlan)
		api.POST("/activities", s.addActivity)
		api.PUT("/activities/:id", s.updateActivity)
		api.DELETE("/activities/:id", s.deleteActivity)
		api.POST("/activities/:id/complete", s.toggleComplete)
		api.POST("/plan/reorder", s.reorderActivities)
		api.POST("/plan/move", s.moveActivity)
		api.POST("/plan/suggestions", s.addSuggestion)
		api.POST("/suggestions", s.getSuggestions)
		api.GET("/weather", s.getWeather)
		api.GET("/categories", s.getCategories)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.ServeStaticFiles()
}

// Start begins the HTTP server
func (s *Server) Start() error {
	return s.router.Run(fmt.Sprintf(":%d", s.config.Server.Port))
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

func (s *Server) getPlan(c *gin.Context) {
	c.JSON(http.StatusOK, s.planService.Plan())
}

func (s *Server) addActivity(c *gin.Context) {
	var req models.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weekenderr.NewValidationError("invalid request format"))
		return
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	activity := models.Activity{
		ID:        id,
		Title:     req.Title,
		Time:      req.Time,
		Category:  req.Category,
		Mood:      req.Mood,
		Completed: req.Completed,
		Day:       req.Day,
	}

	plan, err := s.planService.AddActivity(c.Request.Context(), activity)
	if err != nil {
		slog.Error("Add activity error", "error", err, "id", activity.ID)
		s.handleError(c, err)
		return
	}

	slog.Debug("Activity added", "id", activity.ID, "day", activity.Day)
	c.JSON(http.StatusCreated, gin.H{"activity": activity, "plan": plan})
}

func (s *Server) updateActivity(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weekenderr.NewValidationError("invalid request format"))
		return
	}

	if _, currentDay, found := planner.FindActivity(s.planService.Plan(), id); found && currentDay != req.Day {
		s.handleError(c, weekenderr.NewValidationError("day changes are not allowed here, use the move endpoint"))
		return
	}

	activity := models.Activity{
		ID:        id,
		Title:     req.Title,
		Time:      req.Time,
		Category:  req.Category,
		Mood:      req.Mood,
		Completed: req.Completed,
		Day:       req.Day,
	}

	plan, err := s.planService.UpdateActivity(c.Request.Context(), activity)
	if err != nil {
		slog.Error("Update activity error", "error", err, "id", id)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": activity, "plan": plan})
}

func (s *Server) dayParam(c *gin.Context) (models.Day, bool) {
	day := models.Day(c.Query("day"))
	if !day.Valid() {
		s.handleError(c, weekenderr.NewValidationError("day query parameter must be saturday or sunday"))
		return "", false
	}
	return day, true
}

func (s *Server) deleteActivity(c *gin.Context) {
	day, ok := s.dayParam(c)
	if !ok {
		return
	}

	// Deleting an unknown id is an idempotent no-op, not an error
	plan := s.planService.DeleteActivity(c.Request.Context(), c.Param("id"), day)
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (s *Server) toggleComplete(c *gin.Context) {
	day, ok := s.dayParam(c)
	if !ok {
		return
	}

	plan := s.planService.ToggleComplete(c.Request.Context(), c.Param("id"), day)
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (s *Server) reorderActivities(c *gin.Context) {
	var req models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weekenderr.NewValidationError("invalid request format"))
		return
	}

	current := s.planService.Plan().DayActivities(req.Day)
	ordered := make([]models.Activity, 0, len(req.OrderedIDs))
	for _, id := range req.OrderedIDs {
		activity, day, found := planner.FindActivity(s.planService.Plan(), id)
		if !found || day != req.Day {
			s.handleError(c, weekenderr.NewValidationError(
				fmt.Sprintf("activity %s is not part of %s", id, req.Day)))
			return
		}
		ordered = append(ordered, activity)
	}
	if len(ordered) != len(current) {
		s.handleError(c, weekenderr.NewValidationError("orderedIds must list every activity of the day exactly once"))
		return
	}

	plan, err := s.planService.ReorderActivities(c.Request.Context(), req.Day, ordered)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (s *Server) moveActivity(c *gin.Context) {
	var req models.MoveActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weekenderr.NewValidationError("invalid request format"))
		return
	}

	plan := s.planService.MoveActivity(c.Request.Context(), req.ActivityID, req.FromDay, req.ToDay, req.NewIndex)
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (s *Server) addSuggestion(c *gin.Context) {
	var req models.AddSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weekenderr.NewValidationError("invalid request format"))
		return
	}

	activity, err := s.planService.AddSuggestion(c.Request.Context(), req.Suggestion, req.Day)
	if err != nil {
		slog.Error("Add suggestion error", "error", err, "title", req.Suggestion.Title)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"activity": activity, "plan": s.planService.Plan()})
}

func (s *Server) getSuggestions(c *gin.Context) {
	var req models.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weekenderr.NewValidationError("invalid request format"))
		return
	}

	response, err := s.suggestionService.GetSuggestions(c.Request.Context(), req)
	if err != nil {
		slog.Error("Suggestion service error", "error", err, "mood", req.Mood)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (s *Server) getWeather(c *gin.Context) {
	query := providers.WeatherQuery{City: c.Query("city")}

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" && lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			s.handleError(c, weekenderr.NewValidationError("lat and lon must be valid numbers"))
			return
		}
		query.Lat, query.Lon = &lat, &lon
	}

	if query.City == "" && !query.ByCoordinates() {
		s.handleError(c, weekenderr.NewValidationError("either city parameter or lat/lon coordinates are required"))
		return
	}

	slog.Debug("Getting weather", "city", query.City, "coords", query.ByCoordinates())
	snapshot, err := s.weatherService.GetSnapshot(c.Request.Context(), query)
	if err != nil {
		slog.Error("Weather service error", "error", err, "city", query.City)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (s *Server) getCategories(c *gin.Context) {
	categories := make(map[models.ActivityCategory]models.CategoryMeta, len(models.Categories))
	for _, category := range models.Categories {
		if meta, ok := models.CategoryMetaFor(category); ok {
			categories[category] = meta
		}
	}
	c.JSON(http.StatusOK, categories)
}

func (s *Server) getMetrics(c *gin.Context) {
	response := gin.H{}
	if s.planStats != nil {
		response["plan"] = s.planStats.GetStats()
	}
	if s.suggestionStats != nil {
		response["suggestions"] = s.suggestionStats.GetStats()
	}
	c.JSON(http.StatusOK, response)
}

// handleError handles different types of application errors
func (s *Server) handleError(c *gin.Context, err error) {
	var appErr *weekenderr.AppError
	var statusCode int
	var message string

	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
		return
	}

	switch appErr.Type {
	case weekenderr.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case weekenderr.NotFoundError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case weekenderr.AlreadyExistsError:
		statusCode = http.StatusConflict
		message = appErr.Message
	case weekenderr.ExternalAPIError:
		statusCode = http.StatusServiceUnavailable
		message = "External service unavailable"
	case weekenderr.StorageError:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	case weekenderr.ConfigurationError:
		statusCode = http.StatusServiceUnavailable
		message = "Service temporarily unavailable"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, models.ErrorResponse{Error: message})
}

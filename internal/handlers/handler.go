package handlers

import (
	"net/http"

	"eventsite/internal/logger"
	"eventsite/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Canonical error bodies. Internal detail never crosses this boundary.
const (
	errNotFound    = "Not found"
	errInvalidJSON = "Invalid json"
	errInternal    = "Internal server error"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(h.recovered))
	router.NoRoute(h.notFound)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth + user endpoints
	h.registerUserRoutes(router)

	// Admin-only probe
	router.GET("/admin", h.requireAuthentication, h.requireAdmin, h.admin)

	// Event listing and registration; the slug routes sit at the root to
	// keep event URLs short.
	h.registerEventRoutes(router)

	// Live registration feed (HTTP upgrade) — same port
	router.GET("/ws", h.wsRegistered)

	return router
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	users := r.Group("/users")
	{
		users.POST("/login", h.login)
		users.POST("/register", h.register)
		users.GET("", h.requireAuthentication, h.requireAdmin, h.listUsers)
		users.GET("/:id", h.requireAuthentication, h.requireAdmin, h.getUser)
	}
}

func (h *Handler) registerEventRoutes(r *gin.Engine) {
	r.GET("/", h.index)
	r.GET("/:slug", h.eventDetail)
	r.POST("/:slug", h.submitRegistration)
	r.GET("/:slug/thanks", h.thanks)
}

// notFound is both the NoRoute handler and the fall-through for unknown
// slugs and ids.
func (h *Handler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": errNotFound})
}

// recovered turns panics into an opaque 500; the cause is logged, never sent.
func (h *Handler) recovered(c *gin.Context, err any) {
	if h.log != nil {
		h.log.Errorw("panic_recovered", "err", err, "path", c.Request.URL.Path)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": errInternal})
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// bindJSONOrInvalid binds the request body into dst and writes the canonical
// 400 body on failure. Returns false if the request was already handled.
func (h *Handler) bindJSONOrInvalid(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err, "path", c.Request.URL.Path)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidJSON})
		return false
	}
	return true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

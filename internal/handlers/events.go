package handlers

import (
	"net/http"

	"eventsite/internal/models"
	"eventsite/internal/service"

	"github.com/gin-gonic/gin"
)

const siteTitle = "Events"

// @Summary      Event listing and route index
// @Tags         events
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "title, admin, events, links"
// @Failure      500  {object}  map[string]string
// @Router       / [get]
func (h *Handler) index(c *gin.Context) {
	events, err := h.services.Events.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "events_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"title":  siteTitle,
		"admin":  false,
		"events": events,
		"links": gin.H{
			"login":    "/users/login",
			"register": "/users/register",
			"users":    "/users",
			"admin":    "/admin",
		},
	})
}

// @Summary      Event detail with registrants
// @Tags         events
// @Produce      json
// @Param        slug  path  string  true  "Event slug"
// @Success      200  {object}  map[string]interface{}  "title, event, registered, errors, data"
// @Failure      404  {object}  map[string]string
// @Router       /{slug} [get]
func (h *Handler) eventDetail(c *gin.Context) {
	event, registered, ok := h.loadEvent(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, eventView(event, registered, nil, service.RegistrationInput{}))
}

// @Summary      Register for an event
// @Description  Validates and sanitizes the comment before persisting. On
// @Description  validation failure the sanitized form state is echoed back
// @Description  with a 200 so callers can redisplay it.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        slug  path  string                     true  "Event slug"
// @Param        body  body  service.RegistrationInput  true  "Signup"
// @Success      200  {object}  map[string]interface{}  "redirect target or form state"
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /{slug} [post]
func (h *Handler) submitRegistration(c *gin.Context) {
	event, registered, ok := h.loadEvent(c)
	if !ok {
		return
	}

	var input service.RegistrationInput
	if ok := h.bindJSONOrInvalid(c, &input); !ok {
		return
	}

	// Validation failure is not an HTTP error: the submitted values come
	// back as form state for redisplay. They are markup-stripped first so
	// attacker input never round-trips raw.
	if errs := h.services.Registrations.Validate(input); len(errs) > 0 {
		c.JSON(http.StatusOK, eventView(event, registered, errs, h.services.Registrations.Sanitize(input)))
		return
	}

	clean := h.services.Registrations.Sanitize(input)
	if _, err := h.services.Registrations.Submit(c.Request.Context(), event.ID, clean); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "registration_submit_failed", err, "slug", event.Slug)
		return
	}

	// Redirect target for the caller, mirroring the form flow.
	c.JSON(http.StatusOK, "/"+event.Slug)
}

// @Summary      Post-registration listing
// @Tags         events
// @Produce      json
// @Param        slug  path  string  true  "Event slug"
// @Success      200  {object}  map[string]interface{}  "title, events"
// @Failure      500  {object}  map[string]string
// @Router       /{slug}/thanks [get]
func (h *Handler) thanks(c *gin.Context) {
	events, err := h.services.Events.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "events_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"title":  siteTitle,
		"events": events,
	})
}

// loadEvent resolves the slug parameter and the event's registrants.
// Unknown slugs fall through to the generic not-found response.
func (h *Handler) loadEvent(c *gin.Context) (*models.Event, []models.Registration, bool) {
	ctx := c.Request.Context()

	event, err := h.services.Events.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "event_get_failed", err, "slug", c.Param("slug"))
		return nil, nil, false
	}
	if event == nil {
		h.notFound(c)
		return nil, nil, false
	}

	registered, err := h.services.Events.Registered(ctx, event.ID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "registrations_list_failed", err, "slug", event.Slug)
		return nil, nil, false
	}
	return event, registered, true
}

// eventView is the shared detail/form-state body. errors is always a list
// and data always an object so clients need no null checks.
func eventView(event *models.Event, registered []models.Registration, errs []service.FieldError, data service.RegistrationInput) gin.H {
	if errs == nil {
		errs = []service.FieldError{}
	}
	if registered == nil {
		registered = []models.Registration{}
	}
	return gin.H{
		"title":      event.Name,
		"event":      event,
		"registered": registered,
		"errors":     errs,
		"data":       gin.H{"name": data.Name, "comment": data.Comment},
	}
}

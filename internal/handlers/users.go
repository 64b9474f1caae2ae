package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary      List all users
// @Description  Admin only. Password hashes are never serialized.
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "listOfAllUsers"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users [get]
// @Security     BearerAuth
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Users.List()
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "users_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listOfAllUsers": users})
}

const errUnknownUser = "Please signup at /register before continuing"

// @Summary      Get one user
// @Description  Admin only.
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  map[string]interface{}  "userId"
// @Failure      401  {object}  map[string]string
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (h *Handler) getUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errUnknownUser})
		return
	}

	user, err := h.services.Users.GetByID(id)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "users_get_failed", err, "id", id)
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errUnknownUser})
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": user})
}

// @Summary      Admin probe
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /admin [get]
// @Security     BearerAuth
func (h *Handler) admin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": "top secret"})
}

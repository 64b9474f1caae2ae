package handlers

import (
	"errors"
	"net/http"

	"eventsite/internal/service"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// @Summary      Log in
// @Description  Issues a time-limited bearer token for valid credentials.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  map[string]string  "token"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /users/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrInvalid(c, &input); !ok {
		return
	}

	token, err := h.services.Login(input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSuchUser):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No such user"})
		case errors.Is(err, service.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "login_failed", err, "username", input.Username)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// @Summary      Register a new user
// @Description  Creates a non-admin account. The password is stored hashed
// @Description  and never returned.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "New account"
// @Success      200  {object}  map[string]string  "name, username"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /users/register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrInvalid(c, &input); !ok {
		return
	}

	user, err := h.services.Register(input.Name, input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please provide name, username and password"})
		case errors.Is(err, service.ErrUsernameTaken):
			// Kept as a 200 with a message so signup forms can redisplay.
			c.JSON(http.StatusOK, gin.H{"data": "User was not created, please try again with different username"})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "register_failed", err, "username", input.Username)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": user.Name, "username": user.Username})
}

package api

import (
	"net/http"

	"marina-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userQueries queries.UserQueries
}

func NewUserHandler(userQueries queries.UserQueries) *UserHandler {
	return &UserHandler{userQueries: userQueries}
}

// @Summary List staff
// @Description All staff accounts, active and inactive
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.AuthorizedUserView
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userQueries.ListStaff(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, users)
}

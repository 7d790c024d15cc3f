package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	intconfig "travelagent/internal/config"
	"travelagent/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/users
func GetUsers(c *gin.Context) {
	repo := repositories.UserRepository{DB: intconfig.DB}
	users, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "could not list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /api/users/:id
func GetUserByID(c *gin.Context) {
	id, ok := ParseIDOrError(c)
	if !ok {
		return
	}
	repo := repositories.UserRepository{DB: intconfig.DB}
	user, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(c, http.StatusNotFound, "not_found", "user not found", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "could not load user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

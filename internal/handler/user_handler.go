package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/smartcampus-id/campus-backend/internal/dto"
	"github.com/smartcampus-id/campus-backend/internal/model"
	"github.com/smartcampus-id/campus-backend/internal/service"
	"github.com/smartcampus-id/campus-backend/pkg/apperror"
	"github.com/smartcampus-id/campus-backend/pkg/response"
	"github.com/smartcampus-id/campus-backend/pkg/validator"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var input dto.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userService.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUsersPage(c *gin.Context) {
	var filter dto.UserPageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	page, err := h.userService.GetPage(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetUserByUsername(c *gin.Context) {
	user, err := h.userService.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.userService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetUserByStudentID(c *gin.Context) {
	user, err := h.userService.GetByStudentID(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetUsersByRole(c *gin.Context) {
	role, ok := parseRole(c)
	if !ok {
		return
	}

	var (
		users []*model.User
		err   error
	)
	if department := c.Query("department"); department != "" {
		users, err = h.userService.GetByRoleAndDepartment(c.Request.Context(), role, department)
	} else {
		users, err = h.userService.GetByRole(c.Request.Context(), role)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUsersByDepartment(c *gin.Context) {
	users, err := h.userService.GetByDepartment(c.Request.Context(), c.Param("department"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetActiveUsersByRole(c *gin.Context) {
	role, ok := parseRole(c)
	if !ok {
		return
	}

	users, err := h.userService.GetActiveByRole(c.Request.Context(), role)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetActiveUsersByDepartment(c *gin.Context) {
	users, err := h.userService.GetActiveByDepartment(c.Request.Context(), c.Param("department"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUsersByActive(c *gin.Context) {
	active := c.Param("state") == "true"
	users, err := h.userService.GetByActive(c.Request.Context(), active)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) SearchUsers(c *gin.Context) {
	var filter dto.SearchFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	users, err := h.userService.Search(c.Request.Context(), filter.Q)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) ActivateUser(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Activate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeactivateUser(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Deactivate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func parseUUID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return uuid.Nil, false
	}
	return id, true
}

func parseRole(c *gin.Context) (model.UserRole, bool) {
	role := model.UserRole(c.Param("role"))
	if !role.Valid() {
		response.Error(c, fmt.Errorf("unknown role %q: %w", c.Param("role"), apperror.ErrInvalidInput))
		return "", false
	}
	return role, true
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartcampus-id/campus-backend/internal/dto"
	"github.com/smartcampus-id/campus-backend/internal/service"
	"github.com/smartcampus-id/campus-backend/pkg/response"
	"github.com/smartcampus-id/campus-backend/pkg/validator"
)

type CourseHandler struct {
	courseService service.CourseService
}

func NewCourseHandler(courseService service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var input dto.CreateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	course, err := h.courseService.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, course)
}

func (h *CourseHandler) GetAllCourses(c *gin.Context) {
	var filter dto.CourseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	courses, err := h.courseService.GetAll(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) GetCourseByID(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	course, err := h.courseService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) GetCourseByCode(c *gin.Context) {
	course, err := h.courseService.GetByCourseCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	course, err := h.courseService.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	if err := h.courseService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CourseHandler) ActivateCourse(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	course, err := h.courseService.Activate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) DeactivateCourse(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	course, err := h.courseService.Deactivate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) EnrollStudent(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	course, err := h.courseService.Enroll(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) DropStudent(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	course, err := h.courseService.Drop(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/learnhub/learnhub-backend/internal/middleware"
	"github.com/learnhub/learnhub-backend/internal/model"
	"github.com/learnhub/learnhub-backend/internal/response"
	"github.com/learnhub/learnhub-backend/internal/service"
	"github.com/learnhub/learnhub-backend/internal/validator"
)

// AdminHandler handles instructor signup/signin and course management.
type AdminHandler struct {
	accounts *service.AccountService
	courses  *service.CourseService
}

func NewAdminHandler(accounts *service.AccountService, courses *service.CourseService) *AdminHandler {
	return &AdminHandler{accounts: accounts, courses: courses}
}

// Signup godoc
// POST /admin/signup
func (h *AdminHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if _, err := h.accounts.Signup(c.Request.Context(), &req); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.Fail(c, http.StatusConflict, response.ErrEmailTaken)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "signup succeeded"})
}

// Signin godoc
// POST /admin/signin
func (h *AdminHandler) Signin(c *gin.Context) {
	var req model.SigninRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, err := h.accounts.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusForbidden, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token})
}

// CreateCourse godoc
// POST /admin/course
func (h *AdminHandler) CreateCourse(c *gin.Context) {
	adminID := middleware.AccountID(c)

	var req model.CreateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	course, err := h.courses.Create(c.Request.Context(), adminID, &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":  "course created successfully",
		"courseId": course.ID,
	})
}

// UpdateCourse godoc
// PUT /admin/course
func (h *AdminHandler) UpdateCourse(c *gin.Context) {
	adminID := middleware.AccountID(c)

	var req model.UpdateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.courses.Update(c.Request.Context(), adminID, &req); err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrCourseNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":  "course updated successfully",
		"courseId": req.CourseID,
	})
}

// DeleteCourse godoc
// DELETE /admin/course/:id
// Scoped to the owner: another admin's delete matches nothing and reports 404.
func (h *AdminHandler) DeleteCourse(c *gin.Context) {
	adminID := middleware.AccountID(c)
	courseID := c.Param("id")
	if _, err := uuid.Parse(courseID); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.courses.Delete(c.Request.Context(), adminID, courseID); err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrCourseNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "course deleted successfully"})
}

// ListCourses godoc
// GET /admin/course/bulk
func (h *AdminHandler) ListCourses(c *gin.Context) {
	adminID := middleware.AccountID(c)

	courses, err := h.courses.ListByCreator(c.Request.Context(), adminID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if courses == nil {
		courses = []model.Course{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "courses list",
		"courses": courses,
	})
}

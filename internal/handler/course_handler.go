package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnhub/learnhub-backend/internal/middleware"
	"github.com/learnhub/learnhub-backend/internal/model"
	"github.com/learnhub/learnhub-backend/internal/response"
	"github.com/learnhub/learnhub-backend/internal/service"
	"github.com/learnhub/learnhub-backend/internal/validator"
)

// CourseHandler handles the public catalog and course purchases.
type CourseHandler struct {
	courses   *service.CourseService
	purchases *service.PurchaseService
}

func NewCourseHandler(courses *service.CourseService, purchases *service.PurchaseService) *CourseHandler {
	return &CourseHandler{courses: courses, purchases: purchases}
}

// Preview godoc
// GET /course/preview
// Public catalog, unscoped and unpaginated, served cache-aside from Redis.
func (h *CourseHandler) Preview(c *gin.Context) {
	courses, err := h.courses.Catalog(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if courses == nil {
		courses = []model.Course{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "course preview",
		"courses": courses,
	})
}

// Purchase godoc
// POST /course/purchase
// The purchaser is always the authenticated user; a client-supplied userId is
// never accepted.
func (h *CourseHandler) Purchase(c *gin.Context) {
	userID := middleware.AccountID(c)

	var req model.PurchaseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if _, err := h.purchases.Purchase(c.Request.Context(), userID, req.CourseID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "course purchased successfully"})
}

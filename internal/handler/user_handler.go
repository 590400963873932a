package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnhub/learnhub-backend/internal/middleware"
	"github.com/learnhub/learnhub-backend/internal/model"
	"github.com/learnhub/learnhub-backend/internal/response"
	"github.com/learnhub/learnhub-backend/internal/service"
	"github.com/learnhub/learnhub-backend/internal/validator"
)

// UserHandler handles student signup/signin and the purchase listing.
type UserHandler struct {
	accounts  *service.AccountService
	purchases *service.PurchaseService
}

func NewUserHandler(accounts *service.AccountService, purchases *service.PurchaseService) *UserHandler {
	return &UserHandler{accounts: accounts, purchases: purchases}
}

// Signup godoc
// POST /user/signup
func (h *UserHandler) Signup(c *gin.Context) {
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
// POST /user/signin
// Unknown email and wrong password produce the same 403.
func (h *UserHandler) Signin(c *gin.Context) {
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

// ListPurchases godoc
// GET /user/purchases
func (h *UserHandler) ListPurchases(c *gin.Context) {
	userID := middleware.AccountID(c)

	purchases, courses, err := h.purchases.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if purchases == nil {
		purchases = []model.Purchase{}
	}
	if courses == nil {
		courses = []model.Course{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":    "purchased courses list",
		"purchases":  purchases,
		"courseData": courses,
	})
}

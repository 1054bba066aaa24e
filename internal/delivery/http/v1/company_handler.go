package v1

import (
	"net/http"

	"go-jobmatch-backend/internal/delivery/http/middleware"
	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(public, protected *gin.RouterGroup, companyUC domain.CompanyUsecase, loginLimiter middleware.RateLimitConfig) {
	handler := &CompanyHandler{companyUC: companyUC}

	companies := public.Group("/companies")
	{
		limited := companies.Group("")
		limited.Use(middleware.RateLimit(loginLimiter))
		limited.POST("/register", handler.Register)
		limited.POST("/login", handler.Login)
	}

	own := protected.Group("/companies")
	{
		own.GET("/profile", handler.GetProfile)
		own.PUT("/profile", handler.UpdateProfile)
	}
}

// Register godoc
// @Summary      Register a company account
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        input  body  domain.RegisterCompanyInput  true  "registration data"
// @Success      201  {object}  domain.AuthResult
// @Failure      400  {object}  response.ErrorBody
// @Router       /companies/register [post]
func (h *CompanyHandler) Register(c *gin.Context) {
	var input domain.RegisterCompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Name, email and password are required"))
		return
	}

	result, err := h.companyUC.Register(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, result)
}

// Login godoc
// @Summary      Company login
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        input  body  domain.LoginCompanyInput  true  "credentials"
// @Success      200  {object}  domain.AuthResult
// @Failure      400  {object}  response.ErrorBody
// @Router       /companies/login [post]
func (h *CompanyHandler) Login(c *gin.Context) {
	var input domain.LoginCompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid email or password"))
		return
	}

	result, err := h.companyUC.Login(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// GetProfile godoc
// @Summary      Get own company profile
// @Description  The stored password hash is never serialized
// @Tags         companies
// @Produce      json
// @Success      200  {object}  domain.Company
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /companies/profile [get]
// @Security     BearerAuth
func (h *CompanyHandler) GetProfile(c *gin.Context) {
	company, err := h.companyUC.GetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, company)
}

// UpdateProfile godoc
// @Summary      Update own company profile
// @Description  Partial update; email and password cannot be changed here
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        patch  body  domain.CompanyPatch  true  "fields to update"
// @Success      200  {object}  domain.Company
// @Failure      400  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Router       /companies/profile [put]
// @Security     BearerAuth
func (h *CompanyHandler) UpdateProfile(c *gin.Context) {
	var patch domain.CompanyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	company, err := h.companyUC.UpdateProfile(c.Request.Context(), &patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, company)
}

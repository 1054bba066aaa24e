package v1

import (
	"net/http"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	searchUC    domain.CandidateSearchUsecase
}

func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase, searchUC domain.CandidateSearchUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC, searchUC: searchUC}

	candidates := protected.Group("/candidates")
	{
		// Own profile (candidate token)
		candidates.GET("/profile", handler.GetProfile)
		candidates.PUT("/profile", handler.UpdateProfile)

		// Browsing (company token); /profile above wins over /:id
		candidates.GET("", handler.Search)
		candidates.GET("/:id", handler.GetCandidateByID)
	}
}

// GetProfile godoc
// @Summary      Get own candidate profile
// @Description  Full document of the authenticated candidate
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  domain.Candidate
// @Failure      401  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /candidates/profile [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	candidate, err := h.candidateUC.GetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, candidate)
}

// UpdateProfile godoc
// @Summary      Update own candidate profile
// @Description  Partial update; omitted fields are left untouched
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        patch  body  domain.CandidatePatch  true  "fields to update"
// @Success      200  {object}  domain.Candidate
// @Failure      400  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Router       /candidates/profile [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateProfile(c *gin.Context) {
	var patch domain.CandidatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	candidate, err := h.candidateUC.UpdateProfile(c.Request.Context(), &patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, candidate)
}

// Search godoc
// @Summary      Search candidates
// @Description  Filtered candidate list for companies; returns summaries only
// @Tags         candidates
// @Produce      json
// @Param        skills    query  string  false  "comma-separated skills (exact match, any of)"
// @Param        location  query  string  false  "location substring (case-insensitive)"
// @Param        role      query  string  false  "comma-separated preferred roles (exact match, any of)"
// @Success      200  {array}  domain.CandidateSummary
// @Failure      403  {object}  response.ErrorBody
// @Router       /candidates [get]
// @Security     BearerAuth
func (h *CandidateHandler) Search(c *gin.Context) {
	summaries, err := h.searchUC.Search(
		c.Request.Context(),
		c.Query("skills"),
		c.Query("location"),
		c.Query("role"),
	)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, summaries)
}

// GetCandidateByID godoc
// @Summary      Get candidate details
// @Description  Full candidate document for a company viewing a specific profile
// @Tags         candidates
// @Produce      json
// @Param        id  path  string  true  "candidate id"
// @Success      200  {object}  domain.Candidate
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /candidates/{id} [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetCandidateByID(c *gin.Context) {
	candidate, err := h.searchUC.GetCandidateByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, candidate)
}

package v1

import (
	"encoding/json"
	"net/http"
	"net/url"

	"go-jobmatch-backend/config"
	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC      domain.AuthUsecase
	frontendURL string
}

func NewAuthHandler(r *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config) {
	handler := &AuthHandler{authUC: authUC, frontendURL: cfg.FrontendURL}

	auth := r.Group("/auth")
	{
		auth.GET("/linkedin", handler.GetAuthorizationURL)
		auth.GET("/linkedin/callback", handler.HandleCallback)
	}
}

// GetAuthorizationURL godoc
// @Summary      Get LinkedIn authorization URL
// @Description  Returns the URL the client redirects the candidate to for LinkedIn login
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/linkedin [get]
func (h *AuthHandler) GetAuthorizationURL(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"url": h.authUC.AuthorizationURL()})
}

// HandleCallback godoc
// @Summary      LinkedIn OAuth callback
// @Description  Exchanges the authorization code, upserts the candidate and redirects to the frontend with a session token
// @Tags         auth
// @Param        code  query  string  true  "authorization code"
// @Success      302
// @Router       /auth/linkedin/callback [get]
func (h *AuthHandler) HandleCallback(c *gin.Context) {
	code := c.Query("code")

	result, err := h.authUC.HandleCallback(c.Request.Context(), code)
	if err != nil {
		// Federation failures are terminal: the user lands back on the
		// frontend with a generic error, nothing is retried.
		logger.Log.Error("LinkedIn callback failed", "error", err)
		c.Redirect(http.StatusFound, h.frontendURL+"?error="+url.QueryEscape("Authentication failed"))
		return
	}

	userData, err := json.Marshal(result.Candidate)
	if err != nil {
		c.Redirect(http.StatusFound, h.frontendURL+"?error="+url.QueryEscape("Authentication failed"))
		return
	}

	redirect := h.frontendURL + "/auth/callback?token=" + url.QueryEscape(result.Token) +
		"&userData=" + url.QueryEscape(string(userData))
	c.Redirect(http.StatusFound, redirect)
}

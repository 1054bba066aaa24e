package middleware

import (
	"errors"
	"net/http"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code == http.StatusInternalServerError {
				// The wrapped cause stays server-side; clients get the
				// generic message only.
				logger.Log.Error("Internal server error",
					"error", appErr.Err,
					"path", c.Request.URL.Path,
					"request_id", c.GetString("RequestID"),
				)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("Unhandled error", "error", err, "path", c.Request.URL.Path)
		response.Error(c, http.StatusInternalServerError, "Server error")
	}
}

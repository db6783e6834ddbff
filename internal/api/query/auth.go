package query

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"satfab.io/satfab/ent/user"
	"satfab.io/satfab/internal/api/middleware"
	apperrors "satfab.io/satfab/internal/pkg/errors"
	"satfab.io/satfab/internal/pkg/logger"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
	Role      string `json:"role"`
}

// Login handles POST /api/v1/auth/login. Failed lookups and bad passwords
// return the same INVALID_CREDENTIALS error so usernames cannot be enumerated.
func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "username and password are required"))
		return
	}

	u, err := s.entClient.User.Query().
		Where(user.Username(req.Username), user.Enabled(true)).
		Only(c.Request.Context())
	if err != nil {
		c.Error(apperrors.Unauthorized(apperrors.CodeInvalidCreds, "invalid username or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		c.Error(apperrors.Unauthorized(apperrors.CodeInvalidCreds, "invalid username or password"))
		return
	}

	token, expiresAt, err := middleware.GenerateToken(s.jwtConfig, u.Username, string(u.Role))
	if err != nil {
		logger.Error("token generation failed", zap.String("username", u.Username), zap.Error(err))
		c.Error(apperrors.Internal(apperrors.CodeInternalError, "could not issue token"))
		return
	}

	if err := s.entClient.User.UpdateOne(u).SetLastLoginAt(time.Now()).Exec(c.Request.Context()); err != nil {
		// Login still succeeds; the timestamp is informational.
		logger.Warn("last_login_at update failed", zap.String("username", u.Username), zap.Error(err))
	}

	c.JSON(http.StatusOK, loginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		Role:      string(u.Role),
	})
}

// Me handles GET /api/v1/auth/me and echoes the authenticated identity.
func (s *Server) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"username": middleware.GetUsername(c.Request.Context()),
		"role":     middleware.GetRole(c.Request.Context()),
	})
}

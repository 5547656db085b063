package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ctxStaffSubjectKey = "staff_subject"

var (
	ErrUnexpectedSigningMethod = errs.New("unexpected token signing method")
	ErrInsufficientRole        = errs.New("token role is not staff")
)

// AuthMiddleware guards the staff-only booking mutations. Tokens are minted
// by the surrounding CMS; this service only verifies the HMAC signature and
// the role claim.
type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware(cfg config.AuthConfig) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(cfg.StaffSecret)}
}

func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		subject, err := m.validateToken(token)
		if err != nil {
			slog.Warn("Staff token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxStaffSubjectKey, subject)
		c.Next()
	}
}

func (m *AuthMiddleware) validateToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedSigningMethod
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	if role, _ := claims["role"].(string); role != "staff" && role != "admin" {
		return "", ErrInsufficientRole
	}

	subject, _ := claims["sub"].(string)
	return subject, nil
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

// GetStaffSubject returns the authenticated staff subject from context.
func GetStaffSubject(c *gin.Context) (string, bool) {
	subject, exists := c.Get(ctxStaffSubjectKey)
	if !exists {
		return "", false
	}
	s, ok := subject.(string)
	return s, ok
}

package middleware

import (
	"fmt"
	"strings"

	"timetable/config"
	"timetable/internal/core"
	cErr "timetable/internal/pkg/error"
	"timetable/internal/pkg/response"
	"timetable/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// OpsAuth 營運 API 的 Bearer token 驗證（HMAC 簽章的 JWT）
type OpsAuth struct {
	trace *telemetry.Trace
	conf  *config.Configuration
}

func NewOpsAuth(trace *telemetry.Trace, conf *config.Configuration) *OpsAuth {
	return &OpsAuth{trace: trace, conf: conf}
}

func (m *OpsAuth) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanOpsAuthMiddleware))
		meta := core.TraceOpsAuthMeta{ClientIP: c.ClientIP()}

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			meta.Status = "missing_bearer"
			m.trace.ApplyTraceAttributes(span, meta)
			cause := cErr.Unauthorized("missing bearer token")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &core.Claims{}
		token, parseError := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(m.conf.Ops.JWTSecret), nil
		})
		if parseError != nil || !token.Valid {
			meta.Status = "invalid_token"
			m.trace.ApplyTraceAttributes(span, meta)
			cause := cErr.Unauthorized("invalid bearer token")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		meta.Subject = claims.Subject
		meta.Status = "ok"
		m.trace.ApplyTraceAttributes(span, meta)
		c.Set("opsSubject", claims.Subject)
		end(nil)
		c.Next()
	}
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const ctxOperatorID = "operatorId"

var (
	errNoCredentials = errors.New("missing Authorization header")
	errBadScheme     = errors.New("invalid Authorization header format")
)

// operatorMiddleware authenticates the request and stores the operator id
// in the gin context.
func (h *Handler) operatorMiddleware(c *gin.Context) {
	token, err := bearerToken(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	operatorID, err := h.services.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(ctxOperatorID, operatorID)
	c.Next()
}

// bearerToken reads "Authorization: Bearer <jwt>". Browsers cannot set
// headers on a websocket upgrade, so ?token= is accepted when the header
// is absent.
func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if q := strings.TrimSpace(c.Query("token")); q != "" {
			return q, nil
		}
		return "", errNoCredentials
	}

	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", errBadScheme
	}
	return token, nil
}

// operatorID returns the authenticated operator, or 0 outside the API group.
func operatorID(c *gin.Context) int {
	return c.GetInt(ctxOperatorID)
}

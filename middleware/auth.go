package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session key under which the logged-in account id is stored.
const SessionAccountKey = "AccountID"

// AuthRequired guards the REST routes that need a logged-in account.
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get(SessionAccountKey) == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Next()
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

const ContextAuthorization = "calendarAuth"

// Authorization hands the calendar owner's token source to every request.
func Authorization(ts oauth2.TokenSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextAuthorization, ts)
		c.Next()
	}
}

// AuthFrom returns the token source set by Authorization, or nil.
func AuthFrom(c *gin.Context) oauth2.TokenSource {
	v, ok := c.Get(ContextAuthorization)
	if !ok {
		return nil
	}
	ts, _ := v.(oauth2.TokenSource)
	return ts
}

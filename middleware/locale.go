package middleware

import (
	"admin-backend/utils"

	"github.com/gin-gonic/gin"
)

const localeKey = "locale"

// Localize stores the negotiated message locale ("th" or "en") on the context.
func Localize(defaultLocale string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(localeKey, utils.MatchLocale(c.GetHeader("Accept-Language"), defaultLocale))
		c.Next()
	}
}

// Locale returns the request locale, "th" when Localize did not run.
func Locale(c *gin.Context) string {
	if loc := c.GetString(localeKey); loc != "" {
		return loc
	}
	return "th"
}

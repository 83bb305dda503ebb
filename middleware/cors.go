package middleware

import (
	"net/http"
	"os"
	"strings"

	"reelkit-api/pkg/appenv"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware configures CORS headers.
//   - Outside production any origin is allowed, matching the frontend dev
//     workflow.
//   - In production the incoming Origin is reflected only if it appears in
//     the comma-separated ALLOWED_ORIGINS env var.
func CORSMiddleware() gin.HandlerFunc {
	isProd := appenv.IsProduction() && gin.Mode() == gin.ReleaseMode

	allowed := make(map[string]struct{})
	for _, o := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if origin := strings.TrimSpace(o); origin != "" {
			allowed[origin] = struct{}{}
		}
	}

	const methods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	const headers = "Origin, Content-Type, Authorization"

	return func(c *gin.Context) {
		c.Header("Vary", "Origin")

		if !isProd {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", methods)
			c.Header("Access-Control-Allow-Headers", headers)
		} else if origin := c.Request.Header.Get("Origin"); origin != "" {
			if _, ok := allowed[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Methods", methods)
				c.Header("Access-Control-Allow-Headers", headers)
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS configura CORS para a aplicação a partir da lista de origens
// separadas por vírgula ("*" libera todas)
func CORS(allowedOrigins string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowHeaders = append(config.AllowHeaders, "Authorization")

	if allowedOrigins == "" || allowedOrigins == "*" {
		config.AllowAllOrigins = true
		return cors.New(config)
	}

	origins := strings.Split(allowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	config.AllowOrigins = origins
	config.AllowCredentials = true

	return cors.New(config)
}

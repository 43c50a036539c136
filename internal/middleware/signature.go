package middleware

import (
	"bytes"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"group-bot/internal/webhook"
)

const rawBodyContextKey = "raw_body"

// VerifySignature reads the raw request body, checks its HMAC signature and
// stores the body for the handler. Unsigned or mis-signed requests are
// rejected with 401 before any business logic runs.
func VerifySignature(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusInternalServerError, "Error")
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		signature := c.GetHeader(webhook.HeaderName)
		if !webhook.VerifySignature(body, signature, secret) {
			log.Printf("invalid webhook signature remote=%s", c.ClientIP())
			c.String(http.StatusUnauthorized, "Invalid signature")
			c.Abort()
			return
		}

		c.Set(rawBodyContextKey, body)
		c.Next()
	}
}

// RawBody returns the request body captured by VerifySignature.
func RawBody(c *gin.Context) []byte {
	if val, ok := c.Get(rawBodyContextKey); ok {
		if body, ok := val.([]byte); ok {
			return body
		}
	}
	return nil
}

package middleware

import (
	"crypto/subtle"

	"github.com/admitly/counselor/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
)

// WebhookSecretHeader carries the shared secret the voice service signs
// its requests with.
const WebhookSecretHeader = "X-Vapi-Secret"

// WebhookSecret rejects requests whose secret header does not match. An
// empty secret disables the check.
func WebhookSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}
		got := c.GetHeader(WebhookSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			HandleAPIError(c, apperrors.ErrWebhookUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}

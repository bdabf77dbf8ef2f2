package auth

import (
	"context"
	"net/http"
	"strings"

	firebaseAuth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const tokenKey = "token"

// TokenVerifier checks a Firebase ID token. *firebaseAuth.Client implements it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseAuth.Token, error)
}

func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		idToken, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(idToken) == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is not a bearer token"})
			c.Abort()
			return
		}

		token, err := verifier.VerifyIDToken(c, idToken)
		if err != nil {
			log.Debug().Err(err).Msg("Rejected ID token")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid ID token"})
			c.Abort()
			return
		}

		// Attach token to the context
		c.Set(tokenKey, token)

		c.Next()
	}
}

// RequireClaim only lets requests through whose token carries the custom
// claim set to true. It must run after AuthMiddleware.
func RequireClaim(claim string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := TokenFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			c.Abort()
			return
		}

		if granted, _ := token.Claims[claim].(bool); !granted {
			log.Info().Str("uid", token.UID).Str("claim", claim).Msg("Missing admin claim")
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// TokenFromContext returns the verified token attached by AuthMiddleware.
func TokenFromContext(c *gin.Context) (*firebaseAuth.Token, bool) {
	v, ok := c.Get(tokenKey)
	if !ok {
		return nil, false
	}
	token, ok := v.(*firebaseAuth.Token)
	return token, ok && token != nil
}

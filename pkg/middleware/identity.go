package middleware

import (
	"github.com/gin-gonic/gin"
)

const (
	UserIDHeader = "X-User-ID"
	TierHeader   = "X-Subscription-Tier"

	userIDKey = "earnhub.user_id"
	tierKey   = "earnhub.tier"
)

// Identity resolves the acting user and subscription tier from request
// headers. The dashboard is single-user; absent headers fall back to the
// configured defaults rather than rejecting the request.
func Identity(defaultUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			userID = defaultUserID
		}

		tier := c.GetHeader(TierHeader)
		if tier == "" {
			tier = "free"
		}

		c.Set(userIDKey, userID)
		c.Set(tierKey, tier)
		c.Next()
	}
}

// UserID returns the user resolved by Identity.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// TierLabel returns the raw subscription tier label resolved by Identity.
// Validation against the closed tier set is the entitlement resolver's job.
func TierLabel(c *gin.Context) string {
	return c.GetString(tierKey)
}

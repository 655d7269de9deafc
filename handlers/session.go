package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "session_id"

// sessionID returns the shopper's session id, minting a cookie on first
// touch. Cart and wishlist state is keyed by this id for the process
// lifetime; no login is needed for shopping.
func sessionID(c *gin.Context) string {
	if sid, err := c.Cookie(sessionCookie); err == nil && sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.SetCookie(sessionCookie, sid, 30*24*3600, "/", "", false, true)
	return sid
}

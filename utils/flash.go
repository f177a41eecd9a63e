package utils

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

const flashCookie = "catalog_flash"

// SetFlash stores a one-shot informational message shown on the next
// rendered listing. The value is query-escaped because cookie values
// cannot carry spaces.
func SetFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, url.QueryEscape(msg), 60, "/", "", false, true)
}

// PopFlash returns the pending flash message and clears it.
// Returns the empty string when no message is pending.
func PopFlash(c *gin.Context) string {
	val, err := c.Cookie(flashCookie)
	if err != nil || val == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	msg, err := url.QueryUnescape(val)
	if err != nil {
		return ""
	}
	return msg
}

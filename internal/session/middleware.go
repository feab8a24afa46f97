// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CookieName is the session cookie.
const CookieName = "ytdash_session"

const contextKey = "session_id"

// Middleware attaches a session to every request, issuing a new cookie when
// the browser has none or presents one the store no longer knows.
func Middleware(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(CookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = ""
		}
		if id != "" {
			if _, ok := store.Get(id); !ok {
				id = ""
			}
		}
		if id == "" {
			id = store.New()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieName, id, 0, "/", "", false, true)
		}
		c.Set(contextKey, id)
		c.Next()
	}
}

// ID returns the session ID Middleware attached to c, or "".
func ID(c *gin.Context) string {
	return c.GetString(contextKey)
}

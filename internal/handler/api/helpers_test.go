//go:build unit

package api_test

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var testUserID = uuid.MustParse("7b1f3c2a-5d4e-4f6a-8b9c-0d1e2f3a4b5c")

// asUser stands in for RequireAuth: any request with an Authorization header is testUserID.
func asUser(h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", testUserID)
		}
		h(c)
	}
}

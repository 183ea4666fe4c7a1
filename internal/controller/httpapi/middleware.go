package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/device-management-toolkit/storefront/internal/jsonrpc"
)

// CorrelationID tags each request with an id, taken from the caller when
// present, echoes it back and hands it to outbound ERP calls.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := c.GetHeader(jsonrpc.HeaderCorrelationID)
		if cid == "" {
			cid = uuid.NewString()
		}

		c.Header(jsonrpc.HeaderCorrelationID, cid)
		c.Request = c.Request.WithContext(jsonrpc.WithCorrelationID(c.Request.Context(), cid))

		c.Next()
	}
}

package ctxmanage

import (
	"github.com/gin-gonic/gin"
)

// TraceIdKey is the gin context key under which the per-request trace id is stored.
const TraceIdKey = "traceId"

// GetTraceIdOfRequest returns the trace id assigned to the request by the
// logging middleware. Returns "unknown" if the middleware did not run.
func GetTraceIdOfRequest(c *gin.Context) string {
	if v, ok := c.Get(TraceIdKey); ok {
		if traceId, ok := v.(string); ok {
			return traceId
		}
	}
	return "unknown"
}

// SetTraceIdOfRequest stores the trace id in the gin context for the
// lifetime of the request.
func SetTraceIdOfRequest(c *gin.Context, traceId string) {
	c.Set(TraceIdKey, traceId)
}

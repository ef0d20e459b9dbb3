package controller

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// logSkipped records transactions dropped at the request boundary. The
// records are also reported to the caller in the response body.
func logSkipped(ctx *gin.Context, operation string, skipped []string) {
	if len(skipped) == 0 {
		return
	}
	slog.WarnContext(ctx.Request.Context(), "Skipped transactions with unparseable dates",
		"operation", operation,
		"count", len(skipped),
		"details", skipped,
	)
}

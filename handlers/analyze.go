package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"risk-analysis/client"
	"risk-analysis/session"
)

// AnalyzeAPI exposes the analyze action as JSON: the service's success
// body is passed through as received, failures become {"error": ...}.
func AnalyzeAPI(c *gin.Context) {
	ticker := c.Param("ticker")
	if strings.TrimSpace(ticker) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": session.ValidationMessage})
		return
	}

	result, err := analyzer.Analyze(c.Request.Context(), ticker)
	if err != nil {
		message := client.FallbackMessage
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			message = apiErr.Message
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": message})
		return
	}

	c.Data(http.StatusOK, "application/json", result.Raw)
}

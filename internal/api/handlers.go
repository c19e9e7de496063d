package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/osintlab/namesake/internal/model"
)

// maxQualifiers bounds the qualifier list accepted at the boundary.
const maxQualifiers = 8

func (s *Server) healthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// intelligenceHandler runs the broad intelligence pipeline.
func (s *Server) intelligenceHandler(c *gin.Context) {
	var in model.IntelligenceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(in.Name) == "" && strings.TrimSpace(in.LinkedInURL) == "" {
		badRequest(c, "At least one of name or linkedin_url is required")
		return
	}
	if len(in.Qualifiers) > maxQualifiers {
		badRequest(c, fmt.Sprintf("At most %d qualifiers are allowed", maxQualifiers))
		return
	}
	in.MaxSources = clampMaxSources(in.MaxSources)

	report, err := s.resolver.Intelligence(c.Request.Context(), in)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// resolveHandler runs attribute-qualified resolution.
func (s *Server) resolveHandler(c *gin.Context) {
	var in model.ResolveInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(in.Name) == "" && strings.TrimSpace(in.LinkedInURL) == "" {
		badRequest(c, "At least one of name or linkedin_url is required")
		return
	}
	in.MaxSources = clampMaxSources(in.MaxSources)

	report, err := s.resolver.Resolve(c.Request.Context(), in)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// clampMaxSources bounds the caller's source budget at the API boundary;
// zero passes through so the pipeline applies its default.
func clampMaxSources(n int) int {
	switch {
	case n == 0:
		return 0
	case n < 3:
		return 3
	case n > 25:
		return 25
	}
	return n
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":      message,
		"request_id": c.GetString(requestIDKey),
	})
}

func internalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":      err.Error(),
		"request_id": c.GetString(requestIDKey),
	})
}

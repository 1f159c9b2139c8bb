package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProblemContentType is the media type of error bodies.
const ProblemContentType = "application/problem+json"

// Problem is an RFC 9457 problem details body.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
}

// writeProblem aborts the request with a problem body for status.
func writeProblem(c *gin.Context, status int, detail string) {
	c.Header("Content-Type", ProblemContentType)
	c.AbortWithStatusJSON(status, Problem{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: c.Request.URL.Path,
	})
}

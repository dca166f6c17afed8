package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/custodia-labs/blogsearch/internal/adapters/driving/render"
)

// SearchResponse is the body of GET /api/search.
type SearchResponse struct {
	Query string `json:"query"`
	render.List
}

func (s *Server) handleSearch(c *gin.Context) {
	query := c.Query("q")

	resp := s.Session().Search(c.Request.Context(), query)

	c.JSON(http.StatusOK, SearchResponse{
		Query: query,
		List:  render.HTMLList(resp),
	})
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.Session().Stats())
}

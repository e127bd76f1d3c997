package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bildungswerk/edumonitor/internal/storage"
)

type Server struct {
	store *storage.Store
}

func NewServer(store *storage.Store) *Server {
	return &Server{store: store}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/news", s.listNews)
		v1.GET("/stats", s.stats)
		v1.GET("/search", s.search)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listNews(c *gin.Context) {
	days := intQuery(c, "days", 7)
	limit := intQuery(c, "limit", 20)
	category := c.Query("category")

	items, err := s.store.ItemsSince(days, category, limit)
	if err != nil {
		internalError(c)
		return
	}
	ok(c, items)
}

func (s *Server) stats(c *gin.Context) {
	days := intQuery(c, "days", 7)

	stats, err := s.store.StatsSince(days)
	if err != nil {
		internalError(c)
		return
	}
	ok(c, stats)
}

func (s *Server) search(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "bad_request",
			"message": "query parameter q is required",
		})
		return
	}
	limit := intQuery(c, "limit", 10)

	items, err := s.store.Search(term, limit)
	if err != nil {
		internalError(c)
		return
	}
	ok(c, items)
}

func intQuery(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    data,
	})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"code":    "internal_error",
		"message": "internal server error",
	})
}

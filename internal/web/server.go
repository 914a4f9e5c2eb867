// Package web exposes the store, classifier, and suggestion producer over an
// HTTP JSON API.
package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sandeepkv93/taskflowd/internal/model"
	"github.com/sandeepkv93/taskflowd/internal/store"
)

// Suggester is the slice of the AI producer the web layer needs. Both
// operations absorb their own failures and cannot return errors.
type Suggester interface {
	GenerateTaskSuggestion(ctx context.Context, title, description string, entries []model.ContextEntry) model.Suggestion
	AnalyzeContext(ctx context.Context, content string) string
}

type Server struct {
	store  *store.Store
	ai     Suggester
	router *gin.Engine
}

func New(st *store.Store, suggester Suggester) *Server {
	router := gin.Default()

	s := &Server{
		store:  st,
		ai:     suggester,
		router: router,
	}

	api := router.Group("/api")
	{
		api.GET("/ping", s.handlePing)

		api.GET("/tasks", s.handleListTasks)
		api.GET("/tasks/:id", s.handleGetTask)
		api.POST("/tasks", s.handleCreateTask)
		api.PUT("/tasks/:id", s.handleUpdateTask)
		api.DELETE("/tasks/:id", s.handleDeleteTask)

		api.GET("/categories", s.handleListCategories)
		api.POST("/categories", s.handleCreateCategory)

		api.GET("/context", s.handleListContext)
		api.POST("/context", s.handleCreateContext)
		api.DELETE("/context/:id", s.handleDeleteContext)

		api.POST("/ai-suggestions", s.handleAISuggestions)

		api.GET("/notifications", s.handleNotifications)
	}

	return s
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

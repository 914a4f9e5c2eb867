package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sandeepkv93/taskflowd/internal/deadline"
	"github.com/sandeepkv93/taskflowd/internal/model"
	"github.com/sandeepkv93/taskflowd/internal/store"
)

func (s *Server) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "taskflowd API is running!"})
}

func (s *Server) handleListTasks(c *gin.Context) {
	filter := store.Filter{
		Status:   model.Status(c.Query("status")),
		Category: c.Query("category"),
		Priority: model.PriorityBand(c.Query("priority")),
	}
	c.JSON(http.StatusOK, gin.H{"tasks": s.store.FilterTasks(filter)})
}

func (s *Server) handleGetTask(c *gin.Context) {
	task, err := s.store.GetTask(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

type createTaskRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	PriorityScore int     `json:"priority_score"`
	Deadline      *string `json:"deadline"`
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Title == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and description are required"})
		return
	}

	var parsedDeadline *time.Time
	if req.Deadline != nil && *req.Deadline != "" {
		t, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Deadline must be an RFC 3339 timestamp"})
			return
		}
		parsedDeadline = &t
	}

	task, err := s.store.CreateTask(store.TaskInput{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		PriorityScore: req.PriorityScore,
		Deadline:      parsedDeadline,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": task})
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	var update model.TaskUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	task, err := s.store.UpdateTask(c.Param("id"), update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	if !s.store.DeleteTask(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func (s *Server) handleListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": s.store.ListCategories()})
}

type createCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (s *Server) handleCreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	category, err := s.store.CreateCategory(req.Name, req.Color)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

func (s *Server) handleListContext(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	c.JSON(http.StatusOK, gin.H{"contextEntries": s.store.RecentContextEntries(limit)})
}

type createContextRequest struct {
	Content    string `json:"content"`
	SourceType string `json:"source_type"`
}

func (s *Server) handleCreateContext(c *gin.Context) {
	var req createContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Content == "" || req.SourceType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content and source_type are required"})
		return
	}

	// Analysis runs before persistence; its failures degrade to a
	// placeholder rather than failing the request.
	insights := s.ai.AnalyzeContext(c.Request.Context(), req.Content)

	entry, err := s.store.CreateContextEntry(store.ContextInput{
		Content:           req.Content,
		SourceType:        model.SourceType(req.SourceType),
		ProcessedInsights: insights,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"contextEntry": entry})
}

func (s *Server) handleDeleteContext(c *gin.Context) {
	if !s.store.DeleteContextEntry(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Context entry not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Context entry deleted successfully"})
}

type suggestionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Server) handleAISuggestions(c *gin.Context) {
	var req suggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Title == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and description are required"})
		return
	}

	entries := s.store.RecentContextEntries(5)
	suggestion := s.ai.GenerateTaskSuggestion(c.Request.Context(), req.Title, req.Description, entries)
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestion})
}

type notificationResponse struct {
	Task   model.Task         `json:"task"`
	Bucket deadline.Bucket    `json:"bucket"`
	Glyph  deadline.GlyphKind `json:"glyph"`
	Label  string             `json:"label"`
}

func (s *Server) handleNotifications(c *gin.Context) {
	notifications := deadline.Notifications(s.store.ListTasks(), time.Now().UTC())
	out := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, notificationResponse{Task: n.Task, Bucket: n.Bucket, Glyph: n.Glyph, Label: n.Label})
	}
	c.JSON(http.StatusOK, gin.H{"notifications": out})
}

func (s *Server) writeError(c *gin.Context, err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

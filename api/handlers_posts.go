package api

import (
	"encoding/json"
	"net/http"
	"time"

	"stock-sentiment-api/database"
	models "stock-sentiment-api/database/models_pkg"
)

// createPostRequest is a dashboard post submission
type createPostRequest struct {
	ID      string                  `json:"id"`
	Title   string                  `json:"title"`
	Content string                  `json:"content"`
	Stocks  []database.StockMention `json:"stocks"`
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.ID == "" || req.Title == "" {
		respondWithError(w, http.StatusBadRequest, "id and title are required", nil)
		return
	}

	post := models.DashboardPost{
		ID:        req.ID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.postRepo.SavePost(&post, req.Stocks); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to store post", err)
		return
	}

	writeJSON(w, map[string]interface{}{
		"message": "Post added",
		"post_id": post.ID,
	})
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.postRepo.ListPosts()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list posts", err)
		return
	}
	if posts == nil {
		posts = []models.DashboardPost{}
	}

	writeJSON(w, posts)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	dbStatus := "ok"
	if err := s.db.Ping(); err != nil {
		status = "degraded"
		dbStatus = err.Error()
	}

	writeJSON(w, map[string]interface{}{
		"status":   status,
		"database": dbStatus,
	})
}

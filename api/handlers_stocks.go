package api

import (
	"net/http"
	"strings"

	models "stock-sentiment-api/database/models_pkg"
)

// stockResponse is the combined quote + pinned posts payload for a ticker
type stockResponse struct {
	Ticker        string                 `json:"ticker"`
	Name          string                 `json:"name,omitempty"`
	Price         float64                `json:"price"`
	Change        float64                `json:"change"`
	ChangePercent string                 `json:"change_percent"`
	LastUpdated   string                 `json:"last_updated"`
	Posts         []models.DashboardPost `json:"posts"`
}

func (s *Server) handleGetStock(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(r.PathValue("ticker"))

	result := s.priceSvc.GetPrice(r.Context(), ticker)
	if result.Degraded {
		markDegraded(w, result.Reason)
	}

	resp := stockResponse{
		Ticker:        result.Quote.Ticker,
		Price:         result.Quote.Price,
		Change:        result.Quote.Change,
		ChangePercent: result.Quote.ChangePercent,
		LastUpdated:   result.Quote.LastUpdated,
		Posts:         []models.DashboardPost{},
	}

	if stock, err := s.postRepo.GetStock(ticker); err == nil && stock != nil {
		resp.Name = stock.Name
	}
	if posts, err := s.postRepo.GetPostsForStock(ticker); err == nil && posts != nil {
		resp.Posts = posts
	}

	writeJSON(w, resp)
}

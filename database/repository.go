package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	models "stock-sentiment-api/database/models_pkg"
)

// PostRepository handles persistence for dashboard-pinned posts and the
// stocks they mention
type PostRepository struct {
	db *Database
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *Database) *PostRepository {
	return &PostRepository{db: db}
}

// InitSchema performs auto-migration for the dashboard tables
func (r *PostRepository) InitSchema() error {
	err := r.db.db.AutoMigrate(
		&models.DashboardPost{},
		&models.Stock{},
		&models.StockPost{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// StockMention is one ticker a pinned post references
type StockMention struct {
	Symbol string `json:"symbol"`
	Score  int    `json:"score"`
}

// SavePost upserts a pinned post and links it to every mentioned stock.
// Stocks are created on first mention; re-saving the same post id overwrites
// the post and refreshes its links.
func (r *PostRepository) SavePost(post *models.DashboardPost, mentions []StockMention) error {
	if err := r.db.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(post).Error; err != nil {
		return fmt.Errorf("SavePost: %w", err)
	}

	for _, m := range mentions {
		stock := models.Stock{Symbol: m.Symbol}
		if err := r.db.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&stock).Error; err != nil {
			return fmt.Errorf("SavePost: upsert stock %s: %w", m.Symbol, err)
		}

		link := models.StockPost{StockSymbol: m.Symbol, PostID: post.ID, Score: m.Score}
		if err := r.db.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&link).Error; err != nil {
			return fmt.Errorf("SavePost: link %s -> %s: %w", m.Symbol, post.ID, err)
		}
	}

	return nil
}

// ListPosts returns all pinned posts, newest first
func (r *PostRepository) ListPosts() ([]models.DashboardPost, error) {
	var posts []models.DashboardPost
	if err := r.db.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("ListPosts: %w", err)
	}
	return posts, nil
}

// GetStock returns a tracked stock, or nil when the symbol is unknown
func (r *PostRepository) GetStock(symbol string) (*models.Stock, error) {
	var stock models.Stock
	err := r.db.db.Where("symbol = ?", symbol).First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("GetStock: %w", err)
	}
	return &stock, nil
}

// GetPostsForStock returns the pinned posts linked to a stock, newest first
func (r *PostRepository) GetPostsForStock(symbol string) ([]models.DashboardPost, error) {
	var posts []models.DashboardPost
	err := r.db.db.
		Joins("JOIN stock_posts ON stock_posts.post_id = dashboard_posts.id").
		Where("stock_posts.stock_symbol = ?", symbol).
		Order("dashboard_posts.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("GetPostsForStock: %w", err)
	}
	return posts, nil
}

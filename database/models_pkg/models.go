package models

import "time"

// DashboardPost is a social post pinned to the dashboard.
// Posts arrive with their upstream id (e.g. the Reddit submission id) and are
// never mutated after creation; re-submitting the same id is an upsert.
type DashboardPost struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for DashboardPost
func (DashboardPost) TableName() string {
	return "dashboard_posts"
}

// Stock is a tracked security that pinned posts can reference
type Stock struct {
	Symbol string `gorm:"primaryKey;size:10" json:"symbol"`
	Name   string `gorm:"size:100" json:"name"`
}

// TableName specifies the table name for Stock
func (Stock) TableName() string {
	return "stocks"
}

// StockPost links a pinned post to a stock, with the relevance score the
// submitter attached to the mention.
type StockPost struct {
	StockSymbol string `gorm:"primaryKey;size:10" json:"stock_symbol"`
	PostID      string `gorm:"primaryKey;size:32" json:"post_id"`
	Score       int    `json:"score"`
}

// TableName specifies the table name for StockPost
func (StockPost) TableName() string {
	return "stock_posts"
}

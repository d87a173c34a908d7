package sentiment

import (
	"fmt"
	"hash/fnv"

	"stock-sentiment-api/reddit"
)

// deletedAuthor is the sentinel shown when Reddit no longer exposes the author
const deletedAuthor = "[deleted]"

// avatarBaseURL is Reddit's default avatar set; the index is derived from the
// author name so a given author always gets the same avatar.
const avatarBaseURL = "https://www.redditstatic.com/avatars/defaults/v2/avatar_default_%d.png"

// ScoredPost is a social post shaped for the dashboard feed, carrying its
// sentiment classification alongside the raw engagement numbers.
type ScoredPost struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Handle    string   `json:"handle"`
	Avatar    string   `json:"avatar"`
	Content   string   `json:"content"`
	Platform  string   `json:"platform"`
	Date      int64    `json:"date"`
	Sentiment Category `json:"sentiment"`
	Score     float64  `json:"score"`
	Likes     int      `json:"likes"`
	Comments  int      `json:"comments"`
	URL       string   `json:"url"`
	Subreddit string   `json:"subreddit"`
}

// scorePost classifies a raw Reddit post and shapes it for the feed
func (s *Service) scorePost(p reddit.Post) ScoredPost {
	author := p.Author
	if author == "" {
		author = deletedAuthor
	}

	content := p.Title
	if p.Selftext != "" {
		content = p.Title + "\n\n" + p.Selftext
	}

	score := s.classifier.Score(p.Title + " " + p.Selftext)

	return ScoredPost{
		ID:        p.ID,
		Username:  "u/" + author,
		Handle:    author,
		Avatar:    defaultAvatar(author),
		Content:   content,
		Platform:  "reddit",
		Date:      p.CreatedUTC,
		Sentiment: Categorize(score),
		Score:     score,
		Likes:     p.Ups,
		Comments:  p.NumComments,
		URL:       p.URL,
		Subreddit: p.Subreddit,
	}
}

// defaultAvatar picks one of Reddit's 8 default avatars, stable per author
func defaultAvatar(author string) string {
	h := fnv.New32a()
	h.Write([]byte(author))
	return fmt.Sprintf(avatarBaseURL, h.Sum32()%8)
}

package api

import (
	"net/http"
)

const (
	defaultPostLimit = 10
	maxPostLimit     = 50
	maxWindowDays    = 90
)

func (s *Server) handleGetSocialPosts(w http.ResponseWriter, r *http.Request) {
	ticker := r.PathValue("ticker")

	minLimit, maxLimit := 1, maxPostLimit
	limit := getIntParam(r, "limit", defaultPostLimit, &minLimit, &maxLimit)

	result := s.sentimentSvc.Posts(r.Context(), ticker, limit)
	if result.Degraded {
		markDegraded(w, result.Reason)
	}

	// The feed is a bare list for frontend compatibility
	writeJSON(w, result.Posts)
}

func (s *Server) handleGetAggregateSentiment(w http.ResponseWriter, r *http.Request) {
	ticker := r.PathValue("ticker")

	result := s.sentimentSvc.AggregateSentiment(r.Context(), ticker)
	if result.Degraded {
		markDegraded(w, result.Reason)
	}

	writeJSON(w, result.Sentiment)
}

func (s *Server) handleGetSentimentTimeseries(w http.ResponseWriter, r *http.Request) {
	ticker := r.PathValue("ticker")

	minDays, maxDays := 1, maxWindowDays
	days := getIntParam(r, "days", s.defaultWindowDays, &minDays, &maxDays)

	result := s.sentimentSvc.Timeseries(r.Context(), ticker, days)
	if result.Degraded {
		markDegraded(w, result.Reason)
	}

	writeJSON(w, result.Buckets)
}

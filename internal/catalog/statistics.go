package catalog

import (
	"context"
	"math"

	"libraryapi/internal/models"
	"libraryapi/internal/repo/booksrepo"
)

// Statistics is the aggregate view of the collection. An empty collection
// yields zero percentages, not a division error.
type Statistics struct {
	TotalBooks         int     `json:"total_books"`
	Read               int     `json:"read"`
	Unread             int     `json:"unread"`
	InProgress         int     `json:"in_progress"`
	ReadingPercentage  float64 `json:"reading_percentage"`
	ProgressPercentage float64 `json:"progress_percentage"`
	UnreadPercentage   float64 `json:"unread_percentage"`
}

func (s *Service) Statistics(ctx context.Context) (Statistics, error) {
	counts, err := booksrepo.CountByStatus(ctx, s.db)
	if err != nil {
		return Statistics{}, err
	}
	return deriveStatistics(counts), nil
}

func deriveStatistics(counts map[string]int) Statistics {
	st := Statistics{
		Read:       counts[models.StatusRead],
		Unread:     counts[models.StatusUnread],
		InProgress: counts[models.StatusInProgress],
	}
	st.TotalBooks = st.Read + st.Unread + st.InProgress
	if st.TotalBooks > 0 {
		st.ReadingPercentage = round1(100 * float64(st.Read) / float64(st.TotalBooks))
		st.ProgressPercentage = round1(100 * float64(st.InProgress) / float64(st.TotalBooks))
		st.UnreadPercentage = round1(100 * float64(st.Unread) / float64(st.TotalBooks))
	}
	return st
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

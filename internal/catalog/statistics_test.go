package catalog

import "testing"

func TestDeriveStatistics(t *testing.T) {
	st := deriveStatistics(map[string]int{"read": 2, "unread": 3, "in_progress": 1})
	if st.TotalBooks != 6 {
		t.Fatalf("total = %d", st.TotalBooks)
	}
	if st.ReadingPercentage != 33.3 {
		t.Errorf("reading = %v", st.ReadingPercentage)
	}
	if st.ProgressPercentage != 16.7 {
		t.Errorf("progress = %v", st.ProgressPercentage)
	}
	if st.UnreadPercentage != 50.0 {
		t.Errorf("unread = %v", st.UnreadPercentage)
	}
	// within rounding of one decimal per term
	sum := st.ReadingPercentage + st.ProgressPercentage + st.UnreadPercentage
	if sum < 99.7 || sum > 100.3 {
		t.Errorf("percentages sum to %v", sum)
	}
}

func TestDeriveStatistics_Empty(t *testing.T) {
	st := deriveStatistics(map[string]int{"read": 0, "unread": 0, "in_progress": 0})
	if st.TotalBooks != 0 {
		t.Fatalf("total = %d", st.TotalBooks)
	}
	if st.ReadingPercentage != 0 || st.ProgressPercentage != 0 || st.UnreadPercentage != 0 {
		t.Errorf("empty collection must yield zero percentages: %+v", st)
	}
}

func TestDeriveStatistics_AllRead(t *testing.T) {
	st := deriveStatistics(map[string]int{"read": 1, "unread": 0, "in_progress": 0})
	if st.ReadingPercentage != 100.0 {
		t.Errorf("reading = %v", st.ReadingPercentage)
	}
}

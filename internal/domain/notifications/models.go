package notifications

import "time"

type Notification struct {
	Kind      Kind      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Time      string    `json:"time"`
	Timestamp time.Time `json:"timestamp"`
	Priority  int       `json:"priority"`
	// Order is the position the item was discovered in; it breaks ties
	// between items with equal priority and timestamp.
	Order int `json:"order"`
}

type FeedSummary struct {
	Total  int          `json:"total"`
	Urgent int          `json:"urgent"`
	ByKind map[Kind]int `json:"byKind"`
}

func Summarize(feed []Notification) FeedSummary {
	summary := FeedSummary{Total: len(feed), ByKind: map[Kind]int{}}
	for _, n := range feed {
		summary.ByKind[n.Kind]++
		if n.Priority == PriorityUrgent {
			summary.Urgent++
		}
	}
	return summary
}

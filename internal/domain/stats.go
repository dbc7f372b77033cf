package domain

import (
	"bytes"
	"encoding/json"
)

// CategoryStats counts tasks within one category.
type CategoryStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// CategoryBreakdown maps category names to their counts while remembering
// the order in which each category was first seen. It serialises as a JSON
// object whose keys keep that order.
type CategoryBreakdown struct {
	order  []string
	counts map[string]*CategoryStats
}

// NewCategoryBreakdown returns an empty breakdown.
func NewCategoryBreakdown() *CategoryBreakdown {
	return &CategoryBreakdown{counts: make(map[string]*CategoryStats)}
}

// Add counts one task in category.
func (b *CategoryBreakdown) Add(category string, completed bool) {
	entry, ok := b.counts[category]
	if !ok {
		entry = &CategoryStats{}
		b.counts[category] = entry
		b.order = append(b.order, category)
	}
	entry.Total++
	if completed {
		entry.Completed++
	}
}

// Names returns category names in first-occurrence order.
func (b *CategoryBreakdown) Names() []string {
	names := make([]string, len(b.order))
	copy(names, b.order)
	return names
}

// Get returns the counts for category.
func (b *CategoryBreakdown) Get(category string) (CategoryStats, bool) {
	entry, ok := b.counts[category]
	if !ok {
		return CategoryStats{}, false
	}
	return *entry, true
}

// Len returns the number of distinct categories.
func (b *CategoryBreakdown) Len() int {
	return len(b.order)
}

// MarshalJSON writes the breakdown as an ordered JSON object.
func (b *CategoryBreakdown) MarshalJSON() ([]byte, error) {
	if b.Len() == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range b.Names() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		counts, _ := b.Get(name)
		value, err := json.Marshal(counts)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TaskStats summarises an owner's tasks.
type TaskStats struct {
	Total      int
	Completed  int
	Pending    int
	Categories *CategoryBreakdown
}

// CompletionRate returns the completed percentage, or 0 when there are no tasks.
func (s *TaskStats) CompletionRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}

type taskStatsJSON struct {
	Total          int                `json:"total"`
	Completed      int                `json:"completed"`
	Pending        int                `json:"pending"`
	CompletionRate float64            `json:"completionRate"`
	Categories     *CategoryBreakdown `json:"categories"`
}

// MarshalJSON includes the derived completion rate.
func (s *TaskStats) MarshalJSON() ([]byte, error) {
	categories := s.Categories
	if categories == nil {
		categories = NewCategoryBreakdown()
	}
	return json.Marshal(taskStatsJSON{
		Total:          s.Total,
		Completed:      s.Completed,
		Pending:        s.Pending,
		CompletionRate: s.CompletionRate(),
		Categories:     categories,
	})
}

// ComputeStats aggregates tasks from scratch. Callers pass only the tasks of
// a single owner.
func ComputeStats(tasks []*Task) *TaskStats {
	stats := &TaskStats{Categories: NewCategoryBreakdown()}
	for _, t := range tasks {
		stats.Total++
		if t.Completed {
			stats.Completed++
		}
		stats.Categories.Add(t.Category, t.Completed)
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}

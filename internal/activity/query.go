package activity

import (
	"strings"
	"time"
)

// FilterOptions are ANDed; a zero field imposes no constraint.
type FilterOptions struct {
	SearchTerm string
	Action     Action
	ActorName  string
	OnDate     *time.Time
}

// Filter returns the subsequence of records matching every provided
// predicate, preserving input order.
func Filter(records []Record, opts FilterOptions) []Record {
	out := make([]Record, 0, len(records))
	term := strings.ToLower(strings.TrimSpace(opts.SearchTerm))
	for _, r := range records {
		if opts.Action != "" && r.Action != opts.Action {
			continue
		}
		if opts.ActorName != "" && r.ActorName != opts.ActorName {
			continue
		}
		if opts.OnDate != nil && !sameDay(r.CreatedAt, *opts.OnDate) {
			continue
		}
		if term != "" && !matchesTerm(r, term) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesTerm(r Record, term string) bool {
	return strings.Contains(strings.ToLower(Summarize(r)), term) ||
		strings.Contains(strings.ToLower(r.ActorName), term) ||
		strings.Contains(strings.ToLower(r.EntityTitle), term)
}

func sameDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

type GroupMode string

const (
	GroupNone     GroupMode = "none"
	GroupByDate   GroupMode = "date"
	GroupByEntity GroupMode = "entity"
)

type Group struct {
	Key     string   `json:"key"`
	Records []Record `json:"records"`
}

// GroupBy partitions records into buckets without re-sorting: every bucket
// keeps its records in input order, and buckets appear in order of first
// occurrence. now anchors the Today/Yesterday labels for date grouping.
func GroupBy(records []Record, mode GroupMode, now time.Time) []Group {
	if mode == GroupNone {
		return []Group{{Key: "", Records: records}}
	}

	var groups []Group
	index := map[string]int{}
	for _, r := range records {
		var key string
		switch mode {
		case GroupByDate:
			key = dateKey(r.CreatedAt, now)
		case GroupByEntity:
			key = r.EntityTitle
			if key == "" {
				key = "Unknown Project"
			}
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}

func dateKey(t, now time.Time) string {
	switch {
	case sameDay(t, now):
		return "Today"
	case sameDay(t, now.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return t.Local().Format("January 2, 2006")
	}
}

package dashboard

import (
	"sort"
	"strings"

	"github.com/studytrack/api/internal/app/models/dto"
)

// Filter restricts an already-fetched enriched session list. Zero-value
// fields are inactive; active fields compose with logical AND.
type Filter struct {
	// Student keeps rows whose student display name matches exactly
	Student string
	// Subject keeps rows whose subject display name matches exactly
	Subject string
	// Tag keeps rows whose tag sequence contains this tag
	Tag string
	// Query keeps rows where the lowercased substring appears in any of
	// notes, type or mood
	Query string
}

// IsZero reports whether no filter field is active
func (f Filter) IsZero() bool {
	return f.Student == "" && f.Subject == "" && f.Tag == "" && strings.TrimSpace(f.Query) == ""
}

// Apply returns the rows passing every active filter field. It is a pure
// function over the fetched result set; rows are never mutated.
func Apply(rows []dto.EnrichedSessionResponse, f Filter) []dto.EnrichedSessionResponse {
	if f.IsZero() {
		return rows
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]dto.EnrichedSessionResponse, 0, len(rows))
	for _, row := range rows {
		if f.Student != "" && row.Student != f.Student {
			continue
		}
		if f.Subject != "" && row.Subject != f.Subject {
			continue
		}
		if f.Tag != "" && !containsTag(row.Tags, f.Tag) {
			continue
		}
		if query != "" && !matchesQuery(row, query) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// matchesQuery is the free-text search: case-insensitive substring over
// notes, type and mood
func matchesQuery(row dto.EnrichedSessionResponse, query string) bool {
	return strings.Contains(strings.ToLower(row.Notes), query) ||
		strings.Contains(strings.ToLower(row.Type), query) ||
		strings.Contains(strings.ToLower(row.Mood), query)
}

// StudentOptions collects the distinct student names present in rows, for
// the filter dropdown
func StudentOptions(rows []dto.EnrichedSessionResponse) []string {
	return distinct(rows, func(r dto.EnrichedSessionResponse) []string {
		return []string{r.Student}
	})
}

// SubjectOptions collects the distinct subject names present in rows
func SubjectOptions(rows []dto.EnrichedSessionResponse) []string {
	return distinct(rows, func(r dto.EnrichedSessionResponse) []string {
		return []string{r.Subject}
	})
}

// TagOptions collects the distinct tags present in rows
func TagOptions(rows []dto.EnrichedSessionResponse) []string {
	return distinct(rows, func(r dto.EnrichedSessionResponse) []string {
		return r.Tags
	})
}

func distinct(rows []dto.EnrichedSessionResponse, extract func(dto.EnrichedSessionResponse) []string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, row := range rows {
		for _, v := range extract(row) {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

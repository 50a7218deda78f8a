// feed/query.go - filter, sort and paginate joined feed items
package feed

import "sort"

// SortMode selects the feed ordering.
type SortMode string

const (
	SortRecent  SortMode = "recent"
	SortXP      SortMode = "xp"
	SortPopular SortMode = "popular"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// DefaultLimit is the page size used when the caller supplies none.
const DefaultLimit = 10

// ParseSortMode maps a query parameter to a sort mode. Unknown values
// fall back to recent; there is no error path for bad input.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortXP:
		return SortXP
	case SortPopular:
		return SortPopular
	default:
		return SortRecent
	}
}

// Result is one page of the filtered and sorted feed plus the metadata
// the caller needs to page further.
type Result struct {
	Items   []Item
	Total   int
	Page    int
	Limit   int
	HasMore bool
}

// Query applies category filter, sort and zero-based pagination over
// the joined items. Filtering is a case-sensitive exact match on the
// resolved plan's category; "all" is the identity. Sorting is stable
// with join order as the tie-break. An out-of-range page yields an
// empty page with accurate totals.
func Query(items []Item, category string, mode SortMode, page, limit int) Result {
	if page < 0 {
		page = 0
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	filtered := items
	if category != "" && category != CategoryAll {
		filtered = make([]Item, 0, len(items))
		for _, it := range items {
			if it.Plan.Category == category {
				filtered = append(filtered, it)
			}
		}
	} else {
		filtered = append([]Item(nil), items...)
	}

	switch mode {
	case SortXP:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Event.XPGain > filtered[j].Event.XPGain
		})
	case SortPopular:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].EffectiveXP > filtered[j].EffectiveXP
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Event.Date.After(filtered[j].Event.Date)
		})
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Items:   filtered[start:end],
		Total:   total,
		Page:    page,
		Limit:   limit,
		HasMore: end < total,
	}
}

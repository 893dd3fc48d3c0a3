package repository

import (
	"fmt"
	"strings"
)

// Sort keys untuk listing paket
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
	SortPopular   = "popular"
)

// PackageFilter adalah hasil parsing query string listing paket
type PackageFilter struct {
	Search    string
	MinPrice  *float64
	MaxPrice  *float64
	Types     []string
	Locations []string
	Sort      string
}

type FilterOptions struct {
	Types     []string
	Locations []string
	MinPrice  float64
	MaxPrice  float64
}

var orderByClause = map[string]string{
	SortNewest:    "p.created_at DESC, p.id ASC",
	SortPriceLow:  "p.price ASC, p.id ASC",
	SortPriceHigh: "p.price DESC, p.id ASC",
	SortNameAsc:   "p.name ASC, p.id ASC",
	SortNameDesc:  "p.name DESC, p.id ASC",
	SortPopular:   "p.view_count DESC, p.id ASC",
}

// ValidSort reports whether key is a known sort key
func ValidSort(key string) bool {
	_, ok := orderByClause[key]
	return ok
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildPackageWhere returns the WHERE clause (without the keyword, "TRUE" when empty)
// and its positional args. Columns are qualified with alias p.
func buildPackageWhere(f PackageFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if s := strings.TrimSpace(f.Search); s != "" {
		ph := next("%" + likeEscaper.Replace(s) + "%")
		conds = append(conds, fmt.Sprintf("(p.name ILIKE %[1]s OR p.location ILIKE %[1]s OR p.type ILIKE %[1]s)", ph))
	}
	if f.MinPrice != nil {
		conds = append(conds, "p.price >= "+next(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		conds = append(conds, "p.price <= "+next(*f.MaxPrice))
	}
	if len(f.Types) > 0 {
		conds = append(conds, "p.type = ANY("+next(f.Types)+")")
	}
	if len(f.Locations) > 0 {
		conds = append(conds, "p.location = ANY("+next(f.Locations)+")")
	}

	if len(conds) == 0 {
		return "TRUE", args
	}
	return strings.Join(conds, " AND "), args
}

// buildPackageOrder falls back to newest for unknown keys
func buildPackageOrder(sort string) string {
	if clause, ok := orderByClause[sort]; ok {
		return clause
	}
	return orderByClause[SortNewest]
}

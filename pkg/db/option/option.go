package option

import (
	"earnhub/pkg/db/pagination"

	"gorm.io/gorm"
)

// QueryOption narrows or shapes a repository query.
type QueryOption func(tx *gorm.DB) *gorm.DB

func Apply(tx *gorm.DB, opts ...QueryOption) *gorm.DB {
	for _, opt := range opts {
		tx = opt(tx)
	}
	return tx
}

func Limit(n int) QueryOption {
	return func(tx *gorm.DB) *gorm.DB {
		if n <= 0 {
			return tx
		}
		return tx.Limit(n)
	}
}

func OrderBy(expr string) QueryOption {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Order(expr)
	}
}

// DateBetweenStrings bounds an ISO-date column to [from, to]. Empty bounds
// are skipped. The YYYY-MM-DD layout compares lexicographically in date
// order, so plain string comparison is correct.
func DateBetweenStrings(column, from, to string) QueryOption {
	return func(tx *gorm.DB) *gorm.DB {
		if from != "" {
			tx = tx.Where(column+" >= ?", from)
		}
		if to != "" {
			tx = tx.Where(column+" <= ?", to)
		}
		return tx
	}
}

// ApplyPagination applies cursor pagination over (date, id) descending.
// It over-fetches one row so callers can detect whether more rows remain.
func ApplyPagination(p pagination.Pagination) QueryOption {
	return func(tx *gorm.DB) *gorm.DB {
		if p.Cursor != "" {
			if cursor, err := pagination.DecodeCursor(p.Cursor); err == nil {
				tx = tx.Where("(date, id) < (?, ?)", cursor.Date, cursor.ID)
			}
		}

		limit := p.Limit
		if limit <= 0 {
			limit = 20
		}

		return tx.Limit(limit + 1)
	}
}

package cache

import (
	"encoding/json"
	"fmt"
)

// Key builds the cache key for a dashboard view: "{view}_{userID}_{filters}"
// with filters JSON-serialized. encoding/json writes struct fields in
// declaration order and map keys sorted, so identical logical filters always
// produce the same key.
func Key(view, userID string, filters any) string {
	if filters == nil {
		return fmt.Sprintf("%s_%s_{}", view, userID)
	}

	b, err := json.Marshal(filters)
	if err != nil {
		// Filters are plain parameter structs; a marshal failure means a
		// programming error, not bad user input.
		panic(fmt.Sprintf("cache: unserializable filters for view %s: %v", view, err))
	}

	return fmt.Sprintf("%s_%s_%s", view, userID, b)
}

// KeyPrefix covers every cached variant of a view for one user, regardless
// of filters.
func KeyPrefix(view, userID string) string {
	return fmt.Sprintf("%s_%s_", view, userID)
}

package mirror

import (
	"maps"

	"github.com/heartmarshall/pinmoji/internal/domain"
)

// MergeItems returns the union of old and incoming keyed by id, incoming
// entries overwriting old ones. Ids present in old but absent from incoming
// are kept: an item deleted remotely stays in the mirror until restart.
// Neither argument is modified.
func MergeItems(old map[string]domain.Item, incoming []domain.Item) map[string]domain.Item {
	merged := make(map[string]domain.Item, len(old)+len(incoming))
	maps.Copy(merged, old)
	for _, it := range incoming {
		merged[it.ID] = it
	}
	return merged
}

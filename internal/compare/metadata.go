package compare

import (
	"sort"

	"github.com/todmy/doc-comparer/pkg/models"
)

// CompareMetadata computes the symmetric difference of two flat metadata
// mappings: one entry per key, over the union of both key sets, whose values
// differ. A key absent on one side is distinct from any present value,
// including the empty string. Entries come back sorted by key so that
// presentation is stable.
func CompareMetadata(metaA, metaB map[string]string) []models.MetadataEntry {
	keySet := make(map[string]struct{}, len(metaA)+len(metaB))
	for k := range metaA {
		keySet[k] = struct{}{}
	}
	for k := range metaB {
		keySet[k] = struct{}{}
	}

	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]models.MetadataEntry, 0)
	for _, k := range keys {
		valA, okA := metaA[k]
		valB, okB := metaB[k]
		if okA && okB && valA == valB {
			continue
		}
		entry := models.MetadataEntry{Key: k}
		if okA {
			v := valA
			entry.ValueA = &v
		}
		if okB {
			v := valB
			entry.ValueB = &v
		}
		entries = append(entries, entry)
	}
	return entries
}

package ordering

import (
	"encoding/json"
	"fmt"

	_ "embed"
)

// Entry is a historically good resume layout with a hand-assigned quality
// score on a 0-10 scale.
type Entry struct {
	Order []string `json:"order"`
	Score int      `json:"score"`
}

// Catalog data is versioned alongside the code and must stay byte-for-byte
// stable: changing a sequence or a score changes every downstream result.
// Some entries carry legacy labels ("Experience", "Hobbies", "Internships")
// that the detector never emits; they are kept for output compatibility.
//
//go:embed orders.json
var ordersJSON []byte

var catalog = mustLoadCatalog(ordersJSON)

func mustLoadCatalog(data []byte) []Entry {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		panic(fmt.Sprintf("decoding embedded ideal orders: %v", err))
	}
	if len(entries) == 0 {
		panic("embedded ideal orders catalog is empty")
	}
	return entries
}

// Catalog returns the ideal-order entries. The returned slice is shared,
// read-only data; callers must not mutate it.
func Catalog() []Entry {
	return catalog
}

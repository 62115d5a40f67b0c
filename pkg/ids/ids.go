// Package ids issues unique string identifiers for document entities.
//
// Each container in a document tree (a page for its shapes and lines, a
// document for its pages) owns one [Allocator]. Known categories produce
// sequential identifiers ("shape-1", "shape-2", ...); unknown categories
// fall back to short random suffixes. Identifiers are never released.
//
// An Allocator is not safe for concurrent use without external
// synchronization. Document construction is single-threaded by design.
package ids

import (
	"fmt"

	"github.com/google/uuid"
)

// Known categories with sequential counters. Anything else gets a
// random suffix instead.
const (
	CategoryShape = "shape"
	CategoryLine  = "line"
	CategoryPage  = "page"
	CategoryGroup = "group"
)

// suffixRetries bounds the random-suffix collision loop before falling
// back to a full UUID, which cannot collide with an 8-character suffix.
const suffixRetries = 16

// Allocator tracks issued identifiers and issues new collision-free ones.
//
// The zero value is not usable; use [NewAllocator].
type Allocator struct {
	used     map[string]struct{}
	counters map[string]int
}

// NewAllocator creates an empty allocator with counters for the known
// categories (shape, line, page, group).
func NewAllocator() *Allocator {
	return &Allocator{
		used: make(map[string]struct{}),
		counters: map[string]int{
			CategoryShape: 0,
			CategoryLine:  0,
			CategoryPage:  0,
			CategoryGroup: 0,
		},
	}
}

// Generate returns a fresh identifier for the given category and records
// it as used.
//
// For known categories the identifier is "{category}-{n}" where n is the
// smallest unused integer past the category's counter. The counter only
// moves forward: registering "shape-2" by hand and then generating shape
// IDs yields "shape-1", "shape-3". For unknown categories the identifier
// is "{category}-{suffix}" with an 8-character random suffix, retried on
// collision and escalated to a full UUID after a bounded number of tries.
func (a *Allocator) Generate(category string) string {
	if _, known := a.counters[category]; known {
		for {
			a.counters[category]++
			candidate := fmt.Sprintf("%s-%d", category, a.counters[category])
			if a.IsAvailable(candidate) {
				a.used[candidate] = struct{}{}
				return candidate
			}
		}
	}

	for i := 0; ; i++ {
		suffix := uuid.NewString()
		if i < suffixRetries {
			suffix = suffix[:8]
		}
		candidate := category + "-" + suffix
		if a.IsAvailable(candidate) {
			a.used[candidate] = struct{}{}
			return candidate
		}
	}
}

// Register records an externally supplied identifier as used.
// Registering an identifier that is already used is a no-op; counters are
// never touched, so sequential issuance skips registered values lazily.
func (a *Allocator) Register(id string) {
	a.used[id] = struct{}{}
}

// IsAvailable reports whether id has not been issued or registered.
func (a *Allocator) IsAvailable(id string) bool {
	_, taken := a.used[id]
	return !taken
}

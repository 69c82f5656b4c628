package insight

import (
	"math"
	"sort"

	"github.com/alexanderramin/vista/internal/domain"
)

// groups accumulates one value per key. A key is present only after add has
// been called for it, so "no records for this key" is an explicit state
// rather than a zero value.
type groups[K comparable, V any] struct {
	pos  map[K]int
	keys []K
	vals []V
}

func newGroups[K comparable, V any]() *groups[K, V] {
	return &groups[K, V]{pos: make(map[K]int)}
}

// at returns the accumulator for k, creating it when absent.
func (g *groups[K, V]) at(k K) *V {
	if i, ok := g.pos[k]; ok {
		return &g.vals[i]
	}
	g.pos[k] = len(g.keys)
	g.keys = append(g.keys, k)
	var zero V
	g.vals = append(g.vals, zero)
	return &g.vals[len(g.vals)-1]
}

// lookup returns the accumulator for k and whether k was ever added.
func (g *groups[K, V]) lookup(k K) (*V, bool) {
	i, ok := g.pos[k]
	if !ok {
		return nil, false
	}
	return &g.vals[i], true
}

// canonical orders values by their position in order; values outside the
// closed set follow in first-seen order.
func canonical[T ~string](vals []T, order []T) []T {
	out := make([]T, len(vals))
	copy(out, vals)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := domain.CanonicalIndex(order, out[i]), domain.CanonicalIndex(order, out[j])
		switch {
		case a >= 0 && b >= 0:
			return a < b
		case a >= 0:
			return true
		}
		return false
	})
	return out
}

// distinct collects the distinct values of key over records in canonical order.
func distinct[T ~string](records []domain.ProjectRecord, order []T, key func(domain.ProjectRecord) T) []T {
	seen := make(map[T]bool)
	var vals []T
	for _, r := range records {
		v := key(r)
		if !seen[v] {
			seen[v] = true
			vals = append(vals, v)
		}
	}
	return canonical(vals, order)
}

type mean struct {
	sum float64
	n   int
}

func (m *mean) add(v float64) {
	m.sum += v
	m.n++
}

func (m mean) value() float64 {
	return domain.Ratio(m.sum, float64(m.n))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func strs[T ~string](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

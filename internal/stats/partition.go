package stats

import (
	"sort"

	"github.com/statattack/statattack/internal/apperrors"
)

// Partition splits a domain's stat keys into the set shown to the
// guesser and the hidden set that progressive reveal draws from. A key
// lives in exactly one of the two slices; both are kept sorted so the
// partition has one canonical representation.
type Partition struct {
	Selected   []string `json:"selected"`
	Deselected []string `json:"deselected"`
}

// Initialize builds the partition for a freshly loaded player: every key
// starts hidden.
func Initialize(rawKeys []string) Partition {
	deselected := dedupe(rawKeys)
	sort.Strings(deselected)
	return Partition{
		Selected:   []string{},
		Deselected: deselected,
	}
}

// Toggle moves a key to the other side of the partition. Keys the
// partition has never seen are rejected so a typo cannot grow the key set.
func (p Partition) Toggle(key string) (Partition, error) {
	switch {
	case contains(p.Selected, key):
		return Partition{
			Selected:   sortedWithout(p.Selected, key),
			Deselected: sortedWith(p.Deselected, key),
		}, nil
	case contains(p.Deselected, key):
		return Partition{
			Selected:   sortedWith(p.Selected, key),
			Deselected: sortedWithout(p.Deselected, key),
		}, nil
	default:
		return p, apperrors.NewAppError(400, "unknown stat key: "+key, nil)
	}
}

// ToggleAll resets the partition: everything in targetSelected becomes
// visible, the rest of domainKeys becomes hidden. Used for
// select-all / deselect-all.
func (p Partition) ToggleAll(domainKeys, targetSelected []string) Partition {
	target := make(map[string]bool, len(targetSelected))
	for _, k := range targetSelected {
		target[k] = true
	}

	next := Partition{Selected: []string{}, Deselected: []string{}}
	for _, k := range dedupe(domainKeys) {
		if target[k] {
			next.Selected = append(next.Selected, k)
		} else {
			next.Deselected = append(next.Deselected, k)
		}
	}
	sort.Strings(next.Selected)
	sort.Strings(next.Deselected)
	return next
}

// Has reports whether the key belongs to the partition at all.
func (p Partition) Has(key string) bool {
	return contains(p.Selected, key) || contains(p.Deselected, key)
}

func (p Partition) IsSelected(key string) bool {
	return contains(p.Selected, key)
}

// Validate rejects partitions whose two sides overlap, which can only
// happen to payloads arriving from outside this package.
func (p Partition) Validate() error {
	selected := make(map[string]bool, len(p.Selected))
	for _, k := range p.Selected {
		if selected[k] {
			return apperrors.NewAppError(400, "duplicate stat key: "+k, nil)
		}
		selected[k] = true
	}
	seen := make(map[string]bool, len(p.Deselected))
	for _, k := range p.Deselected {
		if seen[k] {
			return apperrors.NewAppError(400, "duplicate stat key: "+k, nil)
		}
		seen[k] = true
		if selected[k] {
			return apperrors.NewAppError(400, "stat key both selected and deselected: "+k, nil)
		}
	}
	return nil
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func dedupe(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

func sortedWith(keys []string, key string) []string {
	out := make([]string, 0, len(keys)+1)
	out = append(out, keys...)
	out = append(out, key)
	sort.Strings(out)
	return out
}

func sortedWithout(keys []string, key string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != key {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

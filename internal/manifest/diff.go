// SPDX-License-Identifier: MPL-2.0

package manifest

import "sort"

type (
	// Diff is the three-part comparison of two manifests. All lists and the
	// changed map iterate deterministically via sorted keys.
	Diff struct {
		// Added lists export paths present only in the current manifest.
		Added []string
		// Removed lists export paths present only in the previous manifest.
		Removed []string
		// Changed maps export paths present in both manifests whose signature
		// sets differ. Paths with identical sets do not appear.
		Changed map[string]Delta
	}

	// Delta is the signature-level difference for one changed export path.
	Delta struct {
		Added   []string
		Removed []string
	}
)

// Compare diffs the previous manifest against the current one.
func Compare(previous, current Manifest) *Diff {
	d := &Diff{Changed: make(map[string]Delta)}

	for _, key := range current.Keys() {
		if _, ok := previous[key]; !ok {
			d.Added = append(d.Added, key)
		}
	}

	for _, key := range previous.Keys() {
		cur, ok := current[key]
		if !ok {
			d.Removed = append(d.Removed, key)
			continue
		}

		delta := Delta{
			Added:   subtract(cur, previous[key]),
			Removed: subtract(previous[key], cur),
		}
		if len(delta.Added) > 0 || len(delta.Removed) > 0 {
			d.Changed[key] = delta
		}
	}

	return d
}

// Empty reports whether the diff records no changes at all.
func (d *Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// ChangedKeys returns the changed export paths, sorted.
func (d *Diff) ChangedKeys() []string {
	keys := make([]string, 0, len(d.Changed))
	for k := range d.Changed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// subtract returns the sorted elements of a that are absent from b.
func subtract(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, s := range b {
		set[s] = true
	}

	var out []string
	for _, s := range a {
		if !set[s] {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

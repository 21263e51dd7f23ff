// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"fmt"
	"strings"
)

// Render turns a diff into markdown changelog text. An empty diff renders to
// the empty string. Sections appear in fixed order (Added, Removed, Changed)
// and only when non-empty; changed paths carry nested Added/Removed signature
// sublists. The result ends with exactly one trailing newline.
func Render(d *Diff) string {
	if d.Empty() {
		return ""
	}

	var sb strings.Builder

	if len(d.Added) > 0 {
		sb.WriteString("### Added\n\n")
		for _, key := range d.Added {
			fmt.Fprintf(&sb, "- `%s`\n", key)
		}
		sb.WriteString("\n")
	}

	if len(d.Removed) > 0 {
		sb.WriteString("### Removed\n\n")
		for _, key := range d.Removed {
			fmt.Fprintf(&sb, "- `%s`\n", key)
		}
		sb.WriteString("\n")
	}

	if len(d.Changed) > 0 {
		sb.WriteString("### Changed\n\n")
		for _, key := range d.ChangedKeys() {
			delta := d.Changed[key]
			fmt.Fprintf(&sb, "- `%s`\n", key)
			for _, sig := range delta.Added {
				fmt.Fprintf(&sb, "  - Added: `%s`\n", sig)
			}
			for _, sig := range delta.Removed {
				fmt.Fprintf(&sb, "  - Removed: `%s`\n", sig)
			}
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

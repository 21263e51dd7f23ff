// SPDX-License-Identifier: MPL-2.0

package abi

import "strings"

// Signature formats an item as its canonical human-readable signature and
// reports whether the item kind produces one. Unrecognized kinds return
// ("", false) and are excluded from manifests.
//
// Parameter names never appear in signatures, so renaming a parameter does
// not register as an interface change.
func Signature(it Item) (string, bool) {
	switch it.Type {
	case KindFunction:
		var sb strings.Builder
		sb.WriteString("function ")
		sb.WriteString(it.Name)
		sb.WriteString("(")
		sb.WriteString(joinTypes(it.Inputs, false))
		sb.WriteString(")")
		if it.StateMutability != "" {
			sb.WriteString(" ")
			sb.WriteString(it.StateMutability)
		}
		if len(it.Outputs) > 0 {
			sb.WriteString(" returns (")
			sb.WriteString(joinTypes(it.Outputs, false))
			sb.WriteString(")")
		}
		return sb.String(), true

	case KindEvent:
		return "event " + it.Name + "(" + joinTypes(it.Inputs, true) + ")", true

	case KindError:
		return "error " + it.Name + "(" + joinTypes(it.Inputs, false) + ")", true

	case KindConstructor:
		sig := "constructor(" + joinTypes(it.Inputs, false) + ")"
		if it.StateMutability != "" {
			sig += " " + it.StateMutability
		}
		return sig, true

	case KindFallback:
		return "fallback()", true

	case KindReceive:
		return "receive()", true

	default:
		return "", false
	}
}

// Signatures formats every recognized item of an interface array, in input
// order. Callers that need determinism across input orderings sort the result.
func Signatures(items []Item) []string {
	sigs := make([]string, 0, len(items))
	for _, it := range items {
		if sig, ok := Signature(it); ok {
			sigs = append(sigs, sig)
		}
	}
	return sigs
}

// joinTypes renders a parameter list as comma-separated canonical types.
// When markIndexed is set, event parameters carry an " indexed" suffix.
func joinTypes(params []Parameter, markIndexed bool) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = TypeString(p)
		if markIndexed && p.Indexed {
			parts[i] += " indexed"
		}
	}
	return strings.Join(parts, ",")
}

// TypeString renders the canonical type of a parameter. Tuples expand
// recursively to a parenthesized component list, preserving any "[]" or "[N]"
// array suffix carried on the tuple type itself.
func TypeString(p Parameter) string {
	if !strings.HasPrefix(p.Type, "tuple") {
		return p.Type
	}

	suffix := strings.TrimPrefix(p.Type, "tuple")
	inner := make([]string, len(p.Components))
	for i, c := range p.Components {
		inner[i] = TypeString(c)
	}
	return "(" + strings.Join(inner, ",") + ")" + suffix
}

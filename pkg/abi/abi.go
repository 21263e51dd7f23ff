// SPDX-License-Identifier: MPL-2.0

// Package abi models the compiled contract interface description emitted by
// Solidity toolchains: a JSON array of typed items (functions, events, errors,
// constructor, fallback, receive) with recursively structured parameters.
//
// Parsing and re-serialization are canonical: two semantically identical
// interface arrays produce byte-identical output regardless of the key order
// or whitespace of the source JSON. That property is what makes generated
// module content a stable dedup identity.
package abi

import (
	"encoding/json"
	"fmt"
)

// Recognized interface item kinds. Anything else is KindUnknown, which is a
// valid variant: it round-trips through serialization but produces no
// signature.
const (
	KindFunction    = "function"
	KindEvent       = "event"
	KindError       = "error"
	KindConstructor = "constructor"
	KindFallback    = "fallback"
	KindReceive     = "receive"
)

type (
	// Parameter is one input or output of an interface item. Tuple parameters
	// carry their element types in Components, nested arbitrarily deep.
	Parameter struct {
		Name         string      `json:"name,omitempty"`
		Type         string      `json:"type"`
		InternalType string      `json:"internalType,omitempty"`
		Indexed      bool        `json:"indexed,omitempty"`
		Components   []Parameter `json:"components,omitempty"`
	}

	// Item is one entry of an interface description array, tagged by Type.
	Item struct {
		Type            string      `json:"type"`
		Name            string      `json:"name,omitempty"`
		Inputs          []Parameter `json:"inputs,omitempty"`
		Outputs         []Parameter `json:"outputs,omitempty"`
		StateMutability string      `json:"stateMutability,omitempty"`
		Anonymous       bool        `json:"anonymous,omitempty"`
	}
)

// ParseItems decodes a JSON interface array into typed items. The input must
// be a JSON array; anything else is an error.
func ParseItems(data []byte) ([]Item, error) {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding interface array: %w", err)
	}
	return items, nil
}

// MarshalItems renders items as canonical, two-space-indented JSON. Output is
// deterministic: field order is fixed by the struct declarations and empty
// collections are omitted, so byte equality follows from semantic equality.
func MarshalItems(items []Item) ([]byte, error) {
	out, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding interface array: %w", err)
	}
	return out, nil
}

// SPDX-License-Identifier: MPL-2.0

package abi_test

import (
	"reflect"
	"testing"

	"abiforge-cli/pkg/abi"
)

func TestSignature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		item abi.Item
		want string
		ok   bool
	}{
		{
			name: "view function with output",
			item: abi.Item{
				Type:            abi.KindFunction,
				Name:            "balanceOf",
				Inputs:          []abi.Parameter{{Name: "owner", Type: "address"}},
				Outputs:         []abi.Parameter{{Type: "uint256"}},
				StateMutability: "view",
			},
			want: "function balanceOf(address) view returns (uint256)",
			ok:   true,
		},
		{
			name: "function without outputs drops returns",
			item: abi.Item{
				Type:            abi.KindFunction,
				Name:            "burn",
				Inputs:          []abi.Parameter{{Type: "uint256"}},
				StateMutability: "nonpayable",
			},
			want: "function burn(uint256) nonpayable",
			ok:   true,
		},
		{
			name: "function without mutability drops segment",
			item: abi.Item{
				Type:    abi.KindFunction,
				Name:    "name",
				Outputs: []abi.Parameter{{Type: "string"}},
			},
			want: "function name() returns (string)",
			ok:   true,
		},
		{
			name: "event with indexed parameters",
			item: abi.Item{
				Type: abi.KindEvent,
				Name: "Transfer",
				Inputs: []abi.Parameter{
					{Name: "from", Type: "address", Indexed: true},
					{Name: "to", Type: "address", Indexed: true},
					{Name: "value", Type: "uint256"},
				},
			},
			want: "event Transfer(address indexed,address indexed,uint256)",
			ok:   true,
		},
		{
			name: "custom error",
			item: abi.Item{
				Type:   abi.KindError,
				Name:   "InsufficientBalance",
				Inputs: []abi.Parameter{{Type: "uint256"}, {Type: "uint256"}},
			},
			want: "error InsufficientBalance(uint256,uint256)",
			ok:   true,
		},
		{
			name: "constructor with mutability",
			item: abi.Item{
				Type:            abi.KindConstructor,
				Inputs:          []abi.Parameter{{Type: "address"}},
				StateMutability: "payable",
			},
			want: "constructor(address) payable",
			ok:   true,
		},
		{
			name: "fallback",
			item: abi.Item{Type: abi.KindFallback, StateMutability: "payable"},
			want: "fallback()",
			ok:   true,
		},
		{
			name: "receive",
			item: abi.Item{Type: abi.KindReceive, StateMutability: "payable"},
			want: "receive()",
			ok:   true,
		},
		{
			name: "unknown kind excluded",
			item: abi.Item{Type: "userDefinedValueType", Name: "Wad"},
			want: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := abi.Signature(tt.item)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Signature() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTypeString_Tuples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		param abi.Parameter
		want  string
	}{
		{
			name: "flat tuple",
			param: abi.Parameter{Type: "tuple", Components: []abi.Parameter{
				{Type: "address"}, {Type: "uint256"},
			}},
			want: "(address,uint256)",
		},
		{
			name: "tuple array keeps suffix",
			param: abi.Parameter{Type: "tuple[]", Components: []abi.Parameter{
				{Type: "bytes32"},
			}},
			want: "(bytes32)[]",
		},
		{
			name: "fixed-size tuple array",
			param: abi.Parameter{Type: "tuple[4]", Components: []abi.Parameter{
				{Type: "uint8"},
			}},
			want: "(uint8)[4]",
		},
		{
			name: "nested tuple",
			param: abi.Parameter{Type: "tuple", Components: []abi.Parameter{
				{Type: "address"},
				{Type: "tuple[]", Components: []abi.Parameter{
					{Type: "uint256"}, {Type: "bool"},
				}},
			}},
			want: "(address,(uint256,bool)[])",
		},
		{
			name:  "plain type passes through",
			param: abi.Parameter{Type: "uint256[2]"},
			want:  "uint256[2]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := abi.TypeString(tt.param); got != tt.want {
				t.Errorf("TypeString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSignatures_SkipsUnknown(t *testing.T) {
	t.Parallel()

	items := []abi.Item{
		{Type: abi.KindReceive},
		{Type: "unknown"},
		{Type: abi.KindFallback},
	}
	want := []string{"receive()", "fallback()"}
	if got := abi.Signatures(items); !reflect.DeepEqual(got, want) {
		t.Errorf("Signatures() = %v, want %v", got, want)
	}
}

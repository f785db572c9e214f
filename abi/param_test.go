package abi

import (
	"encoding/json"
	"testing"
)

func TestParamTypeString(t *testing.T) {
	cases := []struct {
		param Param
		want  string
	}{
		{Param{Type: "uint256"}, "uint256"},
		{Param{Type: "address[4][]"}, "address[4][]"},
		{
			Param{Type: "tuple", Components: []Param{
				{Type: "address"},
				{Type: "uint256"},
			}},
			"(address,uint256)",
		},
		{
			Param{Type: "tuple[3]", Components: []Param{
				{Type: "bool"},
				{Type: "tuple[]", Components: []Param{
					{Type: "bytes32"},
				}},
			}},
			"(bool,(bytes32)[])[3]",
		},
		// a root type that merely starts with "tuple" is not a tuple
		{Param{Type: "tupleish"}, "tupleish"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			if got := c.param.TypeString(); got != c.want {
				t.Fatalf("got %q, want %q", got, c.want)
			}
		})
	}
}

// Parsing a type string and re-deriving its canonical spelling reproduces
// the structural type.
func TestParamTypeStringRoundTrip(t *testing.T) {
	types := []string{
		"uint256",
		"bytes32[2]",
		"(address,uint256)",
		"(address,uint256)[3]",
		"(bool,(address,uint256[2])[],string)",
		"((((uint8))))",
	}
	for _, ty := range types {
		t.Run(ty, func(t *testing.T) {
			parsed, err := parseErrorParam(ty + " ")
			if err != nil {
				t.Fatal(err)
			}
			if got := parsed.TypeString(); got != ty {
				t.Fatalf("got %q, want %q", got, ty)
			}
		})
	}
}

func TestParamJSON(t *testing.T) {
	in := `{"name":"order","type":"tuple","internalType":"struct Exchange.Order","components":[{"name":"maker","type":"address"},{"name":"amounts","type":"uint256[2]"}]}`
	var p Param
	if err := json.Unmarshal([]byte(in), &p); err != nil {
		t.Fatal(err)
	}
	if p.InternalType != "struct Exchange.Order" {
		t.Fatalf("bad internal type %q", p.InternalType)
	}
	out, err := json.Marshal(&p)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != in {
		t.Fatalf("round trip not stable:\n%s\n%s", in, out)
	}
}

func TestEventParamJSON(t *testing.T) {
	in := `{"name":"from","type":"address","indexed":true}`
	var p EventParam
	if err := json.Unmarshal([]byte(in), &p); err != nil {
		t.Fatal(err)
	}
	if !p.Indexed {
		t.Fatal("indexed flag lost")
	}
	out, err := json.Marshal(&p)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != in {
		t.Fatalf("round trip not stable:\n%s\n%s", in, out)
	}
}

func TestIsIdent(t *testing.T) {
	valid := []string{"a", "_ok1", "Transfer", "arg2", "_"}
	for _, s := range valid {
		if !isIdent(s) {
			t.Fatalf("%q must be valid", s)
		}
	}
	invalid := []string{"", "123bad", "has space", "dash-ed", "ütf"}
	for _, s := range invalid {
		if isIdent(s) {
			t.Fatalf("%q must be invalid", s)
		}
	}
}

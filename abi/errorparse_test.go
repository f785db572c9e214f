package abi

import (
	"reflect"
	"testing"
)

func TestParseError(t *testing.T) {
	cases := []struct {
		input  string
		output *Error
	}{
		{
			input: "Myerror(uint256 a,(address,uint256) arg2)",
			output: &Error{
				Name: "Myerror",
				Inputs: []Param{
					{Name: "a", Type: "uint256"},
					{
						Name: "arg2",
						Type: "tuple",
						Components: []Param{
							{Name: "", Type: "address"},
							{Name: "", Type: "uint256"},
						},
					},
				},
			},
		},
		{
			input: "Myerror((address,uint256) arg2)",
			output: &Error{
				Name: "Myerror",
				Inputs: []Param{
					{
						Name: "arg2",
						Type: "tuple",
						Components: []Param{
							{Name: "", Type: "address"},
							{Name: "", Type: "uint256"},
						},
					},
				},
			},
		},
		{
			input: "Myerror(uint256 a,(address,uint256) arg2,(address,uint256,(uint256,uint256[2])) arg3)",
			output: &Error{
				Name: "Myerror",
				Inputs: []Param{
					{Name: "a", Type: "uint256"},
					{
						Name: "arg2",
						Type: "tuple",
						Components: []Param{
							{Name: "", Type: "address"},
							{Name: "", Type: "uint256"},
						},
					},
					{
						Name: "arg3",
						Type: "tuple",
						Components: []Param{
							{Name: "", Type: "address"},
							{Name: "", Type: "uint256"},
							{
								Name: "",
								Type: "tuple",
								Components: []Param{
									{Name: "", Type: "uint256"},
									{Name: "", Type: "uint256[2]"},
								},
							},
						},
					},
				},
			},
		},
		{
			input: "Empty()",
			output: &Error{
				Name:   "Empty",
				Inputs: []Param{},
			},
		},
		{
			// a trailing comma leaves an empty buffer, which is skipped
			input: "Trailing(uint256 a,)",
			output: &Error{
				Name:   "Trailing",
				Inputs: []Param{{Name: "a", Type: "uint256"}},
			},
		},
		{
			input: "Suffixed((address,uint256)[2] pairs)",
			output: &Error{
				Name: "Suffixed",
				Inputs: []Param{
					{
						Name: "pairs",
						Type: "tuple[2]",
						Components: []Param{
							{Name: "", Type: "address"},
							{Name: "", Type: "uint256"},
						},
					},
				},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			err, perr := ParseError(c.input)
			if perr != nil {
				t.Fatal(perr)
			}
			if !reflect.DeepEqual(err, c.output) {
				t.Fatalf("bad parse: %#v", err)
			}
		})
	}
}

func TestParseErrorSelector(t *testing.T) {
	err, perr := ParseError("Error(string message)")
	if perr != nil {
		t.Fatal(perr)
	}
	if sig := err.Signature(); sig != "Error(string)" {
		t.Fatalf("bad signature %q", sig)
	}
	if sel := err.Selector(); sel.Hex() != "0x08c379a0" {
		t.Fatalf("bad selector %s", sel.Hex())
	}
}

func TestParseErrorMalformed(t *testing.T) {
	// missing parentheses, missing or extra name tokens, and types the
	// specifier parser rejects
	cases := []string{
		"Myerror",
		"Myerror(",
		"Myerror(uint256)",
		"Myerror(uint256 a b)",
		"Myerror(uint256 a, b)",
		"Myerror(uint-256 a)",
		"Myerror((uint256, a) arg)",
	}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			if _, err := ParseError(c); err == nil {
				t.Fatal("expected parse failure")
			}
		})
	}
}

package placement

import (
	"reflect"
	"testing"

	"github.com/transplot/transplot/pkg/errors"
)

const validV2 = `UNITS 100
DIEAREA 0 0 5000 4000
ROWHEIGHT 200
SITEWIDTH 40
ROWS 20
SITES 125
TRANSISTOROFFSET 8
TRANSISTOR T1 0 0 0 NMOS g1
TRANSISTOR T2 40 0 0 PMOS g1
TRANSISTOR T3 80 0 1 NMOS g1
PIN clk 10 20 net_clk
PIN rst 30 40 net_rst
SDC sdc_0 RAM32 100 200 500 300
PATH ( 0 0 ) ( 10 0 ) (10 20)
PATH
`

func TestParseV2(t *testing.T) {
	m, err := ParseV2(validV2)
	if err != nil {
		t.Fatalf("ParseV2() error: %v", err)
	}

	if m.Version != Version2 {
		t.Errorf("Version = %v, want %v", m.Version, Version2)
	}
	if len(m.Transistors) != 3 {
		t.Fatalf("len(Transistors) = %d, want 3", len(m.Transistors))
	}
	if m.GroupCounts["g1"] != 3 {
		t.Errorf("GroupCounts[g1] = %d, want 3", m.GroupCounts["g1"])
	}

	wantPins := []Pin{
		{Name: "clk", X: 10, Y: 20, Net: "net_clk"},
		{Name: "rst", X: 30, Y: 40, Net: "net_rst"},
	}
	if !reflect.DeepEqual(m.Pins, wantPins) {
		t.Errorf("Pins = %+v, want %+v", m.Pins, wantPins)
	}

	wantMacros := []Macro{
		{Name: "sdc_0", MacroName: "RAM32", X: 100, Y: 200, Width: 500, Height: 300},
	}
	if !reflect.DeepEqual(m.Macros, wantMacros) {
		t.Errorf("Macros = %+v, want %+v", m.Macros, wantMacros)
	}

	wantPaths := []Path{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 20}},
		{},
	}
	if !reflect.DeepEqual(m.Paths, wantPaths) {
		t.Errorf("Paths = %+v, want %+v", m.Paths, wantPaths)
	}
}

func TestParseV2GroupSum(t *testing.T) {
	input := `TRANSISTOR T1 0 0 0 NMOS g1
TRANSISTOR T2 1 0 0 PMOS g2
TRANSISTOR T3 2 0 0 NMOS g1
TRANSISTOR T4 3 0 0 PMOS g3
TRANSISTOR T5 4 0 0 NMOS g1
`
	m, err := ParseV2(input)
	if err != nil {
		t.Fatalf("ParseV2() error: %v", err)
	}
	total := 0
	for _, c := range m.GroupCounts {
		total += c
	}
	if total != 5 {
		t.Errorf("sum(GroupCounts) = %d, want 5 (one per TRANSISTOR line)", total)
	}
}

func TestParseV2GroupIsString(t *testing.T) {
	// Group tags need not be numeric and are never coerced.
	m, err := ParseV2("TRANSISTOR T1 0 0 0 NMOS blk_a/7\n")
	if err != nil {
		t.Fatalf("ParseV2() error: %v", err)
	}
	if m.Transistors[0].Group != "blk_a/7" {
		t.Errorf("Group = %q, want %q", m.Transistors[0].Group, "blk_a/7")
	}
}

func TestParseV2UnknownKindPassesThrough(t *testing.T) {
	m, err := ParseV2("TRANSISTOR T1 0 0 0 FINFET g1\n")
	if err != nil {
		t.Fatalf("ParseV2() error: %v", err)
	}
	if m.Transistors[0].Kind != "FINFET" {
		t.Errorf("Kind = %q, want pass-through %q", m.Transistors[0].Kind, "FINFET")
	}
}

func TestParseV2Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{
			name:  "UnknownKeyword",
			input: "FOO 1 2\n",
			code:  errors.ErrCodeUnknownLine,
		},
		{
			name:  "LowercaseKeyword",
			input: "units 100\n",
			code:  errors.ErrCodeUnknownLine,
		},
		{
			name:  "V1BlockOpener",
			input: "TRANSISTORS 2\n",
			code:  errors.ErrCodeUnknownLine,
		},
		{
			name:  "V1Terminator",
			input: "END TRANSISTORS\n",
			code:  errors.ErrCodeUnknownLine,
		},
		{
			name:  "TransistorSixFields",
			input: "TRANSISTOR T1 0 0 0 NMOS\n",
			code:  errors.ErrCodeFieldCount,
		},
		{
			name:  "TransistorEightFields",
			input: "TRANSISTOR T1 0 0 0 NMOS g1 extra\n",
			code:  errors.ErrCodeFieldCount,
		},
		{
			name:  "PinFieldCount",
			input: "PIN clk 10 20\n",
			code:  errors.ErrCodeFieldCount,
		},
		{
			name:  "PinNonNumeric",
			input: "PIN clk ten 20 net_clk\n",
			code:  errors.ErrCodeInvalidNumber,
		},
		{
			name:  "MacroFieldCount",
			input: "SDC sdc_0 RAM32 100 200 500\n",
			code:  errors.ErrCodeFieldCount,
		},
		{
			name:  "DieAreaFieldCount",
			input: "DIEAREA 0 0 100\n",
			code:  errors.ErrCodeFieldCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseV2(tt.input)
			if err == nil {
				t.Fatal("ParseV2() succeeded, want error")
			}
			if m != nil {
				t.Error("failed parse must not return a model")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("error code = %q, want %q (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestParseV2RecordOrder(t *testing.T) {
	input := `TRANSISTOR B 1 0 0 NMOS g1
TRANSISTOR A 0 0 0 NMOS g1
PIN p2 0 0 n2
PIN p1 0 0 n1
PATH (1 1) (2 2)
PATH (3 3)
`
	m, err := ParseV2(input)
	if err != nil {
		t.Fatalf("ParseV2() error: %v", err)
	}
	if m.Transistors[0].Name != "B" || m.Transistors[1].Name != "A" {
		t.Error("transistors must preserve source line order, not sort")
	}
	if m.Pins[0].Name != "p2" || m.Pins[1].Name != "p1" {
		t.Error("pins must preserve source line order")
	}
	if m.Paths[0][0] != (Point{X: 1, Y: 1}) || m.Paths[1][0] != (Point{X: 3, Y: 3}) {
		t.Error("paths must preserve source line order")
	}
}

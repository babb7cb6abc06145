package bankbook

import (
	"encoding/json"
	"testing"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "1250", want: "1250"},
		{in: "1250.50", want: "1250.5"},
		{in: "-42.10", want: "-42.1"},
		{in: "0", want: "0"},
		{in: "not a number", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			a, err := ParseAmount(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseAmount(%q) must fail", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) returned an unexpected error: %v", tc.in, err)
			}
			if a.String() != tc.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tc.in, a, tc.want)
			}
		})
	}
}

func TestAmount_JSONRoundTrip(t *testing.T) {
	// amounts persist as plain JSON numbers, not quoted strings
	data, err := json.Marshal(A(1250.5))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1250.5" {
		t.Errorf("marshal = %s, want a bare number", data)
	}

	var a Amount
	if err := json.Unmarshal(data, &a); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(A(1250.5)) {
		t.Errorf("round-trip = %s, want 1250.5", a)
	}
}

func TestAmount_Arithmetic(t *testing.T) {
	sum := A(1000).Add(A(500))
	if !sum.Equal(A(1500)) {
		t.Errorf("1000+500 = %s, want 1500", sum)
	}
	ratio := A(1500).Div(A(10000))
	if ratio.AsFloat() != 0.15 {
		t.Errorf("1500/10000 = %v, want 0.15", ratio.AsFloat())
	}
	if !A(0).IsZero() || A(1).IsZero() {
		t.Error("IsZero misbehaves")
	}
	if !A(-1).IsNegative() || !A(1).IsPositive() {
		t.Error("sign predicates misbehave")
	}
}

func TestAmount_Display(t *testing.T) {
	testCases := []struct {
		value float64
		code  string
		want  string
	}{
		{value: 1250, code: "USD", want: "$1,250.00"},
		{value: 1250.5, code: "USD", want: "$1,250.50"},
		{value: 0, code: "USD", want: "$0.00"},
	}
	for _, tc := range testCases {
		if got := A(tc.value).Display(tc.code); got != tc.want {
			t.Errorf("A(%v).Display(%q) = %q, want %q", tc.value, tc.code, got, tc.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if Percent(19.99).String() != "19.99%" {
		t.Errorf("String() = %s", Percent(19.99))
	}
	if !Percent(19.99).Equal(19.99 + 0.00001) {
		t.Error("Equal must tolerate tiny differences")
	}
	if Percent(19.99).Equal(20) {
		t.Error("Equal must reject real differences")
	}
}

package valuation

import "testing"

func TestParseMonetaryBillions(t *testing.T) {
	cases := []struct {
		in     string
		want   float64
		absent bool
	}{
		{in: "$6.7B", want: 6.7},
		{in: "$930M", want: 0.93},
		{in: "$5B", want: 5},
		{in: "$1.05b", want: 1.05},
		{in: "$250m", want: 0.25},
		{in: "6.7", want: 6.7},
		{in: " $6.7B ", want: 6.7},
		{in: "N/A", absent: true},
		{in: "n/a", absent: true},
		{in: "-", absent: true},
		{in: "", absent: true},
		{in: "   ", absent: true},
		{in: "TBD", absent: true},
		{in: "$..B", absent: true},
	}
	for _, c := range cases {
		got := ParseMonetaryBillions(c.in)
		if c.absent {
			if got != nil {
				t.Errorf("ParseMonetaryBillions(%q) = %v, want absent", c.in, *got)
			}
			continue
		}
		if got == nil {
			t.Errorf("ParseMonetaryBillions(%q) = absent, want %v", c.in, c.want)
			continue
		}
		if *got != c.want {
			t.Errorf("ParseMonetaryBillions(%q) = %v, want %v", c.in, *got, c.want)
		}
	}
}

func TestParsePercent(t *testing.T) {
	cases := []struct {
		in     string
		want   float64
		absent bool
	}{
		{in: "19%", want: 19},
		{in: "0%", want: 0},
		{in: "7.5%", want: 7.5},
		{in: "0", want: 0},
		{in: "42", want: 42},
		{in: "N/A", absent: true},
		{in: "-", absent: true},
		{in: "", absent: true},
		{in: "none", absent: true},
	}
	for _, c := range cases {
		got := ParsePercent(c.in)
		if c.absent {
			if got != nil {
				t.Errorf("ParsePercent(%q) = %v, want absent", c.in, *got)
			}
			continue
		}
		if got == nil {
			t.Errorf("ParsePercent(%q) = absent, want %v", c.in, c.want)
			continue
		}
		if *got != c.want {
			t.Errorf("ParsePercent(%q) = %v, want %v", c.in, *got, c.want)
		}
	}
}

func TestParseRank(t *testing.T) {
	if n, ok := parseRank("1."); !ok || n != 1 {
		t.Fatalf("parseRank(\"1.\") = %d, %v", n, ok)
	}
	if n, ok := parseRank(" 25 "); !ok || n != 25 {
		t.Fatalf("parseRank(\" 25 \") = %d, %v", n, ok)
	}
	if _, ok := parseRank("Rank"); ok {
		t.Fatal("expected header text to fail rank parse")
	}
	if _, ok := parseRank(""); ok {
		t.Fatal("expected empty text to fail rank parse")
	}
}

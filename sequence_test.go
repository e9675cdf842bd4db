package decimal128

import "testing"

func TestNewDseq(t *testing.T) {
	tests := []struct {
		ipart, fpart string
		wantCoef     string
		wantExp      int
	}{
		{"", "", "", 0},
		{"0", "", "", 0},
		{"0", "000", "", 0},
		{"000", "000", "", 0},
		{"1", "", "1", 1},
		{"001", "", "1", 1},
		{"100", "", "1", 3},
		{"1", "23", "123", 1},
		{"0", "5", "5", 0},
		{"0", "005", "5", -2},
		{"12", "500", "125", 2},
		{"0", "50", "5", 0},
		{"10", "01", "1001", 2},
	}
	for _, tt := range tests {
		got := newDseq(tt.ipart, tt.fpart)
		if got.coef != tt.wantCoef || got.exp != tt.wantExp {
			t.Errorf("newDseq(%q, %q) = {%q, %v}, want {%q, %v}",
				tt.ipart, tt.fpart, got.coef, got.exp, tt.wantCoef, tt.wantExp)
		}
	}
}

func TestDseq_parts(t *testing.T) {
	tests := []struct {
		coef         string
		exp          int
		ipart, fpart string
	}{
		{"", 0, "", ""},
		{"1", 1, "1", ""},
		{"1", 3, "100", ""},
		{"123", 1, "1", "23"},
		{"123", 3, "123", ""},
		{"5", 0, "", "5"},
		{"5", -2, "", "005"},
	}
	for _, tt := range tests {
		s := dseq{coef: tt.coef, exp: tt.exp}
		ipart, fpart := s.parts()
		if ipart != tt.ipart || fpart != tt.fpart {
			t.Errorf("{%q, %v}.parts() = (%q, %q), want (%q, %q)",
				tt.coef, tt.exp, ipart, fpart, tt.ipart, tt.fpart)
		}
	}
}

func TestDseq_render(t *testing.T) {
	tests := []struct {
		coef string
		exp  int
		want string
	}{
		{"", 0, "0"},
		{"1", 1, "1"},
		{"1", 3, "100"},
		{"123", 1, "1.23"},
		{"5", -2, "0.005"},
		{"5", 0, "0.5"},
	}
	for _, tt := range tests {
		s := dseq{coef: tt.coef, exp: tt.exp}
		if got := s.render(); got != tt.want {
			t.Errorf("{%q, %v}.render() = %q, want %q", tt.coef, tt.exp, got, tt.want)
		}
	}
}

func TestDseq_isInt(t *testing.T) {
	tests := []struct {
		coef string
		exp  int
		want bool
	}{
		{"", 0, true},
		{"1", 1, true},
		{"1", 3, true},
		{"123", 1, false},
		{"5", 0, false},
		{"5", -2, false},
	}
	for _, tt := range tests {
		s := dseq{coef: tt.coef, exp: tt.exp}
		if got := s.isInt(); got != tt.want {
			t.Errorf("{%q, %v}.isInt() = %v, want %v", tt.coef, tt.exp, got, tt.want)
		}
	}
}

func TestDseq_roundPrec(t *testing.T) {
	tests := []struct {
		coef string
		exp  int
		prec int
		want string
	}{
		{"123456", 1, 4, "1.234"}, // only the first discarded digit decides
		{"123466", 1, 4, "1.235"},
		{"123446", 1, 4, "1.234"},
		{"12345", 1, 4, "1.234"}, // tie, even kept digit
		{"12355", 1, 4, "1.236"}, // tie, odd kept digit
		{"99995", 1, 4, "10"},    // carry off the top
		{"123456", 1, 6, "1.23456"},
		{"5", -2, 4, "0.005"},
	}
	for _, tt := range tests {
		s := dseq{coef: tt.coef, exp: tt.exp}
		if got := s.roundPrec(tt.prec).render(); got != tt.want {
			t.Errorf("{%q, %v}.roundPrec(%v) = %q, want %q", tt.coef, tt.exp, tt.prec, got, tt.want)
		}
	}
}

func TestDseq_roundFrac(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		neg  bool
		mode RoundingMode
		want string
	}{
		{"9.95", 1, false, RoundHalfExpand, "10"},
		{"9.99", 0, false, RoundHalfEven, "10"},
		{"0.7", 0, true, RoundFloor, "1"},
		{"0.7", 0, false, RoundFloor, "0"},
		{"2.45", 1, false, RoundHalfEven, "2.4"},
		{"2.55", 1, false, RoundHalfEven, "2.6"},
		{"0.05", 1, false, RoundTrunc, "0"},
		{"999.99", 1, false, RoundExpand, "1000"},
	}
	for _, tt := range tests {
		d := MustParse(tt.s)
		got := d.coef.roundFrac(tt.n, tt.neg, tt.mode).render()
		if got != tt.want {
			t.Errorf("%q.roundFrac(%v, %v, %v) = %q, want %q", tt.s, tt.n, tt.neg, tt.mode, got, tt.want)
		}
	}
}

func TestDseq_toPlaces(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"3.335", 2, "3.34"},
		{"3.331", 2, "3.34"},
		{"9.995", 2, "10"},
		{"0.19", 1, "0.2"},
		{"2.1", 0, "3"},
		{"9.9", 0, "10"},
	}
	for _, tt := range tests {
		d := MustParse(tt.s)
		got := d.coef.toPlaces(tt.n).render()
		if got != tt.want {
			t.Errorf("%q.toPlaces(%v) = %q, want %q", tt.s, tt.n, got, tt.want)
		}
	}
}

func TestDseq_succ(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"0", "1"},
		{"1", "2"},
		{"9", "10"},
		{"99", "100"},
		{"100", "101"},
		{"109", "110"},
	}
	for _, tt := range tests {
		d := MustParse(tt.s)
		if got := d.coef.succ().render(); got != tt.want {
			t.Errorf("%q.succ() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestRoundDigit(t *testing.T) {
	tests := []struct {
		mode RoundingMode
		neg  bool
		d, r digit
		want digit
	}{
		{RoundCeiling, false, 2, 1, 3},
		{RoundCeiling, true, 2, 9, 2},
		{RoundFloor, false, 2, 9, 2},
		{RoundFloor, true, 2, 1, 3},
		{RoundExpand, false, 2, 1, 3},
		{RoundExpand, true, 2, 1, 3},
		{RoundTrunc, false, 2, 9, 2},
		{RoundTrunc, true, 2, 9, 2},
		{RoundHalfEven, false, 2, 5, 2},
		{RoundHalfEven, false, 3, 5, 4},
		{RoundHalfEven, false, 2, 6, 3},
		{RoundHalfEven, false, 2, 4, 2},
		{RoundHalfExpand, false, 2, 5, 3},
		{RoundHalfExpand, true, 2, 5, 3},
		{RoundHalfExpand, false, 2, 4, 2},
		{RoundHalfCeiling, false, 2, 5, 3},
		{RoundHalfCeiling, true, 2, 5, 2},
		{RoundHalfFloor, false, 2, 5, 2},
		{RoundHalfFloor, true, 2, 5, 3},
		{RoundHalfFloor, false, 2, 6, 3},
		{RoundHalfTrunc, false, 2, 5, 2},
		{RoundHalfTrunc, false, 2, 6, 3},
		{RoundHalfEven, false, 9, 5, 10}, // carry signal
		{RoundCeiling, false, noDigit, 1, 1},
		{RoundTrunc, false, noDigit, 9, 0},
	}
	for _, tt := range tests {
		got := roundDigit(tt.mode, tt.neg, tt.d, tt.r)
		if got != tt.want {
			t.Errorf("roundDigit(%v, %v, %v, %v) = %v, want %v", tt.mode, tt.neg, tt.d, tt.r, got, tt.want)
		}
	}
}

func TestPropagate(t *testing.T) {
	tests := []struct {
		buf     []digit
		want    []digit
		carried bool
	}{
		{[]digit{1, 2, 3}, []digit{1, 2, 3}, false},
		{[]digit{1, 2, 10}, []digit{1, 3, 0}, false},
		{[]digit{1, 9, 10}, []digit{2, 0, 0}, false},
		{[]digit{9, 9, 10}, []digit{0, 0, 0}, true},
		{[]digit{10}, []digit{0}, true},
	}
	for _, tt := range tests {
		got, carried := propagate(append([]digit(nil), tt.buf...))
		if carried != tt.carried {
			t.Errorf("propagate(%v) carried = %v, want %v", tt.buf, carried, tt.carried)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("propagate(%v) = %v, want %v", tt.buf, got, tt.want)
				break
			}
		}
	}
}

func TestRoundingMode_String(t *testing.T) {
	tests := []struct {
		mode RoundingMode
		want string
	}{
		{RoundCeiling, "ceiling"},
		{RoundFloor, "floor"},
		{RoundExpand, "expand"},
		{RoundTrunc, "trunc"},
		{RoundHalfEven, "half-even"},
		{RoundHalfExpand, "half-expand"},
		{RoundHalfCeiling, "half-ceiling"},
		{RoundHalfFloor, "half-floor"},
		{RoundHalfTrunc, "half-trunc"},
		{RoundingMode(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("RoundingMode(%d).String() = %q, want %q", uint8(tt.mode), got, tt.want)
		}
	}
}

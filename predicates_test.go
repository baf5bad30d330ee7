package intervals

import "testing"

func TestInterval_Contains(t *testing.T) {
	cases := []struct {
		name string
		iv   Interval[Int]
		val  int
		exp  bool
	}{
		{"left_endpoint", ii(0, 10), 0, true},
		{"right_endpoint", ii(0, 10), 10, true},
		{"interior", ii(0, 10), 5, true},
		{"below", ii(0, 10), -1, false},
		{"above", ii(0, 10), 11, false},
		{"greater_than_excludes_value", NewGreaterThan(Int(5)), 5, false},
		{"greater_than_next", NewGreaterThan(Int(5)), 6, true},
		{"at_most", NewAtMost(Int(5)), -100, true},
		{"unbounded", NewUnbounded[Int](), 42, true},
		{"empty", NewEmpty[Int](), 0, false},
	}
	for _, tc := range cases {
		if got := tc.iv.Contains(Int(tc.val)); got != tc.exp {
			t.Fatalf("%s: %s.Contains(%d) = %v, want %v", tc.name, tc.iv, tc.val, got, tc.exp)
		}
	}
	if NewOpen(Real(0), Real(10)).Contains(0) {
		t.Fatalf("(0.0, 10.0) must not contain 0")
	}
	if !NewOpen(Real(0), Real(10)).Contains(0.0001) {
		t.Fatalf("(0.0, 10.0) must contain 0.0001")
	}
}

func TestInterval_ContainsInterval(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval[Real]
		exp  bool
	}{
		{"closed_holds_open", rr(0, 10), NewOpen(Real(0), Real(10)), true},
		{"open_misses_closed", NewOpen(Real(0), Real(10)), rr(0, 10), false},
		{"self", rr(0, 10), rr(0, 10), true},
		{"empty_subset", rr(0, 10), NewEmpty[Real](), true},
		{"empty_holds_nothing", NewEmpty[Real](), rr(0, 10), false},
		{"empty_holds_empty", NewEmpty[Real](), NewEmpty[Real](), true},
		{"ray_holds_finite", NewAtLeast(Real(0)), rr(5, 500), true},
		{"unbounded_holds_ray", NewUnbounded[Real](), NewAtLeast(Real(0)), true},
		{"overlap_is_not_subset", rr(0, 10), rr(5, 15), false},
	}
	for _, tc := range cases {
		if got := tc.a.ContainsInterval(tc.b); got != tc.exp {
			t.Fatalf("%s: %s.ContainsInterval(%s) = %v, want %v", tc.name, tc.a, tc.b, got, tc.exp)
		}
	}
}

func TestInterval_Intersects(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval[Real]
		exp  bool
	}{
		{"shared_endpoint", rr(0, 5), rr(5, 10), true},
		{"open_touch", NewClosedOpen(Real(0), Real(5)), rr(5, 10), false},
		{"both_open_touch", NewClosedOpen(Real(0), Real(5)), NewOpenClosed(Real(5), Real(10)), false},
		{"disjoint", rr(0, 5), rr(6, 10), false},
		{"nested", rr(0, 10), rr(3, 4), true},
		{"opposed_rays", NewAtMost(Real(0)), NewAtLeast(Real(0)), true},
		{"open_rays_miss", NewLessThan(Real(0)), NewGreaterThan(Real(0)), false},
		{"empty", rr(0, 5), NewEmpty[Real](), false},
	}
	for _, tc := range cases {
		if got := tc.a.Intersects(tc.b); got != tc.exp {
			t.Fatalf("%s: %s.Intersects(%s) = %v, want %v", tc.name, tc.a, tc.b, got, tc.exp)
		}
		if got := tc.b.Intersects(tc.a); got != tc.exp {
			t.Fatalf("%s: Intersects is symmetric, got %v want %v", tc.name, got, tc.exp)
		}
	}
	if !ii(0, 5).Intersects(ii(5, 10)) {
		t.Fatalf("[0, 5] and [5, 10] share 5")
	}
	if ii(0, 5).Intersects(ii(6, 10)) {
		t.Fatalf("[0, 5] and [6, 10] share nothing")
	}
}

func TestInterval_Connects_Discrete(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval[Int]
		exp  bool
	}{
		{"adjacent", ii(1, 5), ii(6, 10), true},
		{"one_between", ii(1, 5), ii(7, 10), false},
		{"overlap", ii(1, 5), ii(3, 10), true},
		{"shared_endpoint", ii(0, 10), ii(10, 20), true},
		{"empty_connects", ii(1, 5), NewEmpty[Int](), true},
		{"ray_meets_next", NewAtMost(Int(5)), NewAtLeast(Int(6)), true},
		{"ray_gap", NewAtMost(Int(5)), NewAtLeast(Int(7)), false},
	}
	for _, tc := range cases {
		if got := tc.a.Connects(tc.b); got != tc.exp {
			t.Fatalf("%s: %s.Connects(%s) = %v, want %v", tc.name, tc.a, tc.b, got, tc.exp)
		}
		if got := tc.b.Connects(tc.a); got != tc.exp {
			t.Fatalf("%s: Connects is symmetric, got %v want %v", tc.name, got, tc.exp)
		}
	}
}

func TestInterval_Connects_Continuous(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval[Real]
		exp  bool
	}{
		{"unit_gap", rr(1, 5), rr(6, 10), false},
		{"closed_touch", rr(0, 5), rr(5, 10), true},
		{"half_open_touch", NewClosedOpen(Real(0), Real(5)), rr(5, 10), true},
		{"both_open_touch", NewClosedOpen(Real(0), Real(5)), NewOpenClosed(Real(5), Real(10)), false},
		{"open_rays_at_same_value", NewLessThan(Real(0)), NewGreaterThan(Real(0)), false},
		{"closed_ray_touch", NewAtMost(Real(0)), NewGreaterThan(Real(0)), true},
	}
	for _, tc := range cases {
		if got := tc.a.Connects(tc.b); got != tc.exp {
			t.Fatalf("%s: %s.Connects(%s) = %v, want %v", tc.name, tc.a, tc.b, got, tc.exp)
		}
	}
}

func TestInterval_Adjacent(t *testing.T) {
	intCases := []struct {
		name string
		a, b Interval[Int]
		exp  bool
	}{
		{"adjacent", ii(1, 5), ii(6, 10), true},
		{"reversed", ii(6, 10), ii(1, 5), true},
		{"shared_endpoint", ii(0, 10), ii(10, 20), false},
		{"gap", ii(1, 5), ii(8, 10), false},
		{"empty", ii(1, 5), NewEmpty[Int](), false},
	}
	for _, tc := range intCases {
		if got := tc.a.Adjacent(tc.b); got != tc.exp {
			t.Fatalf("%s: %s.Adjacent(%s) = %v, want %v", tc.name, tc.a, tc.b, got, tc.exp)
		}
	}
	realCases := []struct {
		name string
		a, b Interval[Real]
		exp  bool
	}{
		{"closed_touch", rr(0, 10), rr(10, 20), true},
		{"open_touch_one_side", NewClosedOpen(Real(0), Real(10)), rr(10, 20), true},
		{"both_open_touch", NewClosedOpen(Real(0), Real(10)), NewOpenClosed(Real(10), Real(20)), false},
		{"unit_gap", rr(0, 10), rr(11, 20), false},
	}
	for _, tc := range realCases {
		if got := tc.a.Adjacent(tc.b); got != tc.exp {
			t.Fatalf("%s: %s.Adjacent(%s) = %v, want %v", tc.name, tc.a, tc.b, got, tc.exp)
		}
	}
}

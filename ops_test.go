package intervals

import "testing"

func TestInterval_Intersection(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval[Real]
		exp  string
	}{
		{"overlap", rr(0, 10), rr(5, 15), "[5, 10]"},
		{"touch", rr(0, 10), rr(10, 20), "[10, 10]"},
		{"nested", rr(0, 10), NewOpen(Real(2), Real(3)), "(2, 3)"},
		{"open_clips_closed", NewOpen(Real(0), Real(10)), rr(0, 5), "(0, 5]"},
		{"rays", NewAtMost(Real(5)), NewAtLeast(Real(0)), "[0, 5]"},
		{"disjoint", rr(0, 5), rr(6, 10), "{}"},
		{"with_unbounded", NewUnbounded[Real](), rr(0, 5), "[0, 5]"},
		{"with_empty", rr(0, 5), NewEmpty[Real](), "{}"},
		{"same_side_rays", NewAtLeast(Real(0)), NewGreaterThan(Real(5)), "(5, ->)"},
	}
	for _, tc := range cases {
		if got := tc.a.Intersection(tc.b).String(); got != tc.exp {
			t.Fatalf("%s: %s Intersection %s = %s, want %s", tc.name, tc.a, tc.b, got, tc.exp)
		}
		if got := tc.b.Intersection(tc.a).String(); got != tc.exp {
			t.Fatalf("%s: Intersection is symmetric, got %s want %s", tc.name, got, tc.exp)
		}
	}
}

func TestInterval_Hull(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval[Real]
		exp  string
	}{
		{"disjoint", rr(0, 5), rr(20, 30), "[0, 30]"},
		{"nested", rr(0, 30), rr(5, 10), "[0, 30]"},
		{"open_edges_survive", NewOpen(Real(0), Real(5)), NewOpenClosed(Real(5), Real(10)), "(0, 10]"},
		{"ray", rr(0, 5), NewAtMost(Real(0)), "(<-, 5]"},
		{"empty_identity", rr(0, 5), NewEmpty[Real](), "[0, 5]"},
		{"both_rays", NewAtMost(Real(0)), NewAtLeast(Real(100)), "(<-, ->)"},
	}
	for _, tc := range cases {
		if got := tc.a.Hull(tc.b).String(); got != tc.exp {
			t.Fatalf("%s: %s Hull %s = %s, want %s", tc.name, tc.a, tc.b, got, tc.exp)
		}
	}
}

func TestInterval_TryMerge(t *testing.T) {
	if got, ok := ii(0, 5).TryMerge(ii(6, 10)); !ok || !got.Equal(ii(0, 10)) {
		t.Fatalf("[0, 5] merge [6, 10] = %s, %v", got, ok)
	}
	if _, ok := ii(0, 5).TryMerge(ii(7, 10)); ok {
		t.Fatalf("[0, 5] and [7, 10] must not merge")
	}
	if got, ok := NewClosedOpen(Real(0), Real(5)).TryMerge(rr(5, 10)); !ok || !got.Equal(rr(0, 10)) {
		t.Fatalf("[0.0, 5.0) merge [5.0, 10.0] = %s, %v", got, ok)
	}
	if _, ok := rr(0, 5).TryMerge(rr(6, 10)); ok {
		t.Fatalf("[0.0, 5.0] and [6.0, 10.0] must not merge")
	}
	if got, ok := NewEmpty[Int]().TryMerge(ii(1, 2)); !ok || !got.Equal(ii(1, 2)) {
		t.Fatalf("empty merge [1, 2] = %s, %v", got, ok)
	}
}

func TestInterval_UnionToSet(t *testing.T) {
	if got := ii(0, 5).Union(ii(6, 10)).String(); got != "{[0, 10]}" {
		t.Fatalf("integer union = %s", got)
	}
	if got := rr(0, 5).Union(rr(6, 10)).String(); got != "{[0, 5], [6, 10]}" {
		t.Fatalf("real union = %s", got)
	}
	// operand order is irrelevant
	if got := rr(6, 10).Union(rr(0, 5)).String(); got != "{[0, 5], [6, 10]}" {
		t.Fatalf("reversed real union = %s", got)
	}
}

func TestInterval_Complement(t *testing.T) {
	cases := []struct {
		name string
		got  string
		exp  string
	}{
		{"int_finite", ii(0, 10).Complement().String(), "{(<-, -1], [11, ->)}"},
		{"real_finite", rr(0, 10).Complement().String(), "{(<-, 0), (10, ->)}"},
		{"real_open", NewOpen(Real(0), Real(10)).Complement().String(), "{(<-, 0], [10, ->)}"},
		{"ray", NewAtLeast(Int(5)).Complement().String(), "{(<-, 4]}"},
		{"empty", NewEmpty[Real]().Complement().String(), "{(<-, ->)}"},
		{"unbounded", NewUnbounded[Real]().Complement().String(), "{}"},
	}
	for _, tc := range cases {
		if tc.got != tc.exp {
			t.Fatalf("%s: complement = %s, want %s", tc.name, tc.got, tc.exp)
		}
	}
}

func TestInterval_Difference(t *testing.T) {
	if got := ii(0, 10).Difference(ii(3, 6)).String(); got != "{[0, 2], [7, 10]}" {
		t.Fatalf("integer difference = %s", got)
	}
	if got := rr(0, 10).Difference(rr(3, 6)).String(); got != "{[0, 3), (6, 10]}" {
		t.Fatalf("real difference = %s", got)
	}
	if got := rr(3, 6).Difference(rr(0, 10)).String(); got != "{}" {
		t.Fatalf("difference of a superset = %s", got)
	}
	if got := rr(0, 10).Difference(NewEmpty[Real]()).String(); got != "{[0, 10]}" {
		t.Fatalf("difference with empty = %s", got)
	}
}

func TestInterval_SymmetricDifference(t *testing.T) {
	if got := ii(0, 10).SymmetricDifference(ii(5, 15)).String(); got != "{[0, 4], [11, 15]}" {
		t.Fatalf("integer symmetric difference = %s", got)
	}
	if got := rr(0, 10).SymmetricDifference(rr(5, 15)).String(); got != "{[0, 5), (10, 15]}" {
		t.Fatalf("real symmetric difference = %s", got)
	}
	if got := rr(0, 10).SymmetricDifference(rr(0, 10)).String(); got != "{}" {
		t.Fatalf("self symmetric difference = %s", got)
	}
}

func TestInterval_Rebound(t *testing.T) {
	if got := ii(0, 10).WithLeft(OpenBound(Int(2))); !got.Equal(ii(3, 10)) {
		t.Fatalf("WithLeft((2) on [0, 10] = %s", got)
	}
	if got := ii(0, 10).WithRight(ClosedBound(Int(4))); !got.Equal(ii(0, 4)) {
		t.Fatalf("WithRight(4]) on [0, 10] = %s", got)
	}
	if got := ii(0, 10).WithoutRight().String(); got != "[0, ->)" {
		t.Fatalf("WithoutRight on [0, 10] = %s", got)
	}
	if got := NewAtMost(Int(5)).WithLeft(ClosedBound(Int(0))); !got.Equal(ii(0, 5)) {
		t.Fatalf("WithLeft([0) on (<-, 5] = %s", got)
	}
	if got := NewUnbounded[Int]().WithoutLeft().String(); got != "(<-, ->)" {
		t.Fatalf("WithoutLeft on (<-, ->) = %s", got)
	}
	if got := ii(5, 10).WithRight(OpenBound(Int(5))); !got.IsEmpty() {
		t.Fatalf("rebinding past the other end must empty the interval, got %s", got)
	}
	if got := NewEmpty[Int]().WithLeft(ClosedBound(Int(0))); !got.IsEmpty() {
		t.Fatalf("rebinding empty stays empty, got %s", got)
	}
}

func TestInterval_Split(t *testing.T) {
	l, r := ii(0, 10).Split(Int(5), Left)
	if !l.Equal(ii(0, 5)) || !r.Equal(ii(6, 10)) {
		t.Fatalf("split [0, 10] at 5 keeping left = %s, %s", l, r)
	}
	l, r = ii(0, 10).Split(Int(5), Right)
	if !l.Equal(ii(0, 4)) || !r.Equal(ii(5, 10)) {
		t.Fatalf("split [0, 10] at 5 keeping right = %s, %s", l, r)
	}
	lr, rd := rr(0, 10).Split(Real(5), Left)
	if lr.String() != "[0, 5]" || rd.String() != "(5, 10]" {
		t.Fatalf("split [0.0, 10.0] at 5 = %s, %s", lr, rd)
	}
	l, r = ii(0, 10).Split(Int(-5), Left)
	if !l.IsEmpty() || !r.Equal(ii(0, 10)) {
		t.Fatalf("split below the interval = %s, %s", l, r)
	}
	l, r = ii(0, 10).Split(Int(20), Left)
	if !l.Equal(ii(0, 10)) || !r.IsEmpty() {
		t.Fatalf("split above the interval = %s, %s", l, r)
	}
	lr, rd = NewUnbounded[Real]().Split(Real(0), Left)
	if lr.String() != "(<-, 0]" || rd.String() != "(0, ->)" {
		t.Fatalf("split (<-, ->) at 0 = %s, %s", lr, rd)
	}
}

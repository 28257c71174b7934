package bignum

import "testing"

func mustRead(t *testing.T, s string, radix int) *Int {
	t.Helper()
	x := New()
	if err := x.ReadRadix(s, radix); err != nil {
		t.Fatalf("ReadRadix(%q, %d): %v", s, radix, err)
	}
	return x
}

func TestAddCommutative(t *testing.T) {
	a := mustRead(t, "123456789012345678901234567890", 10)
	b := mustRead(t, "98765432109876543210", 10)

	var ab, ba Int
	ab.Add(a, b)
	ba.Add(b, a)
	if !ab.Eq(&ba) {
		t.Fatalf("add not commutative: %s vs %s", ab.String(), ba.String())
	}
}

func TestAddNegIsZero(t *testing.T) {
	a := mustRead(t, "7", 10)
	var negA, sum Int
	negA.Neg(a)
	sum.Add(a, &negA)
	if !sum.IsZero() {
		t.Fatalf("add(a, neg(a)) = %s, want 0", sum.String())
	}
}

func TestSubIsAddNeg(t *testing.T) {
	a := mustRead(t, "555555555555555555", 10)
	b := mustRead(t, "123456789", 10)

	var sub, negB, addNegB Int
	sub.Sub(a, b)
	negB.Neg(b)
	addNegB.Add(a, &negB)
	if !sub.Eq(&addNegB) {
		t.Fatalf("sub(a,b) = %s, want %s", sub.String(), addNegB.String())
	}
}

func TestMulIdentityAndZero(t *testing.T) {
	a := mustRead(t, "9999999999999999999", 10)
	one := NewFromUint64(1)
	zero := New()

	var mulOne, mulZero Int
	mulOne.Mul(a, one)
	mulZero.Mul(a, zero)
	if !mulOne.Eq(a) {
		t.Fatalf("mul(a,1) = %s, want %s", mulOne.String(), a.String())
	}
	if !mulZero.IsZero() {
		t.Fatalf("mul(a,0) = %s, want 0", mulZero.String())
	}
}

// Division edge case from spec.md §8: 163841 / 10 = 16384 remainder 1.
func TestDivEdgeCase(t *testing.T) {
	x := NewFromUint64(163841)
	y := NewFromUint64(10)

	q, r := New(), New()
	if err := q.Div(r, x, y); err != nil {
		t.Fatal(err)
	}
	if !q.Eq(NewFromUint64(16384)) || !r.Eq(NewFromUint64(1)) {
		t.Fatalf("163841/10 = %s r %s, want 16384 r 1", q.String(), r.String())
	}
}

// Normalised division from spec.md §8: x = 2^128, y = 0xFFFF.
func TestDivNormalised(t *testing.T) {
	x := mustRead(t, "100000000000000000000000000000000", 16)
	y := mustRead(t, "FFFF", 16)

	q, r := New(), New()
	if err := q.Div(r, x, y); err != nil {
		t.Fatal(err)
	}
	if !r.Lt(y) {
		t.Fatalf("remainder %s not < divisor %s", r.String(), y.String())
	}
	var check, reconstructed Int
	check.Mul(q, y)
	reconstructed.Add(&check, r)
	if !reconstructed.Eq(x) {
		t.Fatalf("q*y+r = %s, want %s", reconstructed.String(), x.String())
	}
}

func TestDivSignedLaw(t *testing.T) {
	cases := []struct{ x, y int64 }{
		{17, 5}, {-17, 5}, {17, -5}, {-17, -5},
		{10, 5}, {-10, 5}, {0, 7},
	}
	for _, c := range cases {
		x := NewFromInt64(c.x)
		y := NewFromInt64(c.y)
		q, r := New(), New()
		if err := q.Div(r, x, y); err != nil {
			t.Fatalf("Div(%d,%d): %v", c.x, c.y, err)
		}
		if r.IsNegative() {
			t.Fatalf("Div(%d,%d): r=%s is negative", c.x, c.y, r.String())
		}
		absY := New()
		absY.Abs(y)
		if !r.Lt(absY) {
			t.Fatalf("Div(%d,%d): r=%s not < |y|", c.x, c.y, r.String())
		}
		var check, reconstructed Int
		check.Mul(q, y)
		reconstructed.Add(&check, r)
		if !reconstructed.Eq(x) {
			t.Fatalf("Div(%d,%d): q*y+r = %s, want %d", c.x, c.y, reconstructed.String(), c.x)
		}
	}
}

func TestExpModLaws(t *testing.T) {
	a := mustRead(t, "123456789", 10)
	m := mustRead(t, "1000000007", 10)

	var z Int
	if err := z.ExpMod(a, New(), m); err != nil {
		t.Fatal(err)
	}
	if !z.IsOne() {
		t.Fatalf("exp_mod(a,0,m) = %s, want 1", z.String())
	}

	one := NewFromUint64(1)
	if err := z.ExpMod(a, one, m); err != nil {
		t.Fatal(err)
	}
	var aModM Int
	aModM.Mod(a, m)
	if !z.Eq(&aModM) {
		t.Fatalf("exp_mod(a,1,m) = %s, want a mod m = %s", z.String(), aModM.String())
	}

	b := NewFromUint64(7)
	c := NewFromUint64(11)
	var bc, lhs1, lhs2, lhs, rhs Int
	bc.Add(b, c)
	lhs1.ExpMod(a, b, m)
	lhs2.ExpMod(a, c, m)
	lhs.Mul(&lhs1, &lhs2)
	lhs.Mod(&lhs, m)
	rhs.ExpMod(a, &bc, m)
	if !lhs.Eq(&rhs) {
		t.Fatalf("exp_mod(a,b,m)*exp_mod(a,c,m) = %s, want exp_mod(a,b+c,m) = %s", lhs.String(), rhs.String())
	}
}

func TestRadixRoundTrip(t *testing.T) {
	const decimal = "-239047484999999923423467745634786754234765123478445161161274748484894594574635384756768537685123547812534872147865214786512347851238745123784123794619234617657685785857865543453346234223413423465764786576778484945889076876768527843652780569984845"

	x := mustRead(t, decimal, 10)
	s, err := x.WriteRadix(10)
	if err != nil {
		t.Fatal(err)
	}
	if s != decimal {
		t.Fatalf("round-trip mismatch:\n got %s\nwant %s", s, decimal)
	}
}

func TestRadixRoundTripAllBases(t *testing.T) {
	x := mustRead(t, "123456789012345678901234567890", 10)
	for radix := 2; radix <= 16; radix++ {
		s, err := x.WriteRadix(radix)
		if err != nil {
			t.Fatalf("radix %d: %v", radix, err)
		}
		var y Int
		if err := y.ReadRadix(s, radix); err != nil {
			t.Fatalf("radix %d: ReadRadix: %v", radix, err)
		}
		if !y.Eq(x) {
			t.Fatalf("radix %d round-trip mismatch: %s", radix, s)
		}
	}
}

func TestExtGcdBezout(t *testing.T) {
	x := NewFromUint64(240)
	y := NewFromUint64(46)
	g, u, v := ExtGcd(x, y)
	if !g.Eq(NewFromUint64(2)) {
		t.Fatalf("gcd(240,46) = %s, want 2", g.String())
	}
	var ux, vy, sum Int
	ux.Mul(u, x)
	vy.Mul(v, y)
	sum.Add(&ux, &vy)
	if !sum.Eq(g) {
		t.Fatalf("u*x+v*y = %s, want gcd %s", sum.String(), g.String())
	}
}

func TestModInverse(t *testing.T) {
	y := NewFromUint64(17)
	m := NewFromUint64(3120)
	var inv, check Int
	if err := inv.ModInverse(y, m); err != nil {
		t.Fatal(err)
	}
	check.Mul(y, &inv)
	check.Mod(&check, m)
	if !check.IsOne() {
		t.Fatalf("y*inv mod m = %s, want 1", check.String())
	}
}

func TestIntToRNSRoundTrip(t *testing.T) {
	moduli := []*Int{
		NewFromUint64(97), NewFromUint64(101), NewFromUint64(103), NewFromUint64(107),
	}
	x := mustRead(t, "98765432", 10)

	residues, err := IntToRNS(x, moduli)
	if err != nil {
		t.Fatal(err)
	}
	back, err := RNSToInt(residues, moduli)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Eq(x) {
		t.Fatalf("rns round trip: got %s, want %s", back.String(), x.String())
	}
}

func TestLSBBytesRoundTrip(t *testing.T) {
	x := mustRead(t, "1234567890123456789012345", 10)
	enc := x.WriteLSBBytes(0)
	var y Int
	y.ReadLSBBytes(enc)
	if !y.Eq(x) {
		t.Fatalf("LSB bytes round trip: got %s, want %s", y.String(), x.String())
	}
}

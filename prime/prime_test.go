package prime

import (
	"testing"

	"github.com/muukong/ucrypt/bignum"
)

func TestTrialDivisionSmallComposites(t *testing.T) {
	cases := []struct {
		n    uint64
		want bool
	}{
		{2, true}, {3, true}, {127, true},
		{4, false}, {9, false}, {100, false},
		{1, false}, {0, false},
	}
	for _, c := range cases {
		x := bignum.NewFromUint64(c.n)
		if got := TrialDivision(x); got != c.want {
			t.Errorf("TrialDivision(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

// Miller-Rabin on 2^127-1 (a Mersenne prime) and 2^127+1 (spec.md §8
// boundary scenario 7).
func TestMillerRabinMersenne(t *testing.T) {
	mersenne := bignum.New()
	one := bignum.NewFromUint64(1)
	if err := mersenne.Lsh(one, 127); err != nil {
		t.Fatal(err)
	}
	mersenne.SubDigit(mersenne, 1)

	ok, err := IsPrime(mersenne, false)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("2^127-1 reported composite, want prime")
	}

	composite := bignum.New()
	composite.AddDigit(mersenne, 2)
	ok, err = IsPrime(composite, false)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("2^127+1 reported prime, want composite")
	}
}

func TestGenerateInRangeProducesPrimeInBounds(t *testing.T) {
	lo := bignum.NewFromUint64(1000)
	hi := bignum.NewFromUint64(2000)

	p, err := GenerateInRange(lo, hi, false)
	if err != nil {
		t.Fatal(err)
	}
	if p.Lt(lo) || !p.Lt(hi) {
		t.Fatalf("generated prime %s out of range [%s,%s)", p.String(), lo.String(), hi.String())
	}
	ok, err := IsPrime(p, true)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("generated value %s is not prime", p.String())
	}
}

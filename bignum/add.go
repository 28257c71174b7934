package bignum

// Add sets x = a + b (spec.md §4.1.2). Aliasing x with a or b is safe: the
// unsigned kernels write into a local temporary, after ordering the operands
// so that |a| >= |b|, and the result is copied into x only at the end.
func (x *Int) Add(a, b *Int) {
	if a.CmpMag(b) < 0 {
		a, b = b, a
	}

	var tmp Int
	switch {
	case a.Sign == Positive && b.Sign == Positive:
		unsignedAdd(&tmp, a, b)
		tmp.Sign = Positive
	case a.Sign == Negative && b.Sign == Positive:
		unsignedSub(&tmp, a, b)
		tmp.Sign = Negative
	case a.Sign == Positive && b.Sign == Negative:
		unsignedSub(&tmp, a, b)
		tmp.Sign = Positive
	default: // both negative
		unsignedAdd(&tmp, a, b)
		tmp.Sign = Negative
	}
	if tmp.IsZero() {
		tmp.Sign = Positive
	}
	x.Copy(&tmp)
}

// Sub sets x = a - b.
func (x *Int) Sub(a, b *Int) {
	flip := false
	if a.CmpMag(b) < 0 {
		a, b = b, a
		flip = true
	}

	var tmp Int
	switch {
	case a.Sign == Positive && b.Sign == Positive:
		unsignedSub(&tmp, a, b)
		tmp.Sign = Positive
	case a.Sign == Negative && b.Sign == Positive:
		unsignedAdd(&tmp, a, b)
		tmp.Sign = Negative
	case a.Sign == Positive && b.Sign == Negative:
		unsignedAdd(&tmp, a, b)
		tmp.Sign = Positive
	default: // both negative
		unsignedSub(&tmp, a, b)
		tmp.Sign = Negative
	}
	if flip {
		tmp.FlipSign()
	}
	if tmp.IsZero() {
		tmp.Sign = Positive
	}
	x.Copy(&tmp)
}

// AddDigit sets x = a + d for a single non-negative limb d.
func (x *Int) AddDigit(a *Int, d Digit) {
	var dv Int
	dv.SetDigit(d)
	x.Add(a, &dv)
}

// SubDigit sets x = a - d for a single non-negative limb d.
func (x *Int) SubDigit(a *Int, d Digit) {
	var dv Int
	dv.SetDigit(d)
	x.Sub(a, &dv)
}

// unsignedAdd computes res = |x| + |y| under the precondition |x| >= |y|
// (spec.md §4.1.2 "Unsigned add").
func unsignedAdd(res, x, y *Int) {
	res.grow(x.Used + 1)
	var carry Word
	i := 0
	for ; i < y.Used; i++ {
		sum := Word(x.limbs[i]) + Word(y.limbs[i]) + carry
		res.limbs[i] = Digit(sum & WordMask)
		carry = sum >> DigitBits
	}
	for ; i < x.Used; i++ {
		sum := Word(x.limbs[i]) + carry
		res.limbs[i] = Digit(sum & WordMask)
		carry = sum >> DigitBits
	}
	if carry != 0 {
		res.limbs[i] = Digit(carry)
		i++
	}
	res.Used = i
	res.clamp()
}

// unsignedSub computes res = |x| - |y| under the precondition |x| >= |y|
// (spec.md §4.1.2 "Unsigned sub").
func unsignedSub(res, x, y *Int) {
	res.grow(x.Used)
	var borrow Digit
	i := 0
	for ; i < y.Used; i++ {
		d := x.limbs[i] - y.limbs[i] - borrow
		// Borrow iff the subtraction wrapped past zero, i.e. x_i < y_i+borrow.
		if Word(x.limbs[i]) < Word(y.limbs[i])+Word(borrow) {
			borrow = 1
		} else {
			borrow = 0
		}
		res.limbs[i] = d & DigitMask
	}
	for ; i < x.Used; i++ {
		d := x.limbs[i] - borrow
		if Word(x.limbs[i]) < Word(borrow) {
			borrow = 1
		} else {
			borrow = 0
		}
		res.limbs[i] = d & DigitMask
	}
	res.Used = x.Used
	res.clamp()
}

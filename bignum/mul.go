package bignum

// Mul sets x = a * b using the full number of result digits (spec.md
// §4.1.3). It dispatches to the Comba kernel when both operands are small
// enough for every column accumulator to stay inside a Word, and to
// schoolbook multiplication otherwise.
func (x *Int) Mul(a, b *Int) {
	x.mulDigits(a, b, a.Used+b.Used)
}

// mulDigits computes x = (a*b) mod Base^digits, the truncated-product
// primitive that also backs exponentiation's modular reduction callers and
// any future Karatsuba split.
func (x *Int) mulDigits(a, b *Int, digits int) {
	if digits <= 0 {
		x.SetZero()
		return
	}
	var tmp Int
	if a.Used < CombaMaxDigits && b.Used < CombaMaxDigits && digits < CombaMaxDigits {
		combaMul(&tmp, a, b, digits)
	} else {
		schoolbookMul(&tmp, a, b, digits)
	}
	if a.Sign != b.Sign && !tmp.IsZero() {
		tmp.Sign = Negative
	} else {
		tmp.Sign = Positive
	}
	x.Copy(&tmp)
}

// schoolbookMul computes res = |x|*|y| truncated to `digits` result limbs,
// nested-loop style (spec.md §4.1.3 "Schoolbook").
func schoolbookMul(res, x, y *Int, digits int) {
	res.SetZero()
	res.grow(digits)
	res.Used = digits
	for i := 0; i < y.Used && i < digits; i++ {
		var carry Word
		jMax := x.Used
		if digits-i < jMax {
			jMax = digits - i
		}
		if jMax < 0 {
			jMax = 0
		}
		for j := 0; j < jMax; j++ {
			acc := Word(res.limbs[i+j]) + Word(x.limbs[j])*Word(y.limbs[i]) + carry
			res.limbs[i+j] = Digit(acc & WordMask)
			carry = acc >> DigitBits
		}
		k := i + jMax
		for carry != 0 && k < digits {
			acc := Word(res.limbs[k]) + carry
			res.limbs[k] = Digit(acc & WordMask)
			carry = acc >> DigitBits
			k++
		}
	}
	res.clamp()
}

// combaMul computes res = |x|*|y| truncated to `digits` result limbs using
// a column accumulator, avoiding the repeated read-modify-write of the
// schoolbook kernel's inner loop (spec.md §4.1.3 "Comba"). Safe exactly
// when min(x.Used, y.Used, digits) <= CombaMaxDigits, which the caller in
// mulDigits has already checked.
func combaMul(res, x, y *Int, digits int) {
	n := x.Used + y.Used
	if digits < n {
		n = digits
	}
	res.SetZero()
	res.grow(n + 1)
	res.Used = n

	var carry Word
	for k := 0; k < n; k++ {
		var col Word
		lo, hi := 0, k
		if k-(y.Used-1) > lo {
			lo = k - (y.Used - 1)
		}
		if x.Used-1 < hi {
			hi = x.Used - 1
		}
		for i := lo; i <= hi; i++ {
			j := k - i
			col += Word(x.limbs[i]) * Word(y.limbs[j])
		}
		col += carry
		res.limbs[k] = Digit(col & WordMask)
		carry = col >> DigitBits
	}
	if carry != 0 && n < digits {
		res.limbs[n] = Digit(carry & WordMask)
		res.Used = n + 1
	}
	res.clamp()
}

// MulDigit sets x = a * d for a single non-negative limb d (spec.md §4.1.3
// "By-single-limb").
func (x *Int) MulDigit(a *Int, d Digit) {
	var res Int
	res.grow(a.Used + 1)
	var carry Word
	i := 0
	for ; i < a.Used; i++ {
		acc := Word(a.limbs[i])*Word(d) + carry
		res.limbs[i] = Digit(acc & WordMask)
		carry = acc >> DigitBits
	}
	if carry != 0 {
		res.limbs[i] = Digit(carry)
		i++
	}
	res.Used = i
	res.Sign = a.Sign
	res.clamp()
	if res.IsZero() {
		res.Sign = Positive
	}
	x.Copy(&res)
}

// Sqr sets x = a*a. It is implemented directly in terms of Mul; a dedicated
// squaring kernel (which would skip roughly half the cross products) is
// out of scope per spec.md §1 Non-goals ("Karatsuba/Toom-Cook beyond
// schoolbook+Comba"), the same reasoning excludes squaring-specific
// optimisations, which are a similar-shaped speed trick.
func (x *Int) Sqr(a *Int) {
	x.Mul(a, a)
}

package expr

// The constructors below are the only way expression nodes enter the
// search tables (see solve.Solver.check): each applies a fixed rewrite so
// that cheap structural equality approximates semantic equality. They are
// a direct translation of original_source/src/expression.rs's from_*
// functions; do not bypass them when building expressions.

// NewNumber wraps an integer literal.
func NewNumber(x int64) Expr { return &Number{X: x} }

// NewNegate builds -x, collapsing -(a-b) to b-a.
func NewNegate(x Expr) Expr {
	if sub, ok := x.(*Sub); ok {
		return &Sub{X: sub.Y, Y: sub.X}
	}
	return &Negate{X: x}
}

// NewAdd builds x+y, folding subtraction shapes and left-leaning chains of
// addition: (a-b)+(c-d) = (a+c)-(b+d); (a-b)+c = (a+c)-b; a+(c-d) = (a+c)-d;
// a+(b+c) = (a+b)+c.
func NewAdd(x, y Expr) Expr {
	xSub, xIsSub := x.(*Sub)
	ySub, yIsSub := y.(*Sub)
	switch {
	case xIsSub && yIsSub:
		return &Sub{X: NewAdd(xSub.X, ySub.X), Y: NewAdd(xSub.Y, ySub.Y)}
	case xIsSub:
		return &Sub{X: NewAdd(xSub.X, y), Y: xSub.Y}
	case yIsSub:
		return &Sub{X: NewAdd(x, ySub.X), Y: ySub.Y}
	}
	if yAdd, ok := y.(*Add); ok {
		return &Add{X: NewAdd(x, yAdd.X), Y: yAdd.Y}
	}
	return &Add{X: x, Y: y}
}

// NewSub builds x-y, mirroring NewAdd via a-(b-c) = a+(c-b) and
// (a-b)-c = a-(b+c).
func NewSub(x, y Expr) Expr {
	if ySub, ok := y.(*Sub); ok {
		return NewAdd(x, &Sub{X: ySub.Y, Y: ySub.X})
	}
	if xSub, ok := x.(*Sub); ok {
		return &Sub{X: xSub.X, Y: NewAdd(xSub.Y, y)}
	}
	return &Sub{X: x, Y: y}
}

// NewMul builds x*y, folding division shapes and left-leaning chains of
// multiplication, mirroring NewAdd over Div/Mul.
func NewMul(x, y Expr) Expr {
	xDiv, xIsDiv := x.(*Div)
	yDiv, yIsDiv := y.(*Div)
	switch {
	case xIsDiv && yIsDiv:
		return &Div{X: NewMul(xDiv.X, yDiv.X), Y: NewMul(xDiv.Y, yDiv.Y)}
	case xIsDiv:
		return &Div{X: NewMul(xDiv.X, y), Y: xDiv.Y}
	case yIsDiv:
		return &Div{X: NewMul(x, yDiv.X), Y: yDiv.Y}
	}
	if yMul, ok := y.(*Mul); ok {
		return &Mul{X: NewMul(x, yMul.X), Y: yMul.Y}
	}
	return &Mul{X: x, Y: y}
}

// NewDiv builds x/y, mirroring NewSub over Mul/Div.
func NewDiv(x, y Expr) Expr {
	if yDiv, ok := y.(*Div); ok {
		return NewMul(x, &Div{X: yDiv.Y, Y: yDiv.X})
	}
	if xDiv, ok := x.(*Div); ok {
		return &Div{X: xDiv.X, Y: NewMul(xDiv.Y, y)}
	}
	return &Div{X: x, Y: y}
}

// NewPow builds x^y, lifting power through power ((a^b)^c = a^(b*c)) and
// through sqrt ((sqrt^p a)^b = sqrt^p(a^b)).
func NewPow(x, y Expr) Expr {
	if xPow, ok := x.(*Pow); ok {
		return &Pow{X: xPow.X, Y: NewMul(xPow.Y, y)}
	}
	if xSqrt, ok := x.(*Sqrt); ok {
		return &Sqrt{X: NewPow(xSqrt.X, y), Order: xSqrt.Order}
	}
	return &Pow{X: x, Y: y}
}

// NewSqrt wraps x in order nested square roots, composing nested sqrt
// orders and distributing over multiply/divide.
func NewSqrt(x Expr, order int) Expr {
	if order == 0 {
		return x
	}
	if s, ok := x.(*Sqrt); ok {
		return &Sqrt{X: s.X, Order: s.Order + order}
	}
	if m, ok := x.(*Mul); ok {
		return NewMul(NewSqrt(m.X, order), NewSqrt(m.Y, order))
	}
	if d, ok := x.(*Div); ok {
		return NewDiv(NewSqrt(d.X, order), NewSqrt(d.Y, order))
	}
	return &Sqrt{X: x, Order: order}
}

// NewFactorial builds x!.
func NewFactorial(x Expr) Expr { return &Factorial{X: x} }

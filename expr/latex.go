package expr

import "strings"

func addLatexParens(s string) string {
	return "\\left(" + s + "\\right)"
}

func fmtLatexBinary(x, y Expr, op string, precedence int, abelian, rtl bool) string {
	lhs := x.Latex()
	if x.precedence() < precedence || (x.precedence() == precedence && rtl && !abelian) {
		lhs = addLatexParens(lhs)
	}
	rhs := y.Latex()
	if y.precedence() < precedence || (y.precedence() == precedence && !rtl && !abelian) {
		rhs = addLatexParens(rhs)
	}
	return lhs + op + rhs
}

func (n *Number) Latex() string { return n.String() }

func (e *Negate) Latex() string {
	switch e.X.(type) {
	case *Add, *Sub:
		return "-" + addLatexParens(e.X.Latex())
	default:
		return "-" + e.X.Latex()
	}
}

func (e *Add) Latex() string {
	return fmtLatexBinary(e.X, e.Y, "+", e.precedence(), true, false)
}

func (e *Sub) Latex() string {
	return fmtLatexBinary(e.X, e.Y, "-", e.precedence(), false, false)
}

func (e *Mul) Latex() string {
	return fmtLatexBinary(e.X, e.Y, "\\times", e.precedence(), true, false)
}

func (e *Div) Latex() string {
	return "\\frac{" + e.X.Latex() + "}{" + e.Y.Latex() + "}"
}

func (e *Pow) Latex() string {
	base := e.X.Latex()
	if _, ok := e.X.(*Number); !ok {
		base = addLatexParens(base)
	}
	return base + "^{" + e.Y.Latex() + "}"
}

func (e *Sqrt) Latex() string {
	return strings.Repeat("\\sqrt{", e.Order) + e.X.Latex() + strings.Repeat("}", e.Order)
}

func (e *Factorial) Latex() string {
	if _, ok := e.X.(*Number); ok {
		return e.X.Latex() + "!"
	}
	return addLatexParens(e.X.Latex()) + "!"
}

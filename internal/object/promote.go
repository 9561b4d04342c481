package object

// Promote implements spec.md §9's centralized numeric-promotion rule: when
// an Integer meets a Decimal in a binary arithmetic or comparison operator,
// the Integer is widened to a Decimal before the operator runs, and the
// widening logic lives in exactly one place rather than being duplicated
// across every arithmetic case in the evaluator.
//
// Returns the pair unchanged when both operands already share a type, or
// when either operand is not numeric at all (the caller's type switch is
// expected to reject that case itself).
func Promote(a, b Value) (Value, Value) {
	ai, aIsInt := a.(*Integer)
	bi, bIsInt := b.(*Integer)
	ad, aIsDec := a.(*Decimal)
	bd, bIsDec := b.(*Decimal)

	switch {
	case aIsInt && bIsDec:
		return &Decimal{Value: float64(ai.Value)}, bd
	case aIsDec && bIsInt:
		return ad, &Decimal{Value: float64(bi.Value)}
	default:
		return a, b
	}
}

package cfg

// OutgoingEdge is the closed sum type of spec.md §3: exactly one variant is
// recorded per non-Exit block. New edge kinds require updating every
// consumer deliberately (spec.md §9) — callers are expected to exhaustively
// type-switch over the five concrete types below.
type OutgoingEdge interface {
	isOutgoingEdge()
}

// Pass is an unconditional fall-through (or a Branch/Ret/Abort treated as
// unconditional) to Next.
type Pass struct {
	Next Label
}

func (Pass) isOutgoingEdge() {}

// If is a conditional branch naming both successors explicitly.
type If struct {
	TrueCase  Label
	FalseCase Label
}

func (If) isOutgoingEdge() {}

// LoopBack is a back-edge to a loop header that has already been promoted to
// a WhileTrue or WhileFalse header.
type LoopBack struct {
	Header Label
}

func (LoopBack) isOutgoingEdge() {}

// WhileTrue is a loop header whose body runs while the header's condition is
// true; After is the first block executed once the loop exits.
type WhileTrue struct {
	BodyStart Label
	After     Label
}

func (WhileTrue) isOutgoingEdge() {}

// WhileFalse is the dual of WhileTrue: the body runs while the condition is
// false. Emission prepends a NOT to invert the condition so the target's
// native while-true construct can be used either way (spec.md §3, §4.5).
type WhileFalse struct {
	BodyStart Label
	After     Label
}

func (WhileFalse) isOutgoingEdge() {}

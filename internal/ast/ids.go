package ast

type (
	// ExprID identifies an expression node in the Exprs arenas.
	ExprID uint32
	// PayloadID identifies a node's kind-specific payload.
	PayloadID uint32
)

const (
	NoExprID    ExprID    = 0
	NoPayloadID PayloadID = 0
)

func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }

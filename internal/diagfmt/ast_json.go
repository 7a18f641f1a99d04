package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"zirc/internal/ast"
	"zirc/internal/source"
)

// The expression JSON mirrors a tagged-union layout: every node is an
// object with exactly one key naming the variant. Compact json.Marshal
// bytes of this form are the conformance contract, so field order in
// the structs below is load bearing.

// ExprJSON is one expression node in serialized form. Exactly one field
// is non-nil.
type ExprJSON struct {
	Identifier  *IdentifierJSON  `json:"Identifier,omitempty"`
	Value       *ValueJSON       `json:"Value,omitempty"`
	Member      *MemberJSON      `json:"CircuitMemberAccess,omitempty"`
	TupleAccess *TupleAccessJSON `json:"TupleAccess,omitempty"`
	ArrayAccess *ArrayAccessJSON `json:"ArrayAccess,omitempty"`
	Call        *CallJSON        `json:"Call,omitempty"`
	Unary       *UnaryJSON       `json:"Unary,omitempty"`
	Binary      *BinaryJSON      `json:"Binary,omitempty"`
	Ternary     *TernaryJSON     `json:"Ternary,omitempty"`
	TupleInit   *TupleInitJSON   `json:"TupleInit,omitempty"`
}

type IdentifierJSON struct {
	Name string          `json:"name"`
	Span source.Location `json:"span"`
}

// ValueJSON serializes a literal as {"<Kind>":[...parts..., span]}.
type ValueJSON struct {
	Kind  string
	Parts []any
}

func (v ValueJSON) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]any{v.Kind: v.Parts})
}

// MemberJSON carries the member name as a full Identifier record; the
// name keeps its own span alongside the node span.
type MemberJSON struct {
	Circuit ExprJSON        `json:"circuit"`
	Name    IdentifierJSON  `json:"name"`
	Span    source.Location `json:"span"`
	Type    *string         `json:"type_"`
}

type TupleAccessJSON struct {
	Tuple ExprJSON        `json:"tuple"`
	Index uint32          `json:"index"`
	Span  source.Location `json:"span"`
}

type ArrayAccessJSON struct {
	Array ExprJSON        `json:"array"`
	Index ExprJSON        `json:"index"`
	Span  source.Location `json:"span"`
}

type CallJSON struct {
	Function  ExprJSON        `json:"function"`
	Arguments []ExprJSON      `json:"arguments"`
	Span      source.Location `json:"span"`
}

type UnaryJSON struct {
	Inner ExprJSON        `json:"inner"`
	Op    string          `json:"op"`
	Span  source.Location `json:"span"`
}

type BinaryJSON struct {
	Left  ExprJSON        `json:"left"`
	Right ExprJSON        `json:"right"`
	Op    string          `json:"op"`
	Span  source.Location `json:"span"`
}

type TernaryJSON struct {
	Condition ExprJSON        `json:"condition"`
	IfTrue    ExprJSON        `json:"if_true"`
	IfFalse   ExprJSON        `json:"if_false"`
	Span      source.Location `json:"span"`
}

type TupleInitJSON struct {
	Elements []ExprJSON      `json:"elements"`
	Span     source.Location `json:"span"`
}

var binaryOpJSONNames = [...]string{
	ast.ExprBinaryOr:        "Or",
	ast.ExprBinaryAnd:       "And",
	ast.ExprBinaryEq:        "Eq",
	ast.ExprBinaryNotEq:     "Ne",
	ast.ExprBinaryLess:      "Lt",
	ast.ExprBinaryLessEq:    "Le",
	ast.ExprBinaryGreater:   "Gt",
	ast.ExprBinaryGreaterEq: "Ge",
	ast.ExprBinaryAdd:       "Add",
	ast.ExprBinarySub:       "Sub",
	ast.ExprBinaryMul:       "Mul",
	ast.ExprBinaryDiv:       "Div",
	ast.ExprBinaryPow:       "Pow",
}

var unaryOpJSONNames = [...]string{
	ast.ExprUnaryNot:    "Not",
	ast.ExprUnaryNegate: "Negate",
}

// BuildExprJSON converts an expression tree to its serializable form.
func BuildExprJSON(arenas *ast.Builder, fs *source.FileSet, id ast.ExprID) (ExprJSON, error) {
	if !id.IsValid() {
		return ExprJSON{}, fmt.Errorf("diagfmt: invalid expression id")
	}
	expr := arenas.Exprs.Get(id)
	span := fs.Describe(expr.Span)

	switch expr.Kind {
	case ast.ExprIdent:
		data, ok := arenas.Exprs.Ident(id)
		if !ok {
			return ExprJSON{}, fmt.Errorf("diagfmt: broken identifier payload")
		}
		return ExprJSON{Identifier: &IdentifierJSON{
			Name: arenas.Lookup(data.Name),
			Span: span,
		}}, nil

	case ast.ExprLit:
		data, ok := arenas.Exprs.Literal(id)
		if !ok {
			return ExprJSON{}, fmt.Errorf("diagfmt: broken literal payload")
		}
		value := arenas.Lookup(data.Value)
		parts := []any{value, span}
		if data.Kind == ast.LitInteger {
			parts = []any{data.Type.String(), value, span}
		}
		return ExprJSON{Value: &ValueJSON{Kind: data.Kind.String(), Parts: parts}}, nil

	case ast.ExprMember:
		data, ok := arenas.Exprs.Member(id)
		if !ok {
			return ExprJSON{}, fmt.Errorf("diagfmt: broken member payload")
		}
		target, err := BuildExprJSON(arenas, fs, data.Target)
		if err != nil {
			return ExprJSON{}, err
		}
		var typ *string
		if data.Type.IsResolved() {
			name := data.Type.String()
			typ = &name
		}
		return ExprJSON{Member: &MemberJSON{
			Circuit: target,
			Name: IdentifierJSON{
				Name: arenas.Lookup(data.Name),
				Span: fs.Describe(data.NameSpan),
			},
			Span: span,
			Type: typ,
		}}, nil

	case ast.ExprTupleIndex:
		data, ok := arenas.Exprs.TupleIndex(id)
		if !ok {
			return ExprJSON{}, fmt.Errorf("diagfmt: broken tuple access payload")
		}
		target, err := BuildExprJSON(arenas, fs, data.Target)
		if err != nil {
			return ExprJSON{}, err
		}
		return ExprJSON{TupleAccess: &TupleAccessJSON{
			Tuple: target,
			Index: data.Index,
			Span:  span,
		}}, nil

	case ast.ExprIndex:
		data, ok := arenas.Exprs.Index(id)
		if !ok {
			return ExprJSON{}, fmt.Errorf("diagfmt: broken array access payload")
		}
		target, err := BuildExprJSON(arenas, fs, data.Target)
		if err != nil {
			return ExprJSON{}, err
		}
		index, err := BuildExprJSON(arenas, fs, data.Index)
		if err != nil {
			return ExprJSON{}, err
		}
		return ExprJSON{ArrayAccess: &ArrayAccessJSON{
			Array: target,
			Index: index,
			Span:  span,
		}}, nil

	case ast.ExprCall:
		data, ok := arenas.Exprs.Call(id)
		if !ok {
			return ExprJSON{}, fmt.Errorf("diagfmt: broken call payload")
		}
		callee, err := BuildExprJSON(arenas, fs, data.Callee)
		if err != nil {
			return ExprJSON{}, err
		}
		args := make([]ExprJSON, 0, len(data.Args))
		for _, argID := range data.Args {
			arg, err := BuildExprJSON(arenas, fs, argID)
			if err != nil {
				return ExprJSON{}, err
			}
			args = append(args, arg)
		}
		return ExprJSON{Call: &CallJSON{
			Function:  callee,
			Arguments: args,
			Span:      span,
		}}, nil

	case ast.ExprUnary:
		data, ok := arenas.Exprs.Unary(id)
		if !ok {
			return ExprJSON{}, fmt.Errorf("diagfmt: broken unary payload")
		}
		inner, err := BuildExprJSON(arenas, fs, data.Operand)
		if err != nil {
			return ExprJSON{}, err
		}
		return ExprJSON{Unary: &UnaryJSON{
			Inner: inner,
			Op:    unaryOpJSONNames[data.Op],
			Span:  span,
		}}, nil

	case ast.ExprBinary:
		data, ok := arenas.Exprs.Binary(id)
		if !ok {
			return ExprJSON{}, fmt.Errorf("diagfmt: broken binary payload")
		}
		left, err := BuildExprJSON(arenas, fs, data.Left)
		if err != nil {
			return ExprJSON{}, err
		}
		right, err := BuildExprJSON(arenas, fs, data.Right)
		if err != nil {
			return ExprJSON{}, err
		}
		return ExprJSON{Binary: &BinaryJSON{
			Left:  left,
			Right: right,
			Op:    binaryOpJSONNames[data.Op],
			Span:  span,
		}}, nil

	case ast.ExprTernary:
		data, ok := arenas.Exprs.Ternary(id)
		if !ok {
			return ExprJSON{}, fmt.Errorf("diagfmt: broken ternary payload")
		}
		cond, err := BuildExprJSON(arenas, fs, data.Cond)
		if err != nil {
			return ExprJSON{}, err
		}
		ifTrue, err := BuildExprJSON(arenas, fs, data.Then)
		if err != nil {
			return ExprJSON{}, err
		}
		ifFalse, err := BuildExprJSON(arenas, fs, data.Else)
		if err != nil {
			return ExprJSON{}, err
		}
		return ExprJSON{Ternary: &TernaryJSON{
			Condition: cond,
			IfTrue:    ifTrue,
			IfFalse:   ifFalse,
			Span:      span,
		}}, nil

	case ast.ExprTuple:
		data, ok := arenas.Exprs.Tuple(id)
		if !ok {
			return ExprJSON{}, fmt.Errorf("diagfmt: broken tuple payload")
		}
		elems := make([]ExprJSON, 0, len(data.Elems))
		for _, elemID := range data.Elems {
			elem, err := BuildExprJSON(arenas, fs, elemID)
			if err != nil {
				return ExprJSON{}, err
			}
			elems = append(elems, elem)
		}
		return ExprJSON{TupleInit: &TupleInitJSON{
			Elements: elems,
			Span:     span,
		}}, nil

	default:
		return ExprJSON{}, fmt.Errorf("diagfmt: unknown expression kind %d", expr.Kind)
	}
}

// MarshalExpr serializes an expression tree as compact JSON.
func MarshalExpr(arenas *ast.Builder, fs *source.FileSet, id ast.ExprID) ([]byte, error) {
	tree, err := BuildExprJSON(arenas, fs, id)
	if err != nil {
		return nil, err
	}
	return json.Marshal(tree)
}

// WriteExpr writes the compact serialization of an expression plus a
// trailing newline.
func WriteExpr(w io.Writer, arenas *ast.Builder, fs *source.FileSet, id ast.ExprID) error {
	data, err := MarshalExpr(arenas, fs, id)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

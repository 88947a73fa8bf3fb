package willowui

import (
	"fmt"
	"strconv"
	"strings"
)

// Vars is the substitution table an Expr is evaluated against.
type Vars map[string]int

// Expr is a deferred integer expression used for widget bounds. It supports
// integer literals, identifiers, + - * / % with the usual precedence, unary
// minus and parentheses. Division truncates toward zero.
//
// The zero Expr evaluates to 0.
type Expr struct {
	src  string
	root exprNode
}

// ParseExpr parses src. Errors wrap ErrBadExpression.
func ParseExpr(src string) (Expr, error) {
	toks, err := tokenize(src)
	if err != nil {
		return Expr{}, err
	}
	p := &exprParser{src: src, toks: toks}
	root, err := p.parseSum()
	if err != nil {
		return Expr{}, err
	}
	if p.pos != len(p.toks) {
		return Expr{}, fmt.Errorf("%w: unexpected %q in %q", ErrBadExpression, p.toks[p.pos].text, src)
	}
	return Expr{src: src, root: root}, nil
}

// MustParseExpr is like ParseExpr but panics on error. Intended for
// expressions written in code.
func MustParseExpr(src string) Expr {
	e, err := ParseExpr(src)
	if err != nil {
		panic("willowui: " + err.Error())
	}
	return e
}

// Px returns a constant expression.
func Px(n int) Expr {
	return Expr{src: strconv.Itoa(n), root: numNode(n)}
}

// IsZero reports whether e was never set.
func (e Expr) IsZero() bool { return e.root == nil }

// String returns the source text.
func (e Expr) String() string { return e.src }

// Eval evaluates e against vars.
func (e Expr) Eval(vars Vars) (int, error) {
	if e.root == nil {
		return 0, nil
	}
	return e.root.eval(vars)
}

type exprNode interface {
	eval(Vars) (int, error)
}

type numNode int

func (n numNode) eval(Vars) (int, error) { return int(n), nil }

type varNode string

func (n varNode) eval(v Vars) (int, error) {
	val, ok := v[string(n)]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownVariable, string(n))
	}
	return val, nil
}

type negNode struct{ x exprNode }

func (n negNode) eval(v Vars) (int, error) {
	x, err := n.x.eval(v)
	return -x, err
}

type binNode struct {
	op   byte
	l, r exprNode
}

func (n binNode) eval(v Vars) (int, error) {
	l, err := n.l.eval(v)
	if err != nil {
		return 0, err
	}
	r, err := n.r.eval(v)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	case '/':
		if r == 0 {
			return 0, fmt.Errorf("%w: division by zero", ErrBadExpression)
		}
		return l / r, nil
	case '%':
		if r == 0 {
			return 0, fmt.Errorf("%w: division by zero", ErrBadExpression)
		}
		return l % r, nil
	}
	return 0, fmt.Errorf("%w: operator %q", ErrBadExpression, n.op)
}

type tokenKind uint8

const (
	tokNum tokenKind = iota
	tokIdent
	tokOp
)

type token struct {
	kind tokenKind
	text string
	num  int
}

func tokenize(src string) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c >= '0' && c <= '9':
			j := i
			for j < len(src) && src[j] >= '0' && src[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(src[i:j])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadExpression, err)
			}
			toks = append(toks, token{kind: tokNum, text: src[i:j], num: n})
			i = j
		case isIdentStart(c):
			j := i
			for j < len(src) && (isIdentStart(src[j]) || (src[j] >= '0' && src[j] <= '9')) {
				j++
			}
			toks = append(toks, token{kind: tokIdent, text: src[i:j]})
			i = j
		case strings.IndexByte("+-*/%()", c) >= 0:
			toks = append(toks, token{kind: tokOp, text: src[i : i+1]})
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected character %q in %q", ErrBadExpression, c, src)
		}
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrBadExpression)
	}
	return toks, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

type exprParser struct {
	src  string
	toks []token
	pos  int
}

func (p *exprParser) peekOp(ops string) (byte, bool) {
	if p.pos >= len(p.toks) {
		return 0, false
	}
	t := p.toks[p.pos]
	if t.kind != tokOp || strings.IndexByte(ops, t.text[0]) < 0 {
		return 0, false
	}
	return t.text[0], true
}

func (p *exprParser) parseSum() (exprNode, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peekOp("+-")
		if !ok {
			return left, nil
		}
		p.pos++
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = binNode{op: op, l: left, r: right}
	}
}

func (p *exprParser) parseProduct() (exprNode, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peekOp("*/%")
		if !ok {
			return left, nil
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binNode{op: op, l: left, r: right}
	}
}

func (p *exprParser) parseUnary() (exprNode, error) {
	if op, ok := p.peekOp("+-"); ok {
		p.pos++
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == '-' {
			return negNode{x}, nil
		}
		return x, nil
	}
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (exprNode, error) {
	if p.pos >= len(p.toks) {
		return nil, fmt.Errorf("%w: unexpected end of %q", ErrBadExpression, p.src)
	}
	t := p.toks[p.pos]
	p.pos++
	switch t.kind {
	case tokNum:
		return numNode(t.num), nil
	case tokIdent:
		return varNode(t.text), nil
	}
	if t.text != "(" {
		return nil, fmt.Errorf("%w: unexpected %q in %q", ErrBadExpression, t.text, p.src)
	}
	inner, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if _, ok := p.peekOp(")"); !ok {
		return nil, fmt.Errorf("%w: missing ) in %q", ErrBadExpression, p.src)
	}
	p.pos++
	return inner, nil
}

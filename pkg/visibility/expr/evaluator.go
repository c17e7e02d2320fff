package expr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-dealsheet/pkg/visibility"
)

// Evaluator implements the governing-predicate grammar used by field rules.
//
// Supported forms:
// - truthy checks: `cuentaGMF`, `selected.payouts`
// - comparisons: `payoutEsquema == "Por rango"`, `walletA2A != "si"`
// - composition: `a && b`, `a || b`, `!a`, parentheses
//
// Identifiers resolve against visibility.Context.Answers; the `selected.`
// prefix resolves against the product selection set instead. Missing keys are
// falsy for truthy checks and compare as the empty string.
type Evaluator struct{}

func New() *Evaluator { return &Evaluator{} }

func (e *Evaluator) Eval(fieldKey, rule string, ctx visibility.Context) (bool, error) {
	_ = fieldKey
	trimmed := strings.TrimSpace(rule)
	if trimmed == "" {
		return true, nil
	}

	p := &parser{input: trimmed}
	node, err := p.parseOr()
	if err != nil {
		return false, err
	}
	p.skipSpaces()
	if p.pos < len(p.input) {
		return false, fmt.Errorf("visibility/expr: trailing input %q in rule %q", p.input[p.pos:], rule)
	}
	return node.eval(ctx), nil
}

type node interface {
	eval(ctx visibility.Context) bool
}

type orNode struct{ left, right node }

func (n orNode) eval(ctx visibility.Context) bool {
	return n.left.eval(ctx) || n.right.eval(ctx)
}

type andNode struct{ left, right node }

func (n andNode) eval(ctx visibility.Context) bool {
	return n.left.eval(ctx) && n.right.eval(ctx)
}

type notNode struct{ inner node }

func (n notNode) eval(ctx visibility.Context) bool {
	return !n.inner.eval(ctx)
}

type truthyNode struct{ ident string }

func (n truthyNode) eval(ctx visibility.Context) bool {
	return truthy(lookup(ctx, n.ident))
}

type compareNode struct {
	ident  string
	want   string
	negate bool
}

func (n compareNode) eval(ctx visibility.Context) bool {
	got := stringify(lookup(ctx, n.ident))
	if n.negate {
		return got != n.want
	}
	return got == n.want
}

type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) accept(lit string) bool {
	p.skipSpaces()
	if strings.HasPrefix(p.input[p.pos:], lit) {
		p.pos += len(lit)
		return true
	}
	return false
}

func (p *parser) parseOr() (node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.accept("||") {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = orNode{left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.accept("&&") {
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = andNode{left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	p.skipSpaces()
	if p.peek() == '!' && !strings.HasPrefix(p.input[p.pos:], "!=") {
		p.pos++
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return notNode{inner: inner}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (node, error) {
	p.skipSpaces()
	if p.peek() == '(' {
		p.pos++
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		p.skipSpaces()
		if p.peek() != ')' {
			return nil, errors.New("visibility/expr: missing closing ')'")
		}
		p.pos++
		return inner, nil
	}

	ident, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	p.skipSpaces()
	if p.accept("==") {
		want, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		return compareNode{ident: ident, want: want}, nil
	}
	if p.accept("!=") {
		want, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		return compareNode{ident: ident, want: want, negate: true}, nil
	}
	return truthyNode{ident: ident}, nil
}

func (p *parser) parseIdentifier() (string, error) {
	p.skipSpaces()
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == ' ' || c == '\t' || c == '(' || c == ')' || c == '!' || c == '=' || c == '&' || c == '|' {
			break
		}
		p.pos++
	}
	if p.pos == start {
		if p.pos >= len(p.input) {
			return "", errors.New("visibility/expr: empty expression")
		}
		return "", fmt.Errorf("visibility/expr: expected identifier at %q", p.input[p.pos:])
	}
	return p.input[start:p.pos], nil
}

func (p *parser) parseStringLiteral() (string, error) {
	p.skipSpaces()
	quote := p.peek()
	if quote != '"' && quote != '\'' {
		// bare word literals keep hand-written rules forgiving
		return p.parseIdentifier()
	}
	p.pos++
	start := p.pos
	for p.pos < len(p.input) {
		if p.input[p.pos] == quote {
			value := p.input[start:p.pos]
			p.pos++
			return value, nil
		}
		p.pos++
	}
	return "", errors.New("visibility/expr: unterminated string literal")
}

func lookup(ctx visibility.Context, ident string) any {
	if name, ok := strings.CutPrefix(ident, "selected."); ok {
		if ctx.Selected == nil {
			return nil
		}
		return ctx.Selected[name]
	}
	if ctx.Answers == nil {
		return nil
	}
	return ctx.Answers[ident]
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return strings.TrimSpace(v) != ""
	default:
		return true
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(v)
	}
}

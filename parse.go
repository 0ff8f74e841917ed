package gocalc

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrUnexpectedEnd   = errors.New("unexpected end of expression")
	ErrMalformedNumber = errors.New("malformed number")
	ErrTrailingTokens  = errors.New("trailing tokens")
	ErrUnmatchedParen  = errors.New("unmatched parenthesis")
)

type NodeType int

const (
	NodeNum NodeType = iota
	NodeAdd
	NodeSub
	NodeMul
	NodeDiv
)

// Node is one node of an expression tree. A NodeNum leaf carries Val and no
// children; operator nodes carry two non-nil subtrees and ignore Val.
type Node struct {
	Type  NodeType
	Val   int64
	Left  *Node
	Right *Node
}

func NewParser(tokens string) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

// Parser tracks how much of the token stream has been consumed. The position
// only ever advances.
type Parser struct {
	tokens string
	pos    int
}

func (p *Parser) Pos() int {
	return p.pos
}

func (p *Parser) peek() (byte, bool) {
	if p.pos >= len(p.tokens) {
		return 0, false
	}
	return p.tokens[p.pos], true
}

// Parse consumes the whole token stream and returns the expression tree.
// Tokens left over after the outermost expression mean the input was
// malformed, e.g. a stray ')'.
func (p *Parser) Parse() (*Node, error) {
	node, err := p.parseAddition()
	if err != nil {
		return nil, err
	}
	if c, ok := p.peek(); ok {
		return nil, fmt.Errorf("%w: '%c' (%d)", ErrTrailingTokens, c, p.pos)
	}
	return node, nil
}

// Parse parses a token stream produced by Tokenize.
func Parse(tokens string) (*Node, error) {
	return NewParser(tokens).Parse()
}

// addition = multiplication (('+' | '-') multiplication)*
func (p *Parser) parseAddition() (*Node, error) {
	node, err := p.parseMultiplication()
	if err != nil {
		return nil, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '+' && c != '-') {
			return node, nil
		}
		p.pos++
		right, err := p.parseMultiplication()
		if err != nil {
			return nil, err
		}
		t := NodeAdd
		if c == '-' {
			t = NodeSub
		}
		node = &Node{Type: t, Left: node, Right: right}
	}
}

// multiplication = parenthesis (('*' | '/') parenthesis)*
func (p *Parser) parseMultiplication() (*Node, error) {
	node, err := p.parseParenthesis()
	if err != nil {
		return nil, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '*' && c != '/') {
			return node, nil
		}
		p.pos++
		right, err := p.parseParenthesis()
		if err != nil {
			return nil, err
		}
		t := NodeMul
		if c == '/' {
			t = NodeDiv
		}
		node = &Node{Type: t, Left: node, Right: right}
	}
}

// parenthesis = '(' addition ')' | number
func (p *Parser) parseParenthesis() (*Node, error) {
	c, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("%w (%d)", ErrUnexpectedEnd, p.pos)
	}
	if c != '(' {
		return p.parseNumber()
	}
	p.pos++
	node, err := p.parseAddition()
	if err != nil {
		return nil, err
	}
	if c, ok = p.peek(); !ok || c != ')' {
		return nil, fmt.Errorf("%w (%d)", ErrUnmatchedParen, p.pos)
	}
	p.pos++
	return node, nil
}

// number = digit+
func (p *Parser) parseNumber() (*Node, error) {
	begin := p.pos
	for {
		c, ok := p.peek()
		if !ok || c < '0' || c > '9' {
			break
		}
		p.pos++
	}
	if p.pos == begin {
		c, _ := p.peek()
		return nil, fmt.Errorf("%w: '%c' (%d)", ErrMalformedNumber, c, p.pos)
	}
	v, err := strconv.ParseInt(p.tokens[begin:p.pos], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (%d)", ErrMalformedNumber, p.tokens[begin:p.pos], begin)
	}
	return &Node{Type: NodeNum, Val: v}, nil
}

// String renders the tree back into a fully parenthesized token stream.
// Re-parsing the result yields a tree with the same value.
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	switch n.Type {
	case NodeNum:
		fmt.Fprintf(&buf, "%d", n.Val)
	case NodeAdd:
		fmt.Fprintf(&buf, "(%v+%v)", n.Left, n.Right)
	case NodeSub:
		fmt.Fprintf(&buf, "(%v-%v)", n.Left, n.Right)
	case NodeMul:
		fmt.Fprintf(&buf, "(%v*%v)", n.Left, n.Right)
	case NodeDiv:
		fmt.Fprintf(&buf, "(%v/%v)", n.Left, n.Right)
	}
	return buf.String()
}

package gocalc

import (
	"errors"
	"fmt"
)

var ErrDivisionByZero = errors.New("division by zero")

// Eval walks the expression tree in post-order and returns its value.
// Division truncates toward zero and a zero denominator is an error, never a
// silent result.
func Eval(expr *Node) (int64, error) {
	if expr.Type == NodeNum {
		return expr.Val, nil
	}

	left, err := Eval(expr.Left)
	if err != nil {
		return 0, err
	}
	right, err := Eval(expr.Right)
	if err != nil {
		return 0, err
	}

	switch expr.Type {
	case NodeAdd:
		return left + right, nil
	case NodeSub:
		return left - right, nil
	case NodeMul:
		return left * right, nil
	case NodeDiv:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	}
	return 0, fmt.Errorf("invalid op: %v", expr.Type)
}

// EvalString runs one line through the whole pipeline: tokenize, parse,
// evaluate. The first error wins.
func EvalString(line string) (int64, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return 0, err
	}
	expr, err := Parse(tokens)
	if err != nil {
		return 0, err
	}
	return Eval(expr)
}

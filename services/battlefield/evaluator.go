package battlefield

import "strings"

// Evaluate computes a restricted arithmetic expression: integer literals,
// + - * / and nested parentheses. Callers substitute all variables and
// dice ranges to literals first.
//
// The algorithm scans left to right accumulating digits into the current
// operand; on a non-digit (or end of input) the previous operand is
// committed: '+' pushes it, '-' pushes it negated, '*' and '/' combine
// it with the stack top. The result is the sum of the stack. Any other
// character becomes an unrecognized pending operator, so the operand
// after it is silently dropped instead of raising an error. Authored
// game formulas rely on that forgiveness, so it stays as-built.
//
// Parenthesized groups are evaluated by a recursive call on the
// depth-matched substring. Arithmetic is float64 throughout, matching
// the original runtime's number semantics (including division results).
func Evaluate(input string) float64 {
	var stack []float64

	num := 0.0
	op := byte('+')

	for i := 0; i < len(input); i++ {
		item := input[i]
		digit := item >= '0' && item <= '9'

		if digit {
			num = num*10 + float64(item-'0')
		}

		if item == '(' {
			sub := subExpression(input[i:])
			num = Evaluate(sub)
			i += len(sub) + 1
		}

		if !digit || i == len(input)-1 {
			switch op {
			case '+':
				stack = append(stack, num)
			case '-':
				stack = append(stack, -num)
			case '*':
				if n := len(stack); n > 0 {
					stack[n-1] *= num
				}
			case '/':
				if n := len(stack); n > 0 {
					stack[n-1] /= num
				}
			}
			num = 0
			op = item
		}
	}

	sum := 0.0
	for _, value := range stack {
		sum += value
	}
	return sum
}

// subExpression returns the depth-matched group body following an
// opening parenthesis at input[0].
func subExpression(input string) string {
	count := 1
	var sub strings.Builder

	for i := 1; i < len(input); i++ {
		if input[i] == '(' {
			count++
		} else if input[i] == ')' {
			count--
		}
		if count == 0 {
			break
		}
		sub.WriteByte(input[i])
	}
	return sub.String()
}

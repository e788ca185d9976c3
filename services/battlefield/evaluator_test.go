package battlefield

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateBasicArithmetic(t *testing.T) {
	assert.Equal(t, 5.0, Evaluate("2+3"))
	assert.Equal(t, 4.0, Evaluate("10-2*3"))
	assert.Equal(t, 14.0, Evaluate("2+3*4"))
	assert.Equal(t, -5.0, Evaluate("-5"))
	assert.Equal(t, 0.0, Evaluate(""))
}

func TestEvaluateDivisionIsFractional(t *testing.T) {
	assert.Equal(t, 2.5, Evaluate("10/4"))
	assert.Equal(t, 5.5, Evaluate("3+10/4"))
	assert.Equal(t, 2.0, Evaluate("8/2/2"))
}

func TestEvaluateParentheses(t *testing.T) {
	assert.Equal(t, 14.0, Evaluate("2*(3+4)"))
	assert.Equal(t, 14.0, Evaluate("(3+4)*2"))
	assert.Equal(t, 10.0, Evaluate("((2+3)*2)"))
	assert.Equal(t, 9.0, Evaluate("(1+2)*(5-2)"))
}

// An unrecognized character becomes a pending operator nobody handles,
// so the operand after it is dropped rather than raising an error.
func TestEvaluateUnknownCharacterDropsOperand(t *testing.T) {
	assert.Equal(t, 2.0, Evaluate("2+x3"))
	assert.Equal(t, 2.0, Evaluate("[4]+2"))
}

func TestSubExpressionDepthMatching(t *testing.T) {
	assert.Equal(t, "3+4", subExpression("(3+4)*2"))
	assert.Equal(t, "(1+2)*3", subExpression("((1+2)*3)"))
	assert.Equal(t, "1+2", subExpression("(1+2"))
}

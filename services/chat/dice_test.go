package chat

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCommand(t *testing.T) {
	assert.True(t, IsCommand("/3d6"))
	assert.True(t, IsCommand("/d"))
	assert.False(t, IsCommand("hello"))
	assert.False(t, IsCommand(""))
}

func rolledValues(t *testing.T, rendered string) []int {
	t.Helper()
	assert.True(t, strings.HasPrefix(rendered, "["))
	assert.True(t, strings.HasSuffix(rendered, "]"))

	fields := strings.Fields(strings.Trim(rendered, "[]"))
	values := make([]int, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.Atoi(field)
		assert.NoError(t, err)
		values = append(values, value)
	}
	return values
}

func TestRollCommandCountAndBounds(t *testing.T) {
	for i := 0; i < 50; i++ {
		values := rolledValues(t, RollCommand("/3d6"))
		assert.Len(t, values, 3)
		for _, value := range values {
			assert.GreaterOrEqual(t, value, 1)
			assert.LessOrEqual(t, value, 6)
		}
	}
}

func TestRollCommandDefaults(t *testing.T) {
	// "/d" means one six-sided die.
	values := rolledValues(t, RollCommand("/d"))
	assert.Len(t, values, 1)
	assert.GreaterOrEqual(t, values[0], 1)
	assert.LessOrEqual(t, values[0], 6)
}

func TestRollCommandOneSidedDieIsDeterministic(t *testing.T) {
	assert.Equal(t, "[1 1 1 1]", RollCommand("/4d1"))
}

func TestRollCommandGarbageFallsBackToDefaults(t *testing.T) {
	values := rolledValues(t, RollCommand("/xdy"))
	assert.Len(t, values, 1)
	assert.GreaterOrEqual(t, values[0], 1)
	assert.LessOrEqual(t, values[0], 6)
}

package chat

import (
	"math/rand"
	"strconv"
	"strings"

	game_constants "Fabler/constants/game"
)

// IsCommand reports whether a raw message is a dice command.
func IsCommand(text string) bool {
	return strings.HasPrefix(text, "/")
}

// RollCommand renders a "/NdM" dice command: N dice of M sides, one
// uniform value in [1,M] each, as "[v1 v2 ... vN]". Both numbers are
// optional — "/d" rolls 1d6. Anything unparsable falls back to the
// defaults rather than failing; a stateless string-to-string transform.
func RollCommand(text string) string {
	head, tail, _ := strings.Cut(text, "d")

	count, _ := strconv.Atoi(strings.TrimPrefix(head, "/"))
	if count <= 0 {
		count = game_constants.DefaultDiceCount
	}
	size, _ := strconv.Atoi(tail)
	if size <= 0 {
		size = game_constants.DefaultDieSize
	}

	values := make([]string, count)
	for i := range values {
		values[i] = strconv.Itoa(rand.Intn(size) + 1)
	}
	return "[" + strings.Join(values, " ") + "]"
}

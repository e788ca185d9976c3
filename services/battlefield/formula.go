package battlefield

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"Fabler/languages"
	"Fabler/models/game"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	rangeRE      = regexp.MustCompile(`\[(.*?)\]`)
	variableRE   = regexp.MustCompile(`\$(.*?)\$`)
)

// ResolveFormula turns an authored action formula into a number: strips
// whitespace, replaces every [min,max] with one random integer from the
// inclusive range, substitutes every $variable$ against the initiator
// and the room schema, then evaluates the remaining literal expression.
//
// Lookup misses never abort the action — every unresolved variable
// degrades to 0, so a stale or malformed template yields a zero-effect
// action at worst.
func ResolveFormula(formula string, initiator Initiator, schema *game.CharacterSchema, chatLog []game.ChatMessage, initiatorAccountID string) float64 {
	result := whitespaceRE.ReplaceAllString(formula, "")

	result = rangeRE.ReplaceAllStringFunc(result, func(match string) string {
		low, high, _ := strings.Cut(match[1:len(match)-1], ",")
		return randomFromRange(low, high)
	})

	result = variableRE.ReplaceAllStringFunc(result, func(match string) string {
		return substituteVariable(match[1:len(match)-1], initiator, schema, chatLog, initiatorAccountID)
	})

	return Evaluate(result)
}

// randomFromRange renders one uniform integer in [min,max]. Ranges do
// not nest; unparsable bounds collapse to the low end.
func randomFromRange(low, high string) string {
	min, _ := strconv.Atoi(low)
	max, _ := strconv.Atoi(high)
	if max <= min {
		return strconv.Itoa(min)
	}
	return strconv.Itoa(rand.Intn(max-min+1) + min)
}

// substituteVariable resolves one $variable$ name, in the authored
// matching order: special name, bar name (with optional localized max
// prefix), last-roll token, then 0. Names are the schema's localized
// display strings, not ids — renaming a bar changes what formulas match.
func substituteVariable(name string, initiator Initiator, schema *game.CharacterSchema, chatLog []game.ChatMessage, initiatorAccountID string) string {
	for _, special := range schema.Specials {
		if special.Name != name {
			continue
		}
		if value, ok := initiator.SpecialValue(special.ID); ok {
			return strconv.Itoa(value)
		}
		// Entities without specials fall through to the bar lookup.
		break
	}

	for _, bar := range schema.Bars {
		if bar.Name == "" || !strings.HasSuffix(name, bar.Name) {
			continue
		}
		max := false
		for _, prefix := range languages.MaxPrefixes {
			if strings.HasPrefix(name, prefix) {
				max = true
				break
			}
		}
		value, _ := initiator.BarValue(bar.ID, max)
		return strconv.Itoa(value)
	}

	for _, token := range languages.RollTokens {
		if name == token {
			return lastRoll(chatLog, initiatorAccountID)
		}
	}

	return "0"
}

// lastRoll scans the chat log backward for the acting account's most
// recent dice command and returns the trailing token of its rendered
// text.
func lastRoll(chatLog []game.ChatMessage, accountID string) string {
	for i := len(chatLog) - 1; i >= 0; i-- {
		message := chatLog[i]
		if message.AuthorID != accountID || !message.IsCommand {
			continue
		}
		fields := strings.Fields(message.Text)
		if len(fields) == 0 {
			break
		}
		return fields[len(fields)-1]
	}
	return "0"
}

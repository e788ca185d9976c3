package handlers

import (
	"encoding/json"
	"errors"
)

// Socket.io hands event arguments over as loosely typed JSON values;
// these helpers pull the usual shapes out of the first argument.

func payload(args []interface{}) (map[string]interface{}, bool) {
	if len(args) < 1 {
		return nil, false
	}
	data, ok := args[0].(map[string]interface{})
	return data, ok
}

func getString(data map[string]interface{}, key string) string {
	value, _ := data[key].(string)
	return value
}

func getInt(data map[string]interface{}, key string) int {
	switch value := data[key].(type) {
	case float64:
		return int(value)
	case int:
		return value
	default:
		return 0
	}
}

// decode re-marshals a nested payload value into a typed struct.
func decode(value interface{}, out interface{}) error {
	if value == nil {
		return errors.New("missing payload value")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

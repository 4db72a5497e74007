package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseJSONObject pulls the first '{' .. last '}' substring out of a model
// reply and unmarshals it. Models wrap JSON in prose or code fences often
// enough that strict whole-reply parsing is not viable.
func parseJSONObject(reply string, target any) error {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return fmt.Errorf("no JSON object in model reply")
	}
	if err := json.Unmarshal([]byte(reply[start:end+1]), target); err != nil {
		return fmt.Errorf("model reply parse: %w", err)
	}
	return nil
}

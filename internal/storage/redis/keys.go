package redis

import (
	"fmt"

	"github.com/mcoot/wordfeud-go/internal/model"
)

// boardKey returns the Redis key for a board layout
func boardKey(prefix string, id model.ID) string {
	return fmt.Sprintf("%s:board:%s", prefix, id)
}

// rulesetKey returns the Redis key for a ruleset's tile points
func rulesetKey(prefix string, id model.ID) string {
	return fmt.Sprintf("%s:ruleset:%s", prefix, id)
}

package mq

import (
	"context"
	"encoding/json"
	"log"

	"feastly/rdx"
)

// Event describes a catalog or feed lifecycle change for downstream
// consumers (indexers, cache invalidators).
type Event struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Action     string `json:"action"`
}

const channel = "recipe-events"

// Emit publishes a lifecycle event to Redis. Publishing is fire-and-forget:
// a missing connection or a publish failure never affects the request that
// triggered it.
func Emit(ctx context.Context, eventName string, content Event) {
	if rdx.Conn == nil {
		log.Printf("[Emit] %s dropped (redis not configured)", eventName)
		return
	}

	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s to Redis: %v", eventName, err)
	}
}

package domain

import "fmt"

// WalletEvent is a real-time notification of a committed change to a child's wallet.
type WalletEvent struct {
	Type      string         `json:"type"`
	ChildID   string         `json:"child_id"`
	Entity    string         `json:"entity"`
	Action    string         `json:"action"`
	Actor     string         `json:"actor"`
	Timestamp int64          `json:"timestamp"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// NewWalletEvent builds an event whose Type is derived from entity and action.
func NewWalletEvent(childID, entity, action, actor string, ts int64, extra map[string]any) WalletEvent {
	return WalletEvent{
		Type:      fmt.Sprintf("%s_%s", entity, action),
		ChildID:   childID,
		Entity:    entity,
		Action:    action,
		Actor:     actor,
		Timestamp: ts,
		Extra:     extra,
	}
}

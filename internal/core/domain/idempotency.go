package domain

import "time"

// IdempotencyLog stores the committed result of a money-moving request so a
// retried request with the same key returns it instead of moving money twice.
type IdempotencyLog struct {
	Key          string    `json:"key"` // Format: "child_id:operation:client_key"
	ResponseJSON []byte    `json:"response_json"`
	CreatedAt    time.Time `json:"created_at"`
}

// BuildIdempotencyKey scopes a client-supplied key to one child and operation.
func BuildIdempotencyKey(childID, operation, clientKey string) string {
	return childID + ":" + operation + ":" + clientKey
}

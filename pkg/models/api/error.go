package api

// Error is the structured failure payload. Callers check for a non-empty
// Error field before consuming result fields.
type Error struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

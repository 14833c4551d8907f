//go:build !darwin

package notify

// gosxPush is nil off macOS; the gosx backend reports itself unavailable.
var gosxPush func(gosxNote) error

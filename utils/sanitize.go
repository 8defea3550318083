package utils

import "github.com/microcosm-cc/bluemonday"

// ugcPolicy keeps benign user markup but strips scripts and event handlers.
// Policies are safe for concurrent use.
var ugcPolicy = bluemonday.UGCPolicy()

// Sanitize neutralizes injected markup in a free-text field before it is
// serialized. It is pure and idempotent; stored values stay raw.
func Sanitize(s string) string {
	return ugcPolicy.Sanitize(s)
}

// Package lifecycle holds the timing constants shared by fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook and the HTTP shutdown.
const DefaultTimeout = 15 * time.Second

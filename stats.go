package debounce

// Stats contains counters of a deferred behavior.
type Stats struct {
	// Restarts is a number of started delay windows.
	Restarts uint64 `json:"restarts"`
	// Fired is a number of callback invocations.
	Fired uint64 `json:"fired"`
	// Superseded is a number of pending windows replaced by a later restart.
	Superseded uint64 `json:"superseded"`
	// Cancelled is a number of windows or queued firings discarded by disposal.
	Cancelled uint64 `json:"cancelled"`
	// Dropped is a number of firings the dispatcher refused to accept.
	Dropped uint64 `json:"dropped"`
}

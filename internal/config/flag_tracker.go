package config

import "sync"

// FlagTracker provides thread-safe tracking of which CLI flags a caller
// set explicitly, so config-file values are only overridden by flags the
// user actually passed.
type FlagTracker struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// NewFlagTracker creates a new thread-safe flag tracker.
func NewFlagTracker() *FlagTracker {
	return &FlagTracker{flags: make(map[string]bool)}
}

// NewFlagTrackerWithFlags creates a flag tracker pre-populated from a map of
// explicitly-set flag names, e.g. as collected by cobra's Flags().Visit.
func NewFlagTrackerWithFlags(explicitFlags map[string]bool) *FlagTracker {
	flags := make(map[string]bool, len(explicitFlags))
	for k, v := range explicitFlags {
		flags[k] = v
	}
	return &FlagTracker{flags: flags}
}

// Set marks a flag as explicitly set.
func (ft *FlagTracker) Set(flagName string) {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	ft.flags[flagName] = true
}

// WasSet checks if a flag was explicitly set.
func (ft *FlagTracker) WasSet(flagName string) bool {
	ft.mu.RLock()
	defer ft.mu.RUnlock()
	return ft.flags[flagName]
}

// GetAll returns a copy of all tracked flags.
func (ft *FlagTracker) GetAll() map[string]bool {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	result := make(map[string]bool, len(ft.flags))
	for k, v := range ft.flags {
		result[k] = v
	}
	return result
}

// MergeString merges a string value using thread-safe flag checking.
func (ft *FlagTracker) MergeString(base, override, flagName string) string {
	if ft.WasSet(flagName) {
		return override
	}
	return base
}

// MergeBool merges a bool value using thread-safe flag checking.
func (ft *FlagTracker) MergeBool(base, override bool, flagName string) bool {
	if ft.WasSet(flagName) {
		return override
	}
	return base
}

// MergeStringSlice merges a string slice using thread-safe flag checking.
func (ft *FlagTracker) MergeStringSlice(base, override []string, flagName string) []string {
	if ft.WasSet(flagName) && len(override) > 0 {
		return override
	}
	return base
}

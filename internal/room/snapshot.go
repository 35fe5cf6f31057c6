package room

// SetSnapshot stores the latest canvas checkpoint, unconditionally replacing
// the previous one. Last submission wins: concurrent submitters race, and
// the loser's stroke survives only as relayed draw events until the next
// checkpoint. A monotonic version check here would tighten that without
// changing callers.
func (r *Room) SetSnapshot(snapshot string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshot = snapshot
}

// Snapshot returns the retained checkpoint, or false if none has been
// submitted since the room was created
func (r *Room) Snapshot() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshot, r.snapshot != ""
}

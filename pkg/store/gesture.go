package store

// Gesture rollback support. A continuous gesture (typically a drag) applies
// raw position mutations for live feedback. If the gesture is aborted before
// its terminating mutation, the store must end up exactly as it was before
// the gesture began, with no partial position committed.

// BeginGesture marks the start of a continuous gesture, capturing the
// durable state for a possible rollback. Starting a new gesture while one is
// in progress replaces the captured state.
func (s *Store) BeginGesture() {
	doc := s.doc.Clone()
	s.gesture = &doc
	s.ui.IsDragging = true
}

// CommitGesture ends the gesture, keeping all mutations applied during it.
func (s *Store) CommitGesture() {
	s.gesture = nil
	s.ui.IsDragging = false
}

// AbortGesture ends the gesture and rolls the durable state back to the
// point BeginGesture captured. Aborting with no gesture in progress is a
// no-op. The rollback itself counts as a durable mutation for subscribers
// and redo invalidation.
func (s *Store) AbortGesture() {
	if s.gesture == nil {
		return
	}
	s.doc = *s.gesture
	s.gesture = nil
	s.ui.IsDragging = false
	s.mutated("abort_gesture")
}

// GestureActive reports whether a gesture rollback point is held.
func (s *Store) GestureActive() bool { return s.gesture != nil }

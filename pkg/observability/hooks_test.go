package observability

import (
	"errors"
	"testing"
	"time"
)

type recordingStoreHooks struct {
	NoopStoreHooks
	mutations []string
}

func (r *recordingStoreHooks) OnMutation(op string) {
	r.mutations = append(r.mutations, op)
}

type recordingPersistHooks struct {
	NoopPersistHooks
	degraded error
}

func (r *recordingPersistHooks) OnDegraded(err error) { r.degraded = err }

func TestDefaultsAreNoop(t *testing.T) {
	SetStoreHooks(nil)
	SetPersistHooks(nil)

	// Must not panic.
	Store().OnMutation("add_flow")
	Store().OnSnapshot(1)
	Store().OnUndo(true)
	Store().OnRedo(false)
	Persist().OnScheduled()
	Persist().OnWrite(10, time.Millisecond, nil)
	Persist().OnDegraded(errors.New("x"))
}

func TestRegisteredHooksReceiveEvents(t *testing.T) {
	rec := &recordingStoreHooks{}
	SetStoreHooks(rec)
	defer SetStoreHooks(nil)

	Store().OnMutation("add_flow")
	Store().OnMutation("remove_flow")

	if len(rec.mutations) != 2 || rec.mutations[0] != "add_flow" {
		t.Errorf("mutations = %v", rec.mutations)
	}
}

func TestSetNilRestoresNoop(t *testing.T) {
	rec := &recordingPersistHooks{}
	SetPersistHooks(rec)
	SetPersistHooks(nil)

	Persist().OnDegraded(errors.New("after reset"))
	if rec.degraded != nil {
		t.Error("hook still registered after nil reset")
	}
}

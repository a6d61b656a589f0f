package commit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/alloc"
	"github.com/frobware/go-nas/logging"
	"github.com/frobware/go-nas/rollback"
)

// Orchestrator runs create, modify and delete commits. It holds no
// per-commit state and may be shared, but the objects it is handed
// must not be used concurrently.
type Orchestrator struct {
	logger   *slog.Logger
	observer Observer
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithObserver reports commit and rollback outcomes to obs.
func WithObserver(obs Observer) Option {
	return func(o *Orchestrator) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// New returns an Orchestrator logging to logger.
func New(logger *slog.Logger, opts ...Option) *Orchestrator {
	if logger == nil {
		logger = logging.Discard()
	}
	o := &Orchestrator{
		logger:   logging.WithTxnHandler(logger).With("component", "commit"),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// begin tags ctx with a transaction id unless the caller already did.
// Rolling-back commits are compensations and ignore cancellation.
func (o *Orchestrator) begin(ctx context.Context, op Op, obj Object, rollingBack bool) (context.Context, *slog.Logger) {
	if rollingBack {
		ctx = context.WithoutCancel(ctx)
	}
	if logging.TxnIDFromContext(ctx) == "" {
		ctx = logging.ContextWithTxnID(ctx, uuid.NewString())
	}
	return ctx, o.logger.With("op", string(op), "object", obj.Name(), "category", obj.LogCategoryName())
}

// Create pushes obj to every NPU in npus. If a push fails the NPUs
// already created are deleted again, newest first, and the push error
// is returned. With rollingBack set, failures are logged and skipped
// and nothing is tracked.
func (o *Orchestrator) Create(ctx context.Context, obj Object, npus nas.NpuSet, rollingBack bool) error {
	ctx, log := o.begin(ctx, OpCreate, obj, rollingBack)
	start := time.Now()
	log.DebugContext(ctx, "commit", "npus", npus.String(), "rolling_back", rollingBack)

	var t rollback.Tracker
	err := o.createOn(ctx, log, obj, npus, &t, rollingBack)
	if err != nil {
		log.WarnContext(ctx, "create failed, rolling back", "steps", t.Len(), "error", err)
		o.undo(ctx, log, obj, obj, &t)
	}
	o.observer.CommitDone(OpCreate, time.Since(start), err)
	return err
}

// Delete removes obj from every NPU in npus. If a delete fails the
// object is recreated on the NPUs it was already removed from, using a
// payload rebuilt from obj.
func (o *Orchestrator) Delete(ctx context.Context, obj Object, npus nas.NpuSet, rollingBack bool) error {
	ctx, log := o.begin(ctx, OpDelete, obj, rollingBack)
	start := time.Now()
	log.DebugContext(ctx, "commit", "npus", npus.String(), "rolling_back", rollingBack)

	var t rollback.Tracker
	err := o.deleteOn(ctx, log, obj, npus, &t, rollingBack)
	if err != nil {
		log.WarnContext(ctx, "delete failed, rolling back", "steps", t.Len(), "error", err)
		o.undo(ctx, log, obj, obj, &t)
	}
	o.observer.CommitDone(OpDelete, time.Since(start), err)
	return err
}

// Modify moves hardware from oldObj's state to newObj's. NPUs only in
// newObj get a create, NPUs only in oldObj get a delete, and every
// dirty attribute of newObj is pushed to the NPUs the two share. A
// failure in any phase undoes all phases newest first.
func (o *Orchestrator) Modify(ctx context.Context, newObj, oldObj Object, rollingBack bool) error {
	ctx, log := o.begin(ctx, OpModify, newObj, rollingBack)
	start := time.Now()

	added, removed, unchanged := newObj.NpuList().Compare(oldObj.NpuList())
	log.DebugContext(ctx, "commit",
		"added", added.String(),
		"removed", removed.String(),
		"unchanged", unchanged.String(),
		"dirty", newObj.DirtyAttrs().ToArray(),
		"rolling_back", rollingBack)

	var t rollback.Tracker
	err := o.createOn(ctx, log, newObj, added, &t, rollingBack)
	if err == nil {
		err = o.deleteOn(ctx, log, oldObj, removed, &t, rollingBack)
	}
	if err == nil {
		err = o.modifyOn(ctx, log, newObj, oldObj, unchanged, &t, rollingBack)
	}
	if err != nil {
		log.WarnContext(ctx, "modify failed, rolling back", "steps", t.Len(), "error", err)
		o.undo(ctx, log, newObj, oldObj, &t)
	}
	o.observer.CommitDone(OpModify, time.Since(start), err)
	return err
}

func (o *Orchestrator) createOn(ctx context.Context, log *slog.Logger, obj Object, npus nas.NpuSet, t *rollback.Tracker, rollingBack bool) error {
	if npus.Empty() {
		return nil
	}

	scope := alloc.NewScope()
	defer scope.Close()

	payload, err := obj.AllocHardwareRepresentation(scope)
	if err != nil {
		return classify("build payload", obj, -1, err)
	}

	for npu := range npus.All() {
		pushed, err := obj.PushCreate(ctx, npu, payload)
		if err != nil {
			if !rollingBack {
				return classify("push create", obj, npu, err)
			}
			log.ErrorContext(ctx, "rollback create failed", "npu", npu, "error", err)
			continue
		}
		if !pushed {
			log.Log(ctx, logging.LevelTrace.ToSlog(), "create not applicable", "npu", npu)
			continue
		}
		if !rollingBack {
			t.ObjectCreated(npu)
		}
	}
	return nil
}

func (o *Orchestrator) deleteOn(ctx context.Context, log *slog.Logger, obj Object, npus nas.NpuSet, t *rollback.Tracker, rollingBack bool) error {
	for npu := range npus.All() {
		pushed, err := obj.PushDelete(ctx, npu)
		if err != nil {
			if !rollingBack {
				return classify("push delete", obj, npu, err)
			}
			log.ErrorContext(ctx, "rollback delete failed", "npu", npu, "error", err)
			continue
		}
		if !pushed {
			continue
		}
		if !rollingBack {
			t.ObjectDeleted(npu)
		}
	}
	return nil
}

func (o *Orchestrator) modifyOn(ctx context.Context, log *slog.Logger, newObj, oldObj Object, npus nas.NpuSet, t *rollback.Tracker, rollingBack bool) error {
	if npus.Empty() {
		return nil
	}

	for attr := range newObj.DirtyAttrs().All() {
		if !newObj.IsLeafAttr(attr) {
			if err := newObj.PushNonLeafAttr(ctx, attr, oldObj, npus, t, rollingBack); err != nil {
				if !rollingBack {
					return classify(fmt.Sprintf("push attr %d", attr), newObj, -1, err)
				}
				log.ErrorContext(ctx, "rollback non-leaf attr failed", "attr", attr, "error", err)
			}
			continue
		}

		for npu := range npus.All() {
			pushed, err := newObj.PushLeafAttr(ctx, attr, npu)
			if err != nil {
				if !rollingBack {
					return classify(fmt.Sprintf("push attr %d", attr), newObj, npu, err)
				}
				log.ErrorContext(ctx, "rollback attr failed", "attr", attr, "npu", npu, "error", err)
				continue
			}
			if pushed && !rollingBack {
				t.AttrModified(npu, attr)
			}
		}
	}
	return nil
}

// undo replays t newest first. Entries that compensate a creation act
// on newObj; entries that restore prior state act on oldObj. Failures
// are logged and the replay carries on.
func (o *Orchestrator) undo(ctx context.Context, log *slog.Logger, newObj, oldObj Object, t *rollback.Tracker) {
	// A cancelled caller must not strand a half-undone commit.
	ctx = context.WithoutCancel(ctx)
	scope := alloc.NewScope()
	defer scope.Close()

	// The recreate payload is only built if a deleted-object entry
	// needs it, and at most once.
	var (
		payload    any
		payloadErr error
		built      bool
	)
	recreatePayload := func() (any, error) {
		if !built {
			payload, payloadErr = oldObj.AllocHardwareRepresentation(scope)
			built = true
		}
		return payload, payloadErr
	}

	failures := t.Drain(func(e rollback.Entry) error {
		err := o.compensate(ctx, newObj, oldObj, e, recreatePayload)
		o.observer.RollbackStep(e.Kind, err)
		return err
	})

	for _, f := range failures {
		log.ErrorContext(ctx, "rollback step failed",
			"kind", f.Entry.Kind.String(),
			"npu", f.Entry.NPU,
			"path", f.Entry.Path.String(),
			"error", f.Err)
	}
	if len(failures) > 0 {
		log.ErrorContext(ctx, "rollback incomplete, hardware may be inconsistent", "failed_steps", len(failures))
	}
}

func (o *Orchestrator) compensate(ctx context.Context, newObj, oldObj Object, e rollback.Entry, recreatePayload func() (any, error)) error {
	switch e.Kind {
	case rollback.CreatedObject:
		_, err := newObj.PushDelete(ctx, e.NPU)
		return err

	case rollback.DeletedObject:
		payload, err := recreatePayload()
		if err != nil {
			return err
		}
		_, err = oldObj.PushCreate(ctx, e.NPU, payload)
		return err

	case rollback.ModifiedAttr:
		if e.Path.Leaf() {
			_, err := oldObj.PushLeafAttr(ctx, e.Path[0], e.NPU)
			return err
		}
		return oldObj.RollbackModifiedAttr(ctx, e.Path, e.NPU, newObj)

	case rollback.CreatedAttr:
		return newObj.RollbackCreatedAttr(ctx, e.Path, e.NPU)

	case rollback.DeletedAttr:
		return oldObj.RollbackDeletedAttr(ctx, e.Path, e.NPU)
	}
	return nas.Errorf(nas.CodeInvalidParameter, "rollback", "unknown entry kind %s", e.Kind)
}

// classify wraps a hook error with the object and NPU. Unclassified
// errors become hardware failures. npu < 0 means no specific NPU.
func classify(op string, obj Object, npu nas.NpuID, err error) error {
	code := nas.CodeOf(err)
	if code == nas.CodeUnknown {
		code = nas.CodeHardwareFailure
	}
	msg := obj.Name()
	if npu >= 0 {
		msg = fmt.Sprintf("%s on npu %d", obj.Name(), npu)
	}
	return &nas.Error{Code: code, Op: op, Msg: msg, Err: err}
}

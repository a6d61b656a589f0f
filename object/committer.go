package object

import (
	"context"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/commit"
)

// CreateValidator is implemented by objects that check their own
// attributes before a create reaches hardware.
type CreateValidator interface {
	ValidateCreate() error
}

// ModifyValidator is implemented by objects that check a modify
// against the previous snapshot.
type ModifyValidator interface {
	ValidateModify(old Object) error
}

type commitOptions struct {
	rollingBack bool
}

// CommitOption adjusts a single commit.
type CommitOption func(*commitOptions)

// WithRollingBack marks the commit as compensating an earlier one:
// push failures are logged and skipped rather than undone.
func WithRollingBack() CommitOption {
	return func(o *commitOptions) { o.rollingBack = true }
}

// Committer applies lifecycle checks and bookkeeping around the
// orchestrator.
type Committer struct {
	orch *commit.Orchestrator
}

// NewCommitter returns a Committer using orch.
func NewCommitter(orch *commit.Orchestrator) *Committer {
	return &Committer{orch: orch}
}

func collect(opts []CommitOption) commitOptions {
	var o commitOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Create pushes obj to hardware. An object with no NPUs follows its
// switch. On failure the object stays uncommitted and keeps its dirty
// attributes so the caller can retry.
func (c *Committer) Create(ctx context.Context, obj Object, opts ...CommitOption) error {
	o := collect(opts)
	b := obj.BaseObject()

	if b.state != Uncommitted {
		return nas.Errorf(nas.CodeInvalidState, "commit create", "%s is %s", obj.Name(), b.state)
	}
	if v, ok := obj.(CreateValidator); ok {
		if err := v.ValidateCreate(); err != nil {
			return err
		}
	}

	b.resolveNpus()
	b.set = b.dirty.Clone()

	if err := c.orch.Create(ctx, obj, b.npus, o.rollingBack); err != nil {
		return err
	}

	b.state = Created
	b.ClearAllDirtyFlags()
	return nil
}

// Modify pushes the changes in newObj relative to oldObj and returns
// the attributes that changed. newObj and oldObj must be distinct
// values; callers modify a Clone of the stored object. On failure
// newObj keeps its dirty state and oldObj remains the snapshot to
// retry from.
func (c *Committer) Modify(ctx context.Context, newObj, oldObj Object, opts ...CommitOption) (nas.AttrSet, error) {
	o := collect(opts)
	nb, ob := newObj.BaseObject(), oldObj.BaseObject()

	if nb == ob {
		return nas.AttrSet{}, nas.Errorf(nas.CodeInvalidParameter, "commit modify", "%s: new and old must be distinct objects", newObj.Name())
	}
	if nb.state != Created || ob.state != Created {
		return nas.AttrSet{}, nas.Errorf(nas.CodeInvalidState, "commit modify", "%s is %s", newObj.Name(), nb.state)
	}
	if v, ok := newObj.(ModifyValidator); ok {
		if err := v.ValidateModify(oldObj); err != nil {
			return nas.AttrSet{}, err
		}
	}

	nb.set.Union(nb.dirty)
	nb.resolveNpus()

	if err := c.orch.Modify(ctx, newObj, oldObj, o.rollingBack); err != nil {
		return nas.AttrSet{}, err
	}

	modified := nb.dirty.Clone()
	nb.ClearAllDirtyFlags()
	return modified, nil
}

// Delete removes obj from hardware. On success the object is Deleted
// and can no longer be committed.
func (c *Committer) Delete(ctx context.Context, obj Object, opts ...CommitOption) error {
	o := collect(opts)
	b := obj.BaseObject()

	if b.state != Created {
		return nas.Errorf(nas.CodeInvalidState, "commit delete", "%s is %s", obj.Name(), b.state)
	}

	if err := c.orch.Delete(ctx, obj, b.npus, o.rollingBack); err != nil {
		return err
	}

	b.state = Deleted
	b.ClearAllDirtyFlags()
	return nil
}

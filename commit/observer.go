package commit

import (
	"time"

	"github.com/frobware/go-nas/rollback"
)

// Op names a commit operation.
type Op string

const (
	OpCreate Op = "create"
	OpModify Op = "modify"
	OpDelete Op = "delete"
)

// Observer receives commit outcomes. Implementations must be safe for
// concurrent use.
type Observer interface {
	// CommitDone is called once per orchestrator call.
	CommitDone(op Op, elapsed time.Duration, err error)
	// RollbackStep is called once per replayed tracker entry.
	RollbackStep(kind rollback.Kind, err error)
}

type nopObserver struct{}

func (nopObserver) CommitDone(Op, time.Duration, error) {}
func (nopObserver) RollbackStep(rollback.Kind, error) {}

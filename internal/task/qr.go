package task

import (
	errorvalues "github.com/limbo/wakeup/internal/error_values"
	"github.com/limbo/wakeup/pkg/entity"
)

// QRTask is a black box: only an external scan-match confirmation satisfies it.
type QRTask struct {
	confirmed bool
}

type QRState struct {
	Confirmed bool `json:"confirmed"`
}

func newQRTask() *QRTask { return &QRTask{} }

func (t *QRTask) Kind() entity.TaskKind { return entity.TaskQR }

func (t *QRTask) Handle(ev Event) error {
	if ev.Type != EventScan {
		return errorvalues.ErrTaskEventMismatch
	}
	t.confirmed = true
	return nil
}

func (t *QRTask) Satisfied() bool { return t.confirmed }

func (t *QRTask) State() any {
	return QRState{Confirmed: t.confirmed}
}

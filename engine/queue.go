package engine

import "github.com/lixenwraith/asteroids/core"

type pendingOp uint8

const (
	opRegisterEntity pendingOp = iota
	opRemoveEntity
	opRegisterComponent
)

type pendingCommand struct {
	op        pendingOp
	entity    *Entity
	component *Component
}

// pendingQueue holds structural changes requested mid-frame
type pendingQueue struct {
	cmds *core.Sequence[pendingCommand]
}

func newPendingQueue() pendingQueue {
	return pendingQueue{cmds: core.NewSequence[pendingCommand](16)}
}

func (q *pendingQueue) push(cmd pendingCommand) {
	q.cmds.Append(cmd)
}

func (q *pendingQueue) len() int {
	return q.cmds.Len()
}

// drain applies commands in FIFO order, including ones queued while draining
func (q *pendingQueue) drain(apply func(pendingCommand)) {
	for i := 0; i < q.cmds.Len(); i++ {
		apply(q.cmds.Get(i))
	}
	q.cmds.Clear()
}

func (q *pendingQueue) clear() {
	q.cmds.Clear()
}

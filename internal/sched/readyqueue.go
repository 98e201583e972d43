package sched

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// queueKey orders the ready queue: primary by the policy's priority key,
// secondary by task id so equal-key ordering is deterministic.
type queueKey struct {
	key int
	id  TaskID
}

func queueCmp(a, b any) int {
	ka, kb := a.(queueKey), b.(queueKey)
	switch {
	case ka.key < kb.key:
		return -1
	case ka.key > kb.key:
		return 1
	case ka.id < kb.id:
		return -1
	case ka.id > kb.id:
		return 1
	default:
		return 0
	}
}

// readyQueue holds released-but-not-running tasks ordered by the active
// policy. Entries are arena indices; the priority key is captured at
// insertion time and only ever changes at a release, which reinserts.
type readyQueue struct {
	set    *TaskSet
	policy Policy
	tree   *redblacktree.Tree
	queued map[int]queueKey // arena index -> key currently in the tree
}

func newReadyQueue(set *TaskSet, policy Policy) *readyQueue {
	return &readyQueue{
		set:    set,
		policy: policy,
		tree:   redblacktree.NewWith(queueCmp),
		queued: make(map[int]queueKey),
	}
}

// Push inserts the task at its current priority key. If a stale entry from
// a superseded job instance is still queued, it is replaced rather than
// duplicated, so each task occupies at most one slot.
func (q *readyQueue) Push(idx int) {
	if old, ok := q.queued[idx]; ok {
		q.tree.Remove(old)
	}
	k := queueKey{key: q.policy.keyOf(q.set.task(idx)), id: q.set.task(idx).ID}
	q.tree.Put(k, idx)
	q.queued[idx] = k
}

// Peek returns the highest-priority task without removing it.
func (q *readyQueue) Peek() (int, bool) {
	node := q.tree.Left()
	if node == nil {
		return -1, false
	}
	return node.Value.(int), true
}

// Pop removes and returns the highest-priority task.
func (q *readyQueue) Pop() (int, bool) {
	node := q.tree.Left()
	if node == nil {
		return -1, false
	}
	idx := node.Value.(int)
	q.tree.Remove(node.Key)
	delete(q.queued, idx)
	return idx, true
}

// Len returns the number of queued tasks.
func (q *readyQueue) Len() int { return q.tree.Size() }

package core

import "container/heap"

// KeyFunc extracts the value a ReadyQueue orders by: burst time for
// SJF, priority for priority scheduling, remaining time for SRTF.
type KeyFunc func(*Process) int

// ReadyQueue is a min-queue over ready processes. Ties on the key are
// broken by earlier arrival time, then by lower process id, so the
// pop order is a strict total order and every run is reproducible.
type ReadyQueue struct {
	h readyHeap
}

func NewReadyQueue(key KeyFunc) *ReadyQueue {
	return &ReadyQueue{h: readyHeap{key: key}}
}

func (q *ReadyQueue) Len() int {
	return q.h.Len()
}

func (q *ReadyQueue) Push(p *Process) {
	heap.Push(&q.h, p)
}

func (q *ReadyQueue) Pop() *Process {
	return heap.Pop(&q.h).(*Process)
}

type readyHeap struct {
	procs []*Process
	key   KeyFunc
}

func (h *readyHeap) Len() int { return len(h.procs) }

func (h *readyHeap) Less(i, j int) bool {
	a, b := h.procs[i], h.procs[j]
	if ka, kb := h.key(a), h.key(b); ka != kb {
		return ka < kb
	}
	if a.Job.ArrivalTime != b.Job.ArrivalTime {
		return a.Job.ArrivalTime < b.Job.ArrivalTime
	}
	return a.Job.ProcessId < b.Job.ProcessId
}

func (h *readyHeap) Swap(i, j int) {
	h.procs[i], h.procs[j] = h.procs[j], h.procs[i]
}

func (h *readyHeap) Push(x any) {
	h.procs = append(h.procs, x.(*Process))
}

func (h *readyHeap) Pop() any {
	old := h.procs
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	h.procs = old[:n-1]
	return item
}

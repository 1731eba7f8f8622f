// Package cachestate implements the availability/visibility barrier algebra
// each tracked GPU resource carries: which queue owns it, which writes are
// not yet available, and which accesses each pipeline stage can already
// see. Every barrier and cross-queue wait decision derives from this state.
package cachestate

import "github.com/gogpu/bindless/types"

// State is the barrier-algebra state carried by every tracked buffer,
// texture, or acceleration structure.
type State struct {
	// Owner is the queue that currently owns the resource.
	Owner types.Queue

	// UnavailableStages is the pipeline-stage set whose writes still need an
	// availability operation before subsequent accesses can see them.
	UnavailableStages types.PipelineStage

	// UnavailableAccesses is the matching write-access set.
	UnavailableAccesses types.Access

	// SyncStages is the pipeline-stage set currently reachable through prior
	// synchronization.
	SyncStages types.PipelineStage

	// Visible holds, per pipeline stage, the set of accesses already made
	// visible to that stage. Indexed by stage bit position (log2 of the
	// stage's 1<<n value); see visIndex.
	Visible [visSlots]types.Access
}

// visSlots bounds the stage-bit range used as an index into Visible; it must
// cover every bit defined in types.PipelineStage.
const visSlots = 32

func visIndex(stage types.PipelineStage) int {
	for i := 0; i < visSlots; i++ {
		if stage == 1<<uint(i) {
			return i
		}
	}
	return -1
}

// eachStage calls fn once per single-bit stage present in stages.
func eachStage(stages types.PipelineStage, fn func(types.PipelineStage)) {
	for i := 0; i < visSlots; i++ {
		bit := types.PipelineStage(1 << uint(i))
		if stages&bit != 0 {
			fn(bit)
		}
	}
}

// New returns the zero state: uninitialized owner, nothing unavailable,
// nothing visible.
func New() State {
	return State{Owner: types.QueueNone}
}

// CommitAcquireSwapchain sets owner to graphics and clears every other
// field; the newly acquired swapchain image has undefined contents.
func (s *State) CommitAcquireSwapchain() {
	*s = State{Owner: types.QueueGraphics}
}

// CommitWaitSemaphore hands ownership of the resource to dstQueue on the
// first wait after production on srcQueue. A semaphore wait carries implicit
// memory visibility to every waited stage.
func (s *State) CommitWaitSemaphore(srcQueue, dstQueue types.Queue, dstStages types.PipelineStage) {
	if s.Owner == srcQueue {
		s.Owner = dstQueue
	}
	s.SyncStages = dstStages
	eachStage(dstStages, func(stage types.PipelineStage) {
		if idx := visIndex(stage); idx >= 0 {
			s.Visible[idx] = ^types.Access(0)
		}
	})
}

// CommitWaitEventOrBarrier records a pipeline barrier or event wait. If the
// queue does not own the resource, or the source stages/accesses do not
// cover what is still unavailable, the call is a no-op on this resource -
// the barrier was unnecessary. Otherwise sync_stages is extended, the
// unavailable sets are cleared, and visibility is either propagated to
// dstAccesses at each dst stage or, on a layout change, reset to empty.
func (s *State) CommitWaitEventOrBarrier(queue types.Queue, srcStages types.PipelineStage, srcAccesses types.Access, dstStages types.PipelineStage, dstAccesses types.Access, layoutChange bool) {
	if s.Owner != queue {
		return
	}
	if s.UnavailableStages&^srcStages != 0 || s.UnavailableAccesses&^srcAccesses != 0 {
		return
	}

	s.SyncStages |= dstStages
	s.UnavailableStages = 0
	s.UnavailableAccesses = 0

	eachStage(dstStages, func(stage types.PipelineStage) {
		idx := visIndex(stage)
		if idx < 0 {
			return
		}
		if layoutChange {
			s.Visible[idx] = 0
		} else {
			s.Visible[idx] |= dstAccesses
		}
	})
}

// CommitAccess records a new access on queue. It asserts (panics, a
// programmer error) that sync_stages already covers stages and that no
// writes are currently unavailable - callers are expected to have already
// synthesized the barrier via CommitWaitEventOrBarrier before calling this.
// The one exception is a resource still in its zero state (no owner, nothing
// unavailable, nothing synced): it has no prior GPU producer to synchronize
// with, so its first access is never required to go through
// CommitWaitEventOrBarrier first.
func (s *State) CommitAccess(queue types.Queue, stages types.PipelineStage, accesses types.Access) {
	fresh := s.Owner == types.QueueNone && s.SyncStages == 0 && s.UnavailableStages == 0
	if !fresh && s.SyncStages&stages != stages {
		panic("cachestate: access not covered by prior synchronization")
	}
	if s.UnavailableAccesses.IsWrite() {
		panic("cachestate: access while writes remain unavailable")
	}

	s.Owner = queue
	s.UnavailableStages |= stages

	if writes := accesses.WriteAccesses(); writes != 0 {
		s.UnavailableAccesses |= writes
		for i := range s.Visible {
			s.Visible[i] = 0
		}
	}
}

// NeedInvalidate reports whether any stage in stages lacks any access in
// accesses in its visibility set - i.e. whether a cache invalidation
// barrier is required before this access can proceed.
func (s *State) NeedInvalidate(stages types.PipelineStage, accesses types.Access) bool {
	need := false
	eachStage(stages, func(stage types.PipelineStage) {
		idx := visIndex(stage)
		if idx < 0 {
			need = true
			return
		}
		if s.Visible[idx]&accesses != accesses {
			need = true
		}
	})
	return need
}

// Join merges two alternative paths that converge on the same resource:
// the union of unavailability, and the intersection of visibility (only
// what both paths agree is visible can be relied on).
func (s *State) Join(other State) {
	s.UnavailableStages |= other.UnavailableStages
	s.UnavailableAccesses |= other.UnavailableAccesses
	s.SyncStages |= other.SyncStages
	for i := range s.Visible {
		s.Visible[i] &= other.Visible[i]
	}
}

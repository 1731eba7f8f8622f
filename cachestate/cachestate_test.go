package cachestate

import (
	"testing"

	"github.com/gogpu/bindless/types"
)

func TestCommitAcquireSwapchain_ResetsEverything(t *testing.T) {
	s := New()
	s.SyncStages = types.StageTransfer
	s.CommitAccess(types.QueueTransfer, types.StageTransfer, types.AccessTransferWrite)

	s.CommitAcquireSwapchain()

	if s.Owner != types.QueueGraphics {
		t.Errorf("Owner = %v, want graphics", s.Owner)
	}
	if s.UnavailableStages != 0 || s.UnavailableAccesses != 0 || s.SyncStages != 0 {
		t.Errorf("state not fully reset: %+v", s)
	}
}

func TestCommitWaitSemaphore_TransfersOwnershipAndVisibility(t *testing.T) {
	s := New()
	s.Owner = types.QueueTransfer

	s.CommitWaitSemaphore(types.QueueTransfer, types.QueueCompute, types.StageComputeShader)

	if s.Owner != types.QueueCompute {
		t.Errorf("Owner = %v, want compute", s.Owner)
	}
	if s.NeedInvalidate(types.StageComputeShader, types.AccessShaderRead) {
		t.Errorf("NeedInvalidate = true after semaphore wait, want false")
	}
}

func TestCommitAccess_MarksWritesUnavailableAndClearsVisibility(t *testing.T) {
	s := New()
	s.Owner = types.QueueGraphics
	s.SyncStages = types.StageComputeShader
	idx := visIndex(types.StageComputeShader)
	s.Visible[idx] = types.AccessShaderRead

	s.CommitAccess(types.QueueGraphics, types.StageComputeShader, types.AccessShaderWrite)

	if s.UnavailableAccesses&types.AccessShaderWrite == 0 {
		t.Errorf("UnavailableAccesses = %v, want AccessShaderWrite set", s.UnavailableAccesses)
	}
	if s.Visible[idx] != 0 {
		t.Errorf("Visible[%d] = %v, want cleared after write", idx, s.Visible[idx])
	}
}

func TestCommitAccess_PanicsWhenSyncStagesDoNotCover(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic when stages are not covered by sync_stages")
		}
	}()

	s := New()
	s.Owner = types.QueueGraphics
	s.CommitAccess(types.QueueGraphics, types.StageFragmentShader, types.AccessShaderRead)
}

func TestCommitWaitEventOrBarrier_NoopWhenQueueDoesNotOwn(t *testing.T) {
	s := New()
	s.Owner = types.QueueGraphics
	before := s

	s.CommitWaitEventOrBarrier(types.QueueCompute, types.StageComputeShader, types.AccessShaderWrite, types.StageFragmentShader, types.AccessShaderRead, false)

	if s != before {
		t.Errorf("state changed on a barrier issued by a non-owning queue: got %+v, want %+v", s, before)
	}
}

func TestCommitWaitEventOrBarrier_LayoutChangeResetsVisibility(t *testing.T) {
	s := New()
	s.Owner = types.QueueGraphics
	s.UnavailableStages = types.StageColorAttachmentOutput
	s.UnavailableAccesses = types.AccessColorAttachmentWrite

	s.CommitWaitEventOrBarrier(types.QueueGraphics, types.StageColorAttachmentOutput, types.AccessColorAttachmentWrite, types.StageFragmentShader, types.AccessShaderRead, true)

	idx := visIndex(types.StageFragmentShader)
	if s.Visible[idx] != 0 {
		t.Errorf("Visible[%d] = %v after layout-changing barrier, want 0", idx, s.Visible[idx])
	}
	if s.UnavailableStages != 0 || s.UnavailableAccesses != 0 {
		t.Errorf("unavailable sets not cleared: %+v", s)
	}
}

func TestJoin_UnionsUnavailabilityIntersectsVisibility(t *testing.T) {
	a := New()
	a.UnavailableStages = types.StageVertexShader
	aIdx := visIndex(types.StageFragmentShader)
	a.Visible[aIdx] = types.AccessShaderRead | types.AccessShaderWrite

	b := New()
	b.UnavailableStages = types.StageFragmentShader
	b.Visible[aIdx] = types.AccessShaderRead

	a.Join(b)

	if !a.UnavailableStages.Contains(types.StageVertexShader) || !a.UnavailableStages.Contains(types.StageFragmentShader) {
		t.Errorf("UnavailableStages = %v, want union of both paths", a.UnavailableStages)
	}
	if a.Visible[aIdx] != types.AccessShaderRead {
		t.Errorf("Visible[%d] = %v, want intersection AccessShaderRead only", aIdx, a.Visible[aIdx])
	}
}

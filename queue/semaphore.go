package queue

import "fmt"

// BinarySemaphoreState is the explicit state machine a single-use binary
// semaphore moves through: created unsignaled, signaled by one submission or
// by a surface acquire, then consumed by exactly one wait.
type BinarySemaphoreState uint8

const (
	BinarySemaphoreInit BinarySemaphoreState = iota
	BinarySemaphoreSignalled
	BinarySemaphoreWaited
)

func (s BinarySemaphoreState) String() string {
	switch s {
	case BinarySemaphoreInit:
		return "init"
	case BinarySemaphoreSignalled:
		return "signalled"
	case BinarySemaphoreWaited:
		return "waited"
	default:
		return "unknown"
	}
}

// BinarySemaphore models a Vulkan-style binary semaphore used for the
// swapchain image-available / render-finished handshake, which hal's
// Surface/Queue interfaces manage internally but whose state machine the
// frame ring still needs to assert against: a semaphore signals exactly
// once before it is waited exactly once, and reset returns it to INIT for
// reuse next frame.
type BinarySemaphore struct {
	label string
	state BinarySemaphoreState
}

// NewBinarySemaphore returns a semaphore in the INIT state.
func NewBinarySemaphore(label string) *BinarySemaphore {
	return &BinarySemaphore{label: label, state: BinarySemaphoreInit}
}

// State reports the semaphore's current state.
func (s *BinarySemaphore) State() BinarySemaphoreState {
	return s.state
}

// Signal transitions INIT -> SIGNALLED. Signaling an already-signalled or
// waited semaphore is a programmer error.
func (s *BinarySemaphore) Signal() error {
	if s.state != BinarySemaphoreInit {
		return fmt.Errorf("queue: semaphore %q signalled from state %s, want init", s.label, s.state)
	}
	s.state = BinarySemaphoreSignalled
	return nil
}

// Wait transitions SIGNALLED -> WAITED. Waiting on an unsignalled or
// already-waited semaphore is a programmer error - the caller skipped a
// required signal somewhere upstream.
func (s *BinarySemaphore) Wait() error {
	if s.state != BinarySemaphoreSignalled {
		return fmt.Errorf("queue: semaphore %q waited from state %s, want signalled", s.label, s.state)
	}
	s.state = BinarySemaphoreWaited
	return nil
}

// Reset returns a WAITED semaphore to INIT so it can be reused by a future
// frame. Resetting a semaphore already in INIT leaves it there; resetting a
// SIGNALLED one is a programmer error.
func (s *BinarySemaphore) Reset() error {
	if s.state != BinarySemaphoreWaited && s.state != BinarySemaphoreInit {
		return fmt.Errorf("queue: semaphore %q reset from state %s, want waited", s.label, s.state)
	}
	s.state = BinarySemaphoreInit
	return nil
}

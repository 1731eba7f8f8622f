package rendergraph

// Pool is the parallel secondary-command-buffer recording contract Execute
// leaves optional: a render graph with enough independent raster work can
// hand batches of render-pass bodies to a worker pool instead of recording
// them one at a time on the main recording thread. Scheduling the actual
// job system behind Pool is out of scope here; Execute only needs Go/Wait
// to exist so it can be written once against the interface and still run
// correctly - just without the parallelism - against SyncPool.
type Pool interface {
	// Go schedules fn to run, possibly on another goroutine. Go must not
	// block waiting for fn to finish.
	Go(fn func())

	// Wait blocks until every fn passed to Go since the last Wait has
	// returned.
	Wait()
}

// SyncPool is the synchronous fallback Pool: Go runs fn immediately on the
// calling goroutine, so Wait is always a no-op. Execute defaults to this
// when the caller supplies no Pool, which is always correct, just
// single-threaded.
type SyncPool struct{}

// NewSyncPool returns a Pool that runs every job inline.
func NewSyncPool() Pool { return SyncPool{} }

func (SyncPool) Go(fn func()) { fn() }
func (SyncPool) Wait()        {}

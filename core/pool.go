package core

import "sync"

// Pool wraps a Storage with the allocate-next-generation bookkeeping every
// resource kind needs: a new insertion always gets a fresh epoch for
// whatever index it lands on, so a stale ID from a destroyed-and-reused slot
// fails Storage.Get's epoch check instead of silently aliasing. Grounded on
// core/storage.go's Storage[T, M], generalized from the single ad hoc use in
// resource.go to one instance per bindless resource kind.
type Pool[T any, M Marker] struct {
	storage *Storage[T, M]
	mu      sync.Mutex // guards next and free
	next    []Epoch // per-index next epoch to hand out, grown lazily
	free    []Index // recycled indices, most recently freed reused first
}

// NewPool creates an empty pool with optional initial capacity.
func NewPool[T any, M Marker](capacity int) *Pool[T, M] {
	return &Pool[T, M]{storage: NewStorage[T, M](capacity)}
}

// Insert allocates a fresh ID (reusing a freed index when available, with
// its epoch bumped) and stores item under it.
func (p *Pool[T, M]) Insert(item T) ID[M] {
	p.mu.Lock()
	defer p.mu.Unlock()
	var index Index
	if n := len(p.free); n > 0 {
		index = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		//nolint:gosec // G115: Capacity[M] never approaches 2^32 in practice
		index = Index(len(p.next))
		p.next = append(p.next, 0)
	}
	epoch := p.next[index]
	id := NewID[M](index, epoch)
	p.storage.Insert(id, item)
	return id
}

// Get retrieves an item by ID.
func (p *Pool[T, M]) Get(id ID[M]) (T, bool) {
	return p.storage.Get(id)
}

// GetMut retrieves an item by ID for in-place mutation.
func (p *Pool[T, M]) GetMut(id ID[M], fn func(*T)) bool {
	return p.storage.GetMut(id, fn)
}

// Remove removes item id, bumps its slot's epoch so a stale copy of id can
// never again validate against Get, and returns the index to the free list.
func (p *Pool[T, M]) Remove(id ID[M]) (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	item, ok := p.storage.Remove(id)
	if !ok {
		return item, false
	}
	index := id.Index()
	if int(index) < len(p.next) {
		p.next[index]++
	}
	p.free = append(p.free, index)
	return item, true
}

// Contains reports whether id currently refers to a live item.
func (p *Pool[T, M]) Contains(id ID[M]) bool {
	return p.storage.Contains(id)
}

// Len returns the number of live items.
func (p *Pool[T, M]) Len() int {
	return p.storage.Len()
}

// ForEach iterates over every live item, in index order.
func (p *Pool[T, M]) ForEach(fn func(ID[M], T) bool) {
	p.storage.ForEach(fn)
}

// ResourceRegistry bundles one Pool per generationally-addressed resource
// kind. One ResourceRegistry is created per Device and owns the
// generational lifetime of every pooled resource.
type ResourceRegistry struct {
	Buffers       *Pool[*Buffer, bufferMarker]
	Textures      *Pool[*Texture, textureMarker]
	Samplers      *Pool[*Sampler, samplerMarker]
	Blas          *Pool[Blas, blasMarker]
	BlasGroups    *Pool[BlasGroup, blasGroupMarker]
	Tlas          *Pool[Tlas, tlasMarker]
	Shaders       *Pool[Shader, shaderMarker]
	Programs      *Pool[Program, programMarker]
	PipelineState *Pool[PipelineState, pipelineStateMarker]
	ShaderTables  *Pool[ShaderTable, shaderTableMarker]
}

// NewRegistry creates an empty ResourceRegistry with one pool per kind.
func NewRegistry() *ResourceRegistry {
	return &ResourceRegistry{
		Buffers:       NewPool[*Buffer, bufferMarker](0),
		Textures:      NewPool[*Texture, textureMarker](0),
		Samplers:      NewPool[*Sampler, samplerMarker](0),
		Blas:          NewPool[Blas, blasMarker](0),
		BlasGroups:    NewPool[BlasGroup, blasGroupMarker](0),
		Tlas:          NewPool[Tlas, tlasMarker](0),
		Shaders:       NewPool[Shader, shaderMarker](0),
		Programs:      NewPool[Program, programMarker](0),
		PipelineState: NewPool[PipelineState, pipelineStateMarker](0),
		ShaderTables:  NewPool[ShaderTable, shaderTableMarker](0),
	}
}

// CreateBlasGroup inserts an empty named group.
func (r *ResourceRegistry) CreateBlasGroup(label string) BlasGroupID {
	return r.BlasGroups.Insert(BlasGroup{Label: label})
}

// CreateBlas inserts a Blas and, if group is valid, appends it to the
// group's membership list, recording the membership index on the Blas
// itself (an index into the group's membership vector). A Blas with
// no group must set b.Group to NullID[blasGroupMarker](): the zero ID
// (index 0, epoch 0) is a legitimate handle for the first group ever
// created, so it cannot double as the "no group" sentinel.
func (r *ResourceRegistry) CreateBlas(b Blas) BlasID {
	id := r.Blas.Insert(b)
	if b.Group.Raw() != NullID[blasGroupMarker]().Raw() {
		r.BlasGroups.GetMut(b.Group, func(g *BlasGroup) {
			g.Members = append(g.Members, id)
		})
	}
	return id
}

// DestroyBlas removes a Blas and its membership record from its group.
func (r *ResourceRegistry) DestroyBlas(id BlasID) {
	b, ok := r.Blas.Remove(id)
	if !ok {
		return
	}
	if b.Group.Raw() != NullID[blasGroupMarker]().Raw() {
		r.BlasGroups.GetMut(b.Group, func(g *BlasGroup) {
			if i := g.IndexOf(id); i >= 0 {
				g.Members = append(g.Members[:i], g.Members[i+1:]...)
			}
		})
	}
}

package rendergraph

import (
	"fmt"
	"sort"

	"github.com/gogpu/bindless/cache"
	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/types"
)

// CompiledGraph is what Compile hands back: passes in execution order, each
// with the barriers and cross-queue waits compilation derives for it, plus the
// transient resources Compile allocated so Release can hand them to a
// frame's Garbages once this graph's commands have finished executing.
type CompiledGraph struct {
	graph    *Graph
	registry *Registry
	passes   []*compiledPass

	transientBuffers  []hal.Buffer
	transientTextures []hal.Texture
	transientViews    []hal.TextureView
	// ownedViews holds every view Compile created for an imported node
	// that supplied none - these belong to this graph alone and must be
	// released with it, unlike transientViews' textures which own them.
	ownedViews []hal.TextureView
}

// compiledPass is one Pass plus its synthesized synchronization.
type compiledPass struct {
	pass            *Pass
	waitQueues      []types.Queue
	bufferBarriers  []hal.BufferBarrier
	textureBarriers []hal.TextureBarrier
	renderPass      *hal.RenderPassDescriptor
}

// Compile validates the graph is a DAG with no dangling
// references, computes each transient's first/last-use lifetime and
// allocates it (reusing the native object of a compatible transient
// whose lifetime already ended), and synthesizes the cross-queue waits
// and pipeline barriers each pass needs before the resources it touches
// are ready to use - all before a single command is recorded, so a
// failure here leaves nothing to unwind beyond the transients this call
// itself allocated.
func (g *Graph) Compile(device hal.Device, rpCache *cache.RenderPassCache) (cg *CompiledGraph, err error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	cg = &CompiledGraph{
		graph: g,
		registry: &Registry{
			buffers:      make(map[BufferNodeID]hal.Buffer, len(g.buffers)),
			textures:     make(map[TextureNodeID]hal.Texture, len(g.textures)),
			textureViews: make(map[TextureNodeID]hal.TextureView, len(g.textures)),
		},
	}
	defer func() {
		if err != nil {
			cg.releaseTransients(device)
		}
	}()

	if err := cg.allocateTransientBuffers(device); err != nil {
		return nil, err
	}
	if err := cg.allocateTransientTextures(device); err != nil {
		return nil, err
	}
	for _, n := range g.buffers {
		if len(n.accesses) == 0 {
			continue
		}
		cg.registry.buffers[n.id] = n.raw
	}
	for _, n := range g.textures {
		if len(n.accesses) == 0 {
			continue
		}
		cg.registry.textures[n.id] = n.raw
		cg.registry.textureViews[n.id] = n.view
	}

	for _, p := range g.passes {
		cp := &compiledPass{pass: p}
		waitQueues := map[types.Queue]bool{}

		for _, ref := range p.bufferRefs {
			n := g.buffers[ref.Node-1]
			barrier, crossQueue := synthesizeBufferAccess(n, p.queue, ref.Access)
			if crossQueue != types.QueueNone {
				waitQueues[crossQueue] = true
			}
			if barrier != nil {
				cp.bufferBarriers = append(cp.bufferBarriers, *barrier)
			}
		}

		visitTexture := func(node TextureNodeID, access AccessKind) {
			n := g.textures[node-1]
			barrier, crossQueue := synthesizeTextureAccess(n, p.queue, access)
			if crossQueue != types.QueueNone {
				waitQueues[crossQueue] = true
			}
			if barrier != nil {
				cp.textureBarriers = append(cp.textureBarriers, *barrier)
			}
		}

		for _, ref := range p.textureRefs {
			visitTexture(ref.Node, ref.Access)
		}
		for _, c := range p.colors {
			visitTexture(c.Node, AccessColorAttachmentWrite)
		}
		if p.depthStencil != nil {
			access := AccessDepthStencilWrite
			if p.depthStencil.DepthReadOnly {
				access = AccessDepthStencilRead
			}
			visitTexture(p.depthStencil.Node, access)
		}

		for q := range waitQueues {
			cp.waitQueues = append(cp.waitQueues, q)
		}

		if p.kind == PassRaster {
			cp.renderPass = buildRenderPassDescriptor(g, p, rpCache)
		}

		cg.passes = append(cg.passes, cp)
	}

	return cg, nil
}

// bufferShape and textureShape are the compatibility keys transient
// aliasing matches on: two transients may share one native object only
// when every creation-time parameter agrees.
type bufferShape struct {
	size  uint64
	usage types.BufferUsage
}

type textureShape struct {
	format    types.TextureFormat
	width     uint32
	height    uint32
	depth     uint32
	mipLevels uint32
	samples   uint32
	dimension types.TextureDimension
	usage     types.TextureUsage
}

// lifetimeOf returns the first- and last-use pass of a node's access
// history. Accesses are appended in pass order by the builder, so the
// endpoints are the history's endpoints.
func lifetimeOf[T any](accesses []T, passOf func(T) PassID) (PassID, PassID) {
	return passOf(accesses[0]), passOf(accesses[len(accesses)-1])
}

// allocateTransientBuffers creates (or reuses) the native buffer behind
// every transient buffer node. Nodes are visited in first-use order; a
// transient whose last use precedes the next node's first use returns
// its buffer to a free list keyed on the full creation shape, and a
// later transient with an identical shape takes that buffer over instead
// of allocating fresh — two nodes alias one native object only when
// their lifetimes in the pass order do not overlap.
func (cg *CompiledGraph) allocateTransientBuffers(device hal.Device) error {
	type life struct {
		n           *bufferNode
		first, last PassID
	}

	var lives []life
	for _, n := range cg.graph.buffers {
		if n.imported || len(n.accesses) == 0 {
			continue
		}
		first, last := lifetimeOf(n.accesses, func(a bufferAccess) PassID { return a.pass })
		lives = append(lives, life{n: n, first: first, last: last})
	}
	sort.Slice(lives, func(i, j int) bool { return lives[i].first < lives[j].first })

	free := map[bufferShape][]hal.Buffer{}
	var active []life
	for _, l := range lives {
		// Retire every allocation whose lifetime ended before this one
		// begins; its buffer becomes reusable.
		remaining := active[:0]
		for _, a := range active {
			if a.last < l.first {
				shape := bufferShape{size: a.n.desc.Size, usage: a.n.desc.Usage}
				free[shape] = append(free[shape], a.n.raw)
			} else {
				remaining = append(remaining, a)
			}
		}
		active = remaining

		shape := bufferShape{size: l.n.desc.Size, usage: l.n.desc.Usage}
		if pool := free[shape]; len(pool) > 0 {
			l.n.raw = pool[len(pool)-1]
			free[shape] = pool[:len(pool)-1]
		} else {
			buf, err := device.CreateBuffer(&l.n.desc)
			if err != nil {
				return fmt.Errorf("%w: buffer %q: %v", ErrTransientAllocation, l.n.label, err)
			}
			l.n.raw = buf
			cg.transientBuffers = append(cg.transientBuffers, buf)
		}
		active = append(active, l)
	}
	return nil
}

// allocateTransientTextures mirrors allocateTransientBuffers for texture
// nodes, reusing the default view together with its texture. An aliased
// texture enters its new node with currentUsage zero, so the node's
// first access synthesizes the transition out of undefined contents —
// nothing of the previous occupant's layout or data survives the reuse.
// Imported and swapchain nodes only need a view when none was supplied.
func (cg *CompiledGraph) allocateTransientTextures(device hal.Device) error {
	type texView struct {
		tex  hal.Texture
		view hal.TextureView
	}
	type life struct {
		n           *textureNode
		first, last PassID
	}

	var lives []life
	for _, n := range cg.graph.textures {
		if len(n.accesses) == 0 {
			continue
		}
		if n.swapchain || n.imported {
			if n.view == nil {
				view, err := device.CreateTextureView(n.raw, &hal.TextureViewDescriptor{Label: n.label})
				if err != nil {
					return fmt.Errorf("%w: view %q: %v", ErrTransientAllocation, n.label, err)
				}
				n.view = view
				cg.ownedViews = append(cg.ownedViews, view)
			}
			continue
		}
		first, last := lifetimeOf(n.accesses, func(a textureAccess) PassID { return a.pass })
		lives = append(lives, life{n: n, first: first, last: last})
	}
	sort.Slice(lives, func(i, j int) bool { return lives[i].first < lives[j].first })

	shapeOf := func(n *textureNode) textureShape {
		return textureShape{
			format:    n.desc.Format,
			width:     n.desc.Size.Width,
			height:    n.desc.Size.Height,
			depth:     n.desc.Size.DepthOrArrayLayers,
			mipLevels: n.desc.MipLevelCount,
			samples:   n.desc.SampleCount,
			dimension: n.desc.Dimension,
			usage:     n.desc.Usage,
		}
	}

	free := map[textureShape][]texView{}
	var active []life
	for _, l := range lives {
		remaining := active[:0]
		for _, a := range active {
			if a.last < l.first {
				free[shapeOf(a.n)] = append(free[shapeOf(a.n)], texView{tex: a.n.raw, view: a.n.view})
			} else {
				remaining = append(remaining, a)
			}
		}
		active = remaining

		shape := shapeOf(l.n)
		if pool := free[shape]; len(pool) > 0 {
			reused := pool[len(pool)-1]
			free[shape] = pool[:len(pool)-1]
			l.n.raw = reused.tex
			l.n.view = reused.view
		} else {
			tex, err := device.CreateTexture(&l.n.desc)
			if err != nil {
				return fmt.Errorf("%w: texture %q: %v", ErrTransientAllocation, l.n.label, err)
			}
			view, verr := device.CreateTextureView(tex, &hal.TextureViewDescriptor{Label: l.n.label})
			if verr != nil {
				device.DestroyTexture(tex)
				return fmt.Errorf("%w: texture view %q: %v", ErrTransientAllocation, l.n.label, verr)
			}
			l.n.raw = tex
			l.n.view = view
			cg.transientTextures = append(cg.transientTextures, tex)
			cg.transientViews = append(cg.transientViews, view)
		}
		active = append(active, l)
	}
	return nil
}

// validate covers the compile-time-only failure modes: a node
// read before any write (and not imported, which already has defined
// contents) is a dangling reference. A true cycle cannot arise through
// this builder's API - AddXPass assigns each pass a strictly increasing
// PassID and appends to a node's access history only for the pass being
// added right now, so every node's accesses are already in non-decreasing
// pass order by construction; ErrCycle exists for a future builder API
// that accepts out-of-order declarations, not this one.
func (g *Graph) validate() error {
	for _, n := range g.buffers {
		if n.imported || len(n.accesses) == 0 {
			continue
		}
		if !n.accesses[0].access.IsWrite() {
			return fmt.Errorf("%w: buffer %q read before written", ErrDanglingReference, n.label)
		}
	}
	for _, n := range g.textures {
		if n.imported || n.swapchain || len(n.accesses) == 0 {
			continue
		}
		if !n.accesses[0].access.IsWrite() {
			return fmt.Errorf("%w: texture %q read before written", ErrDanglingReference, n.label)
		}
	}
	return nil
}

// synthesizeBufferAccess applies the cache-state transition rules to one buffer
// node's access by one pass, returning the hal barrier to record (nil if
// none is needed) and the source queue family a cross-queue wait is
// needed against (QueueNone if the access stays on the owning queue).
func synthesizeBufferAccess(n *bufferNode, queue types.Queue, access AccessKind) (*hal.BufferBarrier, types.Queue) {
	state := n.cache
	stages, accesses, usage := access.Stage(), access.Access(), access.BufferUsage()

	crossQueue := types.QueueNone
	if state.Owner != types.QueueNone && state.Owner != queue {
		crossQueue = state.Owner
		state.CommitWaitSemaphore(state.Owner, queue, stages)
	}

	needBarrier := crossQueue != types.QueueNone ||
		state.UnavailableStages&stages != 0 ||
		state.NeedInvalidate(stages, accesses)

	var barrier *hal.BufferBarrier
	if needBarrier {
		state.CommitWaitEventOrBarrier(queue, state.UnavailableStages, state.UnavailableAccesses, stages, accesses, false)
		barrier = &hal.BufferBarrier{
			Buffer: n.raw,
			Usage:  hal.BufferUsageTransition{OldUsage: n.currentUsage, NewUsage: usage},
		}
	}

	state.CommitAccess(queue, stages, accesses)
	n.currentUsage = usage
	return barrier, crossQueue
}

// synthesizeTextureAccess mirrors synthesizeBufferAccess, additionally
// treating a usage change as a layout transition (layoutChange resets
// visibility to empty, since a layout change invalidates
// everything a shader could previously read from the old layout).
func synthesizeTextureAccess(n *textureNode, queue types.Queue, access AccessKind) (*hal.TextureBarrier, types.Queue) {
	state := n.cache
	stages, accesses, usage := access.Stage(), access.Access(), access.TextureUsage()

	crossQueue := types.QueueNone
	if state.Owner != types.QueueNone && state.Owner != queue {
		crossQueue = state.Owner
		state.CommitWaitSemaphore(state.Owner, queue, stages)
	}

	layoutChange := n.currentUsage != usage
	needBarrier := crossQueue != types.QueueNone || layoutChange ||
		state.UnavailableStages&stages != 0 ||
		state.NeedInvalidate(stages, accesses)

	var barrier *hal.TextureBarrier
	if needBarrier {
		state.CommitWaitEventOrBarrier(queue, state.UnavailableStages, state.UnavailableAccesses, stages, accesses, layoutChange)
		barrier = &hal.TextureBarrier{
			Texture: n.raw,
			Usage:   hal.TextureUsageTransition{OldUsage: n.currentUsage, NewUsage: usage},
		}
	}

	state.CommitAccess(queue, stages, accesses)
	n.currentUsage = usage
	return barrier, crossQueue
}

// buildRenderPassDescriptor assembles the RenderPassDescriptor for a raster
// pass: its attachments' load/store ops come from cache.RenderPassCache,
// keyed on each attachment's flags - clear, first/last use within
// this graph, and whether the node crosses the graph's boundary (imported).
func buildRenderPassDescriptor(g *Graph, p *Pass, rpCache *cache.RenderPassCache) *hal.RenderPassDescriptor {
	key := cache.RenderPassKey{NColors: len(p.colors)}
	for i, c := range p.colors {
		n := g.textures[c.Node-1]
		key.Colors[i] = cache.AttachmentDesc{
			Format:      n.desc.Format,
			SampleCount: sampleCountOf(n),
			Flags:       attachmentFlags(n, p.id, c.Clear),
		}
	}
	if p.depthStencil != nil {
		n := g.textures[p.depthStencil.Node-1]
		key.HasDepth = true
		key.Depth = cache.AttachmentDesc{
			Format:      n.desc.Format,
			SampleCount: sampleCountOf(n),
			Flags:       attachmentFlags(n, p.id, p.depthStencil.ClearDepth),
		}
	}

	derived := rpCache.GetOrCreate(key)

	desc := &hal.RenderPassDescriptor{Label: p.name}
	for i, c := range p.colors {
		n := g.textures[c.Node-1]
		desc.ColorAttachments = append(desc.ColorAttachments, hal.RenderPassColorAttachment{
			View:       n.view,
			LoadOp:     derived.ColorLoadOps[i],
			StoreOp:    derived.ColorStoreOps[i],
			ClearValue: c.Color,
		})
	}
	if p.depthStencil != nil {
		n := g.textures[p.depthStencil.Node-1]
		ds := p.depthStencil
		desc.DepthStencilAttachment = &hal.RenderPassDepthStencilAttachment{
			View:              n.view,
			DepthLoadOp:       derived.DepthLoadOp,
			DepthStoreOp:      derived.DepthStoreOp,
			DepthClearValue:   ds.Depth,
			DepthReadOnly:     ds.DepthReadOnly,
			StencilLoadOp:     derived.StencilLoadOp,
			StencilStoreOp:    derived.StencilStoreOp,
			StencilClearValue: ds.Stencil,
			StencilReadOnly:   true,
		}
	}
	return desc
}

func sampleCountOf(n *textureNode) uint32 {
	if n.desc.SampleCount == 0 {
		return 1
	}
	return n.desc.SampleCount
}

func attachmentFlags(n *textureNode, pass PassID, clear bool) cache.AttachmentFlags {
	flags := cache.AttachmentActive
	if clear {
		flags |= cache.AttachmentClear
	}
	if len(n.accesses) > 0 && n.accesses[0].pass == pass {
		flags |= cache.AttachmentFirstPass
	}
	if len(n.accesses) > 0 && n.accesses[len(n.accesses)-1].pass == pass {
		flags |= cache.AttachmentLastPass
	}
	if n.imported {
		flags |= cache.AttachmentExternal
	}
	return flags
}

// releaseTransients destroys every transient resource Compile allocated so
// far - used on a mid-compile failure (no commands recorded, nothing
// leaked) and
// by Release after a successfully executed graph hands its transients to
// the frame's garbage list instead of destroying them here directly.
func (cg *CompiledGraph) releaseTransients(device hal.Device) {
	for _, v := range cg.transientViews {
		device.DestroyTextureView(v)
	}
	for _, v := range cg.ownedViews {
		device.DestroyTextureView(v)
	}
	for _, t := range cg.transientTextures {
		device.DestroyTexture(t)
	}
	for _, b := range cg.transientBuffers {
		device.DestroyBuffer(b)
	}
}

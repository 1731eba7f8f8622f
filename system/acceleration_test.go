package system

import (
	"testing"

	"github.com/gogpu/bindless/bindless"
	"github.com/gogpu/bindless/core"
	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/types"
)

func testTriangleInput(device hal.Device, t *testing.T) (*hal.AccelerationStructureBuildInput, func()) {
	t.Helper()
	vertices, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "tri-vertices",
		Size:  3 * 12,
		Usage: types.BufferUsageASBuildInput,
	})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	return &hal.AccelerationStructureBuildInput{
		Level: hal.AccelerationStructureBottomLevel,
		Triangles: &hal.AccelerationStructureTriangles{
			VertexBuffer: vertices,
			VertexFormat: types.VertexFormatFloat32x3,
			VertexStride: 12,
			VertexCount:  3,
		},
	}, func() { device.DestroyBuffer(vertices) }
}

func TestCreateBlas_BuildsAndRegisters(t *testing.T) {
	withNoopBackend(t)
	s, err := New(testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	input, cleanup := testTriangleInput(s.Device(), t)
	defer cleanup()

	group := s.Registry().CreateBlasGroup("scene")
	id, err := s.CreateBlas("tri", input, group)
	if err != nil {
		t.Fatalf("CreateBlas: %v", err)
	}

	b, ok := s.Registry().Blas.Get(id)
	if !ok {
		t.Fatal("BLAS not registered")
	}
	if b.Raw == nil {
		t.Fatal("BLAS has no native structure")
	}
	if g, ok := s.Registry().BlasGroups.Get(group); !ok || g.IndexOf(id) < 0 {
		t.Fatal("BLAS not recorded in its group")
	}
	if _, ok := s.Registry().Buffers.Get(b.Storage); !ok {
		t.Fatal("BLAS storage buffer not registered")
	}

	s.DestroyBlas(id)
	if _, ok := s.Registry().Blas.Get(id); ok {
		t.Fatal("BLAS still registered after DestroyBlas")
	}
}

func TestCreateTlas_BindsADescriptorSlot(t *testing.T) {
	withNoopBackend(t)
	s, err := New(testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	instances, err := s.Device().CreateBuffer(&hal.BufferDescriptor{
		Label: "instances",
		Size:  64,
		Usage: types.BufferUsageASBuildInput,
	})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	defer s.Device().DestroyBuffer(instances)

	id, err := s.CreateTlas("scene", &hal.AccelerationStructureBuildInput{
		Level:     hal.AccelerationStructureTopLevel,
		Instances: &hal.AccelerationStructureInstances{Buffer: instances, Count: 1},
	})
	if err != nil {
		t.Fatalf("CreateTlas: %v", err)
	}

	tl, ok := s.Registry().Tlas.Get(id)
	if !ok {
		t.Fatal("TLAS not registered")
	}
	if tl.Descriptor() == bindless.Null {
		t.Fatal("TLAS has no bindless descriptor slot")
	}
	if tl.Handle() == 0 {
		t.Fatal("TLAS native handle is zero")
	}

	s.DestroyTlas(id)
	if _, ok := s.Registry().Tlas.Get(id); ok {
		t.Fatal("TLAS still registered after DestroyTlas")
	}
}

func TestCreateBlas_RejectsWrongLevel(t *testing.T) {
	withNoopBackend(t)
	s, err := New(testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	if _, err := s.CreateBlas("bad", &hal.AccelerationStructureBuildInput{
		Level: hal.AccelerationStructureTopLevel,
	}, core.NullBlasGroupID()); err == nil {
		t.Fatal("CreateBlas accepted a top-level input")
	}
}

package solver

import (
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/rigidsim/raycast/pkg/geom"
)

func TestForType_SupportedTypes(t *testing.T) {
	for _, typ := range []geom.Type{geom.Plane, geom.Sphere, geom.Capsule, geom.Box} {
		fn, err := ForType(typ)
		if err != nil {
			t.Errorf("ForType(%s): unexpected error: %v", typ, err)
		}
		if fn == nil {
			t.Errorf("ForType(%s): expected a solver func", typ)
		}
		if !Supported(typ) {
			t.Errorf("Supported(%s): expected true", typ)
		}
	}
}

func TestForType_MeshUnsupported(t *testing.T) {
	fn, err := ForType(geom.Mesh)
	if err == nil {
		t.Fatal("expected an error for mesh")
	}
	if fn != nil {
		t.Error("expected no solver func for mesh")
	}
	if !errors.IsType(err, ErrTypeUnsupportedGeometry) {
		t.Errorf("expected error type %q, got %v", ErrTypeUnsupportedGeometry, err)
	}
	if Supported(geom.Mesh) {
		t.Error("Supported(mesh): expected false")
	}
}

func TestForType_UnknownType(t *testing.T) {
	if _, err := ForType(geom.Type(99)); err == nil {
		t.Fatal("expected an error for an unknown type")
	}
}

package raycast

import (
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/rigidsim/raycast/pkg/geom"
	"github.com/rigidsim/raycast/pkg/math"
	"github.com/rigidsim/raycast/pkg/solver"
	"github.com/stretchr/testify/require"
)

func batchScene() *geom.Scene {
	scene := geom.NewScene()
	scene.Add(sphereAt(math.NewVec3(0, 0, -5), 1, 1))
	scene.Add(sphereAt(math.NewVec3(3, 0, -5), 1, 2))
	scene.Add(geom.Geometry{
		Type:     geom.Box,
		Size:     [3]float64{1, 1, 1},
		Body:     3,
		Alpha:    1,
		Material: geom.NoMaterial,
	}, geom.NewTransform(math.Identity(), math.NewVec3(-4, 0, -5)))
	return scene
}

func TestCastAll_MatchesSequentialCast(t *testing.T) {
	scene := batchScene()
	opts := DefaultOptions()

	rays := []math.Ray{
		math.NewRay(math.NewVec3(0, 0, 0), math.NewVec3(0, 0, -1)),
		math.NewRay(math.NewVec3(3, 0, 0), math.NewVec3(0, 0, -1)),
		math.NewRay(math.NewVec3(-4, 0, 0), math.NewVec3(0, 0, -1)),
		math.NewRay(math.NewVec3(0, 50, 0), math.NewVec3(0, 0, -1)), // misses
		math.NewRay(math.NewVec3(0, 0, 0), math.NewVec3(1, 0, 0)),   // misses
	}

	hits, err := CastAll(scene, rays, opts, 4)
	require.NoError(t, err)
	require.Len(t, hits, len(rays))

	for i, ray := range rays {
		expected, err := Cast(scene, ray, opts)
		require.NoError(t, err)
		require.Equal(t, expected, hits[i], "ray %d", i)
	}
}

func TestCastAll_DefaultWorkerCount(t *testing.T) {
	scene := batchScene()
	rays := []math.Ray{
		math.NewRay(math.NewVec3(0, 0, 0), math.NewVec3(0, 0, -1)),
	}

	hits, err := CastAll(scene, rays, DefaultOptions(), 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.InDelta(t, 4.0, hits[0].Distance, 1e-12)
}

func TestCastAll_Empty(t *testing.T) {
	hits, err := CastAll(batchScene(), nil, DefaultOptions(), 0)
	require.NoError(t, err)
	require.Empty(t, hits)
}

func TestCastAll_PropagatesUnsupported(t *testing.T) {
	scene := batchScene()
	scene.Add(geom.Geometry{
		Type:     geom.Mesh,
		Body:     9,
		Alpha:    1,
		Material: geom.NoMaterial,
	}, geom.NewTransform(math.Identity(), math.NewVec3(0, 0, -50)))

	rays := []math.Ray{
		math.NewRay(math.NewVec3(0, 0, 0), math.NewVec3(0, 0, -1)),
		math.NewRay(math.NewVec3(3, 0, 0), math.NewVec3(0, 0, -1)),
	}

	hits, err := CastAll(scene, rays, DefaultOptions(), 2)
	require.Error(t, err)
	require.True(t, errors.IsType(err, solver.ErrTypeUnsupportedGeometry))
	require.Len(t, hits, len(rays))
	for _, hit := range hits {
		require.Equal(t, NoHit, hit)
	}
}

package main

import (
	"flag"
	"fmt"
	stdmath "math"
	"os"

	"github.com/rigidsim/raycast/pkg/geom"
	"github.com/rigidsim/raycast/pkg/math"
	"github.com/rigidsim/raycast/pkg/raycast"
)

func main() {
	// Parse command line flags
	rayCount := flag.Int("rays", 16, "Number of rays in the sweep")
	excludeBody := flag.Int("exclude-body", -1, "Body id to exclude from the sweep")
	allowStatic := flag.Bool("static", true, "Allow hits on static geometry")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Rigid-body ray caster demo")
		fmt.Println("Usage: raycast [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Sweeps a fan of rays through a built-in scene (a ground plane,")
		fmt.Println("two spheres, a capsule and a box) and prints the nearest hit")
		fmt.Println("for each ray, rangefinder style.")
		return
	}

	if *rayCount < 1 {
		fmt.Println("at least one ray is required")
		os.Exit(1)
	}

	scene := demoScene()

	opts := raycast.DefaultOptions()
	opts.AllowStatic = *allowStatic
	opts.ExcludeBody = *excludeBody

	// Fan of rays from a sensor above the scene, sweeping the xz-plane
	sensor := math.NewVec3(0, 0, 3)
	rays := make([]math.Ray, *rayCount)
	for i := range rays {
		angle := stdmath.Pi * float64(i) / float64(*rayCount)
		rays[i] = math.NewRay(sensor, math.NewVec3(stdmath.Cos(angle), 0, -stdmath.Sin(angle)))
	}

	hits, err := raycast.CastAll(scene, rays, opts, 0)
	if err != nil {
		fmt.Printf("Error casting rays: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Casting %d rays from (%.1f, %.1f, %.1f):\n\n", *rayCount, sensor.X, sensor.Y, sensor.Z)
	fmt.Println("  ray  angle(deg)  distance  geom")
	for i, hit := range hits {
		angle := 180 * float64(i) / float64(*rayCount)
		if hit.GeomID < 0 {
			fmt.Printf("  %3d  %10.1f         -  (no hit)\n", i, angle)
			continue
		}
		g := scene.Geoms[hit.GeomID]
		fmt.Printf("  %3d  %10.1f  %8.4f  #%d %s (body %d)\n",
			i, angle, hit.Distance, hit.GeomID, g.Type, g.Body)
	}
}

// demoScene builds a small rigid-body scene: a static ground plane, two
// dynamic spheres, a capsule and a box.
func demoScene() *geom.Scene {
	scene := geom.NewScene()

	// ground plane, front face up
	scene.Add(geom.Geometry{
		Type:     geom.Plane,
		Body:     0,
		Alpha:    1,
		Static:   true,
		Material: geom.NoMaterial,
	}, geom.NewTransform(math.Identity(), math.NewVec3(0, 0, 0)))

	scene.Add(geom.Geometry{
		Type:     geom.Sphere,
		Size:     [3]float64{0.5, 0, 0},
		Body:     1,
		Alpha:    1,
		Material: geom.NoMaterial,
	}, geom.NewTransform(math.Identity(), math.NewVec3(3, 0, 3)))

	scene.Add(geom.Geometry{
		Type:     geom.Sphere,
		Size:     [3]float64{0.75, 0, 0},
		Body:     2,
		Alpha:    1,
		Material: geom.NoMaterial,
	}, geom.NewTransform(math.Identity(), math.NewVec3(-4, 0, 3)))

	// capsule lying along the x-axis
	scene.Add(geom.Geometry{
		Type:     geom.Capsule,
		Size:     [3]float64{0.3, 0.8, 0},
		Body:     3,
		Alpha:    1,
		Material: geom.NoMaterial,
	}, geom.NewTransform(
		math.FromAxisAngle(math.NewVec3(0, 1, 0), stdmath.Pi/2),
		math.NewVec3(0, 0, 1),
	))

	scene.Add(geom.Geometry{
		Type:     geom.Box,
		Size:     [3]float64{0.5, 0.5, 0.5},
		Body:     4,
		Alpha:    1,
		Material: geom.NoMaterial,
	}, geom.NewTransform(
		math.FromAxisAngle(math.NewVec3(0, 0, 1), stdmath.Pi/4),
		math.NewVec3(5, 0, 2),
	))

	return scene
}

package server

import (
	"net/http"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/rigidsim/raycast/pkg/geom"
	"github.com/rigidsim/raycast/pkg/math"
	"github.com/rigidsim/raycast/pkg/raycast"
	"github.com/rigidsim/raycast/pkg/solver"
	"github.com/segmentio/encoding/json"
)

// GeometryPayload describes one scene geometry on the wire
type GeometryPayload struct {
	Type     string     `json:"type"`     // plane | sphere | capsule | box | mesh
	Size     [3]float64 `json:"size"`     // per-type size parameters
	Body     int        `json:"body"`     // owning body id
	Group    int        `json:"group"`    // group tag
	Material *int       `json:"material"` // material id, absent = none
	Alpha    *float64   `json:"alpha"`    // geometry alpha, absent = 1
	Static   bool       `json:"static"`   // owning body welded to world
	Rotation [9]float64 `json:"rotation"` // world rotation, row-major
	Position [3]float64 `json:"position"` // world translation
}

// MaterialPayload describes one scene material on the wire
type MaterialPayload struct {
	Alpha float64 `json:"alpha"`
}

// RayPayload is a single world-space ray
type RayPayload struct {
	Origin    [3]float64 `json:"origin"`
	Direction [3]float64 `json:"direction"`
}

// CastRequest is the body of POST /api/cast
type CastRequest struct {
	Geometries  []GeometryPayload `json:"geometries"`
	Materials   []MaterialPayload `json:"materials"`
	Origin      [3]float64        `json:"origin"`
	Direction   [3]float64        `json:"direction"`
	GroupMask   []bool            `json:"groupMask"`
	AllowStatic *bool             `json:"allowStatic"` // absent = true
	ExcludeBody *int              `json:"excludeBody"` // absent = -1
}

// CastBatchRequest is the body of POST /api/cast-batch: one scene, many rays
type CastBatchRequest struct {
	Geometries  []GeometryPayload `json:"geometries"`
	Materials   []MaterialPayload `json:"materials"`
	Rays        []RayPayload      `json:"rays"`
	GroupMask   []bool            `json:"groupMask"`
	AllowStatic *bool             `json:"allowStatic"`
	ExcludeBody *int              `json:"excludeBody"`
}

// HitPayload is the wire form of a query result
type HitPayload struct {
	Distance float64 `json:"distance"`
	GeomID   int     `json:"geomId"`
}

// CastBatchResponse is the body returned by /api/cast-batch
type CastBatchResponse struct {
	Hits []HitPayload `json:"hits"`
}

var geomTypes = map[string]geom.Type{
	"plane":   geom.Plane,
	"sphere":  geom.Sphere,
	"capsule": geom.Capsule,
	"box":     geom.Box,
	"mesh":    geom.Mesh,
}

// handleCast answers a single-ray query
func (s *Server) handleCast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "use POST")
		return
	}

	var req CastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	scene, err := buildScene(req.Geometries, req.Materials)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ray := math.NewRay(vec3(req.Origin), vec3(req.Direction))
	opts := buildOptions(req.GroupMask, req.AllowStatic, req.ExcludeBody)

	start := time.Now()
	hit, err := raycast.Cast(scene, ray, opts)
	observeCast(time.Since(start), hit, err)

	if err != nil {
		logs.Warn(errors.New("ray cast query failed").Wrap(err))
		if errors.IsType(err, solver.ErrTypeUnsupportedGeometry) {
			writeError(w, http.StatusNotImplemented, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, HitPayload{Distance: hit.Distance, GeomID: hit.GeomID})
}

// handleCastBatch answers a many-rays-one-scene query
func (s *Server) handleCastBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "use POST")
		return
	}

	var req CastBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	scene, err := buildScene(req.Geometries, req.Materials)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rays := make([]math.Ray, len(req.Rays))
	for i, rp := range req.Rays {
		rays[i] = math.NewRay(vec3(rp.Origin), vec3(rp.Direction))
	}
	opts := buildOptions(req.GroupMask, req.AllowStatic, req.ExcludeBody)

	start := time.Now()
	hits, err := raycast.CastAll(scene, rays, opts, 0)
	for _, hit := range hits {
		observeCast(0, hit, nil)
	}
	observeBatch(time.Since(start), len(rays))

	if err != nil {
		logs.Warn(errors.New("ray cast batch failed").Wrap(err))
		if errors.IsType(err, solver.ErrTypeUnsupportedGeometry) {
			writeError(w, http.StatusNotImplemented, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := CastBatchResponse{Hits: make([]HitPayload, len(hits))}
	for i, hit := range hits {
		resp.Hits[i] = HitPayload{Distance: hit.Distance, GeomID: hit.GeomID}
	}
	writeJSON(w, http.StatusOK, resp)
}

// buildScene converts wire geometries into a scene for one query
func buildScene(geoms []GeometryPayload, mats []MaterialPayload) (*geom.Scene, error) {
	scene := geom.NewScene()

	for _, m := range mats {
		scene.AddMaterial(geom.Material{Alpha: m.Alpha})
	}

	for i, gp := range geoms {
		t, ok := geomTypes[gp.Type]
		if !ok {
			return nil, errors.New("unknown geometry type").
				WithTag("geom_index", i).
				WithTag("type", gp.Type)
		}

		material := geom.NoMaterial
		if gp.Material != nil {
			material = *gp.Material
			if material != geom.NoMaterial && (material < 0 || material >= len(scene.Materials)) {
				return nil, errors.New("material id out of range").
					WithTag("geom_index", i).
					WithTag("material", material)
			}
		}
		alpha := 1.0
		if gp.Alpha != nil {
			alpha = *gp.Alpha
		}

		// an omitted rotation decodes to the zero matrix; treat it as identity
		rot := math.Identity()
		if gp.Rotation != ([9]float64{}) {
			rot = math.NewMat3(
				math.NewVec3(gp.Rotation[0], gp.Rotation[1], gp.Rotation[2]),
				math.NewVec3(gp.Rotation[3], gp.Rotation[4], gp.Rotation[5]),
				math.NewVec3(gp.Rotation[6], gp.Rotation[7], gp.Rotation[8]),
			)
		}

		scene.Add(geom.Geometry{
			Type:     t,
			Size:     gp.Size,
			Body:     gp.Body,
			Group:    gp.Group,
			Material: material,
			Alpha:    alpha,
			Static:   gp.Static,
		}, geom.NewTransform(rot, vec3(gp.Position)))
	}

	return scene, nil
}

// buildOptions applies the wire defaults: statics allowed, no exclusion
func buildOptions(mask []bool, allowStatic *bool, excludeBody *int) raycast.Options {
	opts := raycast.DefaultOptions()
	opts.GroupMask = mask
	if allowStatic != nil {
		opts.AllowStatic = *allowStatic
	}
	if excludeBody != nil {
		opts.ExcludeBody = *excludeBody
	}
	return opts
}

func vec3(v [3]float64) math.Vec3 {
	return math.NewVec3(v[0], v[1], v[2])
}

package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool           `json:"hit"`
	GeometryType string         `json:"geometryType,omitempty"`
	Point        [3]float64     `json:"point"`
	Normal       [3]float64     `json:"normal"`
	Distance     float64        `json:"distance"`
	Reflectivity float64        `json:"reflectivity"`
	Color        string         `json:"color,omitempty"` // Shaded color at the hit, as #rrggbb
	Properties   map[string]any `json:"properties,omitempty"`
}

// InspectResult describes the nearest shape along a pixel's center ray
type InspectResult struct {
	Hit      bool
	Shape    geometry.Shape
	Point    core.Vec3
	Distance float64
}

// inspectPixel casts the center ray of image pixel (pixelX, pixelY), with
// row 0 at the top, and returns the first shape it hits
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResult {
	camera := renderer.NewCamera(sceneObj.Camera, sceneObj.Width, sceneObj.Height)
	ray := camera.SubpixelRay(pixelX, sceneObj.Height-1-pixelY, 0.5, 0.5)

	shape, dist, ok := renderer.NewRaytracer(sceneObj).ClosestHit(ray)
	if !ok {
		return InspectResult{Hit: false}
	}
	return InspectResult{Hit: true, Shape: shape, Point: ray.At(dist), Distance: dist}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]any) {
	properties := make(map[string]any)

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		properties["baseColor"] = hexColor(geom.Color)
		if geom.Texture.Type != material.TextureNone {
			properties["texture"] = geom.Texture.Type.String()
			properties["textureSeed"] = geom.Texture.Seed
		}
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = vecArray(geom.Point)
		properties["normal"] = vecArray(geom.Normal)
		if checker, ok := geom.Surface.(*material.Checkerboard); ok {
			properties["checkerScale"] = checker.Scale
		}
		return "plane", properties

	case *geometry.Cube:
		properties["center"] = vecArray(geom.Center)
		properties["size"] = geom.Size
		properties["baseColor"] = hexColor(geom.Color)
		return "cube", properties

	default:
		return "unknown", properties
	}
}

// handleInspect reports the shape under a pixel
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, status, err := s.buildScene(req.Scene, scene.Options{
		Width:  req.Width,
		Height: req.Height,
		Count:  req.Count,
		Seed:   req.Seed,
	})
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	if pixelX < 0 || pixelX >= sceneObj.Width || pixelY < 0 || pixelY >= sceneObj.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result := inspectPixel(sceneObj, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	geometryType, properties := extractGeometryInfo(result.Shape)
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        vecArray(result.Point),
		Normal:       vecArray(geometry.SurfaceNormal(result.Shape, result.Point)),
		Distance:     result.Distance,
		Reflectivity: geometry.Reflectivity(result.Shape),
		Color:        hexColor(result.Shape.ShadedColor(result.Point, sceneObj.Lighting)),
		Properties:   properties,
	})
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Color) string {
	rgba := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

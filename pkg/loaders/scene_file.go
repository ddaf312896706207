package loaders

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Shape type tags understood in scene files
const (
	ShapeSphere = "sphere"
	ShapeCube   = "cube"
	ShapePlane  = "plane"
)

// SceneFile is the JSON scene description
type SceneFile struct {
	Name     string        `json:"name,omitempty"`
	Image    *ImageSpec    `json:"image"`
	Camera   *CameraSpec   `json:"camera"`
	Lighting *LightingSpec `json:"lighting,omitempty"`
	Shadow   *ShadowSpec   `json:"shadow,omitempty"`
	Sampling *SamplingSpec `json:"sampling,omitempty"`
	Shapes   []ShapeSpec   `json:"shapes"`
}

// ImageSpec holds output size and background color
type ImageSpec struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Background *ColorValue `json:"background,omitempty"`
}

// CameraSpec positions the camera. Either fov (degrees) or screen_z, the
// distance to a screen as tall as the image in pixels, sets the field of view.
type CameraSpec struct {
	Position Vec3Value  `json:"position"`
	LookAt   *Vec3Value `json:"look_at,omitempty"`
	Up       *Vec3Value `json:"up,omitempty"`
	FOV      float64    `json:"fov,omitempty"`
	ScreenZ  float64    `json:"screen_z,omitempty"`
}

// LightingSpec overrides the analytic light; zero fields keep defaults
type LightingSpec struct {
	Direction *Vec3Value `json:"direction,omitempty"`
	Ambient   float64    `json:"ambient,omitempty"`
	Diffuse   float64    `json:"diffuse,omitempty"`
	Specular  float64    `json:"specular,omitempty"`
	Shininess float64    `json:"shininess,omitempty"`
}

// ShadowSpec configures ground shadows. Light selects a fixed point light;
// otherwise the light sits Height units above each shaded point.
type ShadowSpec struct {
	Enabled *bool      `json:"enabled,omitempty"`
	Factor  float64    `json:"factor,omitempty"`
	Height  float64    `json:"height,omitempty"`
	Light   *Vec3Value `json:"light,omitempty"`
}

// SamplingSpec overrides anti-aliasing settings
type SamplingSpec struct {
	Samples  int   `json:"samples,omitempty"`
	MaxDepth int   `json:"max_depth,omitempty"`
	Jitter   bool  `json:"jitter,omitempty"`
	Seed     int64 `json:"seed,omitempty"`
}

// ShapeSpec is one primitive record
type ShapeSpec struct {
	Type         string      `json:"type"`
	Position     *Vec3Value  `json:"position,omitempty"`
	Point        *Vec3Value  `json:"point,omitempty"`
	Normal       *Vec3Value  `json:"normal,omitempty"`
	Radius       *float64    `json:"radius,omitempty"`
	Size         *float64    `json:"size,omitempty"`
	Color        *ColorValue `json:"color,omitempty"`
	Reflectivity float64     `json:"reflectivity,omitempty"`
	Texture      string      `json:"texture,omitempty"`
	Seed         int64       `json:"seed,omitempty"`
	CheckerScale float64     `json:"checker_scale,omitempty"`
}

// Vec3Value is a JSON [x, y, z] triple
type Vec3Value [3]float64

// UnmarshalJSON requires exactly three numbers
func (v *Vec3Value) UnmarshalJSON(data []byte) error {
	var values []float64
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("vector must be an array of numbers: %w", err)
	}
	if len(values) != 3 {
		return fmt.Errorf("vector needs 3 components, got %d", len(values))
	}
	copy(v[:], values)
	return nil
}

// Vec converts the triple to a vector
func (v Vec3Value) Vec() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// NewVec3Value converts a vector to its JSON form
func NewVec3Value(v core.Vec3) *Vec3Value {
	return &Vec3Value{v.X, v.Y, v.Z}
}

// ColorValue is a color given as [r, g, b] floats in [0, 1] or as a CSS
// color name such as "tomato"
type ColorValue struct {
	R, G, B float64
}

// UnmarshalJSON accepts either form
func (c *ColorValue) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		rgba, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return fmt.Errorf("unknown color name %q", name)
		}
		*c = ColorValue{
			R: float64(rgba.R) / 255,
			G: float64(rgba.G) / 255,
			B: float64(rgba.B) / 255,
		}
		return nil
	}

	var v Vec3Value
	if err := v.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("color must be [r, g, b] or a color name: %w", err)
	}
	*c = ColorValue{R: v[0], G: v[1], B: v[2]}
	return nil
}

// MarshalJSON always writes the array form
func (c ColorValue) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{c.R, c.G, c.B})
}

// Color converts to a clamped color
func (c ColorValue) Color() core.Color {
	return core.NewColor(c.R, c.G, c.B)
}

// NewColorValue converts a color to its JSON form
func NewColorValue(c core.Color) *ColorValue {
	return &ColorValue{R: c.R(), G: c.G(), B: c.B()}
}

// VerticalFOV returns the camera's vertical field of view in degrees, or 0
// when the file sets neither fov nor screen_z
func (sf *SceneFile) VerticalFOV() float64 {
	if sf.Camera == nil {
		return 0
	}
	if sf.Camera.FOV > 0 {
		return sf.Camera.FOV
	}
	if sf.Camera.ScreenZ > 0 && sf.Image != nil && sf.Image.Height > 0 {
		halfHeight := float64(sf.Image.Height) / 2
		return 2 * math.Atan(halfHeight/sf.Camera.ScreenZ) * 180 / math.Pi
	}
	return 0
}

// LoadSceneFile reads and validates a JSON scene file
func LoadSceneFile(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open scene file: %w", err)
	}
	sf, err := ParseSceneFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sf.Name == "" {
		base := filepath.Base(path)
		sf.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return sf, nil
}

// ParseSceneFile decodes and validates scene JSON. Shapes with an unknown
// type are logged and skipped; malformed known shapes are errors.
func ParseSceneFile(data []byte) (*SceneFile, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, core.ErrEmptySceneFile
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	for _, key := range []string{"image", "camera", "shapes"} {
		if raw, ok := keys[key]; !ok || string(raw) == "null" {
			return nil, fmt.Errorf("%q: %w", key, core.ErrMissingSceneKey)
		}
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	if sf.Image.Width <= 0 || sf.Image.Height <= 0 {
		return nil, fmt.Errorf("image %dx%d: %w", sf.Image.Width, sf.Image.Height, core.ErrInvalidImageSize)
	}

	shapes := sf.Shapes[:0]
	for i, shape := range sf.Shapes {
		shape.Type = strings.ToLower(strings.TrimSpace(shape.Type))
		known, err := ValidateShape(shape)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		if !known {
			core.Logger().Warn("unknown shape type", "type", shape.Type, "index", i)
			continue
		}
		shapes = append(shapes, shape)
	}
	sf.Shapes = shapes

	return &sf, nil
}

// ValidateShape checks required fields. It reports false for unknown types.
func ValidateShape(s ShapeSpec) (bool, error) {
	switch s.Type {
	case ShapeSphere:
		if s.Position == nil || s.Radius == nil || s.Color == nil {
			return true, fmt.Errorf("sphere needs position, radius and color: %w", core.ErrInvalidShape)
		}
	case ShapeCube:
		if s.Position == nil || s.Size == nil || s.Color == nil {
			return true, fmt.Errorf("cube needs position, size and color: %w", core.ErrInvalidShape)
		}
	case ShapePlane:
		if (s.Point == nil && s.Position == nil) || s.Normal == nil {
			return true, fmt.Errorf("plane needs point and normal: %w", core.ErrInvalidShape)
		}
	default:
		return false, nil
	}
	return true, nil
}

// WriteSceneFile writes sf as indented JSON, creating parent directories
func WriteSceneFile(path string, sf *SceneFile) error {
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create scene directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write scene file: %w", err)
	}
	return nil
}

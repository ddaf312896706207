package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewFileScene loads a JSON scene file
func NewFileScene(path string) (*Scene, error) {
	sf, err := loaders.LoadSceneFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene file: %w", err)
	}
	return FromSceneFile(sf)
}

// FileSource returns a Source that loads path on every Build
func FileSource(path string) Source {
	return SourceFunc(func() (*Scene, error) {
		return NewFileScene(path)
	})
}

// FromSceneFile converts a parsed scene file into a scene
func FromSceneFile(sf *loaders.SceneFile) (*Scene, error) {
	if sf.Image == nil || sf.Camera == nil {
		return nil, fmt.Errorf("scene file needs image and camera: %w", core.ErrMissingSceneKey)
	}

	s := newScene(sf.Name, sf.Image.Width, sf.Image.Height)
	if sf.Image.Background != nil {
		s.Background = sf.Image.Background.Color()
	}

	s.Camera = convertCamera(sf)
	if sf.Lighting != nil {
		s.Lighting = material.MergeLighting(s.Lighting, convertLighting(sf.Lighting))
	}
	if sf.Shadow != nil {
		s.Shadow = convertShadow(s.Shadow, sf.Shadow)
	}
	if sf.Sampling != nil {
		s.Sampling = renderer.MergeSamplingConfig(s.Sampling, renderer.SamplingConfig{
			SamplesPerAxis: sf.Sampling.Samples,
			MaxDepth:       sf.Sampling.MaxDepth,
			Jitter:         sf.Sampling.Jitter,
			Seed:           sf.Sampling.Seed,
		})
	}

	for i, spec := range sf.Shapes {
		shape, err := convertShape(spec)
		if err != nil {
			return nil, fmt.Errorf("failed to convert shape %d: %w", i, err)
		}
		s.Shapes = append(s.Shapes, shape)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// convertCamera looks down +Z from the camera position unless look_at is
// given, matching files that only set position and screen_z
func convertCamera(sf *loaders.SceneFile) renderer.CameraConfig {
	position := sf.Camera.Position.Vec()
	config := renderer.CameraConfig{
		Center: position,
		LookAt: position.Add(core.NewVec3(0, 0, 1)),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   renderer.DefaultCameraConfig().VFov,
	}
	if sf.Camera.LookAt != nil {
		config.LookAt = sf.Camera.LookAt.Vec()
	}
	if sf.Camera.Up != nil {
		config.Up = sf.Camera.Up.Vec()
	}
	if fov := sf.VerticalFOV(); fov > 0 {
		config.VFov = fov
	}
	return config
}

func convertLighting(spec *loaders.LightingSpec) material.Lighting {
	var l material.Lighting
	if spec.Direction != nil {
		l.LightDir = spec.Direction.Vec()
	}
	l.Ambient = spec.Ambient
	l.DiffuseWeight = spec.Diffuse
	l.SpecularStrength = spec.Specular
	l.Shininess = spec.Shininess
	return l
}

func convertShadow(base renderer.ShadowConfig, spec *loaders.ShadowSpec) renderer.ShadowConfig {
	result := base
	if spec.Enabled != nil {
		result.Enabled = *spec.Enabled
	}
	if spec.Factor != 0 {
		result.Factor = spec.Factor
	}
	switch {
	case spec.Light != nil:
		result.Light = renderer.PointLight{Position: spec.Light.Vec()}
	case spec.Height != 0:
		result.Light = renderer.OverheadLight{Height: spec.Height}
	}
	return result
}

func convertShape(spec loaders.ShapeSpec) (geometry.Shape, error) {
	if known, err := loaders.ValidateShape(spec); err != nil {
		return nil, err
	} else if !known {
		return nil, fmt.Errorf("unsupported shape type %q: %w", spec.Type, core.ErrInvalidShape)
	}

	switch spec.Type {
	case loaders.ShapeSphere:
		texture, err := material.ParseTextureType(spec.Texture)
		if err != nil {
			return nil, err
		}
		sphere := geometry.NewSphere(spec.Position.Vec(), *spec.Radius, spec.Color.Color(), spec.Reflectivity)
		return sphere.WithTexture(material.Texture{Type: texture, Seed: spec.Seed}), nil

	case loaders.ShapeCube:
		return geometry.NewCube(spec.Position.Vec(), *spec.Size, spec.Color.Color(), spec.Reflectivity), nil

	case loaders.ShapePlane:
		point := spec.Point
		if point == nil {
			point = spec.Position
		}
		plane := geometry.NewPlane(point.Vec(), spec.Normal.Vec(), spec.Reflectivity)
		if spec.CheckerScale > 0 {
			checker := material.DefaultCheckerboard()
			checker.Scale = spec.CheckerScale
			plane.WithSurface(checker)
		}
		return plane, nil
	}
	return nil, fmt.Errorf("unsupported shape type %q: %w", spec.Type, core.ErrInvalidShape)
}

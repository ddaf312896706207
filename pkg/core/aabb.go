package core

import "math"

// slabParallelEpsilon is the direction component below which a ray counts
// as parallel to a slab
const slabParallelEpsilon = 1e-8

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewCenteredAABB creates a box of edge length size around center
func NewCenteredAABB(center Vec3, size float64) AABB {
	h := size / 2
	half := NewVec3(h, h, h)
	return AABB{Min: center.Subtract(half), Max: center.Add(half)}
}

// Slabs intersects the ray's line with the three axis slabs and returns the
// entry and exit distances. Either may be negative: a ray starting inside
// the box has tNear < 0 <= tFar.
func (aabb AABB) Slabs(ray Ray) (tNear, tFar float64, ok bool) {
	tNear = math.Inf(-1)
	tFar = math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Component(axis)
		dir := ray.Direction.Component(axis)
		lo, hi := aabb.Min.Component(axis), aabb.Max.Component(axis)

		if math.Abs(dir) < slabParallelEpsilon {
			// Parallel to this slab: the origin must already lie inside it
			if origin < lo || origin > hi {
				return 0, 0, false
			}
			continue
		}

		inv := 1.0 / dir
		t1 := (lo - origin) * inv
		t2 := (hi - origin) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tNear = max(tNear, t1)
		tFar = min(tFar, t2)
		if tFar < tNear {
			return 0, 0, false
		}
	}
	return tNear, tFar, true
}

// Contains reports whether point lies inside or on the box
func (aabb AABB) Contains(point Vec3) bool {
	return point.X >= aabb.Min.X && point.X <= aabb.Max.X &&
		point.Y >= aabb.Min.Y && point.Y <= aabb.Max.Y &&
		point.Z >= aabb.Min.Z && point.Z <= aabb.Max.Z
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

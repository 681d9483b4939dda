package geom

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min, Max Vec3
}

// Center returns the box midpoint.
func (b AABB) Center() Vec3 {
	return Vec3{
		(b.Min.X + b.Max.X) / 2,
		(b.Min.Y + b.Max.Y) / 2,
		(b.Min.Z + b.Max.Z) / 2,
	}
}

// Size returns the box extents along each axis.
func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Union returns the smallest box containing both b and other.
func (b AABB) Union(other AABB) AABB {
	out := b
	if other.Min.X < out.Min.X {
		out.Min.X = other.Min.X
	}
	if other.Min.Y < out.Min.Y {
		out.Min.Y = other.Min.Y
	}
	if other.Min.Z < out.Min.Z {
		out.Min.Z = other.Min.Z
	}
	if other.Max.X > out.Max.X {
		out.Max.X = other.Max.X
	}
	if other.Max.Y > out.Max.Y {
		out.Max.Y = other.Max.Y
	}
	if other.Max.Z > out.Max.Z {
		out.Max.Z = other.Max.Z
	}
	return out
}

// Contains reports whether p lies inside or on the box.
func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects reports whether two boxes overlap.
func (b AABB) Intersects(other AABB) bool {
	return !(b.Max.X < other.Min.X || other.Max.X < b.Min.X ||
		b.Max.Y < other.Min.Y || other.Max.Y < b.Min.Y ||
		b.Max.Z < other.Min.Z || other.Max.Z < b.Min.Z)
}

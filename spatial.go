package urdf

import (
	"math"
	"strconv"
	"strings"
)

// Vector3 is a 3-component vector of float64.
type Vector3 struct {
	X, Y, Z float64
}

// UnitX returns the (1, 0, 0) vector, the documented default loop axis.
func UnitX() Vector3 {
	return Vector3{X: 1}
}

// String returns the canonical whitespace-separated triple.
func (v Vector3) String() string {
	return formatTriple(v.X, v.Y, v.Z)
}

// Rotation is a unit quaternion describing an orientation.
type Rotation struct {
	X, Y, Z, W float64
}

// IdentityRotation returns the no-rotation quaternion.
func IdentityRotation() Rotation {
	return Rotation{W: 1}
}

// NewRotationFromRPY builds a rotation from fixed-axis roll, pitch and
// yaw angles in radians.
func NewRotationFromRPY(roll, pitch, yaw float64) Rotation {
	phi := roll / 2
	the := pitch / 2
	psi := yaw / 2

	r := Rotation{
		X: math.Sin(phi)*math.Cos(the)*math.Cos(psi) - math.Cos(phi)*math.Sin(the)*math.Sin(psi),
		Y: math.Cos(phi)*math.Sin(the)*math.Cos(psi) + math.Sin(phi)*math.Cos(the)*math.Sin(psi),
		Z: math.Cos(phi)*math.Cos(the)*math.Sin(psi) - math.Sin(phi)*math.Sin(the)*math.Cos(psi),
		W: math.Cos(phi)*math.Cos(the)*math.Cos(psi) + math.Sin(phi)*math.Sin(the)*math.Sin(psi),
	}
	return r.normalized()
}

// RPY returns the fixed-axis roll, pitch and yaw angles in radians.
func (r Rotation) RPY() (roll, pitch, yaw float64) {
	sqx := r.X * r.X
	sqy := r.Y * r.Y
	sqz := r.Z * r.Z
	sqw := r.W * r.W

	roll = math.Atan2(2*(r.Y*r.Z+r.W*r.X), sqw-sqx-sqy+sqz)
	pitch = math.Asin(clamp(-2*(r.X*r.Z-r.W*r.Y), -1, 1))
	yaw = math.Atan2(2*(r.X*r.Y+r.W*r.Z), sqw+sqx-sqy-sqz)
	return roll, pitch, yaw
}

func (r Rotation) normalized() Rotation {
	n := math.Sqrt(r.X*r.X + r.Y*r.Y + r.Z*r.Z + r.W*r.W)
	if n == 0 {
		return IdentityRotation()
	}
	return Rotation{X: r.X / n, Y: r.Y / n, Z: r.Z / n, W: r.W / n}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Pose is a position plus orientation transform between two frames.
type Pose struct {
	Position    Vector3
	Orientation Rotation
}

// IdentityPose returns the identity transform, the documented default for
// absent origin elements.
func IdentityPose() Pose {
	return Pose{Orientation: IdentityRotation()}
}

// formatFloat renders a float in its shortest exact decimal form, the
// canonical representation used for all exported attribute values.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatTriple(x, y, z float64) string {
	var sb strings.Builder
	sb.WriteString(formatFloat(x))
	sb.WriteByte(' ')
	sb.WriteString(formatFloat(y))
	sb.WriteByte(' ')
	sb.WriteString(formatFloat(z))
	return sb.String()
}

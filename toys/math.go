package toys

import "math"

//Vector3 holds a position, direction or scale in world space
type Vector3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

var (
	//VectorZero is (0, 0, 0)
	VectorZero = Vector3{}
	//VectorOne is (1, 1, 1)
	VectorOne = Vector3{1, 1, 1}
)

//Add returns v + o
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

//Sub returns v - o
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

//Mul returns the component-wise product of v and o
func (v Vector3) Mul(o Vector3) Vector3 {
	return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

//Magnitude returns the length of v
func (v Vector3) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

//Distance returns the distance between v and o
func (v Vector3) Distance(o Vector3) float32 {
	return v.Sub(o).Magnitude()
}

//Quaternion holds a rotation
type Quaternion struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
	W float32 `json:"w"`
}

//QuaternionIdentity is the rotation that does nothing
var QuaternionIdentity = Quaternion{0, 0, 0, 1}

//QuaternionEuler returns a rotation of euler.Z degrees around Z, then euler.X degrees around X, then euler.Y degrees around Y
func QuaternionEuler(euler Vector3) Quaternion {
	const halfDeg2Rad = math.Pi / 360

	sx, cx := math.Sincos(float64(euler.X) * halfDeg2Rad)
	sy, cy := math.Sincos(float64(euler.Y) * halfDeg2Rad)
	sz, cz := math.Sincos(float64(euler.Z) * halfDeg2Rad)

	return Quaternion{
		X: float32(cy*sx*cz + sy*cx*sz),
		Y: float32(sy*cx*cz - cy*sx*sz),
		Z: float32(cy*cx*sz - sy*sx*cz),
		W: float32(cy*cx*cz + sy*sx*sz),
	}
}

//Rotate returns v rotated by q
func (q Quaternion) Rotate(v Vector3) Vector3 {
	//t = 2 * cross(q.xyz, v)
	tx := 2 * (q.Y*v.Z - q.Z*v.Y)
	ty := 2 * (q.Z*v.X - q.X*v.Z)
	tz := 2 * (q.X*v.Y - q.Y*v.X)

	//v + w*t + cross(q.xyz, t)
	return Vector3{
		X: v.X + q.W*tx + (q.Y*tz - q.Z*ty),
		Y: v.Y + q.W*ty + (q.Z*tx - q.X*tz),
		Z: v.Z + q.W*tz + (q.X*ty - q.Y*tx),
	}
}

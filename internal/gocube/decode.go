package gocube

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/SeamusWaldron/cubetrainer"
)

// Rotation is one face turn reported by the cube.
type Rotation struct {
	Code      byte // face and direction, 0x00-0x0B
	Center    byte // orientation of the turned center
	Clockwise bool
	Color     string
}

// colorNames is indexed by Code/2.
var colorNames = []string{"blue", "green", "white", "yellow", "red", "orange"}

// colorFaces places the faces for white up, green front.
var colorFaces = map[string]cubetrainer.Base{
	"white":  cubetrainer.BaseU,
	"yellow": cubetrainer.BaseD,
	"green":  cubetrainer.BaseF,
	"blue":   cubetrainer.BaseB,
	"red":    cubetrainer.BaseR,
	"orange": cubetrainer.BaseL,
}

// DecodeRotation decodes a rotation payload of [code, center] pairs. Even
// codes turn clockwise.
func DecodeRotation(payload []byte) ([]Rotation, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("%w: rotation payload has odd length %d", ErrPayload, len(payload))
	}
	rotations := make([]Rotation, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		code := payload[i]
		idx := int(code / 2)
		if idx >= len(colorNames) {
			return nil, fmt.Errorf("%w: unknown face code 0x%02X", ErrPayload, code)
		}
		rotations = append(rotations, Rotation{
			Code:      code,
			Center:    payload[i+1],
			Clockwise: code%2 == 0,
			Color:     colorNames[idx],
		})
	}
	return rotations, nil
}

// Move converts the rotation to a quarter turn in white-up, green-front
// notation.
func (r Rotation) Move() cubetrainer.Move {
	turn := cubetrainer.CCW
	if r.Clockwise {
		turn = cubetrainer.CW
	}
	return cubetrainer.Move{Base: colorFaces[r.Color], Turn: turn}
}

// EncodeRotation is the inverse of DecodeRotation for quarter turns of the
// outer faces.
func EncodeRotation(moves ...cubetrainer.Move) ([]byte, error) {
	payload := make([]byte, 0, 2*len(moves))
	for _, m := range moves {
		idx := -1
		for i, name := range colorNames {
			if colorFaces[name] == m.Base {
				idx = i
			}
		}
		if idx < 0 || m.Turn == cubetrainer.Double {
			return nil, fmt.Errorf("%w: %s is not an outer quarter turn", ErrPayload, m)
		}
		code := byte(idx * 2)
		if m.Turn == cubetrainer.CCW {
			code++
		}
		payload = append(payload, code, 0)
	}
	return payload, nil
}

// DecodeBattery returns the battery level in percent.
func DecodeBattery(payload []byte) (int, error) {
	if len(payload) < 1 {
		return 0, fmt.Errorf("%w: empty battery payload", ErrPayload)
	}
	return int(payload[0]), nil
}

// Orientation is the physical attitude of the cube.
type Orientation struct {
	X, Y, Z, W float64
	Up, Front  cubetrainer.Base // faces pointing up and at the solver
}

// DecodeOrientation parses the ASCII quaternion "x#y#z#w". Trailing bytes
// after the last number are ignored.
func DecodeOrientation(payload []byte) (Orientation, error) {
	parts := strings.Split(string(payload), "#")
	if len(parts) != 4 {
		return Orientation{}, fmt.Errorf("%w: orientation has %d parts, want 4", ErrPayload, len(parts))
	}
	parts[3] = leadingNumber(parts[3])

	var q [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Orientation{}, fmt.Errorf("%w: orientation component %d: %v", ErrPayload, i, err)
		}
		q[i] = v
	}
	o := Orientation{X: q[0], Y: q[1], Z: q[2], W: q[3]}
	o.Up, o.Front = quaternionFaces(o.X, o.Y, o.Z, o.W)
	return o, nil
}

func leadingNumber(s string) string {
	end := 0
	for i, r := range s {
		if (r == '-' && i == 0) || r == '.' || (r >= '0' && r <= '9') {
			end = i + 1
			continue
		}
		break
	}
	return s[:end]
}

// quaternionFaces rotates the up and front axes by the normalised
// quaternion and snaps each to the nearest face.
func quaternionFaces(x, y, z, w float64) (up, front cubetrainer.Base) {
	if mag := math.Sqrt(x*x + y*y + z*z + w*w); mag > 0 {
		x, y, z, w = x/mag, y/mag, z/mag, w/mag
	}
	up = nearestFace(2*(x*y-w*z), 1-2*(x*x+z*z), 2*(y*z+w*x))
	front = nearestFace(2*(x*z+w*y), 2*(y*z-w*x), 1-2*(x*x+y*y))
	return up, front
}

func nearestFace(x, y, z float64) cubetrainer.Base {
	ax, ay, az := math.Abs(x), math.Abs(y), math.Abs(z)
	switch {
	case ay >= ax && ay >= az:
		if y > 0 {
			return cubetrainer.BaseU
		}
		return cubetrainer.BaseD
	case az >= ax:
		if z > 0 {
			return cubetrainer.BaseF
		}
		return cubetrainer.BaseB
	case x > 0:
		return cubetrainer.BaseR
	default:
		return cubetrainer.BaseL
	}
}

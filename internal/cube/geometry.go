package cube

import "github.com/SeamusWaldron/cubetrainer"

// vec is an integer 3-vector. The cube sits centred on the origin with
// x towards R, y towards U and z towards F.
type vec [3]int

var normals = map[byte]vec{
	'U': {0, 1, 0},
	'D': {0, -1, 0},
	'F': {0, 0, 1},
	'B': {0, 0, -1},
	'R': {1, 0, 0},
	'L': {-1, 0, 0},
}

// position of a cubie is the sum of the normals of its faces.
func position(name string) vec {
	var v vec
	for i := 0; i < len(name); i++ {
		n := normals[name[i]]
		v = vec{v[0] + n[0], v[1] + n[1], v[2] + n[2]}
	}
	return v
}

func (v vec) dot(w vec) int {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

func (v vec) cross(w vec) vec {
	return vec{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// rotate turns v a quarter clockwise about axis, as seen looking at the
// face the axis points to.
func (v vec) rotate(axis vec) vec {
	c := axis.cross(v)
	d := axis.dot(v)
	return vec{-c[0] + axis[0]*d, -c[1] + axis[1]*d, -c[2] + axis[2]*d}
}

type layerKind int

const (
	outer layerKind = iota // the face layer only
	slice                  // the middle layer
	wide                   // face layer plus middle layer
	whole                  // every layer
)

// layers selects cubies by their coordinate along a face axis.
type layers struct {
	face byte
	kind layerKind
}

func (l layers) selects(c int) bool {
	switch l.kind {
	case outer:
		return c == 1
	case slice:
		return c == 0
	case wide:
		return c >= 0
	default:
		return true
	}
}

var moveLayers = map[cubetrainer.Base]layers{
	cubetrainer.BaseR: {'R', outer},
	cubetrainer.BaseL: {'L', outer},
	cubetrainer.BaseU: {'U', outer},
	cubetrainer.BaseD: {'D', outer},
	cubetrainer.BaseF: {'F', outer},
	cubetrainer.BaseB: {'B', outer},

	cubetrainer.BaseM: {'L', slice},
	cubetrainer.BaseE: {'D', slice},
	cubetrainer.BaseS: {'F', slice},

	cubetrainer.BaseRw: {'R', wide},
	cubetrainer.BaseLw: {'L', wide},
	cubetrainer.BaseUw: {'U', wide},
	cubetrainer.BaseDw: {'D', wide},
	cubetrainer.BaseFw: {'F', wide},
	cubetrainer.BaseBw: {'B', wide},

	cubetrainer.BaseX: {'R', whole},
	cubetrainer.BaseY: {'U', whole},
	cubetrainer.BaseZ: {'F', whole},
}

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/textmesh/mesh"
)

// uniformSize is the byte size of the shader uniforms:
// transform (mat4x4<f32>) followed by color (vec4<f32>).
const uniformSize = 16*4 + 4*4

// lineVertexStride is the byte size of one outline vertex (vec3<f32>).
const lineVertexStride = 3 * 4

// restartIndex separates line strips in an outline index buffer.
const restartIndex = math.MaxUint32

// Identity is the identity transform.
var Identity = [16]float32{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

func putFloats(buf []byte, fs []float32) []byte {
	for _, f := range fs {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	return buf
}

func putIndices(buf []byte, idx []uint32) []byte {
	for _, i := range idx {
		buf = binary.LittleEndian.AppendUint32(buf, i)
	}
	return buf
}

func encodeUniforms(transform [16]float32, color [4]float32) []byte {
	buf := make([]byte, 0, uniformSize)
	buf = putFloats(buf, transform[:])
	return putFloats(buf, color[:])
}

// encodeFill returns the interleaved fill vertices and its indices.
func encodeFill(f *mesh.Fill) (verts, indices []byte) {
	fs := f.Interleaved()
	verts = putFloats(make([]byte, 0, len(fs)*4), fs)
	indices = putIndices(make([]byte, 0, len(f.Indices)*4), f.Indices)
	return verts, indices
}

// encodeOutline packs every line into one vertex buffer and one index
// buffer of line strips separated by restartIndex.
func encodeOutline(o *mesh.Outline) (verts, indices []byte, count uint32) {
	n := o.PointCount()
	verts = make([]byte, 0, n*lineVertexStride)
	idx := make([]uint32, 0, n+len(o.Lines))

	var next uint32
	for i, l := range o.Lines {
		if len(l.Points) < 2 {
			continue
		}
		if i > 0 && len(idx) > 0 {
			idx = append(idx, restartIndex)
		}
		for _, p := range l.Points {
			verts = putFloats(verts, []float32{float32(p.X), float32(p.Y), 0})
			idx = append(idx, next)
			next++
		}
	}
	return verts, putIndices(make([]byte, 0, len(idx)*4), idx), uint32(len(idx)) //nolint:gosec // outline size fits uint32
}

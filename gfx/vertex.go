package gfx

import (
	"encoding/binary"
	"fmt"
	"math"
)

type VertexElementType uint32

const (
	Int8 VertexElementType = iota
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
)

// Size returns the byte size of a single component of this type.
func (t VertexElementType) Size() int {
	switch t {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	default:
		panic(fmt.Sprintf("unknown vertex element type %d", t))
	}
}

type BufferUsage uint32

const (
	BufferUsageStatic BufferUsage = iota
	BufferUsageDynamic
)

type PrimType uint32

const (
	PrimPoints PrimType = iota
	PrimLines
	PrimLineStrip
	PrimTriangles
	PrimTriangleStrip
)

// VertexElement describes one attribute of a vertex, e.g. a 3 component float position.
type VertexElement struct {
	Semantic      string
	NumComponents int
	Type          VertexElementType
	Offset        int // filled in by NewVertexFormat
}

type VertexFormat struct {
	elements []VertexElement
	size     int
}

// NewVertexFormat lays the elements out back to back and computes the vertex stride.
func NewVertexFormat(elements ...VertexElement) *VertexFormat {
	format := &VertexFormat{}
	offset := 0
	for _, e := range elements {
		if e.NumComponents < 1 || e.NumComponents > 4 {
			panic(fmt.Sprintf("vertex element %q has %d components, expected 1..4", e.Semantic, e.NumComponents))
		}
		e.Offset = offset
		offset += e.NumComponents * e.Type.Size()
		format.elements = append(format.elements, e)
	}
	format.size = offset
	return format
}

// Size is the vertex stride in bytes.
func (f *VertexFormat) Size() int { return f.size }

func (f *VertexFormat) Elements() []VertexElement {
	return append([]VertexElement(nil), f.elements...)
}

func (f *VertexFormat) Element(semantic string) (VertexElement, bool) {
	for _, e := range f.elements {
		if e.Semantic == semantic {
			return e, true
		}
	}
	return VertexElement{}, false
}

// VertexBuffer is a fixed capacity vertex store. Writes go through Lock/Unlock.
// A static buffer can be locked once; after Unlock its contents are immutable.
type VertexBuffer struct {
	format      *VertexFormat
	numVertices int
	usage       BufferUsage
	storage     []byte
	locked      bool
	written     bool
}

func NewVertexBuffer(format *VertexFormat, numVertices int, usage BufferUsage) *VertexBuffer {
	return &VertexBuffer{
		format:      format,
		numVertices: numVertices,
		usage:       usage,
		storage:     make([]byte, format.Size()*numVertices),
	}
}

func (vb *VertexBuffer) Format() *VertexFormat { return vb.format }
func (vb *VertexBuffer) NumVertices() int      { return vb.numVertices }
func (vb *VertexBuffer) Usage() BufferUsage    { return vb.usage }

// Lock returns the raw storage for writing.
func (vb *VertexBuffer) Lock() ([]byte, error) {
	if vb.locked {
		return nil, fmt.Errorf("vertex buffer is already locked")
	}
	if vb.usage == BufferUsageStatic && vb.written {
		return nil, fmt.Errorf("static vertex buffer has already been written")
	}
	vb.locked = true
	return vb.storage, nil
}

// Unlock without a matching Lock does nothing.
func (vb *VertexBuffer) Unlock() {
	if !vb.locked {
		return
	}
	vb.locked = false
	vb.written = true
}

// WriteFloat32s locks the buffer, copies values in little endian order and unlocks it.
// len(values) must equal the buffer capacity in float32 components.
func (vb *VertexBuffer) WriteFloat32s(values []float32) error {
	if len(values)*4 != len(vb.storage) {
		return fmt.Errorf("vertex buffer holds %d floats, got %d", len(vb.storage)/4, len(values))
	}
	data, err := vb.Lock()
	if err != nil {
		return err
	}
	for i, v := range values {
		binary.LittleEndian.PutUint32(data[i*4:i*4+4], math.Float32bits(v))
	}
	vb.Unlock()
	return nil
}

// Float32s decodes the whole buffer as float32 components.
func (vb *VertexBuffer) Float32s() []float32 {
	res := make([]float32, len(vb.storage)/4)
	for i := range res {
		res[i] = math.Float32frombits(binary.LittleEndian.Uint32(vb.storage[i*4 : i*4+4]))
	}
	return res
}

// Vec3 reads the 3 component float attribute with the given semantic for one vertex.
func (vb *VertexBuffer) Vec3(semantic string, vertex int) ([3]float32, error) {
	e, ok := vb.format.Element(semantic)
	if !ok {
		return [3]float32{}, fmt.Errorf("vertex format has no %q element", semantic)
	}
	if e.Type != Float32 || e.NumComponents != 3 {
		return [3]float32{}, fmt.Errorf("vertex element %q is not a float32 vec3", semantic)
	}
	if vertex < 0 || vertex >= vb.numVertices {
		return [3]float32{}, fmt.Errorf("vertex %d out of range [0, %d)", vertex, vb.numVertices)
	}

	base := vertex*vb.format.Size() + e.Offset
	var res [3]float32
	for i := 0; i < 3; i++ {
		off := base + i*4
		res[i] = math.Float32frombits(binary.LittleEndian.Uint32(vb.storage[off : off+4]))
	}
	return res, nil
}

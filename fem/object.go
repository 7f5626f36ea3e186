package fem

import (
	"errors"
	"fmt"
)

// ErrDanglingReference marks an element whose node, material, or
// prototype reference does not resolve inside its own container. The
// generator never produces one; hitting it means the container was
// assembled by hand and badly.
var ErrDanglingReference = errors.New("dangling reference")

// Node is a mesh vertex: a coordinate in physical space. Its global
// number is the dense index the owning container assigned it, so the
// node itself carries no identity.
type Node struct {
	Coords []float64 // Length = Object.Dims
}

// Element is one finite element: an ordered list of corner node numbers
// plus non-owning indices into the container's material and prototype
// registries. Node order follows the element winding and is
// load-bearing for shape functions and volume sign.
type Element struct {
	Nodes    []int // Global node numbers, winding order
	Material int   // Index into the container's material registry
	Proto    int   // Index into the container's prototype registry
}

// Object is the mesh container: it owns the nodes, elements, materials,
// and element prototypes of one mesh and assigns their global numbers as
// dense indices into its arrays. Elements reference nodes, materials,
// and prototypes by index only.
type Object struct {
	dims      int
	nodes     []Node
	elements  []Element
	materials []Material
	protos    []Proto
}

// NewObject creates an empty mesh container for the given spatial dimension
func NewObject(dims int) *Object {
	return &Object{dims: dims}
}

func (o *Object) Dims() int         { return o.dims }
func (o *Object) NumNodes() int     { return len(o.nodes) }
func (o *Object) NumElements() int  { return len(o.elements) }
func (o *Object) NumMaterials() int { return len(o.materials) }
func (o *Object) NumProtos() int    { return len(o.protos) }

// AddNode appends a node and returns its global number
func (o *Object) AddNode(coords []float64) int {
	o.nodes = append(o.nodes, Node{Coords: coords})
	return len(o.nodes) - 1
}

// AddElement appends an element and returns its global number
func (o *Object) AddElement(e Element) int {
	o.elements = append(o.elements, e)
	return len(o.elements) - 1
}

// AddMaterial registers a material and returns its index
func (o *Object) AddMaterial(m Material) int {
	o.materials = append(o.materials, m)
	return len(o.materials) - 1
}

// AddProto registers an element prototype and returns its index
func (o *Object) AddProto(p Proto) int {
	o.protos = append(o.protos, p)
	return len(o.protos) - 1
}

// Node returns the node with the given global number
func (o *Object) Node(n int) (Node, error) {
	if n < 0 || n >= len(o.nodes) {
		return Node{}, fmt.Errorf("node %d out of range [0,%d)", n, len(o.nodes))
	}
	return o.nodes[n], nil
}

// Element returns the element with the given global number
func (o *Object) Element(n int) (Element, error) {
	if n < 0 || n >= len(o.elements) {
		return Element{}, fmt.Errorf("element %d out of range [0,%d)", n, len(o.elements))
	}
	return o.elements[n], nil
}

// Material returns the material registered at the given index
func (o *Object) Material(i int) (Material, error) {
	if i < 0 || i >= len(o.materials) {
		return nil, fmt.Errorf("material %d out of range [0,%d)", i, len(o.materials))
	}
	return o.materials[i], nil
}

// Proto returns the element prototype registered at the given index
func (o *Object) Proto(i int) (Proto, error) {
	if i < 0 || i >= len(o.protos) {
		return nil, fmt.Errorf("prototype %d out of range [0,%d)", i, len(o.protos))
	}
	return o.protos[i], nil
}

// ElementMaterial resolves an element's material reference
func (o *Object) ElementMaterial(elem int) (Material, error) {
	e, err := o.Element(elem)
	if err != nil {
		return nil, err
	}
	return o.Material(e.Material)
}

// ElementCorners gathers an element's corner coordinates in winding
// order, one node per row.
func (o *Object) ElementCorners(elem int) ([][]float64, error) {
	e, err := o.Element(elem)
	if err != nil {
		return nil, err
	}
	corners := make([][]float64, len(e.Nodes))
	for i, gn := range e.Nodes {
		nd, err := o.Node(gn)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", elem, err)
		}
		corners[i] = nd.Coords
	}
	return corners, nil
}

// Validate checks internal consistency: every element's node, material,
// and prototype references resolve in this container, each element's
// arity matches its prototype, and every node has Dims coordinates. A
// failure is an internal-consistency fault, not a recoverable condition.
func (o *Object) Validate() error {
	for n, nd := range o.nodes {
		if len(nd.Coords) != o.dims {
			return fmt.Errorf("node %d: %d coordinates, container is %dD", n, len(nd.Coords), o.dims)
		}
	}
	for k, e := range o.elements {
		if e.Material < 0 || e.Material >= len(o.materials) {
			return fmt.Errorf("%w: element %d material %d", ErrDanglingReference, k, e.Material)
		}
		if e.Proto < 0 || e.Proto >= len(o.protos) {
			return fmt.Errorf("%w: element %d prototype %d", ErrDanglingReference, k, e.Proto)
		}
		if want := o.protos[e.Proto].NumNodes(); len(e.Nodes) != want {
			return fmt.Errorf("element %d: %d nodes, prototype %s wants %d",
				k, len(e.Nodes), o.protos[e.Proto].ShortName(), want)
		}
		for _, gn := range e.Nodes {
			if gn < 0 || gn >= len(o.nodes) {
				return fmt.Errorf("%w: element %d node %d", ErrDanglingReference, k, gn)
			}
		}
	}
	return nil
}

// String returns a one-line summary of the container contents
func (o *Object) String() string {
	return fmt.Sprintf("FEM object: %dD, %d nodes, %d elements, %d materials",
		o.dims, len(o.nodes), len(o.elements), len(o.materials))
}

package ocp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/solid/ocp"
)

func TestParseCatalog_BuiltinKinds(t *testing.T) {
	doc := []byte(`
shapes:
  - kind: circle
    radius: 2
  - kind: square
    side: 3
  - kind: rectangle
    width: 2
    height: 5
  - kind: triangle
    base: 4
    height: 3
`)
	shapes, err := ocp.NewRegistry().ParseCatalog(doc)
	require.NoError(t, err)
	require.Len(t, shapes, 4)

	assert.Equal(t, "circle", shapes[0].Kind())
	assert.InDelta(t, math.Pi*4, shapes[0].Area(), areaEpsilon)
	assert.Equal(t, 9.0, shapes[1].Area())
	assert.InDelta(t, math.Pi*4+9+10+6, ocp.SumAreas(shapes...), areaEpsilon)
}

func TestParseCatalog_UnknownKind(t *testing.T) {
	_, err := ocp.NewRegistry().ParseCatalog([]byte("shapes:\n  - kind: hexagon\n    side: 2\n"))
	assert.ErrorIs(t, err, ocp.ErrUnknownKind)
}

func TestParseCatalog_BadDimension(t *testing.T) {
	// A missing dimension and a negative dimension both fail the same way.
	_, err := ocp.NewRegistry().ParseCatalog([]byte("shapes:\n  - kind: circle\n"))
	assert.ErrorIs(t, err, ocp.ErrBadDimension)

	_, err = ocp.NewRegistry().ParseCatalog([]byte("shapes:\n  - kind: square\n    side: -1\n"))
	assert.ErrorIs(t, err, ocp.ErrBadDimension)
}

func TestParseCatalog_Malformed(t *testing.T) {
	_, err := ocp.NewRegistry().ParseCatalog([]byte("shapes: {not a list"))
	assert.Error(t, err)
}

func TestRegistry_RegisterKind_ExtendsWithoutParserEdit(t *testing.T) {
	r := ocp.NewRegistry()
	// A regular hexagon: (3√3/2)·side².
	err := r.RegisterKind("hexagon", func(e ocp.CatalogEntry) (ocp.Shape, error) {
		side, dimErr := e.Dim("side")
		if dimErr != nil {
			return nil, dimErr
		}

		return hexagon{side: side}, nil
	})
	require.NoError(t, err)

	shapes, err := r.ParseCatalog([]byte("shapes:\n  - kind: hexagon\n    side: 2\n"))
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.InDelta(t, 3*math.Sqrt(3)/2*4, shapes[0].Area(), areaEpsilon)
}

func TestRegistry_RegisterKind_Duplicate(t *testing.T) {
	r := ocp.NewRegistry()
	err := r.RegisterKind("circle", func(ocp.CatalogEntry) (ocp.Shape, error) { return nil, nil })
	assert.ErrorIs(t, err, ocp.ErrDuplicateKind)
}

type hexagon struct{ side float64 }

func (h hexagon) Area() float64 { return 3 * math.Sqrt(3) / 2 * h.side * h.side }
func (h hexagon) Kind() string  { return "hexagon" }

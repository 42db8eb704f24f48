package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/svgscene/scene"
	"github.com/benoitkugler/svgscene/svgdom"
)

func convertErr(t *testing.T, svg string) error {
	t.Helper()
	doc, err := svgdom.ParseString(svg)
	require.NoError(t, err)
	_, err = ConvertDocument(doc, Options{})
	return err
}

func TestUseWithoutHref(t *testing.T) {
	err := convertErr(t, `<svg><use/></svg>`)
	var target UnresolvedReferenceError
	assert.ErrorAs(t, err, &target)
}

func TestUseUnknownID(t *testing.T) {
	err := convertErr(t, `<svg><use href="#nope"/></svg>`)
	var target MissingReferencedElementError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "nope", target.ID)
}

func TestUseEmptyResult(t *testing.T) {
	// a template that resolves to nothing is an error, not a silent no-op
	err := convertErr(t, `<svg>
		<defs><line id="l" x1="0" y1="0" x2="1" y2="1"/></defs>
		<use href="#l"/>
	</svg>`)
	var target EmptyReferenceResultError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "l", target.ID)
}

func TestUseCycle(t *testing.T) {
	err := convertErr(t, `<svg><g id="a"><use href="#a"/></g></svg>`)
	var target ReferenceCycleError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "a", target.ID)
}

func TestUseMergePolicy(t *testing.T) {
	out := mustConvert(t, `<svg>
		<defs><rect id="box" x="1" y="2" width="3" height="4" fill="red"/></defs>
		<use href="#box" x="5" fill="blue" stroke="green"/>
	</svg>`)
	require.Equal(t, 1, out.Len())

	el := out.Elements[0]
	assert.Equal(t, scene.KindRectangle, el.Kind)
	// x belongs to the override set: the instance wins
	assert.Equal(t, 5.0, el.X)
	assert.Equal(t, 2.0, el.Y)
	assert.Equal(t, 3.0, el.Width)
	assert.Equal(t, 4.0, el.Height)
	// fill is declared by the template: the template wins
	assert.Equal(t, "red", el.BackgroundColor)
	// stroke is not declared by the template: the instance fills the gap
	assert.Equal(t, "green", el.StrokeColor)
}

func TestUseTemplateUntouched(t *testing.T) {
	doc, err := svgdom.ParseString(`<svg>
		<defs><rect id="box" x="1" y="2" width="3" height="4"/></defs>
		<use href="#box" x="5"/>
	</svg>`)
	require.NoError(t, err)

	_, err = ConvertDocument(doc, Options{})
	require.NoError(t, err)

	x, _ := doc.FindByID("box").Attr("x")
	assert.Equal(t, "1", x)
}

func TestUseXlinkHref(t *testing.T) {
	out := mustConvert(t, `<svg xmlns:xlink="http://www.w3.org/1999/xlink">
		<defs><circle id="dot" cx="2" cy="2" r="2"/></defs>
		<use xlink:href="#dot"/>
	</svg>`)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, scene.KindEllipse, out.Elements[0].Kind)
}

func TestUseYieldsSinglePrimitive(t *testing.T) {
	out := mustConvert(t, `<svg>
		<defs><g id="pair">
			<rect width="1" height="1"/>
			<rect width="2" height="2"/>
		</g></defs>
		<use href="#pair"/>
	</svg>`)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, 1.0, out.Elements[0].Width)
}

func TestUseCanReferenceVisibleElement(t *testing.T) {
	// references are not limited to defs content
	out := mustConvert(t, `<svg>
		<rect id="box" x="0" y="0" width="2" height="2"/>
		<use href="#box" x="10"/>
	</svg>`)
	require.Equal(t, 2, out.Len())
	assert.Equal(t, 0.0, out.Elements[0].X)
	assert.Equal(t, 10.0, out.Elements[1].X)
}

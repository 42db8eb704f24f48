package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/svgscene/scene"
)

func TestTextBasic(t *testing.T) {
	out := mustConvert(t, `<svg><text x="10" y="30">hi</text></svg>`)
	require.Equal(t, 1, out.Len())

	el := out.Elements[0]
	assert.Equal(t, scene.KindText, el.Kind)
	assert.Equal(t, "hi", el.Text)
	assert.Equal(t, 16.0, el.FontSize)
	assert.Equal(t, "#000000", el.StrokeColor)
	assert.Equal(t, 10.0, el.X)
	// svg anchors at the baseline, the scene at the top edge
	assert.Equal(t, 14.0, el.Y)
	assert.Equal(t, 20.0, el.Width) // 2 runes
	assert.Equal(t, 25.0, el.Height)
	assert.Equal(t, 16.0, el.Baseline)
	assert.Equal(t, 1, el.FontFamily)
}

func TestTextFillColor(t *testing.T) {
	out := mustConvert(t, `<svg><text x="0" y="0" fill="red">a</text></svg>`)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, "red", out.Elements[0].StrokeColor)
}

func TestTextClassFontSize(t *testing.T) {
	out := mustConvert(t, `<svg>
		<style>.small { font-size: 12px; }</style>
		<text class="small" x="0" y="30">a</text>
	</svg>`)
	require.Equal(t, 1, out.Len())

	el := out.Elements[0]
	assert.Equal(t, 12.0, el.FontSize)
	assert.Equal(t, 18.0, el.Y)
}

func TestTextClassSelectorSpellings(t *testing.T) {
	// a class rule may be written against text or tspan elements
	for _, sheet := range []string{
		`.big { font-size: 20px; }`,
		`text.big { font-size: 20px; }`,
		`.big tspan { font-size: 20px; }`,
		`text.big tspan { font-size: 20px; }`,
	} {
		out := mustConvert(t, `<svg><style>`+sheet+`</style>
			<text class="big" x="0" y="0">a</text></svg>`)
		require.Equal(t, 1, out.Len(), sheet)
		assert.Equal(t, 20.0, out.Elements[0].FontSize, sheet)
	}
}

func TestTextAttributeOverridesClass(t *testing.T) {
	out := mustConvert(t, `<svg>
		<style>.small { font-size: 12px; }</style>
		<text class="small" font-size="20" x="0" y="0">a</text>
	</svg>`)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, 20.0, out.Elements[0].FontSize)
}

func TestTextMalformedStylesheet(t *testing.T) {
	out := mustConvert(t, `<svg>
		<style>not a stylesheet {{{</style>
		<text x="0" y="30">a</text>
	</svg>`)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, 16.0, out.Elements[0].FontSize)
}

func TestTextExportedDocumentAnchoring(t *testing.T) {
	out := mustConvert(t, `<!-- svg-source:svgscene -->
		<svg><text x="10" y="30">a</text></svg>`)
	require.Equal(t, 1, out.Len())
	// exported documents are already top-anchored: no baseline shift
	assert.Equal(t, 30.0, out.Elements[0].Y)
}

func TestTspanInheritance(t *testing.T) {
	out := mustConvert(t, `<svg><text x="1" y="50" fill="red" font-size="10">
		<tspan>a</tspan><tspan x="5" fill="blue" font-size="8">b</tspan>
	</text></svg>`)
	require.Equal(t, 2, out.Len())

	inherited, overridden := out.Elements[0], out.Elements[1]
	assert.Equal(t, "a", inherited.Text)
	assert.Equal(t, 1.0, inherited.X)
	assert.Equal(t, 40.0, inherited.Y)
	assert.Equal(t, "red", inherited.StrokeColor)
	assert.Equal(t, 10.0, inherited.FontSize)

	assert.Equal(t, "b", overridden.Text)
	assert.Equal(t, 5.0, overridden.X)
	assert.Equal(t, 42.0, overridden.Y)
	assert.Equal(t, "blue", overridden.StrokeColor)
	assert.Equal(t, 8.0, overridden.FontSize)
}

func TestTextTransformed(t *testing.T) {
	out := mustConvert(t, `<svg><g transform="translate(5, 0)">
		<text x="1" y="20">z</text>
	</g></svg>`)
	require.Equal(t, 1, out.Len())

	el := out.Elements[0]
	assert.InDelta(t, 6, el.X, 1e-9)
	assert.InDelta(t, 4, el.Y, 1e-9)
	require.Len(t, el.GroupIDs, 1)
}

func TestEmptyTextSkipped(t *testing.T) {
	out := mustConvert(t, `<svg><text x="0" y="0">   </text></svg>`)
	assert.Equal(t, 0, out.Len())
}

package scene

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	el := NewRectangle()
	assert.Equal(t, KindRectangle, el.Kind)
	assert.Equal(t, "#000000", el.StrokeColor)
	assert.Equal(t, "transparent", el.BackgroundColor)
	assert.Equal(t, "hachure", el.FillStyle)
	assert.Equal(t, 1.0, el.StrokeWidth)
	assert.Equal(t, "solid", el.StrokeStyle)
	assert.Equal(t, Sharp, el.StrokeSharpness)
	assert.Equal(t, 100.0, el.Opacity)
	assert.NotEmpty(t, el.ID)

	text := NewText()
	assert.Equal(t, KindText, text.Kind)
	assert.Equal(t, 1, text.FontFamily)
}

func TestFreshIDUnique(t *testing.T) {
	assert.NotEqual(t, FreshID(), FreshID())
}

func TestSceneAppendOrder(t *testing.T) {
	var s Scene
	a, b := NewRectangle(), NewEllipse()
	s.Append(a)
	s.Append(b)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, a.ID, s.Elements[0].ID)
	assert.Equal(t, b.ID, s.Elements[1].ID)
}

func TestElementJSON(t *testing.T) {
	el := NewDraw()
	el.Points = [][2]float64{{0, 0}, {10, 0}}

	data, err := json.Marshal(el)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"draw"`)
	assert.Contains(t, string(data), `"points":[[0,0],[10,0]]`)

	// text fields stay out of non-text elements
	assert.NotContains(t, string(data), "fontSize")
}

package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDrawValid(t *testing.T) {
	v := NewValidator()

	d, err := v.ParseDraw([]byte(`{"type":"draw","x":10,"y":10,"prevX":0,"prevY":0,"color":"#000000","lineWidth":3,"tool":"pen"}`))
	require.NoError(t, err)

	assert.Equal(t, "#000000", d.Color)
	assert.Equal(t, ToolPen, d.Tool)
	assert.Equal(t, float64(3), d.LineWidth)
	assert.Equal(t, float64(10), d.X)
	assert.Equal(t, float64(0), d.PrevX)
}

func TestParseDrawEraser(t *testing.T) {
	v := NewValidator()

	d, err := v.ParseDraw([]byte(`{"type":"draw","x":1,"y":2,"prevX":3,"prevY":4,"color":"#ffffff","lineWidth":20,"tool":"eraser"}`))
	require.NoError(t, err)
	assert.Equal(t, ToolEraser, d.Tool)
}

func TestParseDrawZeroCoordinates(t *testing.T) {
	v := NewValidator()

	// the origin is a legal point; coordinates are not validated at all
	_, err := v.ParseDraw([]byte(`{"type":"draw","x":0,"y":0,"prevX":0,"prevY":0,"color":"#000000","lineWidth":1,"tool":"pen"}`))
	assert.NoError(t, err)
}

func TestParseDrawRejectsUnknownTool(t *testing.T) {
	v := NewValidator()

	_, err := v.ParseDraw([]byte(`{"type":"draw","x":1,"y":1,"prevX":0,"prevY":0,"color":"#000000","lineWidth":3,"tool":"spray"}`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParseDrawRejectsMissingFields(t *testing.T) {
	v := NewValidator()

	cases := map[string]string{
		"no tool":       `{"type":"draw","x":1,"y":1,"prevX":0,"prevY":0,"color":"#000000","lineWidth":3}`,
		"no color":      `{"type":"draw","x":1,"y":1,"prevX":0,"prevY":0,"lineWidth":3,"tool":"pen"}`,
		"zero width":    `{"type":"draw","x":1,"y":1,"prevX":0,"prevY":0,"color":"#000000","lineWidth":0,"tool":"pen"}`,
		"not even json": `draw 1 2 3`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := v.ParseDraw([]byte(raw))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParseDrawSanitizesColor(t *testing.T) {
	v := NewValidator()

	d, err := v.ParseDraw([]byte(`{"type":"draw","x":1,"y":1,"prevX":0,"prevY":0,"color":"<script>alert(1)</script>#fff","lineWidth":3,"tool":"pen"}`))
	require.NoError(t, err)
	assert.NotContains(t, d.Color, "<script>")
	assert.Contains(t, d.Color, "#fff")
}

func TestParseSnapshotValid(t *testing.T) {
	v := NewValidator()

	s, err := v.ParseSnapshot([]byte(`{"type":"save-snapshot","snapshot":"data:image/png;base64,AAAA"}`))
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", s.Snapshot)
}

func TestParseSnapshotRejectsNonImagePayload(t *testing.T) {
	v := NewValidator()

	_, err := v.ParseSnapshot([]byte(`{"type":"save-snapshot","snapshot":"https://example.com/x.png"}`))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = v.ParseSnapshot([]byte(`{"type":"save-snapshot"}`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParseCursor(t *testing.T) {
	v := NewValidator()

	c, err := v.ParseCursor([]byte(`{"type":"cursor","x":5,"y":6}`))
	require.NoError(t, err)
	assert.Equal(t, float64(5), c.X)

	_, err = v.ParseCursor([]byte(`{`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestSanitizeString(t *testing.T) {
	v := NewValidator()

	assert.Equal(t, "AB12CD", v.SanitizeString("AB12CD"))
	assert.NotContains(t, v.SanitizeString("<img src=x onerror=alert(1)>AB"), "<img")
}

package chart

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/feedrank/model"
)

func TestPie_SlicesCoverCircle(t *testing.T) {
	freqs := []model.CategoryCount{
		{Category: model.CategoryPositive, Count: 2},
		{Category: model.CategoryHateSpeech, Count: 1},
		{Category: model.CategorySexist, Count: 1},
		{Category: model.CategoryNotHateSpeech, Count: 1},
	}

	slices := Pie(freqs, 100)
	require.Len(t, slices, 4)

	assert.Equal(t, StartAngle, slices[0].StartAngle)
	assert.InDelta(t, StartAngle+360, slices[len(slices)-1].EndAngle, 1e-9)

	var pct float64
	for i, s := range slices {
		pct += s.Percentage
		if i > 0 {
			assert.Equal(t, slices[i-1].EndAngle, s.StartAngle)
		}
		assert.True(t, strings.HasPrefix(s.Path, "M 100 100 L "), s.Path)
		assert.NotEmpty(t, s.Color)
	}
	assert.InDelta(t, 100.0, pct, 1e-9)
	assert.InDelta(t, 40.0, slices[0].Percentage, 1e-9)
	assert.Equal(t, "40.0%", Label(slices[0]))
}

func TestPie_FirstSliceStartsAtTop(t *testing.T) {
	slices := Pie([]model.CategoryCount{
		{Category: model.CategoryPositive, Count: 1},
		{Category: model.CategorySexist, Count: 3},
	}, 10)
	require.Len(t, slices, 2)

	// Quarter slice from 90° to 180°: from top-centre to left-centre.
	assert.Equal(t, "M 10 10 L 10 0 A 10 10 0 0 0 0 10 Z", slices[0].Path)
	// Remaining three quarters needs the large-arc flag.
	assert.Contains(t, slices[1].Path, " 0 1 0 ")
}

func TestPie_SingleCategoryIsFullCircle(t *testing.T) {
	slices := Pie([]model.CategoryCount{{Category: model.CategoryPositive, Count: 5}}, 50)
	require.Len(t, slices, 1)

	assert.Equal(t, 100.0, slices[0].Percentage)
	assert.Equal(t, "M 0 50 A 50 50 0 1 0 100 50 A 50 50 0 1 0 0 50 Z", slices[0].Path)
}

func TestPie_LabelInsideSlice(t *testing.T) {
	slices := Pie([]model.CategoryCount{
		{Category: model.CategoryPositive, Count: 1},
		{Category: model.CategorySexist, Count: 1},
	}, 100)
	require.Len(t, slices, 2)

	// First half spans 90°..270°, its label sits left of centre.
	assert.Less(t, slices[0].LabelX, 100.0)
	assert.InDelta(t, 100.0, slices[0].LabelY, 0.01)
	dist := math.Hypot(slices[1].LabelX-100, slices[1].LabelY-100)
	assert.InDelta(t, 60.0, dist, 0.01)
}

func TestPie_Empty(t *testing.T) {
	assert.Empty(t, Pie(nil, 100))
	assert.Empty(t, Pie([]model.CategoryCount{{Category: "x", Count: 0}}, 100))
}

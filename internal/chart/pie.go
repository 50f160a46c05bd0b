// Package chart turns category frequencies into pie chart geometry.
// It is presentation only; nothing in the ranking pipeline depends on it.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/gcbaptista/feedrank/model"
)

// StartAngle is where the first slice begins, in degrees (top of the circle).
const StartAngle = 90.0

// palette follows the ten-colour qualitative scheme common to plotting tools.
var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Pie lays out one slice per frequency entry, counter-clockwise from StartAngle,
// on a circle of the given radius centred at (radius, radius).
func Pie(freqs []model.CategoryCount, radius float64) []model.PieSlice {
	total := 0
	for _, f := range freqs {
		total += f.Count
	}

	slices := make([]model.PieSlice, 0, len(freqs))
	if total == 0 {
		return slices
	}

	angle := StartAngle
	for i, f := range freqs {
		if f.Count == 0 {
			continue
		}
		sweep := 360 * float64(f.Count) / float64(total)
		slice := model.PieSlice{
			Category:   f.Category,
			Count:      f.Count,
			Percentage: 100 * float64(f.Count) / float64(total),
			StartAngle: angle,
			EndAngle:   angle + sweep,
			Color:      palette[i%len(palette)],
		}
		slice.Path = arcPath(radius, slice.StartAngle, slice.EndAngle)

		mid := (slice.StartAngle + slice.EndAngle) / 2
		slice.LabelX, slice.LabelY = point(radius, 0.6*radius, mid)

		slices = append(slices, slice)
		angle += sweep
	}
	return slices
}

// Label is the percentage annotation drawn on a slice, e.g. "40.0%".
func Label(slice model.PieSlice) string {
	return fmt.Sprintf("%.1f%%", slice.Percentage)
}

// point converts a polar angle in degrees to SVG coordinates around a centre
// at (cx, cx). SVG's y axis points down, so sin is negated.
func point(cx, r, degrees float64) (float64, float64) {
	rad := degrees * math.Pi / 180
	return round2(cx + r*math.Cos(rad)), round2(cx - r*math.Sin(rad))
}

func arcPath(radius, start, end float64) string {
	if end-start >= 360-1e-9 {
		// A single arc cannot describe a full circle; draw two halves.
		left, top := point(radius, radius, 180)
		right, _ := point(radius, radius, 0)
		return fmt.Sprintf("M %s %s A %s %s 0 1 0 %s %s A %s %s 0 1 0 %s %s Z",
			num(left), num(top), num(radius), num(radius), num(right), num(top),
			num(radius), num(radius), num(left), num(top))
	}

	x1, y1 := point(radius, radius, start)
	x2, y2 := point(radius, radius, end)
	largeArc := 0
	if end-start > 180 {
		largeArc = 1
	}
	// sweep-flag 0: counter-clockwise on screen
	return fmt.Sprintf("M %s %s L %s %s A %s %s 0 %d 0 %s %s Z",
		num(radius), num(radius), num(x1), num(y1), num(radius), num(radius), largeArc, num(x2), num(y2))
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

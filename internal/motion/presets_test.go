package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFadeSlideDirections(t *testing.T) {
	tests := []struct {
		dir       Direction
		transform string
	}{
		{DirectionUp, "translateY(30px)"},
		{DirectionDown, "translateY(-30px)"},
		{DirectionLeft, "translateX(-30px)"},
		{DirectionRight, "translateX(30px)"},
		{"", "translateY(30px)"},
	}
	for _, tt := range tests {
		t.Run(string(tt.dir), func(t *testing.T) {
			s := FadeSlide(false, tt.dir, false, Options{})
			assert.Equal(t, 0.0, s.Opacity)
			assert.Equal(t, tt.transform, s.Transform)
			assert.Contains(t, s.Transition, "ease-out")
		})
	}
}

func TestFadeSlideRevealed(t *testing.T) {
	s := FadeSlide(true, DirectionUp, false, Options{Delay: 200 * time.Millisecond})
	assert.Equal(t, 1.0, s.Opacity)
	assert.Equal(t, "translate(0, 0)", s.Transform)
	assert.Equal(t, "0.20s", s.Delay)
}

func TestReducedMotionShowsStatically(t *testing.T) {
	for name, s := range map[string]Style{
		"fade":   FadeSlide(false, DirectionUp, true, Options{}),
		"scale":  Scale(false, true, 0.5, Options{}),
		"rotate": Rotate(false, true, -30, Options{}),
	} {
		assert.Equal(t, 1.0, s.Opacity, name)
		assert.Empty(t, s.Transform, name)
		assert.Empty(t, s.Transition, name)
	}
}

func TestScaleDefaults(t *testing.T) {
	hidden := Scale(false, false, 0, Options{})
	assert.Equal(t, "scale(0.80)", hidden.Transform)
	assert.Contains(t, hidden.Transition, "cubic-bezier(0.34, 1.56, 0.64, 1)")

	revealed := Scale(true, false, 0, Options{})
	assert.Equal(t, "scale(1)", revealed.Transform)
	assert.Equal(t, 1.0, revealed.Opacity)
}

func TestRotateDefaults(t *testing.T) {
	hidden := Rotate(false, false, 0, Options{})
	assert.Equal(t, "rotate(-15deg) scale(0.9)", hidden.Transform)

	revealed := Rotate(true, false, 0, Options{})
	assert.Equal(t, "rotate(0deg) scale(1)", revealed.Transform)
}

func TestPresetsArePure(t *testing.T) {
	a := FadeSlide(false, DirectionLeft, false, Options{Duration: 300 * time.Millisecond})
	b := FadeSlide(false, DirectionLeft, false, Options{Duration: 300 * time.Millisecond})
	assert.Equal(t, a, b)
}

func TestHoverStyleLiftsAndGlows(t *testing.T) {
	resting := HoverStyle(false, false, HoverOptions{})
	assert.Equal(t, "translateY(0) scale(1)", resting.Transform)
	assert.Empty(t, resting.BoxShadow)

	lifted := HoverStyle(true, false, HoverOptions{})
	assert.Equal(t, "translateY(-8px) scale(1.05)", lifted.Transform)
	assert.Equal(t, "0 20px 40px rgba(59, 130, 246, 0.3)", lifted.BoxShadow)
	assert.Contains(t, lifted.Transition, "cubic-bezier(0.4, 0, 0.2, 1)")

	// Reduced motion never lifts, even while hovered.
	reduced := HoverStyle(true, true, HoverOptions{})
	assert.Equal(t, resting, reduced)
}

func TestParallaxOffset(t *testing.T) {
	x, y := ParallaxOffset(110, 80, 100, 100, 0, false)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, -10.0, y)

	x, y = ParallaxOffset(110, 80, 100, 100, 0, true)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}

func TestMagneticOffsetRadius(t *testing.T) {
	x, y, attracted := MagneticOffset(130, 140, 100, 100, 0, false)
	assert.True(t, attracted)
	assert.InDelta(t, 9.0, x, 0.001)
	assert.InDelta(t, 12.0, y, 0.001)

	_, _, attracted = MagneticOffset(200, 200, 100, 100, 0, false)
	assert.False(t, attracted)

	_, _, attracted = MagneticOffset(101, 101, 100, 100, 0, true)
	assert.False(t, attracted)
}

func TestRevealClass(t *testing.T) {
	assert.Equal(t, "reveal-fade-up", RevealClass("", false, false))
	assert.Equal(t, "reveal-fade-up revealed", RevealClass("fade-up", true, false))
	assert.Equal(t, "reveal-zoom revealed", RevealClass("zoom", true, false))
	assert.Equal(t, "", RevealClass("fade-up", true, true))
}

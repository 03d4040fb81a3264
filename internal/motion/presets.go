package motion

import (
	"fmt"
	"math"
	"time"
)

// Direction is the travel direction for fade-slide reveals.
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Style is a computed set of inline style fragments for a revealable
// element. Presets are pure: the same inputs always produce the same style.
type Style struct {
	Opacity    float64 `json:"opacity"`
	Transform  string  `json:"transform,omitempty"`
	Transition string  `json:"transition,omitempty"`
	Delay      string  `json:"transition_delay,omitempty"`
	BoxShadow  string  `json:"box_shadow,omitempty"`
}

// Options tune a preset. Zero values fall back to the preset defaults.
type Options struct {
	Delay    time.Duration
	Duration time.Duration
	Easing   string
}

const slideDistancePx = 30

func (o Options) duration(def time.Duration) time.Duration {
	if o.Duration > 0 {
		return o.Duration
	}
	return def
}

func (o Options) easing(def string) string {
	if o.Easing != "" {
		return o.Easing
	}
	return def
}

func transition(d time.Duration, easing string) string {
	secs := d.Seconds()
	return fmt.Sprintf("opacity %.2fs %s, transform %.2fs %s", secs, easing, secs, easing)
}

func delayValue(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// shown is the terminal appearance, used for every preset once revealed and
// unconditionally under reduced motion.
func shown() Style {
	return Style{Opacity: 1}
}

// FadeSlide fades in while sliding from the given direction.
func FadeSlide(revealed bool, dir Direction, reduced bool, opts Options) Style {
	if reduced {
		return shown()
	}
	tr := transition(opts.duration(600*time.Millisecond), opts.easing("ease-out"))
	if revealed {
		return Style{Opacity: 1, Transform: "translate(0, 0)", Transition: tr, Delay: delayValue(opts.Delay)}
	}
	s := Style{Opacity: 0, Transition: tr, Delay: delayValue(opts.Delay)}
	switch dir {
	case DirectionDown:
		s.Transform = fmt.Sprintf("translateY(-%dpx)", slideDistancePx)
	case DirectionLeft:
		s.Transform = fmt.Sprintf("translateX(-%dpx)", slideDistancePx)
	case DirectionRight:
		s.Transform = fmt.Sprintf("translateX(%dpx)", slideDistancePx)
	default: // up
		s.Transform = fmt.Sprintf("translateY(%dpx)", slideDistancePx)
	}
	return s
}

// Scale grows the element from initialScale to full size. initialScale <= 0
// defaults to 0.8.
func Scale(revealed bool, reduced bool, initialScale float64, opts Options) Style {
	if reduced {
		return shown()
	}
	if initialScale <= 0 {
		initialScale = 0.8
	}
	tr := transition(opts.duration(400*time.Millisecond), opts.easing("cubic-bezier(0.34, 1.56, 0.64, 1)"))
	if revealed {
		return Style{Opacity: 1, Transform: "scale(1)", Transition: tr, Delay: delayValue(opts.Delay)}
	}
	return Style{Opacity: 0, Transform: fmt.Sprintf("scale(%.2f)", initialScale), Transition: tr, Delay: delayValue(opts.Delay)}
}

// Rotate settles the element from an initial rotation. initialDegrees of 0
// defaults to -15.
func Rotate(revealed bool, reduced bool, initialDegrees float64, opts Options) Style {
	if reduced {
		return shown()
	}
	if initialDegrees == 0 {
		initialDegrees = -15
	}
	tr := transition(opts.duration(600*time.Millisecond), opts.easing("ease-out"))
	if revealed {
		return Style{Opacity: 1, Transform: "rotate(0deg) scale(1)", Transition: tr, Delay: delayValue(opts.Delay)}
	}
	return Style{
		Opacity:    0,
		Transform:  fmt.Sprintf("rotate(%.0fdeg) scale(0.9)", initialDegrees),
		Transition: tr,
		Delay:      delayValue(opts.Delay),
	}
}

// HoverOptions tune the card hover lift. Zero values use the defaults.
type HoverOptions struct {
	Scale     float64
	LiftPx    int
	GlowColor string
	Duration  time.Duration
	Easing    string
}

// HoverStyle computes the lift-and-glow appearance for a hovered card.
// Reduced motion keeps the resting appearance regardless of hover.
func HoverStyle(hovered, reduced bool, opts HoverOptions) Style {
	if opts.Scale <= 0 {
		opts.Scale = 1.05
	}
	if opts.LiftPx <= 0 {
		opts.LiftPx = 8
	}
	if opts.GlowColor == "" {
		opts.GlowColor = "rgba(59, 130, 246, 0.3)"
	}
	if opts.Duration <= 0 {
		opts.Duration = 300 * time.Millisecond
	}
	if opts.Easing == "" {
		opts.Easing = "cubic-bezier(0.4, 0, 0.2, 1)"
	}

	if reduced || !hovered {
		return Style{Opacity: 1, Transform: "translateY(0) scale(1)"}
	}
	secs := opts.Duration.Seconds()
	return Style{
		Opacity:    1,
		Transform:  fmt.Sprintf("translateY(-%dpx) scale(%.2f)", opts.LiftPx, opts.Scale),
		BoxShadow:  fmt.Sprintf("0 20px 40px %s", opts.GlowColor),
		Transition: fmt.Sprintf("transform %.2fs %s, box-shadow %.2fs %s", secs, opts.Easing, secs, opts.Easing),
	}
}

// ParallaxOffset computes the element shift that tracks the pointer. speed
// <= 0 defaults to 0.5; reduced motion pins the element in place.
func ParallaxOffset(pointerX, pointerY, centerX, centerY, speed float64, reduced bool) (x, y float64) {
	if reduced {
		return 0, 0
	}
	if speed <= 0 {
		speed = 0.5
	}
	return (pointerX - centerX) * speed, (pointerY - centerY) * speed
}

// magneticRadiusPx is how close the pointer must be before the element
// starts following it.
const magneticRadiusPx = 100

// MagneticOffset pulls the element toward a nearby pointer. Outside the
// attraction radius, and under reduced motion, the element stays put.
// strength <= 0 defaults to 0.3.
func MagneticOffset(pointerX, pointerY, centerX, centerY, strength float64, reduced bool) (x, y float64, attracted bool) {
	if reduced {
		return 0, 0, false
	}
	if strength <= 0 {
		strength = 0.3
	}
	dx := pointerX - centerX
	dy := pointerY - centerY
	if math.Hypot(dx, dy) >= magneticRadiusPx {
		return 0, 0, false
	}
	return dx * strength, dy * strength, true
}

// RevealClass computes the CSS class pair for class-driven reveals, e.g.
// "reveal-fade-up revealed". Reduced motion uses no animation class at all.
func RevealClass(animation string, revealed, reduced bool) string {
	if reduced {
		return ""
	}
	if animation == "" {
		animation = "fade-up"
	}
	cls := "reveal-" + animation
	if revealed {
		return cls + " revealed"
	}
	return cls
}

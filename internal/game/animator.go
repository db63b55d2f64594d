package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// tweenFiller drives a single tile's water fill with an easing tween.
// It satisfies pipes.Filler: Reset re-arms the tween for the next tile.
type tweenFiller struct {
	seconds float32
	tween   *gween.Tween
}

func newTweenFiller(seconds float64) *tweenFiller {
	f := &tweenFiller{seconds: float32(seconds)}
	f.Reset()
	return f
}

// Reset re-arms the fill animation from zero.
func (f *tweenFiller) Reset() {
	f.tween = gween.New(0, 1, f.seconds, ease.InOutQuad)
}

// Advance moves the fill forward by dt seconds.
func (f *tweenFiller) Advance(dt float64) (float64, bool) {
	v, done := f.tween.Update(float32(dt))
	return float64(v), done
}

package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// silentVolume is the beep volume used for level 0.
const silentVolume = -10

// SetVolume sets the output level, clamped to [0, 1]. The level survives
// track changes.
func (p *Player) SetVolume(level float64) {
	level = math.Max(0, math.Min(1, level))
	p.volumeLevel = level

	if p.volume == nil {
		return
	}
	speaker.Lock()
	p.volume.Volume = levelToVolume(level)
	p.volume.Silent = level == 0
	speaker.Unlock()
}

func (p *Player) Volume() float64 {
	return p.volumeLevel
}

// levelToVolume maps a linear 0..1 level onto beep's base-2 volume scale:
// 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> silent.
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return silentVolume
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}

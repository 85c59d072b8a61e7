package playerbar

import (
	"fmt"
	"math"
)

// RenderVolumeCompact renders the volume indicator, e.g. "vol  80%".
func RenderVolumeCompact(volume float64) string {
	pct := int(math.Round(volume * 100))
	label := "vol"
	if pct == 0 {
		label = "mute"
	}
	return progressTimeStyle().Render(fmt.Sprintf("%s %3d%%", label, pct))
}

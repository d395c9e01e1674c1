package slides

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// DefaultEasing is the easing used when a name is empty or unknown. It eases
// in and out along half a cosine wave.
const DefaultEasing = "swing"

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"swing":        ease.InOutSine,
	"inquad":       ease.InQuad,
	"outquad":      ease.OutQuad,
	"inoutquad":    ease.InOutQuad,
	"incubic":      ease.InCubic,
	"outcubic":     ease.OutCubic,
	"inoutcubic":   ease.InOutCubic,
	"inquart":      ease.InQuart,
	"outquart":     ease.OutQuart,
	"inoutquart":   ease.InOutQuart,
	"inquint":      ease.InQuint,
	"outquint":     ease.OutQuint,
	"inoutquint":   ease.InOutQuint,
	"insine":       ease.InSine,
	"outsine":      ease.OutSine,
	"inoutsine":    ease.InOutSine,
	"inexpo":       ease.InExpo,
	"outexpo":      ease.OutExpo,
	"inoutexpo":    ease.InOutExpo,
	"incirc":       ease.InCirc,
	"outcirc":      ease.OutCirc,
	"inoutcirc":    ease.InOutCirc,
	"inelastic":    ease.InElastic,
	"outelastic":   ease.OutElastic,
	"inoutelastic": ease.InOutElastic,
	"inback":       ease.InBack,
	"outback":      ease.OutBack,
	"inoutback":    ease.InOutBack,
	"inbounce":     ease.InBounce,
	"outbounce":    ease.OutBounce,
	"inoutbounce":  ease.InOutBounce,
}

// EasingByName looks up an easing function. Names are matched case-insensitively
// with an optional "ease" prefix and any '-' or '_' separators ignored, so
// "easeInOutQuad", "in-out-quad" and "InOutQuad" are the same easing. The
// second result is false when the name is unknown, in which case swing is
// returned.
func EasingByName(name string) (ease.TweenFunc, bool) {
	key := normalizeEasing(name)
	if key == "" {
		return easings[DefaultEasing], true
	}
	if fn, ok := easings[key]; ok {
		return fn, true
	}
	return easings[DefaultEasing], false
}

func normalizeEasing(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	if key != "ease" {
		key = strings.TrimPrefix(key, "ease")
	}
	return key
}

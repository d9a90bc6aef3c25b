package emoji

import "strings"

// https://unicode.org/emoji/charts/full-emoji-list.html
const (
	Correct = "✅"
	Wrong   = "❌"
	Warning = "⚠️"

	DotSnow  = "❄"
	DotFire  = "🔥"
	DotWater = "💧"

	Tool   = "🔧"
	Chart  = "📊"
	Target = "🎯"
	Up     = "📈"
	Flash  = "⚡"
	Test   = "🧪"
	Globe  = "🌍"
	Lock   = "🔒"
	Money  = "💰"
	Idea   = "💡"
)

// MapBool maps a check result to an emoji.
func MapBool(s bool) string {
	if s {
		return Correct
	}
	return Wrong
}

// MapMatch maps the outcome of a prediction, mismatches are flagged as warnings.
func MapMatch(expected, predicted int) string {
	if expected == predicted {
		return Correct
	}
	return Warning
}

// MapToSign maps the given float value according to it's sign.
// For a step activation fire means the neuron is active.
func MapToSign(f float64) string {
	emo := DotSnow
	if f > 0 {
		emo = DotFire
	} else if f < 0 {
		emo = DotWater
	}
	return emo
}

// Signs maps all values according to their sign.
func Signs(ff []float64) string {
	ss := make([]string, len(ff))
	for i, f := range ff {
		ss[i] = MapToSign(f)
	}
	return strings.Join(ss, "")
}

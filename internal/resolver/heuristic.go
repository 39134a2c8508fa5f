package resolver

import "regexp"

var (
	arabicScript = regexp.MustCompile(`[\x{0600}-\x{06FF}]`)
	latinProse   = regexp.MustCompile(`[A-Za-z]{3,}\s+[A-Za-z]{3,}\s+[A-Za-z]{3,}`)
)

// IsPlausibleArabicProse accepts text that contains Arabic script and no
// run of three Latin words. Providers sometimes answer with an English
// translation or an error page instead of the requested commentary.
func IsPlausibleArabicProse(text string) bool {
	return arabicScript.MatchString(text) && !latinProse.MatchString(text)
}

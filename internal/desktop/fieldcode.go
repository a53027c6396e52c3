package desktop

import "strings"

// fieldCodes are the Exec placeholders the launcher never fills in, since it
// is never handed files or URLs.
var fieldCodes = []string{"%f", "%F", "%u", "%U", "%d", "%D", "%n", "%N", "%i", "%k", "%v", "%m"}

var fieldCodeStripper = func() *strings.Replacer {
	pairs := make([]string, 0, len(fieldCodes)*2)
	for _, code := range fieldCodes {
		pairs = append(pairs, code, "")
	}
	return strings.NewReplacer(pairs...)
}()

// StripFieldCodes removes every field code from an Exec template. Quoting is
// not interpreted: a code inside quotes is removed like any other and
// surrounding whitespace is left alone.
func StripFieldCodes(exec string) string {
	return fieldCodeStripper.Replace(exec)
}

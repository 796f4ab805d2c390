package util

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// NormalizeKeyword adds the dashes a flag or parameter keyword was declared without: a single
// letter becomes a short option (f -> -f), anything longer a long option (force -> --force).
func NormalizeKeyword(keyword string) string {
	if keyword == "" || strings.HasPrefix(keyword, "-") {
		return keyword
	}
	if len([]rune(keyword)) == 1 {
		return "-" + keyword
	}

	return "--" + keyword
}

// BindingName derives the name under which a keyword's value is bound (--skip-it -> skip_it)
func BindingName(keyword string) string {
	return strcase.ToSnake(strings.TrimLeft(keyword, "-"))
}

// LongestKeyword returns the longest keyword, the first one winning ties
func LongestKeyword(keywords []string) string {
	longest := ""
	for _, kw := range keywords {
		if len(kw) > len(longest) {
			longest = kw
		}
	}

	return longest
}

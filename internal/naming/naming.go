// Package naming derives column and table names from Go identifiers.
package naming

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
)

// CamelToSnake converts a CamelCase string to snake_case.
// Consecutive uppercase letters (acronyms) are kept together:
// "ID" → "id", "MovieID" → "movie_id", "ReleasedOn" → "released_on".
func CamelToSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				next := rune(0)
				if i+1 < len(runes) {
					next = runes[i+1]
				}
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && unicode.IsLower(next)) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PluralTable derives a table name from a type name: snake_case with the
// last word pluralized, e.g. "MoviePicture" → "movie_pictures".
func PluralTable(typeName string) string {
	snake := CamelToSnake(typeName)
	head, last := "", snake
	if i := strings.LastIndexByte(snake, '_'); i >= 0 {
		head, last = snake[:i+1], snake[i+1:]
	}
	return head + inflection.Plural(last)
}

package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var apostrophes = strings.NewReplacer("'", "", "\u2019", "")

// letters that do not decompose into a base letter and a combining mark
var ligatures = strings.NewReplacer(
	"ß", "ss", "Æ", "Ae", "æ", "ae", "Œ", "Oe", "œ", "oe",
	"Ø", "O", "ø", "o", "Þ", "Th", "þ", "th", "Ð", "D", "ð", "d",
	"Đ", "D", "đ", "d", "Ħ", "H", "ħ", "h", "Ł", "L", "ł", "l",
	"Ŀ", "L", "ŀ", "l", "Ŧ", "T", "ŧ", "t", "Ŋ", "N", "ŋ", "n",
	"Ĳ", "IJ", "ĳ", "ij", "ı", "i", "ſ", "s",
)

// SnakeCase converts an identifier to lower snake_case.
// Examples:
//   - "exampleString" -> "example_string"
//   - "XMLParser" -> "xml_parser"
//   - "Order" -> "order"
//   - "order-item ID" -> "order_item_id"
//   - "version2" -> "version_2"
//   - "Größe" -> "grosse"
//   - "don't" -> "dont"
//
// Latin letters lose their diacritics and apostrophes are dropped before
// splitting. Already snake-cased input is returned unchanged.
func SnakeCase(s string) string {
	words := splitWords(apostrophes.Replace(deburr(s)))
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	return strings.Join(words, "_")
}

// deburr folds accented Latin letters to ASCII.
func deburr(s string) string {
	ascii := true

	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}

	if ascii {
		return s
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := transform.String(t, ligatures.Replace(s))
	if err != nil {
		return s
	}

	return out
}

// splitWords splits s into words. Any rune that is neither a letter nor a
// digit separates words.
func splitWords(s string) []string {
	if s == "" {
		return nil
	}

	var words []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if !isWordRune(r) {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}

			continue
		}

		if current.Len() > 0 && startsNewWord(runes, i) {
			words = append(words, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// startsNewWord determines if a new word starts at position i.
// The previous rune is known to be a word rune.
func startsNewWord(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	// Letter/digit transitions: "version2" -> "version", "2"
	if unicode.IsDigit(r) != unicode.IsDigit(prev) {
		return true
	}

	isUpper := unicode.IsUpper(r)

	// "orderID" -> split before 'I'
	if isUpper && unicode.IsLower(prev) {
		return true
	}

	// End of acronym: "XMLParser" -> "XML" + "Parser", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
	if isUpper && unicode.IsUpper(prev) && hasNextLower {
		return true
	}

	return false
}

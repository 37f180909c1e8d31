package gen

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/scriba-dev/scriba"
)

var rules = ruleset()

// ruleset returns the inflection ruleset used for naming, extended with
// common initialisms so that "apis" singularizes to "API"-friendly forms.
func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	for _, w := range []string{
		"ACL", "API", "ASCII", "CPU", "CSS", "DNS", "EOF", "GUID", "HTML",
		"HTTP", "HTTPS", "ID", "IP", "JSON", "LHS", "QPS", "RAM", "RHS",
		"RPC", "SLA", "SMTP", "SQL", "SSH", "TCP", "TLS", "TTL", "UDP",
		"UI", "UID", "UUID", "URI", "URL", "UTF8", "VM", "XML", "XMPP",
		"XSRF", "XSS",
	} {
		rules.AddAcronym(w)
	}
	return rules
}

// AddAcronym adds an initialism to the naming ruleset.
func AddAcronym(word string) {
	rules.AddAcronym(word)
}

// Singularize returns the singular form of the given name.
func Singularize(name string) string {
	return rules.Singularize(name)
}

// Pluralize returns the plural form of the given name.
func Pluralize(name string) string {
	return rules.Pluralize(name)
}

// CaseStyle selects the output convention of ToCase.
type CaseStyle int

// Case styles.
const (
	// CaseNone leaves the identifier unchanged.
	CaseNone CaseStyle = iota
	// CasePascal capitalizes the first letter of each syllable, lowercases
	// the rest, and concatenates without separators.
	CasePascal
	// CaseScreamingSnake uppercases every syllable and joins with "_".
	CaseScreamingSnake
)

// String returns the style name.
func (s CaseStyle) String() string {
	switch s {
	case CaseNone:
		return "none"
	case CasePascal:
		return "pascal"
	case CaseScreamingSnake:
		return "screaming-snake"
	}
	return fmt.Sprintf("CaseStyle(%d)", int(s))
}

// isSeparator reports whether the rune explicitly separates syllables.
func isSeparator(r rune) bool {
	return r == '-' || r == '_'
}

// syllableBoundary reports whether an implicit syllable boundary lies between
// prev and r: a lowercase-to-uppercase or digit-to-letter transition.
func syllableBoundary(prev, r rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(r):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(r):
		return true
	}
	return false
}

// Initials returns the lowercased first letters of the identifier's
// syllables: "UserStatus" gives "us". Delphi enum values conventionally
// carry the initials of their type name as a prefix.
func Initials(identifier string) string {
	var b strings.Builder
	for _, syllable := range SplitSyllables(identifier) {
		r, _ := utf8.DecodeRuneInString(syllable)
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// SplitSyllables splits an identifier into its case- and separator-delimited
// segments. Explicit separators ("-", "_") are dropped, implicit boundaries
// split between the runes, and empty segments are discarded:
//
//	SplitSyllables("MyTop5Names")  // ["My", "Top5", "Names"]
//	SplitSyllables("my-example_x") // ["my", "example", "x"]
func SplitSyllables(identifier string) []string {
	var (
		syllables []string
		current   []rune
	)
	flush := func() {
		if len(current) > 0 {
			syllables = append(syllables, string(current))
			current = current[:0]
		}
	}
	runes := []rune(identifier)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}
		if i > 0 && syllableBoundary(runes[i-1], r) {
			flush()
		}
		current = append(current, r)
	}
	flush()
	return syllables
}

// ToCase converts an identifier to the given case style, using
// SplitSyllables as the unit of conversion. An unrecognized style is a
// programming error and panics with a scriba.UnknownCaseStyleError.
func ToCase(identifier string, style CaseStyle) string {
	switch style {
	case CaseNone:
		return identifier
	case CasePascal:
		var b strings.Builder
		title := cases.Title(language.Und)
		for _, syllable := range SplitSyllables(identifier) {
			b.WriteString(title.String(syllable))
		}
		return b.String()
	case CaseScreamingSnake:
		syllables := SplitSyllables(identifier)
		upper := cases.Upper(language.Und)
		for i, syllable := range syllables {
			syllables[i] = upper.String(syllable)
		}
		return strings.Join(syllables, "_")
	}
	panic(scriba.NewUnknownCaseStyleError(style.String()))
}

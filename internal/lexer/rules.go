package lexer

import "github.com/coregx/coregex"

// Regex rules for keywords, identifiers and integers. Every pattern is
// anchored and runs only on the candidate lexeme cut out by wordRun or
// intRun, so a failed match never looks past the current token.
var (
	keywordRule = coregex.MustCompile(`^(?:var|void|if|else|return)`)
	identRule   = coregex.MustCompile(`^[$_a-zA-Z][$_a-zA-Z0-9]*`)
	intRule     = coregex.MustCompile(`^-?[0-9]+`)

	// intLiteral matches a whole lexeme that reads as an integer.
	intLiteral = coregex.MustCompile(`^-?[0-9]+$`)
)

// matchRule returns the length of the rule's match at the start of s,
// or 0 if the rule does not match.
func matchRule(re *coregex.Regexp, s string) int {
	loc := re.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return 0
	}
	return loc[1]
}

// matchKeyword matches a keyword as a whole word within a word run. The
// trailing boundary follows regex \b: letters, digits and '_' continue a
// word, '$' does not.
func matchKeyword(run string) int {
	n := matchRule(keywordRule, run)
	if n == 0 || (n < len(run) && isWordChar(run[n])) {
		return 0
	}
	return n
}

// wordRun returns the leading run of identifier characters of s when s
// starts with a character that can begin an identifier.
func wordRun(s string) string {
	if len(s) == 0 || !isIdentStart(s[0]) {
		return ""
	}
	n := 1
	for n < len(s) && (isWordChar(s[n]) || s[n] == '$') {
		n++
	}
	return s[:n]
}

// intRun returns the leading digits of s, with an optional '-' in front.
func intRun(s string) string {
	n := 0
	if n < len(s) && s[n] == '-' {
		n++
	}
	start := n
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	if n == start {
		return ""
	}
	return s[:n]
}

// IsIntLiteral reports whether text is an optional '-' followed by digits.
func IsIntLiteral(text string) bool {
	return intLiteral.MatchString(text)
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '$'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isWordChar(ch byte) bool {
	return (isIdentStart(ch) && ch != '$') || isDigit(ch)
}

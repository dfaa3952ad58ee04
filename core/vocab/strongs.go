package vocab

import (
	"regexp"
	"strings"
)

// StrongsID matches ^[HG]\d+[a-f]?$ (§3). The optional trailing letter is a
// homograph disambiguator; Base strips it.
type StrongsID string

var strongsIDRegex = regexp.MustCompile(`^[HG][0-9]+[a-fA-F]?$`)

// ParseStrongsID normalizes s (uppercase letter + digits + lowercase
// suffix) and reports whether it is well-formed.
func ParseStrongsID(s string) (StrongsID, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if !strongsIDRegex.MatchString(s) {
		return "", false
	}
	letter := strings.ToUpper(s[:1])
	rest := s[1:]
	suffix := ""
	if n := len(rest); n > 0 {
		last := rest[n-1]
		if last >= 'a' && last <= 'z' || last >= 'A' && last <= 'Z' {
			suffix = strings.ToLower(string(last))
			rest = rest[:n-1]
		}
	}
	return StrongsID(letter + rest + suffix), true
}

// Base strips the trailing homograph letter, if any.
func (s StrongsID) Base() StrongsID {
	str := string(s)
	if n := len(str); n > 0 {
		last := str[n-1]
		if last >= 'a' && last <= 'z' {
			return StrongsID(str[:n-1])
		}
	}
	return s
}

// IsHebrew reports whether the id's language letter is H.
func (s StrongsID) IsHebrew() bool { return strings.HasPrefix(string(s), "H") }

// IsGreek reports whether the id's language letter is G.
func (s StrongsID) IsGreek() bool { return strings.HasPrefix(string(s), "G") }

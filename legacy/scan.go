package legacy

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// mask returns a copy of src of the same byte length in which the contents of
// string literals and comments are blanked out. Quote characters are kept.
// All structural searches run on the masked text; values are read from src at
// the same offsets.
func mask(src string) string {
	out := []byte(src)
	for i := 0; i < len(out); i++ {
		switch c := src[i]; {
		case c == '\'' || c == '"' || c == '`':
			j := i + 1
			for j < len(src) && src[j] != c {
				if src[j] == '\\' && j+1 < len(src) {
					out[j] = ' '
					j++
				}
				if src[j] != '\n' {
					out[j] = ' '
				}
				j++
			}
			i = j
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				out[i] = ' '
				i++
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			stop := len(src)
			if end >= 0 {
				stop = i + 2 + end + 2
			}
			for ; i < stop; i++ {
				if src[i] != '\n' {
					out[i] = ' '
				}
			}
			i--
		}
	}
	return string(out)
}

// matchClose returns the index of the bracket closing the one at open, or -1.
// Braces and square brackets share one depth counter.
func matchClose(masked string, open int) int {
	depth := 0
	for i := open; i < len(masked); i++ {
		switch masked[i] {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// depthAt returns the bracket depth at pos, counted from the start of masked.
func depthAt(masked string, pos int) int {
	depth := 0
	for i := 0; i < pos && i < len(masked); i++ {
		switch masked[i] {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
		}
	}
	return depth
}

// span is a bracket-delimited region of a source file together with its mask.
type span struct {
	src    string
	masked string
}

func newSpan(src string) span {
	return span{src: src, masked: mask(src)}
}

func (s span) slice(from, to int) span {
	return span{src: s.src[from:to], masked: s.masked[from:to]}
}

// objects finds every top-most object literal whose opening matches lead and
// returns them including their braces. Objects nested in an earlier match are
// skipped. An unbalanced object ends the scan and is reported through bad.
func (s span) objects(lead *regexp.Regexp) (objs []span, bad int) {
	end := 0
	for _, loc := range lead.FindAllStringIndex(s.masked, -1) {
		if loc[0] < end {
			continue
		}
		closeAt := matchClose(s.masked, loc[0])
		if closeAt < 0 {
			return objs, loc[0]
		}
		objs = append(objs, s.slice(loc[0], closeAt+1))
		end = closeAt + 1
	}
	return objs, -1
}

var (
	keyPatternsMu sync.Mutex
	keyPatterns   = map[string]*regexp.Regexp{}
)

func keyPattern(key string) *regexp.Regexp {
	keyPatternsMu.Lock()
	defer keyPatternsMu.Unlock()
	if re, ok := keyPatterns[key]; ok {
		return re
	}
	re := regexp.MustCompile(`(?:^|[\s,{])` + regexp.QuoteMeta(key) + `\s*:\s*`)
	keyPatterns[key] = re
	return re
}

// valueStart returns the offset just after "key:" at depth one of the object.
func (s span) valueStart(key string) (int, bool) {
	for _, loc := range keyPattern(key).FindAllStringIndex(s.masked, -1) {
		if depthAt(s.masked, loc[0]+1) == 1 {
			return loc[1], true
		}
	}
	return 0, false
}

var (
	stringValue = regexp.MustCompile(`^(?:'((?:[^'\\]|\\.)*)'|"((?:[^"\\]|\\.)*)"|` + "`([^`]*)`)")
	intValue    = regexp.MustCompile(`^-?\d+`)
	boolValue   = regexp.MustCompile(`^(true|false)\b`)
	quoted      = regexp.MustCompile(`'((?:[^'\\]|\\.)*)'|"((?:[^"\\]|\\.)*)"`)
)

var unescaper = strings.NewReplacer(`\'`, `'`, `\"`, `"`, `\\`, `\`, `\n`, "\n", `\t`, "\t")

func firstGroup(m []string) string {
	for _, g := range m[1:] {
		if g != "" {
			return unescaper.Replace(g)
		}
	}
	return ""
}

// fieldState describes the outcome of reading one field.
type fieldState int

const (
	fieldAbsent fieldState = iota
	fieldOK
	fieldInvalid
)

func (s span) stringField(key string) (string, fieldState) {
	at, ok := s.valueStart(key)
	if !ok {
		return "", fieldAbsent
	}
	m := stringValue.FindStringSubmatch(s.src[at:])
	if m == nil {
		return "", fieldInvalid
	}
	return firstGroup(m), fieldOK
}

// intField follows parseInt: the leading integer of the literal is used.
func (s span) intField(key string) (int, fieldState) {
	at, ok := s.valueStart(key)
	if !ok {
		return 0, fieldAbsent
	}
	m := intValue.FindString(s.src[at:])
	if m == "" {
		return 0, fieldInvalid
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, fieldInvalid
	}
	return n, fieldOK
}

func (s span) boolField(key string) (bool, fieldState) {
	at, ok := s.valueStart(key)
	if !ok {
		return false, fieldAbsent
	}
	m := boolValue.FindString(s.src[at:])
	if m == "" {
		return false, fieldInvalid
	}
	return m == "true", fieldOK
}

// arrayField returns the body of "key: [ ... ]" without the brackets.
func (s span) arrayField(key string) (span, fieldState) {
	at, ok := s.valueStart(key)
	if !ok {
		return span{}, fieldAbsent
	}
	if at >= len(s.masked) || s.masked[at] != '[' {
		return span{}, fieldInvalid
	}
	closeAt := matchClose(s.masked, at)
	if closeAt < 0 {
		return span{}, fieldInvalid
	}
	return s.slice(at+1, closeAt), fieldOK
}

func (s span) stringList(key string) ([]string, fieldState) {
	body, state := s.arrayField(key)
	if state != fieldOK {
		return nil, state
	}
	var out []string
	for _, m := range quoted.FindAllStringSubmatch(body.src, -1) {
		out = append(out, firstGroup(m))
	}
	return out, fieldOK
}

package markup

import "strings"

// Escape replaces the five reserved markup characters with their named
// entities. The input is scanned in a single left-to-right pass and produced
// output is never rescanned, so text that already contains entities is not
// double-escaped beyond its literal ampersands.
func Escape(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&apos;")
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// Unescape converts the five named entities back to their literal
// characters. On '&' the scanner consumes characters up to and including the
// next ';' as a candidate entity name. A name that is not one of the five
// known entities yields a single literal '&' and the consumed characters are
// dropped. This fallback is lossy: Unescape round-trips output of Escape,
// but not arbitrary text containing a stray '&' followed by a later ';'.
func Unescape(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if rs[i] != '&' {
			buf.WriteRune(rs[i])
			continue
		}
		j := i + 1
		for j < len(rs) && rs[j] != ';' {
			j++
		}
		switch string(rs[i+1 : j]) {
		case "quot":
			buf.WriteByte('"')
		case "apos":
			buf.WriteByte('\'')
		case "amp":
			buf.WriteByte('&')
		case "lt":
			buf.WriteByte('<')
		case "gt":
			buf.WriteByte('>')
		default:
			buf.WriteByte('&')
		}
		i = j
	}

	return buf.String()
}

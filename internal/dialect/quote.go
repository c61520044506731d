package dialect

import "strings"

// NeedsQuoting reports whether ident cannot appear bare in SQL for any
// dialect: it is empty, starts with something other than a letter or
// underscore, contains a character outside [A-Za-z0-9_], or collides
// with a reserved keyword.
func NeedsQuoting(ident string) bool {
	if ident == "" {
		return true
	}
	for i := 0; i < len(ident); i++ {
		c := ident[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return true
			}
		default:
			return true
		}
	}
	return IsReservedWord(ident)
}

// quoteSegment wraps one identifier segment in d's quote characters,
// doubling any embedded close-quote character.
func quoteSegment(d Dialect, seg string) string {
	c := Cap(d)
	open, end := string(c.QuoteChar), string(c.CloseQuote)
	escaped := strings.ReplaceAll(seg, end, end+end)
	return open + escaped + end
}

// Quote renders ident for dialect d, quoting only when required. A
// qualified name is split on '.' and each segment is decided on its own,
// so schema.table quotes just the segments that need it.
func Quote(d Dialect, ident string) string {
	if !strings.Contains(ident, ".") {
		if NeedsQuoting(ident) {
			return quoteSegment(d, ident)
		}
		return ident
	}
	segs := strings.Split(ident, ".")
	for i, seg := range segs {
		if NeedsQuoting(seg) {
			segs[i] = quoteSegment(d, seg)
		}
	}
	return strings.Join(segs, ".")
}

// QuoteQualified renders schema.name, omitting the schema part when it
// is empty.
func QuoteQualified(d Dialect, schema, name string) string {
	if schema == "" {
		return Quote(d, name)
	}
	return Quote(d, schema) + "." + Quote(d, name)
}

// QuoteLiteral renders s as a single-quoted SQL string literal, doubling
// embedded single quotes.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

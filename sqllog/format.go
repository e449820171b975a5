package sqllog

import "strings"

// Clauses that start a new line in formatted output.
var clauseKeywords = []string{
	"FROM", "WHERE", "GROUP BY", "HAVING", "ORDER BY", "LIMIT", "OFFSET",
	"LEFT JOIN", "RIGHT JOIN", "INNER JOIN", "JOIN", "ON", "SET", "VALUES",
	"AND", "OR",
}

// Format normalizes whitespace in a SQL statement and breaks it across
// lines at clause boundaries. It is a display helper, not a parser: string
// literals containing keywords may be split too.
func Format(query string) string {
	compact := strings.Join(strings.Fields(query), " ")
	if compact == "" {
		return ""
	}
	var b strings.Builder
	words := strings.Split(compact, " ")
	for i := 0; i < len(words); i++ {
		keyword, span := matchClause(words, i)
		switch {
		case keyword != "":
			if b.Len() > 0 {
				b.WriteString("\n    ")
			}
			b.WriteString(keyword)
			i += span - 1
		case b.Len() == 0:
			b.WriteString(words[i])
		default:
			b.WriteByte(' ')
			b.WriteString(words[i])
		}
	}
	return b.String()
}

// matchClause reports the clause keyword starting at words[i] and how many
// words it spans, or "" if none matches.
func matchClause(words []string, i int) (string, int) {
	for _, kw := range clauseKeywords {
		parts := strings.Split(kw, " ")
		if i+len(parts) > len(words) {
			continue
		}
		matched := true
		for j, p := range parts {
			if !strings.EqualFold(words[i+j], p) {
				matched = false
				break
			}
		}
		if matched {
			return kw, len(parts)
		}
	}
	return "", 0
}

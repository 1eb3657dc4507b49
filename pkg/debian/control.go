package debian

import "strings"

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Parse converts the text of a Debian-style package index into
// a Table.
//
// Stanzas are separated by blank (or whitespace-only) lines and
// each line of a stanza is split on its first colon. Lines without
// a colon are ignored, so continuation lines never extend the value
// of the previous field. Within a stanza the last occurrence of a
// key wins, and across stanzas the last occurrence of a package
// name wins. Stanzas without a Package field are dropped.
// Lines may end in "\n", "\r\n" or a lone "\r".
func Parse(text string) Table {
	out := Table{}
	current := Record{}

	flush := func() {
		if name := current[FieldPackage]; name != "" {
			out[name] = current
		}
		current = Record{}
	}

	for _, line := range strings.Split(lineEndings.Replace(text), "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		current[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	flush()

	return out
}

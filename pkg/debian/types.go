package debian

// Record holds the fields of a single stanza, keyed
// by field name exactly as written in the index.
type Record map[string]string

// Table maps a package name to its Record.
type Table map[string]Record

type Index struct {
	packages Table
	source   string
}

const (
	FieldPackage = "Package"
	FieldDepends = "Depends"
)

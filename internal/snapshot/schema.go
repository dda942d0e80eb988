package snapshot

// Schema DDL for the snapshot database. Values are stored in their
// canonical text representation; native byte encodings never leave the
// process.
const (
	createPropertyValues = `CREATE TABLE IF NOT EXISTS property_values (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createRevisions = `CREATE TABLE IF NOT EXISTS revisions (
    revision_id TEXT PRIMARY KEY,
    saved_at TEXT NOT NULL,
    value_count INTEGER NOT NULL
);`
)

// schemaDDL lists all statements executed on Open.
var schemaDDL = []string{
	createPropertyValues,
	createRevisions,
}

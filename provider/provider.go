package provider

import (
	"sort"
	"strings"

	"github.com/skillsenselab/enginekit/errors"
)

// ID is a canonical engine family identifier. It doubles as the on-disk
// directory segment under the artifact root.
type ID string

const (
	PostgreSQL ID = "postgresql"
	MySQL      ID = "mysql"
	SQLite     ID = "sqlite"
	SQLServer  ID = "sqlserver"
)

// aliases maps every accepted connector name onto its engine family.
// Keys are compared case-insensitively.
var aliases = map[string]ID{
	"postgresql":  PostgreSQL,
	"postgres":    PostgreSQL,
	"cockroachdb": PostgreSQL,
	"mysql":       MySQL,
	"mariadb":     MySQL,
	"sqlite":      SQLite,
	"sqlite3":     SQLite,
	"sqlserver":   SQLServer,
	"mssql":       SQLServer,
}

// Normalize maps a connector name onto its canonical engine family.
// Unknown names yield a CONFIGURATION error; no I/O is performed.
func Normalize(name string) (ID, error) {
	id, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", errors.Configuration(name)
	}
	return id, nil
}

// IsSupported reports whether name normalizes to a known family.
func IsSupported(name string) bool {
	_, err := Normalize(name)
	return err == nil
}

// Supported returns the canonical families in sorted order.
func Supported() []ID {
	return []ID{MySQL, PostgreSQL, SQLite, SQLServer}
}

// Aliases returns the sorted list of all accepted connector names.
func Aliases() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dir returns the on-disk directory segment for the family.
func (id ID) Dir() string { return string(id) }

// String returns the canonical name of the family.
func (id ID) String() string { return string(id) }

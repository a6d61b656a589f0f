//go:build cgo_sqlite

package sqlite

import (
	"net/url"

	_ "github.com/mattn/go-sqlite3"
)

const driverName = "sqlite3"

// dsn appends pragmas to path in the mattn/go-sqlite3 form
// "_name=value".
func dsn(path string, pragmas []pragma) string {
	q := url.Values{}
	for _, p := range pragmas {
		q.Add("_"+p.name, p.value)
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

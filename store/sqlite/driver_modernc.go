//go:build !cgo_sqlite

package sqlite

import (
	"net/url"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// dsn appends pragmas to path in the modernc.org/sqlite form
// "_pragma=name(value)".
func dsn(path string, pragmas []pragma) string {
	q := url.Values{}
	for _, p := range pragmas {
		q.Add("_pragma", p.name+"("+p.value+")")
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

package cache

import (
	"fmt"
	"strings"
	"time"

	"github.com/zeebo/xxh3"
	"github.com/zoobzio/wareql"
)

// Key derives the cache key for q. The namespace separates warehouses
// that would otherwise share rendered SQL, typically driver plus DSN.
func Key(namespace string, q *wareql.QueryResult) string {
	var b strings.Builder
	b.WriteString(namespace)
	b.WriteByte(0)
	b.WriteString(q.SQL)
	for _, arg := range q.Args {
		b.WriteByte(0)
		b.WriteString(argText(arg))
	}
	sum := xxh3.HashString128(b.String())
	return fmt.Sprintf("%016x%016x", sum.Hi, sum.Lo)
}

// argText includes the type so that 1 and "1" hash differently.
func argText(arg any) string {
	if t, ok := arg.(time.Time); ok {
		return "time.Time:" + t.UTC().Format(time.RFC3339Nano)
	}
	return fmt.Sprintf("%T:%v", arg, arg)
}

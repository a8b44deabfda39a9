package wareql_test

import (
	"strings"
	"testing"

	"github.com/zoobzio/wareql"
)

// TestSQLInjectionProtection verifies that identifiers are allow-listed and
// literals cannot break out of their quotes.
func TestSQLInjectionProtection(t *testing.T) {
	t.Run("Identifier injection attempts", func(t *testing.T) {
		injectionAttempts := []struct {
			name       string
			identifier string
		}{
			{"DROP TABLE", "email; DROP TABLE users; --"},
			{"Union injection", "id UNION SELECT * FROM passwords"},
			{"OR 1=1", "id OR 1=1"},
			{"Comment injection", "id/**/OR/**/1=1"},
			{"Backtick injection", "id` FROM users; --"},
			{"Quote injection", "id' OR '1'='1"},
			{"Double quote injection", `id" OR "1"="1`},
			{"Null byte injection", "id\x00"},
			{"Whitespace tricks", "id\nOR\n1=1"},
			{"Function injection", "id) OR SLEEP(10)--"},
		}

		for _, attempt := range injectionAttempts {
			t.Run(attempt.name, func(t *testing.T) {
				if _, err := wareql.TryF(attempt.identifier); err == nil {
					t.Errorf("TryF accepted %q", attempt.identifier)
				}
				if _, err := wareql.TryT("d", attempt.identifier); err == nil {
					t.Errorf("TryT accepted table %q", attempt.identifier)
				}
				if _, err := wareql.TryT(attempt.identifier, "t"); err == nil {
					t.Errorf("TryT accepted dataset %q", attempt.identifier)
				}
				if _, err := wareql.ColumnsQuery("d", attempt.identifier); err == nil {
					t.Errorf("ColumnsQuery accepted %q", attempt.identifier)
				}
			})
		}
	})

	t.Run("Bypassing constructors", func(t *testing.T) {
		spec := wareql.QuerySpec{
			Table:   wareql.Table{Dataset: "d", Name: "t"},
			Columns: []wareql.Column{{Name: "a FROM secrets --"}},
		}
		if _, err := wareql.BuildQuery(spec); err == nil {
			t.Error("BuildQuery accepted a raw injected column")
		}
	})

	t.Run("Literal escaping", func(t *testing.T) {
		payloads := []string{
			"' OR '1'='1",
			`\' OR 1=1 --`,
			"x'; DROP TABLE users; --",
			"line\nbreak",
		}

		for _, payload := range payloads {
			for _, name := range wareql.Dialects() {
				r, err := wareql.NewRenderer(name, false)
				if err != nil {
					t.Fatalf("NewRenderer(%s) error = %v", name, err)
				}
				spec := wareql.Select(wareql.T("d", "t")).
					Columns(wareql.F("a")).
					Where(wareql.C(wareql.F("a"), wareql.EQ, wareql.String(payload))).
					MustBuild()
				result, err := r.Render(spec)
				if err != nil {
					t.Fatalf("%s: Render() error = %v", name, err)
				}
				// The rendered literal must be the last token; nothing may follow it.
				if !strings.HasSuffix(result.SQL, "'") || strings.Count(result.SQL, " WHERE ") != 1 {
					t.Errorf("%s: suspicious SQL %q", name, result.SQL)
				}
			}
		}
	})
}

func TestSQLInjection_BigQueryEscaping(t *testing.T) {
	spec := wareql.Select(wareql.T("d", "t")).
		Columns(wareql.F("a")).
		Where(wareql.C(wareql.F("a"), wareql.EQ, wareql.String("x' OR '1'='1"))).
		MustBuild()

	expected := "SELECT a FROM `d.t` WHERE a = 'x\\' OR \\'1\\'=\\'1'"
	if got := wareql.MustBuildQuery(spec); got != expected {
		t.Errorf("SQL = %q, want %q", got, expected)
	}
}

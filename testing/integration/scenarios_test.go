package integration

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/zoobzio/wareql"
	"github.com/zoobzio/wareql/warehouse"
)

// Every warehouse is seeded with the same four stations:
//
//	1 KXAN TX 12.5 licensed   2020-03-01
//	2 WFAA TX 3.0  unlicensed 2021-07-09
//	3 KABC CA 8.25 licensed   2019-11-15
//	4 WNYC NY NULL licensed   2022-01-20
var stationColumns = []string{"station_id", "call_sign", "state", "power", "licensed", "granted"}

type scenario struct {
	name string
	spec func(t wareql.Table) wareql.QuerySpec
	want int
}

func scenarios() []scenario {
	return []scenario{
		{"all rows", func(t wareql.Table) wareql.QuerySpec {
			return wareql.Select(t).MustBuild()
		}, 4},
		{"string equality", func(t wareql.Table) wareql.QuerySpec {
			return wareql.Select(t).WhereField(wareql.F("state"), wareql.EQ, wareql.String("TX")).MustBuild()
		}, 2},
		{"not equal", func(t wareql.Table) wareql.QuerySpec {
			return wareql.Select(t).WhereField(wareql.F("state"), wareql.NE, wareql.String("TX")).MustBuild()
		}, 2},
		{"numeric comparison", func(t wareql.Table) wareql.QuerySpec {
			return wareql.Select(t).WhereField(wareql.F("power"), wareql.GT, wareql.Float(5)).MustBuild()
		}, 2},
		{"like substring", func(t wareql.Table) wareql.QuerySpec {
			return wareql.Select(t).Where(wareql.Like(wareql.F("call_sign"), "AB")).MustBuild()
		}, 1},
		{"is null", func(t wareql.Table) wareql.QuerySpec {
			return wareql.Select(t).Where(wareql.Null(wareql.F("power"))).MustBuild()
		}, 1},
		{"is not null", func(t wareql.Table) wareql.QuerySpec {
			return wareql.Select(t).Where(wareql.NotNull(wareql.F("power"))).MustBuild()
		}, 3},
		{"string in", func(t wareql.Table) wareql.QuerySpec {
			return wareql.Select(t).WhereField(wareql.F("state"), wareql.IN, wareql.Strings("TX", "CA")).MustBuild()
		}, 3},
		{"numeric in", func(t wareql.Table) wareql.QuerySpec {
			return wareql.Select(t).Where(wareql.In(wareql.F("station_id"), wareql.Int(1), wareql.Int(4))).MustBuild()
		}, 2},
		{"date between", func(t wareql.Table) wareql.QuerySpec {
			return wareql.Select(t).
				Where(wareql.Between(wareql.F("granted"), wareql.MustDate("2020-01-01"), wareql.MustDate("2021-12-31"))).
				MustBuild()
		}, 2},
		{"date comparison", func(t wareql.Table) wareql.QuerySpec {
			return wareql.Select(t).WhereField(wareql.F("granted"), wareql.GE, wareql.MustDate("2021-01-01")).MustBuild()
		}, 2},
		{"numeric between", func(t wareql.Table) wareql.QuerySpec {
			return wareql.Select(t).Where(wareql.Between(wareql.F("station_id"), wareql.Int(2), wareql.Int(3))).MustBuild()
		}, 2},
		{"boolean", func(t wareql.Table) wareql.QuerySpec {
			return wareql.Select(t).WhereField(wareql.F("licensed"), wareql.EQ, wareql.Bool(true)).MustBuild()
		}, 3},
		{"absent filter skipped", func(t wareql.Table) wareql.QuerySpec {
			return wareql.Select(t).WhereField(wareql.F("state"), wareql.EQ, wareql.Absent()).MustBuild()
		}, 4},
		{"filters combined with and", func(t wareql.Table) wareql.QuerySpec {
			return wareql.Select(t).
				WhereField(wareql.F("state"), wareql.EQ, wareql.String("TX")).
				WhereField(wareql.F("licensed"), wareql.EQ, wareql.Bool(true)).
				MustBuild()
		}, 1},
		{"limit", func(t wareql.Table) wareql.QuerySpec {
			return wareql.Select(t).Limit(2).MustBuild()
		}, 2},
		{"distinct", func(t wareql.Table) wareql.QuerySpec {
			return wareql.Select(t).Columns(wareql.F("state")).Distinct().MustBuild()
		}, 3},
	}
}

func openClient(t *testing.T, driver, dsn string) *warehouse.Client {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := warehouse.Open(ctx, warehouse.Config{Driver: driver, DSN: dsn, Timeout: 30 * time.Second}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to open %s warehouse: %v", driver, err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func exec(t *testing.T, client *warehouse.Client, statements ...string) {
	t.Helper()
	for _, stmt := range statements {
		if _, err := client.DB().Exec(stmt); err != nil {
			t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, stmt)
		}
	}
}

// runScenarios renders every scenario inline and parameterized and checks
// both forms return the expected number of rows.
func runScenarios(t *testing.T, client *warehouse.Client, table wareql.Table) {
	t.Helper()

	inline, err := client.Renderer(false)
	if err != nil {
		t.Fatalf("Renderer() error = %v", err)
	}
	params, err := client.Renderer(true)
	if err != nil {
		t.Fatalf("Renderer(true) error = %v", err)
	}

	for _, sc := range scenarios() {
		t.Run(sc.name, func(t *testing.T) {
			spec := sc.spec(table)
			for _, r := range []wareql.Renderer{inline, params} {
				q, err := r.Render(spec)
				if err != nil {
					t.Fatalf("Render() error = %v", err)
				}
				rs, err := client.Query(context.Background(), q)
				if err != nil {
					t.Fatalf("Query() error = %v\nSQL: %s", err, q.SQL)
				}
				if rs.Len() != sc.want {
					t.Errorf("rows = %d, want %d\nSQL: %s\nArgs: %v", rs.Len(), sc.want, q.SQL, q.Args)
				}
			}
		})
	}
}

// checkDescribe verifies introspection and schema-validated building.
func checkDescribe(t *testing.T, client *warehouse.Client, table wareql.Table) {
	t.Helper()
	ctx := context.Background()

	columns, err := client.Describe(ctx, table)
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
		if c.Type == "" {
			t.Errorf("column %s has no type", c.Name)
		}
	}
	sort.Strings(names)
	want := append([]string(nil), stationColumns...)
	sort.Strings(want)
	if len(names) != len(want) {
		t.Fatalf("columns = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("columns = %v, want %v", names, want)
		}
	}

	project, err := client.DescribeSchema(ctx, "warehouse", table)
	if err != nil {
		t.Fatalf("DescribeSchema() error = %v", err)
	}
	schema, err := wareql.NewFromDBML(project)
	if err != nil {
		t.Fatalf("NewFromDBML() error = %v", err)
	}

	ok := wareql.Select(table).Columns(schema.F("call_sign")).
		Where(schema.C(schema.F("state"), wareql.EQ, wareql.String("TX"))).
		MustBuild()
	if err := schema.Validate(ok); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	bad := wareql.Select(table).Columns(wareql.F("frequency")).MustBuild()
	if err := schema.Validate(bad); err == nil {
		t.Error("Validate() accepted an unknown column")
	}
}

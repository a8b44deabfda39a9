package cli

import (
	"bytes"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/wareql/warehouse"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("WAREQL_CONFIG", "")

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-level", "disabled"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func seedSQLite(t *testing.T) (string, *sql.DB) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stations.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		CREATE TABLE stations (id INTEGER, call_sign TEXT, state TEXT);
		INSERT INTO stations VALUES (1, 'KXAN', 'TX'), (2, 'WFAA', 'TX'), (3, 'KABC', 'CA');
	`)
	require.NoError(t, err)
	return path, db
}

func TestRender_Flags(t *testing.T) {
	out, err := execute(t, "render",
		"--dataset", "bigquery-public-data.fcc_political_ads",
		"--table", "broadcast_tv_radio_station",
		"--columns", "station_id, call_sign",
		"--filter", `{column: community_state, op: "=", value: TX}`,
		"--limit", "10",
	)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT station_id, call_sign FROM `bigquery-public-data.fcc_political_ads.broadcast_tv_radio_station` "+
			"WHERE community_state = 'TX' LIMIT 10\n",
		out)
}

func TestRender_Params(t *testing.T) {
	out, err := execute(t, "render", "--dialect", "pg", "--params",
		"--dataset", "sales", "--table", "orders", "--columns", "id",
		"--filter", `{column: status, op: in, value: [paid, shipped]}`,
	)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id FROM \"sales\".\"orders\" WHERE status IN ($1, $2)\n"+
			"-- arg 1: paid (string)\n"+
			"-- arg 2: shipped (string)\n",
		out)
}

func TestRender_FileWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dataset: d
table: t
columns: [a, b]
limit: 100
filters:
  - {column: n, op: ">", value: 5}
`), 0o600))

	out, err := execute(t, "render", "-f", path, "--limit", "3", "--distinct",
		"--filter", `{column: s, value: "5"}`)
	require.NoError(t, err)
	assert.Equal(t, "SELECT DISTINCT a, b FROM `d.t` WHERE n > 5 AND s = '5' LIMIT 3\n", out)
}

func TestRender_Errors(t *testing.T) {
	tests := map[string][]string{
		"missing table":   {"render", "--dataset", "d"},
		"bad filter":      {"render", "--dataset", "d", "--table", "t", "--filter", `{column: a, op: "<>>", value: 1}`},
		"bad limit":       {"render", "--dataset", "d", "--table", "t", "--limit", "0"},
		"unknown dialect": {"render", "--dataset", "d", "--table", "t", "--dialect", "oracle"},
		"missing file":    {"render", "-f", "/nonexistent/query.yaml"},
		"injection":       {"render", "--dataset", "d", "--table", "t; DROP TABLE t"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestColumns_Query(t *testing.T) {
	out, err := execute(t, "columns", "bigquery-public-data.fcc_political_ads", "broadcast_tv_radio_station")
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT column_name, data_type FROM `bigquery-public-data.fcc_political_ads.INFORMATION_SCHEMA.COLUMNS` "+
			"WHERE table_name = 'broadcast_tv_radio_station'\n",
		out)
}

func TestColumns_Exec(t *testing.T) {
	path, _ := seedSQLite(t)

	out, err := execute(t, "--driver", "sqlite", "--dsn", path, "columns", "main", "stations", "--exec")
	require.NoError(t, err)
	assert.Contains(t, out, "COLUMN")
	assert.Regexp(t, `call_sign\s+TEXT`, out)
	assert.Regexp(t, `id\s+INTEGER`, out)
	assert.Contains(t, out, "(3 columns)")
}

func TestRun_PrintsTable(t *testing.T) {
	path, _ := seedSQLite(t)

	out, err := execute(t, "--driver", "sqlite", "--dsn", path, "run",
		"--dataset", "main", "--table", "stations", "--columns", "id, call_sign",
		"--filter", `{column: state, value: TX}`,
	)
	require.NoError(t, err)
	assert.Contains(t, out, `SELECT id, call_sign FROM "main"."stations" WHERE state = 'TX'`)
	assert.Regexp(t, `1\s+KXAN`, out)
	assert.Regexp(t, `2\s+WFAA`, out)
	assert.NotContains(t, out, "KABC")
	assert.Contains(t, out, "Fetched 2 rows")
}

func TestRun_Export(t *testing.T) {
	path, _ := seedSQLite(t)
	csvPath := filepath.Join(t.TempDir(), "stations.csv")

	out, err := execute(t, "--driver", "sqlite", "--dsn", path, "run",
		"--dataset", "main", "--table", "stations", "--columns", "call_sign",
		"--out", csvPath,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved "+csvPath)
	assert.Contains(t, out, "Fetched 3 rows")

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, "call_sign\nKXAN\nWFAA\nKABC\n", string(data))
}

func TestRun_QueryError(t *testing.T) {
	path, _ := seedSQLite(t)

	_, err := execute(t, "--driver", "sqlite", "--dsn", path, "run",
		"--dataset", "main", "--table", "missing_table")
	assert.Error(t, err)
}

func TestRun_RedisCache(t *testing.T) {
	path, db := seedSQLite(t)
	mr := miniredis.RunT(t)
	t.Setenv("WAREQL_REDIS_ADDR", mr.Addr())

	args := []string{"--driver", "sqlite", "--dsn", path, "--cache", "redis", "run",
		"--dataset", "main", "--table", "stations", "--columns", "call_sign"}

	out, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Fetched 3 rows")
	assert.Len(t, mr.Keys(), 1)

	_, err = db.Exec(`DELETE FROM stations WHERE state = 'TX'`)
	require.NoError(t, err)

	out, err = execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Fetched 3 rows")

	out, err = execute(t, append(args, "--refresh")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Fetched 1 rows")

	out, err = execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Fetched 1 rows")
}

func TestRun_UnreachableCacheFallsBack(t *testing.T) {
	path, _ := seedSQLite(t)
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	t.Setenv("WAREQL_REDIS_ADDR", addr)

	out, err := execute(t, "--driver", "sqlite", "--dsn", path, "--cache", "redis", "run",
		"--dataset", "main", "--table", "stations")
	require.NoError(t, err)
	assert.Contains(t, out, "Fetched 3 rows")
}

func TestRun_MemoryCache(t *testing.T) {
	path, _ := seedSQLite(t)

	out, err := execute(t, "--driver", "sqlite", "--dsn", path, "--cache", "memory", "run",
		"--dataset", "main", "--table", "stations", "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Fetched 2 rows")
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printTable(&buf, sampleResultSet()))
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Regexp(t, `^call_sign\s+power$`, string(lines[0]))
	assert.Regexp(t, `^---\s+---$`, string(lines[1]))
	assert.Regexp(t, `^WFAA\s+NULL$`, string(lines[3]))
}

func sampleResultSet() *warehouse.ResultSet {
	return &warehouse.ResultSet{
		Columns: []string{"call_sign", "power"},
		Rows:    [][]any{{"KXAN", 12.5}, {"WFAA", nil}},
	}
}

// Package testing provides test utilities for wareql.
package testing

import (
	"reflect"
	"strings"
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/wareql"
)

// TestDataset is the dataset TestSchema tables live in.
const TestDataset = "bigquery-public-data.fcc_political_ads"

// TestSchema creates a Schema modelled on the FCC political ads dataset.
// Includes broadcast_tv_radio_station, advertiser and ad_spend tables.
func TestSchema(t *testing.T) *wareql.Schema {
	t.Helper()

	project := dbml.NewProject("fcc_political_ads")

	stations := dbml.NewTable("broadcast_tv_radio_station")
	stations.AddColumn(dbml.NewColumn("station_id", "STRING"))
	stations.AddColumn(dbml.NewColumn("facility_id", "STRING"))
	stations.AddColumn(dbml.NewColumn("call_sign", "STRING"))
	stations.AddColumn(dbml.NewColumn("community_city", "STRING"))
	stations.AddColumn(dbml.NewColumn("community_state", "STRING"))
	stations.AddColumn(dbml.NewColumn("service", "STRING"))
	project.AddTable(stations)

	advertisers := dbml.NewTable("advertiser")
	advertisers.AddColumn(dbml.NewColumn("advertiser_id", "STRING"))
	advertisers.AddColumn(dbml.NewColumn("name", "STRING"))
	advertisers.AddColumn(dbml.NewColumn("is_political", "BOOL"))
	project.AddTable(advertisers)

	spend := dbml.NewTable("ad_spend")
	spend.AddColumn(dbml.NewColumn("advertiser_id", "STRING"))
	spend.AddColumn(dbml.NewColumn("station_id", "STRING"))
	spend.AddColumn(dbml.NewColumn("amount", "FLOAT64"))
	spend.AddColumn(dbml.NewColumn("flight_date", "DATE"))
	project.AddTable(spend)

	schema, err := wareql.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}
	return schema
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertArgs checks that bound arguments match expected values in order.
func AssertArgs(t *testing.T, expected, actual []any) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Errorf("Arg count mismatch: expected %d, got %d\nExpected: %v\nActual: %v",
			len(expected), len(actual), expected, actual)
		return
	}
	for i := range expected {
		if !reflect.DeepEqual(expected[i], actual[i]) {
			t.Errorf("Arg %d mismatch: expected %v (%T), got %v (%T)", i, expected[i], expected[i], actual[i], actual[i])
		}
	}
}

// AssertRendered renders spec with r and compares SQL and arguments.
func AssertRendered(t *testing.T, r wareql.Renderer, spec wareql.QuerySpec, expectedSQL string, expectedArgs ...any) {
	t.Helper()
	result, err := r.Render(spec)
	if err != nil {
		t.Fatalf("%s: Render() error = %v", r.Name(), err)
	}
	AssertSQL(t, expectedSQL, result.SQL)
	if len(expectedArgs) > 0 || len(result.Args) > 0 {
		AssertArgs(t, expectedArgs, result.Args)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertPanics verifies that a function panics.
func AssertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic but function completed normally")
		}
	}()
	fn()
}

// AssertPanicsWithMessage verifies that a function panics with a specific message.
func AssertPanicsWithMessage(t *testing.T, fn func(), substr string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("Expected panic containing %q but function completed normally", substr)
			return
		}
		var msg string
		switch v := r.(type) {
		case error:
			msg = v.Error()
		case string:
			msg = v
		default:
			t.Errorf("Panic value is not string or error: %T", r)
			return
		}
		if !strings.Contains(msg, substr) {
			t.Errorf("Expected panic containing %q, got: %s", substr, msg)
		}
	}()
	fn()
}

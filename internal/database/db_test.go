package database

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseURL(t *testing.T) {
	cases := []struct {
		in         string
		wantDriver string
		wantDSN    string
		wantErr    bool
	}{
		{in: "postgres://u:p@localhost:5432/reviews?sslmode=disable", wantDriver: DriverPostgres, wantDSN: "postgres://u:p@localhost:5432/reviews?sslmode=disable"},
		{in: "host=localhost dbname=reviews", wantDriver: DriverPostgres, wantDSN: "host=localhost dbname=reviews"},
		{in: "sqlite://data/reviews.db", wantDriver: DriverSQLite, wantDSN: "data/reviews.db"},
		{in: "sqlite://:memory:", wantDriver: DriverSQLite, wantDSN: ":memory:"},
		{in: "sqlite://", wantErr: true},
		{in: "   ", wantErr: true},
	}

	for _, tc := range cases {
		driver, dsn, err := ParseURL(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseURL(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseURL(%q): %v", tc.in, err)
			continue
		}
		if driver != tc.wantDriver || dsn != tc.wantDSN {
			t.Errorf("ParseURL(%q) = %q, %q; want %q, %q", tc.in, driver, dsn, tc.wantDriver, tc.wantDSN)
		}
	}
}

func TestOpenSQLiteMigrates(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, "sqlite://:memory:", discardLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	var n int
	if err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM reviews`); err != nil {
		t.Fatalf("reviews table missing: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected empty table, got %d rows", n)
	}

	// Running again is a no-op.
	if err := Migrate(db.DB, DriverSQLite, discardLogger()); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestSchemaRejectsInvalidTone(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, "sqlite://:memory:", discardLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	_, err = db.ExecContext(ctx,
		`INSERT INTO reviews (original_text, response_text, tone) VALUES (?, ?, ?)`,
		"Bad food", "Sorry to hear that.", "Sarcastic")
	if err == nil {
		t.Fatalf("expected check constraint violation")
	}
}

func TestMigrateUnknownDriver(t *testing.T) {
	if err := Migrate(nil, "mysql", discardLogger()); err == nil {
		t.Fatalf("expected error")
	}
}

package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/domain"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/geo"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/sqlinline"
)

// simpleRow adapts a scan closure into a pgx.Row.
type simpleRow struct {
	scan func(dest ...any) error
}

func (r simpleRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

// testSQL routes QueryRow/Query to per-test closures and records the query
// constants it was called with.
type testSQL struct {
	queryRow func(query string, args []any) pgx.Row
	query    func(query string, args []any) (pgx.Rows, error)
	queries  []string
}

func (s *testSQL) Exec(_ context.Context, query string, _ ...any) (pgconn.CommandTag, error) {
	s.queries = append(s.queries, query)
	return pgconn.CommandTag{}, nil
}

func (s *testSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	s.queries = append(s.queries, query)
	if s.queryRow == nil {
		return simpleRow{}
	}
	return s.queryRow(query, args)
}

func (s *testSQL) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	s.queries = append(s.queries, query)
	if s.query == nil {
		return nil, errors.New("query not stubbed")
	}
	return s.query(query, args)
}

type rowsBase struct{}

func (rowsBase) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (rowsBase) Conn() *pgx.Conn { return nil }

func (rowsBase) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (rowsBase) Values() ([]any, error) { return nil, fmt.Errorf("values not supported in test rows") }

func (rowsBase) RawValues() [][]byte { return nil }

func TestUserRepositoryGetByIDMapsLegacyColumns(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	lat, lng := -33.87, 151.21
	wrapLng := 330.0
	sub := "active"

	sql := &testSQL{queryRow: func(query string, args []any) pgx.Row {
		if query != sqlinline.QSelectUserByID {
			t.Fatalf("unexpected query: %s", query)
		}
		if len(args) != 1 || args[0] != "user-1" {
			t.Fatalf("unexpected args: %v", args)
		}
		return simpleRow{scan: func(dest ...any) error {
			if len(dest) != 21 {
				return fmt.Errorf("unexpected scan args: %d", len(dest))
			}
			*dest[0].(*string) = "user-1"
			*dest[1].(*string) = "a@example.com"
			*dest[2].(*string) = "Alice"
			*dest[7].(*string) = "user"
			*dest[9].(*string) = sub
			*dest[13].(**float64) = &lat
			*dest[14].(**float64) = &wrapLng
			*dest[15].(**float64) = &lat
			*dest[16].(**float64) = &lng
			*dest[19].(*time.Time) = createdAt
			*dest[20].(*time.Time) = createdAt
			return nil
		}}
	}}

	user, err := NewUserRepository(sql).GetByID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if user.ID != "user-1" || user.Name != "Alice" {
		t.Fatalf("user = %+v", user)
	}
	if user.TierSignal.SubscriptionStatus != "active" {
		t.Fatalf("subscription status = %q", user.TierSignal.SubscriptionStatus)
	}
	if user.Location == nil || user.Location.Lng != -30 {
		t.Fatalf("stored longitude 330 should clamp to -30, got %+v", user.Location)
	}
	if user.SearchFrom != nil {
		t.Fatalf("search-from should be nil, got %+v", user.SearchFrom)
	}
}

func TestUserRepositoryGetByIDNotFound(t *testing.T) {
	sql := &testSQL{}
	_, err := NewUserRepository(sql).GetByID(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want domain.ErrNotFound", err)
	}
}

type candidateRows struct {
	rowsBase
	scans []func(dest ...any) error
	err   error
	idx   int
}

func (r *candidateRows) Next() bool {
	if r.idx >= len(r.scans) {
		return false
	}
	r.idx++
	return true
}

func (r *candidateRows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.scans) {
		return pgx.ErrNoRows
	}
	return r.scans[r.idx-1](dest...)
}

func (r *candidateRows) Err() error { return r.err }

func (r *candidateRows) Close() {}

func candidateScan(id string, lat, lng float64) func(dest ...any) error {
	return func(dest ...any) error {
		if len(dest) != 16 {
			return fmt.Errorf("unexpected scan args: %d", len(dest))
		}
		*dest[0].(*string) = id
		*dest[8].(*string) = "plumber"
		la, ln := lat, lng
		*dest[11].(**float64) = &la
		*dest[12].(**float64) = &ln
		return nil
	}
}

func TestProfileRepositoryCandidatesInBox(t *testing.T) {
	sql := &testSQL{query: func(query string, args []any) (pgx.Rows, error) {
		if query != sqlinline.QCandidatesInBox {
			t.Fatalf("unexpected query: %s", query)
		}
		if len(args) != 5 {
			t.Fatalf("unexpected args count: %d", len(args))
		}
		return &candidateRows{scans: []func(dest ...any) error{
			candidateScan("cand-1", -33.88, 151.22),
		}}, nil
	}}

	box := geo.BoundingBox{MinLat: -34, MaxLat: -33, MinLng: 151, MaxLng: 152}
	out, err := NewProfileRepository(sql).CandidatesInBox(context.Background(), box, "viewer-1")
	if err != nil {
		t.Fatalf("CandidatesInBox returned error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "cand-1" {
		t.Fatalf("out = %+v", out)
	}
	if out[0].Location == nil || out[0].Location.Lat != -33.88 {
		t.Fatalf("location = %+v", out[0].Location)
	}
}

func TestProfileRepositoryWrappedBoxWidensLongitude(t *testing.T) {
	var gotMin, gotMax any
	sql := &testSQL{query: func(_ string, args []any) (pgx.Rows, error) {
		gotMin, gotMax = args[3], args[4]
		return &candidateRows{}, nil
	}}

	box := geo.BoundingBox{MinLat: -1, MaxLat: 1, MinLng: 179.5, MaxLng: -179.5}
	if _, err := NewProfileRepository(sql).CandidatesInBox(context.Background(), box, "v"); err != nil {
		t.Fatalf("CandidatesInBox returned error: %v", err)
	}
	if gotMin != float64(-180) || gotMax != float64(180) {
		t.Fatalf("longitude bounds = %v..%v, want -180..180", gotMin, gotMax)
	}
}

func TestProfileRepositorySchemaMissingIsEmpty(t *testing.T) {
	cases := []struct {
		name string
		code string
	}{
		{name: "undefined_table", code: "42P01"},
		{name: "undefined_column", code: "42703"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sql := &testSQL{query: func(string, []any) (pgx.Rows, error) {
				return nil, &pgconn.PgError{Code: tc.code}
			}}
			out, err := NewProfileRepository(sql).CandidatesInBox(context.Background(), geo.BoundingBox{}, "v")
			if err != nil {
				t.Fatalf("schema-missing should not error: %v", err)
			}
			if out != nil {
				t.Fatalf("out = %+v, want nil", out)
			}
		})
	}
}

func TestProfileRepositoryRowsErrSchemaMissing(t *testing.T) {
	sql := &testSQL{query: func(string, []any) (pgx.Rows, error) {
		return &candidateRows{err: &pgconn.PgError{Code: "42703"}}, nil
	}}
	out, err := NewProfileRepository(sql).CandidatesInBox(context.Background(), geo.BoundingBox{}, "v")
	if err != nil {
		t.Fatalf("schema-missing on iteration should not error: %v", err)
	}
	if out != nil {
		t.Fatalf("out = %+v, want nil", out)
	}
}

func TestProfileRepositoryOtherErrorPropagates(t *testing.T) {
	sql := &testSQL{query: func(string, []any) (pgx.Rows, error) {
		return nil, &pgconn.PgError{Code: "53300"}
	}}
	if _, err := NewProfileRepository(sql).CandidatesInBox(context.Background(), geo.BoundingBox{}, "v"); err == nil {
		t.Fatal("expected error for non-schema failure")
	}
}

func TestTenderRepositoryCreateBackfillsTimestamps(t *testing.T) {
	createdAt := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	sql := &testSQL{queryRow: func(query string, args []any) pgx.Row {
		if query != sqlinline.QInsertTender {
			t.Fatalf("unexpected query: %s", query)
		}
		if len(args) != 7 {
			t.Fatalf("unexpected args count: %d", len(args))
		}
		return simpleRow{scan: func(dest ...any) error {
			*dest[0].(*time.Time) = createdAt
			*dest[1].(*time.Time) = createdAt
			return nil
		}}
	}}

	tender := &domain.Tender{ID: "t-1", OwnerID: "u-1", Title: "Fix tap", Status: domain.TenderStatusPublished}
	if err := NewTenderRepository(sql).Create(context.Background(), tender); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !tender.CreatedAt.Equal(createdAt) {
		t.Fatalf("created_at = %v", tender.CreatedAt)
	}
}

func TestTenderRepositoryCountQuotaSince(t *testing.T) {
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	sql := &testSQL{queryRow: func(query string, args []any) pgx.Row {
		if query != sqlinline.QCountQuotaTenders {
			t.Fatalf("unexpected query: %s", query)
		}
		if args[1] != since {
			t.Fatalf("since = %v", args[1])
		}
		return simpleRow{scan: func(dest ...any) error {
			*dest[0].(*int) = 2
			return nil
		}}
	}}

	count, err := NewTenderRepository(sql).CountQuotaSince(context.Background(), "u-1", since)
	if err != nil {
		t.Fatalf("CountQuotaSince returned error: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
}

func TestTenderRepositoryGetByIDNotFound(t *testing.T) {
	sql := &testSQL{}
	_, err := NewTenderRepository(sql).GetByID(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want domain.ErrNotFound", err)
	}
}

func TestQuoteRepositoryCreate(t *testing.T) {
	createdAt := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	sql := &testSQL{queryRow: func(query string, args []any) pgx.Row {
		if query != sqlinline.QInsertQuote {
			t.Fatalf("unexpected query: %s", query)
		}
		return simpleRow{scan: func(dest ...any) error {
			*dest[0].(*time.Time) = createdAt
			return nil
		}}
	}}

	quote := &domain.Quote{ID: "q-1", TenderID: "t-1", UserID: "u-1", AmountCents: 5000}
	if err := NewQuoteRepository(sql).Create(context.Background(), quote); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !quote.CreatedAt.Equal(createdAt) {
		t.Fatalf("created_at = %v", quote.CreatedAt)
	}
}

package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/libdesk/library-system/internal/errs"
	"github.com/libdesk/library-system/internal/model"
	"github.com/libdesk/library-system/internal/service"
	"github.com/libdesk/library-system/internal/store"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) AdvanceDays(days int) {
	c.t = c.t.AddDate(0, 0, days)
}

var defaultRules = service.Rules{MaxDays: 3, FinePerDay: 5, HoldDays: 1}

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	return store.New(store.Config{Path: filepath.Join(t.TempDir(), "library.dat")}, zap.NewNop())
}

func newTestService(t *testing.T) (*service.Service, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)}
	svc := service.NewService(newTestStore(t), defaultRules, zap.NewNop(), service.WithClock(clock.Now))
	return svc, clock
}

func addBook(t *testing.T, svc *service.Service, id, title, author string) {
	t.Helper()
	_, err := svc.AddBook(context.Background(), model.AddBookRequest{ID: id, Title: title, Author: author})
	require.NoError(t, err)
}

func TestService_AddBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var tests = []struct {
		name    string
		req     model.AddBookRequest
		seed    []model.AddBookRequest
		wantErr error
		wantLen int
	}{
		{
			name:    "ok",
			req:     model.AddBookRequest{ID: "1", Title: "Dune", Author: "Herbert"},
			wantLen: 1,
		},
		{
			name:    "duplicate id",
			req:     model.AddBookRequest{ID: "1", Title: "Dune Messiah", Author: "Herbert"},
			seed:    []model.AddBookRequest{{ID: "1", Title: "Dune", Author: "Herbert"}},
			wantErr: errs.ErrDuplicateID,
			wantLen: 1,
		},
		{
			name:    "unparseable id",
			req:     model.AddBookRequest{ID: "one", Title: "Dune", Author: "Herbert"},
			wantErr: errs.ErrInvalidInput,
			wantLen: 0,
		},
		{
			name:    "empty id",
			req:     model.AddBookRequest{ID: "", Title: "Dune", Author: "Herbert"},
			wantErr: errs.ErrInvalidInput,
			wantLen: 0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newTestService(t)
			for _, seed := range tt.seed {
				_, err := svc.AddBook(ctx, seed)
				require.NoError(t, err)
			}

			_, err := svc.AddBook(ctx, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Len(t, svc.Books(ctx), tt.wantLen)
		})
	}
}

func TestService_IssueReturnCycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)
	addBook(t, svc, "7", "Solaris", "Lem")

	borrower := model.IssueBookRequest{Name: "Alice", Email: "alice@x.com"}

	_, err := svc.IssueBook(ctx, "7", borrower)
	require.NoError(t, err)
	require.Equal(t, "Issued", svc.Books(ctx)[0].Status)

	// an issued book cannot be issued again
	_, err = svc.IssueBook(ctx, "7", model.IssueBookRequest{Name: "Bob", Email: "bob@x.com"})
	require.ErrorIs(t, err, errs.ErrNotAvailable)

	resp, err := svc.ReturnBook(ctx, "7")
	require.NoError(t, err)
	require.Equal(t, 0, resp.Fine)
	require.Equal(t, "Available", svc.Books(ctx)[0].Status)

	// return re-enables issuance
	_, err = svc.IssueBook(ctx, "7", model.IssueBookRequest{Name: "Bob", Email: "bob@x.com"})
	require.NoError(t, err)

	rows := svc.Records(ctx)
	require.Len(t, rows, 2)
	require.Equal(t, "Alice", rows[0].Name)
	require.Equal(t, "-", rows[1].ReturnDate)
}

func TestService_ReturnBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var tests = []struct {
		name     string
		daysOut  int
		wantFine int
	}{
		{name: "same day", daysOut: 0, wantFine: 0},
		{name: "on the limit", daysOut: 3, wantFine: 0},
		{name: "one day late", daysOut: 4, wantFine: 5},
		{name: "two days late", daysOut: 5, wantFine: 10},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, clock := newTestService(t)
			addBook(t, svc, "1", "Dune", "Herbert")

			_, err := svc.IssueBook(ctx, "1", model.IssueBookRequest{Name: "Alice", Email: "alice@x.com"})
			require.NoError(t, err)

			clock.AdvanceDays(tt.daysOut)
			resp, err := svc.ReturnBook(ctx, "1")
			require.NoError(t, err)
			require.Equal(t, tt.wantFine, resp.Fine)

			rows := svc.Records(ctx)
			require.Len(t, rows, 1)
			require.Equal(t, tt.wantFine, rows[0].Fine)
			require.NotEqual(t, "-", rows[0].ReturnDate)
		})
	}

	t.Run("unparseable id", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		_, err := svc.ReturnBook(ctx, "x")
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("nothing outstanding still succeeds", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		addBook(t, svc, "1", "Dune", "Herbert")
		resp, err := svc.ReturnBook(ctx, "1")
		require.NoError(t, err)
		require.Equal(t, 0, resp.Fine)
	})
}

func TestService_ReserveBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	validReq := model.ReserveBookRequest{Name: "Alice", Email: "alice@x.com"}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		addBook(t, svc, "1", "Dune", "Herbert")

		rsv, err := svc.ReserveBook(ctx, "1", validReq)
		require.NoError(t, err)
		require.Equal(t, model.StatusReserved, rsv.Status)
		require.NotEmpty(t, rsv.ReservationUid)
	})

	t.Run("already reserved", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		addBook(t, svc, "1", "Dune", "Herbert")

		_, err := svc.ReserveBook(ctx, "1", validReq)
		require.NoError(t, err)
		_, err = svc.ReserveBook(ctx, "1", model.ReserveBookRequest{Name: "Bob", Email: "bob@x.com"})
		require.ErrorIs(t, err, errs.ErrAlreadyReserved)
	})

	t.Run("issued book is not available", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		addBook(t, svc, "1", "Dune", "Herbert")

		_, err := svc.IssueBook(ctx, "1", model.IssueBookRequest{Name: "Bob", Email: "bob@x.com"})
		require.NoError(t, err)
		_, err = svc.ReserveBook(ctx, "1", validReq)
		require.ErrorIs(t, err, errs.ErrNotAvailable)
	})

	t.Run("unknown book is not available", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		_, err := svc.ReserveBook(ctx, "99", validReq)
		require.ErrorIs(t, err, errs.ErrNotAvailable)
	})

	t.Run("reservable again after hold expires", func(t *testing.T) {
		t.Parallel()
		svc, clock := newTestService(t)
		addBook(t, svc, "1", "Dune", "Herbert")

		_, err := svc.ReserveBook(ctx, "1", validReq)
		require.NoError(t, err)

		clock.AdvanceDays(1)
		_, err = svc.ReserveBook(ctx, "1", model.ReserveBookRequest{Name: "Bob", Email: "bob@x.com"})
		require.NoError(t, err)
	})
}

func TestService_NameEmailValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var tests = []struct {
		name    string
		reqName string
		email   string
		wantErr bool
	}{
		{name: "plus and dots", reqName: "Alice", email: "a.b+c@d.e"},
		{name: "hyphenated domain", reqName: "Alice", email: "x@y-z.com"},
		{name: "no at sign", reqName: "Alice", email: "noatsign", wantErr: true},
		{name: "empty email", reqName: "Alice", email: "", wantErr: true},
		{name: "spaces", reqName: "Alice", email: "a b@x.com", wantErr: true},
		{name: "empty name", reqName: "", email: "alice@x.com", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newTestService(t)
			addBook(t, svc, "1", "Dune", "Herbert")

			_, err := svc.ReserveBook(ctx, "1", model.ReserveBookRequest{Name: tt.reqName, Email: tt.email})
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrNameEmail)
			} else {
				require.NoError(t, err)
			}

			_, err = svc.IssueBook(ctx, "1", model.IssueBookRequest{Name: tt.reqName, Email: tt.email})
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrNameEmail)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestService_ReservationExpiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, clock := newTestService(t)
	addBook(t, svc, "1", "Dune", "Herbert")

	_, err := svc.ReserveBook(ctx, "1", model.ReserveBookRequest{Name: "Alice", Email: "alice@x.com"})
	require.NoError(t, err)
	require.Equal(t, model.StatusReserved, svc.Reservations(ctx)[0].Status)

	clock.AdvanceDays(1)
	require.Equal(t, model.StatusNotIssued, svc.Reservations(ctx)[0].Status)

	// terminal: later sweeps leave it alone
	clock.AdvanceDays(5)
	require.Equal(t, model.StatusNotIssued, svc.Reservations(ctx)[0].Status)
}

func TestService_ReservationBlocksOtherBorrowers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)
	addBook(t, svc, "1", "Dune", "Herbert")

	_, err := svc.ReserveBook(ctx, "1", model.ReserveBookRequest{Name: "Alice", Email: "alice@x.com"})
	require.NoError(t, err)

	// same day: the hold blocks everyone but Alice
	_, err = svc.IssueBook(ctx, "1", model.IssueBookRequest{Name: "Bob", Email: "bob@x.com"})
	require.ErrorIs(t, err, errs.ErrReservedByAnother)

	_, err = svc.IssueBook(ctx, "1", model.IssueBookRequest{Name: "Alice", Email: "alice@x.com"})
	require.NoError(t, err)

	require.Equal(t, model.StatusIssued, svc.Reservations(ctx)[0].Status)
	require.Equal(t, "Issued", svc.Books(ctx)[0].Status)
}

func TestService_ExpiredHoldDoesNotBlockIssue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, clock := newTestService(t)
	addBook(t, svc, "1", "Dune", "Herbert")

	_, err := svc.ReserveBook(ctx, "1", model.ReserveBookRequest{Name: "Alice", Email: "alice@x.com"})
	require.NoError(t, err)

	clock.AdvanceDays(2)
	_, err = svc.IssueBook(ctx, "1", model.IssueBookRequest{Name: "Bob", Email: "bob@x.com"})
	require.NoError(t, err)
	require.Equal(t, model.StatusNotIssued, svc.Reservations(ctx)[0].Status)
}

func TestService_SingleOpenRecordInvariant(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// A snapshot where the issued flag was lost but an open record remains:
	// issuance must still be refused, and a return must heal the state.
	st := newTestStore(t)
	issued := model.NewDate(2024, time.March, 1)
	require.NoError(t, st.Save(model.Library{
		Books: []model.Book{{ID: 1, Title: "Dune", Author: "Herbert", Issued: false}},
		Records: []model.IssueRecord{{
			RecordUid:     "rec-1",
			BookID:        1,
			Title:         "Dune",
			BorrowerName:  "Alice",
			BorrowerEmail: "alice@x.com",
			IssueDate:     issued,
		}},
	}))

	clock := &fakeClock{t: time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC)}
	svc := service.NewService(st, defaultRules, zap.NewNop(), service.WithClock(clock.Now))

	_, err := svc.IssueBook(ctx, "1", model.IssueBookRequest{Name: "Bob", Email: "bob@x.com"})
	require.ErrorIs(t, err, errs.ErrNotAvailable)

	_, err = svc.ReturnBook(ctx, "1")
	require.NoError(t, err)

	_, err = svc.IssueBook(ctx, "1", model.IssueBookRequest{Name: "Bob", Email: "bob@x.com"})
	require.NoError(t, err)
}

func TestService_IssueTouchesOnlyFirstHold(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Two Reserved entries for one book should not normally exist, but a
	// stale snapshot can carry them. Issuing flips exactly one.
	st := newTestStore(t)
	today := model.NewDate(2024, time.March, 1)
	require.NoError(t, st.Save(model.Library{
		Books: []model.Book{{ID: 1, Title: "Dune", Author: "Herbert"}},
		Reservations: []model.Reservation{
			{ReservationUid: "r-1", BookID: 1, Title: "Dune", ReserverName: "Alice", ReserverEmail: "alice@x.com", ReservationDate: today, Status: model.StatusReserved},
			{ReservationUid: "r-2", BookID: 1, Title: "Dune", ReserverName: "Carol", ReserverEmail: "carol@x.com", ReservationDate: today, Status: model.StatusReserved},
		},
	}))

	clock := &fakeClock{t: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)}
	svc := service.NewService(st, defaultRules, zap.NewNop(), service.WithClock(clock.Now))

	_, err := svc.IssueBook(ctx, "1", model.IssueBookRequest{Name: "Alice", Email: "alice@x.com"})
	require.NoError(t, err)

	rows := svc.Reservations(ctx)
	require.Equal(t, model.StatusIssued, rows[0].Status)
	require.Equal(t, model.StatusReserved, rows[1].Status)
}

func TestService_SearchBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var tests = []struct {
		name    string
		query   string
		wantID  int
		wantErr error
	}{
		{name: "title substring", query: "dun", wantID: 1},
		{name: "author case-insensitive", query: "HERBERT", wantID: 1},
		{name: "id exact match", query: "2", wantID: 2},
		{name: "first match wins", query: "lem", wantID: 2},
		{name: "no match", query: "asimov", wantErr: errs.ErrNotFound},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newTestService(t)
			addBook(t, svc, "1", "Dune", "Herbert")
			addBook(t, svc, "2", "Solaris", "Lem")
			addBook(t, svc, "3", "Fiasco", "Lem")

			row, err := svc.SearchBook(ctx, tt.query)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, row.ID)
		})
	}
}

func TestService_StatePersistsAcrossRestart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "library.dat")
	st := store.New(store.Config{Path: path}, zap.NewNop())
	clock := &fakeClock{t: time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)}

	svc := service.NewService(st, defaultRules, zap.NewNop(), service.WithClock(clock.Now))
	addBook(t, svc, "1", "Dune", "Herbert")
	_, err := svc.IssueBook(ctx, "1", model.IssueBookRequest{Name: "Alice", Email: "alice@x.com"})
	require.NoError(t, err)

	restarted := service.NewService(
		store.New(store.Config{Path: path}, zap.NewNop()),
		defaultRules, zap.NewNop(), service.WithClock(clock.Now))

	require.Equal(t, svc.Books(ctx), restarted.Books(ctx))
	require.Equal(t, svc.Records(ctx), restarted.Records(ctx))
}

func TestService_SweepRunsAtLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	require.NoError(t, st.Save(model.Library{
		Books: []model.Book{{ID: 1, Title: "Dune", Author: "Herbert"}},
		Reservations: []model.Reservation{{
			ReservationUid:  "r-1",
			BookID:          1,
			Title:           "Dune",
			ReserverName:    "Alice",
			ReserverEmail:   "alice@x.com",
			ReservationDate: model.NewDate(2024, time.February, 20),
			Status:          model.StatusReserved,
		}},
	}))

	clock := &fakeClock{t: time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)}
	svc := service.NewService(st, defaultRules, zap.NewNop(), service.WithClock(clock.Now))

	require.Equal(t, model.StatusNotIssued, svc.Reservations(ctx)[0].Status)
}

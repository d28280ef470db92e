package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/libdesk/library-system/internal/errs"
	"github.com/libdesk/library-system/internal/model"
	"github.com/libdesk/library-system/internal/store"
	"github.com/libdesk/library-system/pkg/validate"
)

// Rules are the lending parameters. Defaults reproduce the classic
// 3-day loan with a 5-per-day fine and a 1-day reservation hold.
type Rules struct {
	MaxDays    int `yaml:"maxDays" envconfig:"LENDING_MAX_DAYS" default:"3"`
	FinePerDay int `yaml:"finePerDay" envconfig:"LENDING_FINE_PER_DAY" default:"5"`
	HoldDays   int `yaml:"holdDays" envconfig:"LENDING_HOLD_DAYS" default:"1"`
}

// Service is the lending engine. It owns the library aggregate, loaded
// from the store at construction and written back after every mutation.
// The mutex keeps the aggregate single-actor behind a concurrent transport.
type Service struct {
	mu    sync.Mutex
	lib   model.Library
	store store.Store
	rules Rules
	valid *validator.Validate
	log   *zap.Logger
	now   func() time.Time
}

type Option func(*Service)

// WithClock overrides the wall clock used for issue dates, holds and fines.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(st store.Store, rules Rules, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		store: st,
		rules: rules,
		valid: validate.New(),
		log:   log.Named("lending"),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lib = st.Load()
	s.sweepReservations(s.today())
	return s
}

func (s *Service) today() model.Date {
	return model.DateOf(s.now())
}

// persist writes the aggregate back. Failures are logged and swallowed:
// state stays valid in memory until the next successful save.
func (s *Service) persist() {
	if err := s.store.Save(s.lib); err != nil {
		s.log.Error("save snapshot", zap.Error(err))
	}
}

// sweepReservations retires every hold older than the hold window.
// Expiry is derived from stored dates on each read; there is no timer.
// Callers must hold s.mu.
func (s *Service) sweepReservations(today model.Date) {
	for i := range s.lib.Reservations {
		r := &s.lib.Reservations[i]
		if r.Status == model.StatusReserved && r.ReservationDate.DaysUntil(today) >= s.rules.HoldDays {
			r.Status = model.StatusNotIssued
		}
	}
}

func (s *Service) AddBook(_ context.Context, req model.AddBookRequest) (model.Book, error) {
	id, err := strconv.Atoi(req.ID)
	if err != nil {
		return model.Book{}, errs.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.lib.Books {
		if b.ID == id {
			return model.Book{}, errs.ErrDuplicateID
		}
	}
	b := model.Book{ID: id, Title: req.Title, Author: req.Author}
	s.lib.Books = append(s.lib.Books, b)
	s.persist()
	s.log.Info("book added", zap.Int("id", id), zap.String("title", b.Title))
	return b, nil
}

func (s *Service) ReserveBook(_ context.Context, rawID string, req model.ReserveBookRequest) (model.Reservation, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return model.Reservation{}, errs.ErrInvalidInput
	}
	if err := s.valid.Struct(req); err != nil {
		return model.Reservation{}, errs.ErrNameEmail
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()
	s.sweepReservations(today)

	for _, r := range s.lib.Reservations {
		if r.BookID == id && r.Status == model.StatusReserved {
			return model.Reservation{}, errs.ErrAlreadyReserved
		}
	}
	for _, b := range s.lib.Books {
		if b.ID == id && !b.Issued {
			rsv := model.Reservation{
				ReservationUid:  uuid.NewString(),
				BookID:          b.ID,
				Title:           b.Title,
				ReserverName:    req.Name,
				ReserverEmail:   req.Email,
				ReservationDate: today,
				Status:          model.StatusReserved,
			}
			s.lib.Reservations = append(s.lib.Reservations, rsv)
			s.persist()
			s.log.Info("book reserved", zap.Int("id", id), zap.String("email", req.Email))
			return rsv, nil
		}
	}
	return model.Reservation{}, errs.ErrNotAvailable
}

func (s *Service) IssueBook(_ context.Context, rawID string, req model.IssueBookRequest) (model.IssueRecord, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return model.IssueRecord{}, errs.ErrInvalidInput
	}
	if err := s.valid.Struct(req); err != nil {
		return model.IssueRecord{}, errs.ErrNameEmail
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()

	// Only the first active hold for the book is considered; exactly one
	// reservation changes state per issue call.
	for i := range s.lib.Reservations {
		r := &s.lib.Reservations[i]
		if r.BookID != id || r.Status != model.StatusReserved {
			continue
		}
		switch {
		case r.ReservationDate.DaysUntil(today) >= s.rules.HoldDays:
			r.Status = model.StatusNotIssued
		case r.ReserverEmail != req.Email:
			return model.IssueRecord{}, errs.ErrReservedByAnother
		default:
			r.Status = model.StatusIssued
		}
		break
	}

	// At most one outstanding record per book, independent of the issued
	// flag on the book itself.
	for _, rec := range s.lib.Records {
		if rec.BookID == id && rec.ReturnDate == nil {
			return model.IssueRecord{}, errs.ErrNotAvailable
		}
	}

	for i := range s.lib.Books {
		b := &s.lib.Books[i]
		if b.ID == id && !b.Issued {
			b.Issued = true
			rec := model.IssueRecord{
				RecordUid:     uuid.NewString(),
				BookID:        b.ID,
				Title:         b.Title,
				BorrowerName:  req.Name,
				BorrowerEmail: req.Email,
				IssueDate:     today,
			}
			s.lib.Records = append(s.lib.Records, rec)
			s.persist()
			s.log.Info("book issued", zap.Int("id", id), zap.String("email", req.Email))
			return rec, nil
		}
	}
	return model.IssueRecord{}, errs.ErrNotAvailable
}

func (s *Service) ReturnBook(_ context.Context, rawID string) (model.ReturnBookResponse, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return model.ReturnBookResponse{}, errs.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()
	fine := 0
	for i := range s.lib.Records {
		rec := &s.lib.Records[i]
		if rec.BookID != id || rec.ReturnDate != nil {
			continue
		}
		returned := today
		rec.ReturnDate = &returned
		rec.Fine = s.overdueFine(rec.IssueDate, today)
		fine += rec.Fine
	}
	for i := range s.lib.Books {
		if s.lib.Books[i].ID == id {
			s.lib.Books[i].Issued = false
		}
	}
	s.persist()
	s.log.Info("book returned", zap.Int("id", id), zap.Int("fine", fine))
	return model.ReturnBookResponse{BookID: id, Fine: fine}, nil
}

func (s *Service) overdueFine(issued, returned model.Date) int {
	days := issued.DaysUntil(returned)
	if days <= s.rules.MaxDays {
		return 0
	}
	return (days - s.rules.MaxDays) * s.rules.FinePerDay
}

// UpdateReservationStatus runs the expiry sweep on demand.
func (s *Service) UpdateReservationStatus(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepReservations(s.today())
}

// SearchBook returns the first book whose title or author contains the
// query (case-insensitive), or whose id equals it exactly.
func (s *Service) SearchBook(_ context.Context, query string) (model.BookRow, error) {
	key := strings.ToLower(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.lib.Books {
		if strings.Contains(strings.ToLower(b.Title), key) ||
			strings.Contains(strings.ToLower(b.Author), key) ||
			strconv.Itoa(b.ID) == key {
			return bookRow(b), nil
		}
	}
	return model.BookRow{}, errs.ErrNotFound
}

func (s *Service) Books(_ context.Context) []model.BookRow {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepReservations(s.today())
	rows := make([]model.BookRow, 0, len(s.lib.Books))
	for _, b := range s.lib.Books {
		rows = append(rows, bookRow(b))
	}
	return rows
}

func (s *Service) Records(_ context.Context) []model.IssueRecordRow {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepReservations(s.today())
	rows := make([]model.IssueRecordRow, 0, len(s.lib.Records))
	for _, rec := range s.lib.Records {
		returned := "-"
		if rec.ReturnDate != nil {
			returned = rec.ReturnDate.String()
		}
		rows = append(rows, model.IssueRecordRow{
			BookID:     rec.BookID,
			Title:      rec.Title,
			Name:       rec.BorrowerName,
			Email:      rec.BorrowerEmail,
			IssueDate:  rec.IssueDate,
			ReturnDate: returned,
			Fine:       rec.Fine,
		})
	}
	return rows
}

func (s *Service) Reservations(_ context.Context) []model.ReservationRow {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepReservations(s.today())
	rows := make([]model.ReservationRow, 0, len(s.lib.Reservations))
	for _, r := range s.lib.Reservations {
		rows = append(rows, model.ReservationRow{
			BookID:     r.BookID,
			Title:      r.Title,
			Name:       r.ReserverName,
			Email:      r.ReserverEmail,
			ReservedOn: r.ReservationDate,
			Status:     r.Status,
		})
	}
	return rows
}

// Flush writes the current aggregate out; called on shutdown.
func (s *Service) Flush(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Save(s.lib)
}

func bookRow(b model.Book) model.BookRow {
	status := "Available"
	if b.Issued {
		status = "Issued"
	}
	return model.BookRow{ID: b.ID, Title: b.Title, Author: b.Author, Status: status}
}

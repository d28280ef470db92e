package handler

import (
	"context"

	"github.com/libdesk/library-system/internal/model"
	"github.com/libdesk/library-system/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LendingService interface {
	AddBook(ctx context.Context, req model.AddBookRequest) (model.Book, error)
	IssueBook(ctx context.Context, rawID string, req model.IssueBookRequest) (model.IssueRecord, error)
	ReturnBook(ctx context.Context, rawID string) (model.ReturnBookResponse, error)
	ReserveBook(ctx context.Context, rawID string, req model.ReserveBookRequest) (model.Reservation, error)
	SearchBook(ctx context.Context, query string) (model.BookRow, error)
	Books(ctx context.Context) []model.BookRow
	Records(ctx context.Context) []model.IssueRecordRow
	Reservations(ctx context.Context) []model.ReservationRow
}

var _ LendingService = (*service.Service)(nil)

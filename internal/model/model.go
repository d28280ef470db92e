package model

import (
	"strconv"
	"time"
)

// Date is a civil date. It marshals as "2006-01-02" and compares in whole
// calendar days, which is what holds and fines are computed from.
type Date struct {
	time.Time `json:",inline"`
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func DateOf(t time.Time) Date {
	return NewDate(t.Date())
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(time.DateOnly))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// DaysUntil returns the number of whole calendar days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time.Sub(d.Time) / (24 * time.Hour))
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

type Book struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Issued bool   `json:"issued"`
}

type IssueRecord struct {
	RecordUid     string `json:"recordUid"`
	BookID        int    `json:"bookId"`
	Title         string `json:"title"`
	BorrowerName  string `json:"borrowerName"`
	BorrowerEmail string `json:"borrowerEmail"`
	IssueDate     Date   `json:"issueDate"`
	ReturnDate    *Date  `json:"returnDate"`
	Fine          int    `json:"fine"`
}

type Status string

const (
	StatusReserved  Status = "Reserved"
	StatusIssued    Status = "Issued"
	StatusNotIssued Status = "Not Issued"
)

type Reservation struct {
	ReservationUid  string `json:"reservationUid"`
	BookID          int    `json:"bookId"`
	Title           string `json:"title"`
	ReserverName    string `json:"reserverName"`
	ReserverEmail   string `json:"reserverEmail"`
	ReservationDate Date   `json:"reservationDate"`
	Status          Status `json:"status"`
}

// Library is the aggregate owning all persistent state. The three
// collections are ordered; projections and search follow insertion order.
type Library struct {
	Books        []Book        `json:"books"`
	Records      []IssueRecord `json:"records"`
	Reservations []Reservation `json:"reservations"`
}

type AddBookRequest struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

type IssueBookRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,borroweremail"`
}

type ReserveBookRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,borroweremail"`
}

type ReturnBookResponse struct {
	BookID int `json:"bookId"`
	Fine   int `json:"fine"`
}

type BookRow struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Status string `json:"status"`
}

type IssueRecordRow struct {
	BookID     int    `json:"bookId"`
	Title      string `json:"title"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IssueDate  Date   `json:"issueDate"`
	ReturnDate string `json:"returnDate"`
	Fine       int    `json:"fine"`
}

type ReservationRow struct {
	BookID     int    `json:"bookId"`
	Title      string `json:"title"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ReservedOn Date   `json:"reservedOn"`
	Status     Status `json:"status"`
}

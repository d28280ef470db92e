package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/libdesk/library-system/internal/errs"
	"github.com/libdesk/library-system/internal/model"
	"github.com/libdesk/library-system/pkg/validate"
)

type Handler struct {
	lendingSvc LendingService
	log        *zap.Logger
}

func New(lendingSvc LendingService, log *zap.Logger) *Handler {
	return &Handler{
		lendingSvc: lendingSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig(h.log)),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)

	api.GET("/books", h.GetBooks)
	api.POST("/books", h.AddBook)
	api.GET("/books/search", h.SearchBook)
	api.POST("/books/:id/issue", h.IssueBook)
	api.POST("/books/:id/return", h.ReturnBook)
	api.POST("/books/:id/reserve", h.ReserveBook)

	api.GET("/records", h.GetRecords)
	api.GET("/reservations", h.GetReservations)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) AddBook(c echo.Context) error {
	var req model.AddBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.lendingSvc.AddBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) IssueBook(c echo.Context) error {
	var req model.IssueBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rec, err := h.lendingSvc.IssueBook(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	type Resp struct {
		Message string            `json:"message"`
		Record  model.IssueRecord `json:"record"`
	}
	return c.JSON(http.StatusOK, Resp{Message: "Book Issued Successfully", Record: rec})
}

func (h *Handler) ReturnBook(c echo.Context) error {
	resp, err := h.lendingSvc.ReturnBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) ReserveBook(c echo.Context) error {
	var req model.ReserveBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rsv, err := h.lendingSvc.ReserveBook(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	type Resp struct {
		Message     string            `json:"message"`
		Reservation model.Reservation `json:"reservation"`
	}
	return c.JSON(http.StatusOK, Resp{Message: "Book reserved for 1 day", Reservation: rsv})
}

func (h *Handler) SearchBook(c echo.Context) error {
	row, err := h.lendingSvc.SearchBook(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, row)
}

func (h *Handler) GetBooks(c echo.Context) error {
	return c.JSON(http.StatusOK, h.lendingSvc.Books(c.Request().Context()))
}

func (h *Handler) GetRecords(c echo.Context) error {
	return c.JSON(http.StatusOK, h.lendingSvc.Records(c.Request().Context()))
}

func (h *Handler) GetReservations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.lendingSvc.Reservations(c.Request().Context()))
}

// httpError maps engine sentinels onto status codes; the body keeps the
// exact engine message.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrInvalidInput), errors.Is(err, errs.ErrNameEmail):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrDuplicateID),
		errors.Is(err, errs.ErrNotAvailable),
		errors.Is(err, errs.ErrAlreadyReserved),
		errors.Is(err, errs.ErrReservedByAnother):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

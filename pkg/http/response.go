package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ClearedMessage is the confirmation shown after a history clear.
const ClearedMessage = "History cleared!"

// DataResponse writes the standard envelope. The HTTP status is always 200;
// the envelope's status carries the outcome.
func DataResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(http.StatusOK, APIResponse{
		Status:  statusCode,
		Message: http.StatusText(statusCode),
		Data:    data,
	})
}

// ListResponse writes one page of rows.
func ListResponse(c echo.Context, rows interface{}, total int64, limit int) error {
	return DataResponse(c, http.StatusOK, &ListDataResponse{
		Rows:  rows,
		Total: total,
		Limit: limit,
	})
}

// ClearedResponse confirms a history clear.
func ClearedResponse(c echo.Context, n int) error {
	return DataResponse(c, http.StatusOK, &ClearedData{Cleared: n, Message: ClearedMessage})
}

// SuccessResponse writes success response.
func SuccessResponse(c echo.Context, data interface{}) error {
	return DataResponse(c, http.StatusOK, data)
}

// BadRequestResponse writes bad request error.
func BadRequestResponse(c echo.Context, data interface{}) error {
	return DataResponse(c, http.StatusBadRequest, data)
}

// InternalServerErrorResponse writes internal server error.
func InternalServerErrorResponse(c echo.Context) error {
	return DataResponse(c, http.StatusInternalServerError, "Something went wrong")
}

// AppErrorResponse writes every *AppError found in err, including those
// joined with errors.Join. The first one decides the envelope status. An
// err without any AppError becomes a generic 500.
func AppErrorResponse(c echo.Context, err error) error {
	appErrs := collectAppErrors(err)
	if len(appErrs) == 0 {
		return InternalServerErrorResponse(c)
	}
	return DataResponse(c, appErrs[0].Status, appErrs)
}

func collectAppErrors(err error) []*AppError {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*AppError
		for _, e := range joined.Unwrap() {
			out = append(out, collectAppErrors(e)...)
		}
		return out
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return []*AppError{appErr}
	}
	return nil
}

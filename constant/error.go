package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrAccountExists
	ErrInvalidPassword
	ErrUserNotFound
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:         "success",
	ErrInternal:        "error internal",
	ErrNotFound:        "Object not found!",
	ErrInvalidRequest:  "invalid request",
	ErrUnauthorize:     "unauthorize request",
	ErrForbidden:       "forbidden",
	ErrAccountExists:   "Account existed!",
	ErrInvalidPassword: "Wrong password!",
	ErrUserNotFound:    "User not found!",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:         http.StatusOK,
	ErrInternal:        http.StatusInternalServerError,
	ErrNotFound:        http.StatusNotFound,
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrUnauthorize:     http.StatusUnauthorized,
	ErrForbidden:       http.StatusForbidden,
	ErrAccountExists:   http.StatusConflict,
	ErrInvalidPassword: http.StatusBadRequest,
	ErrUserNotFound:    http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:         "0000",
	ErrInternal:        "0001",
	ErrNotFound:        "0002",
	ErrInvalidRequest:  "0003",
	ErrUnauthorize:     "0004",
	ErrForbidden:       "0005",
	ErrAccountExists:   "0006",
	ErrInvalidPassword: "0007",
	ErrUserNotFound:    "0008",
}

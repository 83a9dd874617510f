package transport

import (
	"encoding/json"
	"net/http"

	"github.com/abmshq/abms-backend/constant"
	"github.com/abmshq/abms-backend/model"
	"github.com/abmshq/abms-backend/utils/errors"
)

func writeJSON(w http.ResponseWriter, status int, body model.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeSuccess wraps a payload in the uniform envelope.
func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, model.Response{
		StatusCode: http.StatusOK,
		ErrMsg:     constant.ErrorTypeMessage[constant.Successful],
		Data:       data,
	})
}

// writeList additionally carries the item count.
func writeList(w http.ResponseWriter, data any, count int) {
	writeJSON(w, http.StatusOK, model.Response{
		StatusCode: http.StatusOK,
		ErrMsg:     constant.ErrorTypeMessage[constant.Successful],
		Data:       data,
		Count:      &count,
	})
}

// writeError maps the error taxonomy onto a real HTTP status. Unknown
// errors surface as an opaque internal failure; detail stays in logs.
func writeError(w http.ResponseWriter, err error) {
	cerr, ok := err.(errors.CustomError)
	if !ok {
		cerr = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, cerr.ErrorHTTPCode(), model.Response{
		StatusCode: cerr.ErrorHTTPCode(),
		ErrMsg:     cerr.Error(),
	})
}

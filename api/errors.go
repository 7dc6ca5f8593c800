package api

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"
)

// ErrorBody is the error payload of every API response: {"error": message}.
type ErrorBody struct {
	status  int
	Message string `json:"error" doc:"Human readable error message"`
}

func (e *ErrorBody) Error() string {
	return e.Message
}

func (e *ErrorBody) GetStatus() int {
	return e.status
}

var installErrorModel sync.Once

// useErrorModel makes huma render errors as ErrorBody. Validation details
// are folded into the message. Causes of 5xx errors stay out of the body.
func useErrorModel() {
	installErrorModel.Do(func() {
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			if status < http.StatusInternalServerError {
				details := make([]string, 0, len(errs))
				for _, err := range errs {
					var detail *huma.ErrorDetail
					if errors.As(err, &detail) {
						details = append(details, detail.Error())
					}
				}
				if len(details) > 0 {
					msg = msg + ": " + strings.Join(details, "; ")
				}
			}
			return &ErrorBody{status: status, Message: msg}
		}
	})
}

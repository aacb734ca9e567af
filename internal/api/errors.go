package api

import (
	"net/http"

	"github.com/hireloop/interviewd/internal/faults"
	"github.com/hireloop/interviewd/pkg/errors"
)

// httpStatus maps the fault taxonomy onto response codes.
func httpStatus(err error) int {
	var (
		validation *faults.ValidationError
		notFound   *faults.NotFoundError
		denied     *faults.AuthorizationError
		conflict   *faults.ConflictError
		scheduling *faults.SchedulingError
		database   *faults.DatabaseError
	)

	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &denied):
		return http.StatusForbidden
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &scheduling):
		return http.StatusConflict
	case errors.As(err, &database):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

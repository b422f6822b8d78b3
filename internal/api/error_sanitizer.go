package api

import (
	"errors"
	"net/http"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/pkg/httputil"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/service/leads"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/validation"
)

// Public messages for the non-validation failures.
const (
	msgDuplicateEmail = "Email already subscribed"
	codeDuplicate     = "DUPLICATE_EMAIL"
)

// respondError maps a handler failure to exactly one status code. Validation
// messages are returned verbatim. Anything unrecognized is logged in full and
// answered with a static 500 body.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		httputil.BadRequest(w, string(verr.Code), verr.Message)
	case errors.Is(err, leads.ErrDuplicateEmail):
		httputil.Conflict(w, codeDuplicate, msgDuplicateEmail)
	default:
		httputil.InternalError(w, r, err)
	}
}

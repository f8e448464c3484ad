package host

import (
	"github.com/arthur-debert/textfilter/pkg/errors"
)

// Result is the outcome of a rule edit as seen by the host. Code is empty
// when OK is true.
type Result struct {
	OK      bool             `json:"ok"`
	Code    errors.ErrorCode `json:"code,omitempty"`
	Message string           `json:"message,omitempty"`
}

func ok() Result {
	return Result{OK: true}
}

func failed(err error) Result {
	code := errors.GetErrorCode(err)
	if code == "" {
		code = errors.ErrUnknown
	}
	return Result{Code: code, Message: errors.Message(err)}
}

// Err converts a failed Result back into an error, nil when OK
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	return errors.New(r.Code, r.Message)
}

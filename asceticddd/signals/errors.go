package signals

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned, before any mutation or dispatch, when an
// operation receives an empty signal name or a nil listener.
var ErrInvalidArgument = stderrors.New("signals: invalid argument")

func checkName(op, name string) error {
	if name == "" {
		return errors.Wrapf(ErrInvalidArgument, "%s: empty signal name", op)
	}
	return nil
}

func checkListener(op string, listener any) error {
	if listener == nil {
		return errors.Wrapf(ErrInvalidArgument, "%s: nil listener", op)
	}
	return nil
}

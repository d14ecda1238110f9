package algorithm

import (
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("sort")

// ErrInvalidRange is returned when the bounds handed to a range sort do not
// describe a (possibly empty) range inside the sequence.
var ErrInvalidRange = errors.New("invalid range")

func checkRange(n, left, right int) error {
	if left < 0 || right >= n || left > right+1 {
		log.Debugf("rejecting range [%d, %d] over %d elements", left, right, n)
		return errors.Wrapf(ErrInvalidRange, "left=%d right=%d len=%d", left, right, n)
	}
	return nil
}

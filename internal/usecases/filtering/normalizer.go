// Package filtering turns raw, partially-missing query parameters into the
// fully-normalized predicates the repositories expect.
package filtering

import (
	"strings"
	"time"

	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
	"github.com/sirupsen/logrus"
)

// Open-range sentinels. Missing bounds collapse to this closed interval so
// "unbounded" stays representable and the query layer never handles nulls.
// The literals are part of the external contract; stored filters and client
// assumptions depend on them.
var (
	RangeFloor = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	RangeCeil  = time.Date(2099, time.December, 31, 23, 59, 59, 0, time.UTC)
)

// UserDirectory is the single lookup dependency of the normalizer. It is
// satisfied by repository.UserRepository.
type UserDirectory interface {
	GetUserByUsername(username string) (*domain.User, error)
}

type Normalizer struct {
	users UserDirectory
}

func NewNormalizer(users UserDirectory) *Normalizer {
	return &Normalizer{
		users: users,
	}
}

// DateRange fills missing bounds with the open-range sentinels.
func (n *Normalizer) DateRange(from, to *time.Time) domain.DateRange {
	dateRange := domain.DateRange{From: RangeFloor, To: RangeCeil}
	if from != nil {
		dateRange.From = *from
	}
	if to != nil {
		dateRange.To = *to
	}
	return dateRange
}

// FullDayRange expands an inclusive date range to a full-day timestamp span,
// so a single-day range captures the entire day rather than its midnight
// instant.
func (n *Normalizer) FullDayRange(fromDate, toDate time.Time) domain.DateRange {
	return domain.DateRange{
		From: time.Date(fromDate.Year(), fromDate.Month(), fromDate.Day(), 0, 0, 0, 0, fromDate.Location()),
		To:   time.Date(toDate.Year(), toDate.Month(), toDate.Day(), 23, 59, 59, 0, toDate.Location()),
	}
}

// UserID resolves an optional username filter to an identifier constraint.
// A blank name or a name that does not resolve degrades to "no constraint"
// rather than failing the query; a typo in an optional filter must not turn
// a report into an error. Store failures still propagate.
func (n *Normalizer) UserID(username string) (*int64, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, nil
	}

	user, err := n.users.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		logrus.WithField("username", username).Debug("optional user filter did not resolve, ignoring")
		return nil, nil
	}

	id := user.ID
	return &id, nil
}

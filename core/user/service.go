package user

import (
	"github.com/pkg/errors"

	"github.com/trezcool/solvo/core"
)

var (
	// errors
	ErrNotFound = errors.New("user not found")
)

type (
	Repository interface {
		GetUserByID(id int) (User, error)
		GetUserByEmail(email string) (User, error)
		UpdateUser(usr User) (User, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Current returns the dashboard's learner.
// The store must always hold it: a missing learner is reported as a core.ShutdownError.
func (svc *Service) Current() (User, error) {
	usr, err := svc.repo.GetUserByID(CurrentID)
	if errors.Is(err, ErrNotFound) {
		return User{}, core.NewShutdownError("current user is missing from the store")
	}
	return usr, err
}

func (svc *Service) GetByEmail(email string) (User, error) {
	return svc.repo.GetUserByEmail(email)
}

// Merge applies a JSON object of user fields onto the current user and saves the result.
func (svc *Service) Merge(patch []byte) (User, error) {
	usr, err := svc.Current()
	if err != nil {
		return User{}, err
	}
	usr, err = usr.merge(patch)
	if err != nil {
		return User{}, err
	}
	return svc.repo.UpdateUser(usr)
}

func (svc *Service) SetProgress(progress int) (User, error) {
	usr, err := svc.Current()
	if err != nil {
		return User{}, err
	}
	usr.Progress = progress
	usr.Extra = usr.Extra.Without("progress")
	return svc.repo.UpdateUser(usr)
}

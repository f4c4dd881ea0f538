package user

import (
	"github.com/trezcool/solvo/core"
)

// CurrentID is the id of the single learner the dashboard is built for.
const CurrentID = 1

type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Progress int    `json:"progress"` // %

	// Extra holds the members clients sent that do not fit the fields above.
	Extra core.Extra `json:"-"`
}

type userObject User

var userFields = []string{"id", "name", "email", "role", "progress"}

func (u User) MarshalJSON() ([]byte, error) {
	return core.MarshalObject(userObject(u), u.Extra)
}

func (u *User) UnmarshalJSON(data []byte) error {
	extra, err := core.MergeObject(data, (*userObject)(u), userFields, u.Extra)
	if err != nil {
		return err
	}
	u.Extra = extra
	return nil
}

// merge shallowly applies the members of the JSON object `patch` onto a copy of u.
// Nothing is validated: members that do not fit a field are kept as sent. The ID cannot be changed.
func (u User) merge(patch []byte) (User, error) {
	merged := u
	extra, err := core.MergeObject(patch, (*userObject)(&merged), userFields[1:], u.Extra)
	if err != nil {
		return User{}, err
	}
	merged.Extra = extra.Without("id")
	return merged, nil
}

package resource

import "github.com/trezcool/solvo/core"

type Resource struct {
	ID        int             `json:"id"`
	Title     string          `json:"title"`
	Platform  string          `json:"platform"`
	Channel   string          `json:"channel"`
	Icon      string          `json:"icon,omitempty"`
	CreatedAt *core.Timestamp `json:"createdAt,omitempty"` // unset on seeded resources

	// Extra holds the members the creator sent that do not fit the fields above.
	Extra core.Extra `json:"-"`
}

type resourceObject Resource

var resourceFields = []string{"id", "title", "platform", "channel", "icon", "createdAt"}

func (res Resource) MarshalJSON() ([]byte, error) {
	return core.MarshalObject(resourceObject(res), res.Extra)
}

func (res *Resource) UnmarshalJSON(data []byte) error {
	extra, err := core.MergeObject(data, (*resourceObject)(res), resourceFields, res.Extra)
	if err != nil {
		return err
	}
	res.Extra = extra
	return nil
}

// NewResource contains the information a client may provide to create a Resource.
// Nothing is validated: members that do not fit a field are stored as sent.
// The server owns id and createdAt.
type NewResource struct {
	Title    string `json:"title"`
	Platform string `json:"platform"`
	Channel  string `json:"channel"`
	Icon     string `json:"icon"`

	Extra core.Extra `json:"-"`
}

type newResourceObject NewResource

var newResourceFields = []string{"title", "platform", "channel", "icon"}

func (nr *NewResource) UnmarshalJSON(data []byte) error {
	extra, err := core.MergeObject(data, (*newResourceObject)(nr), newResourceFields, nr.Extra)
	if err != nil {
		return err
	}
	nr.Extra = extra.Without("id", "createdAt")
	return nil
}

package resource

import (
	"time"

	"github.com/trezcool/solvo/core"
)

var NowFunc = time.Now // mockable

type (
	Repository interface {
		QueryAllResources() ([]Resource, error)
		// CreateResource assigns the next id of the collection to res.
		CreateResource(res Resource) (Resource, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll() ([]Resource, error) {
	return svc.repo.QueryAllResources()
}

func (svc *Service) Create(nr NewResource) (Resource, error) {
	now := core.NewTimestamp(NowFunc())
	return svc.repo.CreateResource(Resource{
		Title:     nr.Title,
		Platform:  nr.Platform,
		Channel:   nr.Channel,
		Icon:      nr.Icon,
		CreatedAt: &now,
		Extra:     nr.Extra,
	})
}

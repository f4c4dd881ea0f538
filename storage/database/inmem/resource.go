package inmemdb

import (
	"github.com/trezcool/solvo/core/resource"
)

type resourceRepository struct {
	db *resourceTable
}

func NewResourceRepository(db *DB) resource.Repository {
	return &resourceRepository{db: db.resource}
}

func (repo *resourceRepository) QueryAllResources() ([]resource.Resource, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	ids := sortedIDs(repo.db.table)
	resources := make([]resource.Resource, 0, len(ids))
	for _, id := range ids {
		resources = append(resources, *repo.db.table[id])
	}
	return resources, nil
}

// CreateResource ids come from a counter, not from the table size: the size shrinks on deletion
// and would hand out an id that is already taken.
func (repo *resourceRepository) CreateResource(res resource.Resource) (resource.Resource, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.pkCount++
	res.ID = repo.db.pkCount
	repo.db.table[res.ID] = &res
	return res, nil
}

package queries

import (
	"context"
)

type LocationReadStore interface {
	ListRegions(ctx context.Context) ([]*RegionView, error)
	FindRegion(ctx context.Context, id int64) (*RegionView, error)
	ListCities(ctx context.Context, regionID int64) ([]*CityView, error)
	FindCity(ctx context.Context, id int64) (*CityView, error)
	ListCommunes(ctx context.Context, cityID int64) ([]*CommuneView, error)
	FindCommune(ctx context.Context, id int64) (*CommuneView, error)
}

// LocationQueries serves the region > city > commune catalog that zone and
// address forms pick from. Listing the children of an unknown parent is an
// empty list, not an error.
type LocationQueries interface {
	ListRegions(ctx context.Context) ([]*RegionView, error)
	GetRegion(ctx context.Context, id int64) (*RegionView, error)
	ListCities(ctx context.Context, regionID int64) ([]*CityView, error)
	GetCity(ctx context.Context, id int64) (*CityView, error)
	ListCommunes(ctx context.Context, cityID int64) ([]*CommuneView, error)
	GetCommune(ctx context.Context, id int64) (*CommuneView, error)
}

type locationQueriesImpl struct {
	repo LocationReadStore
}

func NewLocationQueries(repo LocationReadStore) LocationQueries {
	return &locationQueriesImpl{repo: repo}
}

func (q *locationQueriesImpl) ListRegions(ctx context.Context) ([]*RegionView, error) {
	return q.repo.ListRegions(ctx)
}

func (q *locationQueriesImpl) GetRegion(ctx context.Context, id int64) (*RegionView, error) {
	v, err := q.repo.FindRegion(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrRegionNotFound)
	}
	return v, nil
}

func (q *locationQueriesImpl) ListCities(ctx context.Context, regionID int64) ([]*CityView, error) {
	return q.repo.ListCities(ctx, regionID)
}

func (q *locationQueriesImpl) GetCity(ctx context.Context, id int64) (*CityView, error) {
	v, err := q.repo.FindCity(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrCityNotFound)
	}
	return v, nil
}

func (q *locationQueriesImpl) ListCommunes(ctx context.Context, cityID int64) ([]*CommuneView, error) {
	return q.repo.ListCommunes(ctx, cityID)
}

func (q *locationQueriesImpl) GetCommune(ctx context.Context, id int64) (*CommuneView, error) {
	v, err := q.repo.FindCommune(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrCommuneNotFound)
	}
	return v, nil
}

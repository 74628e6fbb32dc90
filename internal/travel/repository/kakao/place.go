package kakao

import (
	"context"

	"github.com/samber/lo"

	"travel-planner/internal/travel"
	"travel-planner/internal/travel/repository"
	"travel-planner/pkg/kakaomap"
)

type implRepository struct {
	client *kakaomap.Client
	limit  int
}

// New creates a PlaceRepository on top of Kakao Local. limit caps the number
// of places returned per preference.
func New(client *kakaomap.Client, limit int) repository.PlaceRepository {
	if limit <= 0 || limit > kakaomap.MaxPageSize {
		limit = kakaomap.MaxPageSize
	}
	return &implRepository{client: client, limit: limit}
}

func (r *implRepository) SearchByPreference(ctx context.Context, region, preference string) ([]travel.Place, error) {
	places, err := r.client.SearchByPreference(ctx, region, preference)
	if err != nil {
		return nil, err
	}
	if len(places) > r.limit {
		places = places[:r.limit]
	}
	return lo.Map(places, func(p kakaomap.Place, _ int) travel.Place {
		address := p.RoadAddress
		if address == "" {
			address = p.Address
		}
		return travel.Place{
			Name:     p.Name,
			Category: p.Category,
			Address:  address,
			Phone:    p.Phone,
			URL:      p.URL,
		}
	}), nil
}

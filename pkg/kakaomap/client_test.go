package kakaomap_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/pkg/kakaomap"
)

func TestClient_SearchByPreference(t *testing.T) {
	var calls int32
	var lastQuery, lastCategory, lastSize string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "KakaoAK test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/search/keyword.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		atomic.AddInt32(&calls, 1)
		lastQuery = r.URL.Query().Get("query")
		lastCategory = r.URL.Query().Get("category_group_code")
		lastSize = r.URL.Query().Get("size")
		if lastQuery == "에러 맛집" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"documents":[{"id":"1","place_name":"돈사돈","category_name":"음식점 > 한식","address_name":"제주 제주시 노형동","phone":"064-746-8989","x":"126.47","y":"33.48"}]}`))
	}))
	defer ts.Close()

	client, err := kakaomap.New(kakaomap.Config{APIKey: "test-key", BaseURL: ts.URL})
	require.NoError(t, err)

	places, err := client.SearchByPreference(context.Background(), "제주", "food: 맛집")
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "돈사돈", places[0].Name)
	assert.InDelta(t, 33.48, places[0].Y, 0.001)
	assert.Equal(t, "제주 맛집", lastQuery)
	assert.Equal(t, kakaomap.CategoryRestaurant, lastCategory)
	assert.Equal(t, "10", lastSize)

	_, err = client.SearchByPreference(context.Background(), "제주", "맛집")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "second lookup must be served from cache")

	_, err = client.SearchByPreference(context.Background(), "제주", "휴식")
	require.NoError(t, err)
	assert.Equal(t, "제주 카페 공원", lastQuery)
	assert.Empty(t, lastCategory)

	_, err = client.SearchByPreference(context.Background(), "제주", "스노클링")
	require.NoError(t, err)
	assert.Equal(t, "제주 스노클링", lastQuery)

	_, err = client.SearchByPreference(context.Background(), "에러", "맛집")
	assert.Error(t, err)
}

func TestNew_RequiresKey(t *testing.T) {
	_, err := kakaomap.New(kakaomap.Config{})
	assert.Error(t, err)
}

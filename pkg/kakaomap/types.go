package kakaomap

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the Kakao Local API root.
	DefaultBaseURL = "https://dapi.kakao.com/v2/local"

	// MaxPageSize is the largest page the client requests.
	MaxPageSize = 10

	// DefaultCacheTTL bounds how long a search result is reused.
	DefaultCacheTTL = time.Hour

	defaultTimeout = 10 * time.Second
)

// Category group codes used by preference mapping.
const (
	CategoryRestaurant = "FD6"
	CategoryAttraction = "AT4"
	CategoryCulture    = "CT1"
	CategoryLodging    = "AD5"
)

// Config holds Kakao client configuration.
type Config struct {
	APIKey     string
	BaseURL    string
	CacheTTL   time.Duration
	HTTPClient *http.Client
}

// Place is a single search hit.
type Place struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Address     string  `json:"address"`
	RoadAddress string  `json:"road_address,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	URL         string  `json:"place_url,omitempty"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
}

// KeywordSearch is a keyword.json request.
type KeywordSearch struct {
	Keyword           string
	Region            string
	CategoryGroupCode string
	Size              int
	Page              int
}

type keywordResponse struct {
	Documents []document `json:"documents"`
}

type document struct {
	ID              string `json:"id"`
	PlaceName       string `json:"place_name"`
	CategoryName    string `json:"category_name"`
	AddressName     string `json:"address_name"`
	RoadAddressName string `json:"road_address_name"`
	Phone           string `json:"phone"`
	PlaceURL        string `json:"place_url"`
	X               string `json:"x"`
	Y               string `json:"y"`
}

// preferenceQuery is how one travel preference is searched.
type preferenceQuery struct {
	keyword  string
	category string
}

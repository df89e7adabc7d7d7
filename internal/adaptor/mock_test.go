package adaptor

import (
	"context"
	"net/http"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/render"

	"github.com/stretchr/testify/mock"
)

type MockVenueService struct {
	mock.Mock
}

func (m *MockVenueService) ListVenues(ctx context.Context) ([]response.VenueArea, error) {
	args := m.Called(ctx)
	areas, _ := args.Get(0).([]response.VenueArea)
	return areas, args.Error(1)
}

func (m *MockVenueService) SearchVenues(ctx context.Context, term string) (*response.SearchResponse[response.VenueSummary], error) {
	args := m.Called(ctx, term)
	result, _ := args.Get(0).(*response.SearchResponse[response.VenueSummary])
	return result, args.Error(1)
}

func (m *MockVenueService) GetVenue(ctx context.Context, venueID string) (*response.VenueDetailResponse, error) {
	args := m.Called(ctx, venueID)
	detail, _ := args.Get(0).(*response.VenueDetailResponse)
	return detail, args.Error(1)
}

func (m *MockVenueService) GetVenueForEdit(ctx context.Context, venueID string) (*response.VenueResponse, error) {
	args := m.Called(ctx, venueID)
	venue, _ := args.Get(0).(*response.VenueResponse)
	return venue, args.Error(1)
}

func (m *MockVenueService) CreateVenue(ctx context.Context, req *request.VenueRequest) (*response.VenueResponse, error) {
	args := m.Called(ctx, req)
	venue, _ := args.Get(0).(*response.VenueResponse)
	return venue, args.Error(1)
}

func (m *MockVenueService) UpdateVenue(ctx context.Context, venueID string, req *request.VenueRequest) (*response.VenueResponse, error) {
	args := m.Called(ctx, venueID, req)
	venue, _ := args.Get(0).(*response.VenueResponse)
	return venue, args.Error(1)
}

func (m *MockVenueService) DeleteVenue(ctx context.Context, venueID string) (*response.VenueResponse, error) {
	args := m.Called(ctx, venueID)
	venue, _ := args.Get(0).(*response.VenueResponse)
	return venue, args.Error(1)
}

type MockArtistService struct {
	mock.Mock
}

func (m *MockArtistService) ListArtists(ctx context.Context) ([]response.ArtistListItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]response.ArtistListItem)
	return items, args.Error(1)
}

func (m *MockArtistService) SearchArtists(ctx context.Context, term string) (*response.SearchResponse[response.ArtistSummary], error) {
	args := m.Called(ctx, term)
	result, _ := args.Get(0).(*response.SearchResponse[response.ArtistSummary])
	return result, args.Error(1)
}

func (m *MockArtistService) GetArtist(ctx context.Context, artistID string) (*response.ArtistDetailResponse, error) {
	args := m.Called(ctx, artistID)
	detail, _ := args.Get(0).(*response.ArtistDetailResponse)
	return detail, args.Error(1)
}

func (m *MockArtistService) GetArtistForEdit(ctx context.Context, artistID string) (*response.ArtistResponse, error) {
	args := m.Called(ctx, artistID)
	artist, _ := args.Get(0).(*response.ArtistResponse)
	return artist, args.Error(1)
}

func (m *MockArtistService) CreateArtist(ctx context.Context, req *request.ArtistRequest) (*response.ArtistResponse, error) {
	args := m.Called(ctx, req)
	artist, _ := args.Get(0).(*response.ArtistResponse)
	return artist, args.Error(1)
}

func (m *MockArtistService) UpdateArtist(ctx context.Context, artistID string, req *request.ArtistRequest) (*response.ArtistResponse, error) {
	args := m.Called(ctx, artistID, req)
	artist, _ := args.Get(0).(*response.ArtistResponse)
	return artist, args.Error(1)
}

type MockShowService struct {
	mock.Mock
}

func (m *MockShowService) ListShows(ctx context.Context) ([]response.ShowResponse, error) {
	args := m.Called(ctx)
	shows, _ := args.Get(0).([]response.ShowResponse)
	return shows, args.Error(1)
}

func (m *MockShowService) GetShowFormOptions(ctx context.Context) (*response.ShowFormOptions, error) {
	args := m.Called(ctx)
	opts, _ := args.Get(0).(*response.ShowFormOptions)
	return opts, args.Error(1)
}

func (m *MockShowService) CreateShow(ctx context.Context, req *request.ShowRequest) (*response.ShowResponse, error) {
	args := m.Called(ctx, req)
	show, _ := args.Get(0).(*response.ShowResponse)
	return show, args.Error(1)
}

// recordingRenderer keeps the last view it was asked to render.
type recordingRenderer struct {
	status int
	view   render.View
	calls  int
}

func (r *recordingRenderer) Render(w http.ResponseWriter, status int, view render.View) error {
	r.status = status
	r.view = view
	r.calls++
	w.WriteHeader(status)
	return nil
}

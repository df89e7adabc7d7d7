package usecase

import (
	"context"
	"testing"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func artistNamed(name string) *entity.Artist {
	return &entity.Artist{
		Base:   entity.Base{ID: uuid.New()},
		Name:   name,
		City:   "San Francisco",
		State:  "CA",
		Genres: []string{"Rock n Roll"},
	}
}

func TestArtistService_ListArtists(t *testing.T) {
	repo := newTestRepo()
	svc := NewArtistService(repo.Repository, zap.NewNop(), fixedClock)
	ctx := context.Background()

	petals := artistNamed("Guns N Petals")
	repo.artists.On("FindAll", ctx).Return([]*entity.Artist{petals}, nil)

	items, err := svc.ListArtists(ctx)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, petals.ID.String(), items[0].ID)
	assert.Equal(t, "Guns N Petals", items[0].Name)
}

func TestArtistService_Search_CountsUpcoming(t *testing.T) {
	repo := newTestRepo()
	svc := NewArtistService(repo.Repository, zap.NewNop(), fixedClock)
	ctx := context.Background()

	petals := artistNamed("Guns N Petals")
	repo.artists.On("SearchByName", ctx, "A").Return([]*entity.Artist{petals}, nil)
	repo.shows.On("CountUpcomingByArtist", ctx, testNow).Return(map[uuid.UUID]int{petals.ID: 2}, nil)

	result, err := svc.SearchArtists(ctx, "A")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Count)
	assert.Equal(t, 2, result.Data[0].NumUpcomingShows)
}

func TestArtistService_Search_NoMatches(t *testing.T) {
	repo := newTestRepo()
	svc := NewArtistService(repo.Repository, zap.NewNop(), fixedClock)
	ctx := context.Background()

	repo.artists.On("SearchByName", ctx, "zzz").Return([]*entity.Artist{}, nil)
	repo.shows.On("CountUpcomingByArtist", ctx, testNow).Return(map[uuid.UUID]int{}, nil)

	result, err := svc.SearchArtists(ctx, "zzz")
	require.NoError(t, err)

	assert.Equal(t, 0, result.Count)
	assert.NotNil(t, result.Data)
}

func TestArtistService_GetArtist_Partition(t *testing.T) {
	repo := newTestRepo()
	svc := NewArtistService(repo.Repository, zap.NewNop(), fixedClock)
	ctx := context.Background()

	petals := artistNamed("Guns N Petals")
	repo.artists.On("FindByID", ctx, petals.ID).Return(petals, nil)
	repo.shows.On("FindByArtistID", ctx, petals.ID).Return([]*entity.ShowListing{
		showAt(testNow.AddDate(0, 0, -7)),
		showAt(testNow.AddDate(0, 0, -1)),
		showAt(testNow.AddDate(0, 0, 3)),
	}, nil)

	detail, err := svc.GetArtist(ctx, petals.ID.String())
	require.NoError(t, err)

	assert.Equal(t, 2, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
	assert.Equal(t, "The Fillmore", detail.UpcomingShows[0].VenueName)
}

func TestArtistService_UpdatePersistsSeekingAndWebsite(t *testing.T) {
	repo := newTestRepo()
	svc := NewArtistService(repo.Repository, zap.NewNop(), fixedClock)
	ctx := context.Background()

	petals := artistNamed("Guns N Petals")
	repo.artists.On("FindByID", ctx, petals.ID).Return(petals, nil)
	repo.artists.On("Update", ctx, mock.MatchedBy(func(a *entity.Artist) bool {
		return a.WebsiteLink == "https://www.gunsnpetalsband.com" && a.LookingForVenues
	})).Return(nil)

	updated, err := svc.UpdateArtist(ctx, petals.ID.String(), &request.ArtistRequest{
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "326-123-5000",
		Genres:       []string{"Rock n Roll"},
		WebsiteLink:  "https://www.gunsnpetalsband.com",
		SeekingVenue: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "https://www.gunsnpetalsband.com", updated.Website)
	assert.True(t, updated.SeekingVenue)
	repo.artists.AssertExpectations(t)
}

func TestArtistService_Update_NotFound(t *testing.T) {
	repo := newTestRepo()
	svc := NewArtistService(repo.Repository, zap.NewNop(), fixedClock)
	ctx := context.Background()

	id := uuid.New()
	repo.artists.On("FindByID", ctx, id).Return(nil, ErrNotFound)

	_, err := svc.UpdateArtist(ctx, id.String(), &request.ArtistRequest{
		Name:   "Guns N Petals",
		City:   "San Francisco",
		State:  "CA",
		Genres: []string{"Rock n Roll"},
	})

	assert.ErrorIs(t, err, ErrNotFound)
	repo.artists.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

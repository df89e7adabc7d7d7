package usecase

import (
	"context"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	return m.Called(ctx, venue).Error(0)
}

func (m *MockVenueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	args := m.Called(ctx, id)
	venue, _ := args.Get(0).(*entity.Venue)
	return venue, args.Error(1)
}

func (m *MockVenueRepository) FindAll(ctx context.Context) ([]*entity.Venue, error) {
	args := m.Called(ctx)
	venues, _ := args.Get(0).([]*entity.Venue)
	return venues, args.Error(1)
}

func (m *MockVenueRepository) SearchByName(ctx context.Context, term string) ([]*entity.Venue, error) {
	args := m.Called(ctx, term)
	venues, _ := args.Get(0).([]*entity.Venue)
	return venues, args.Error(1)
}

func (m *MockVenueRepository) Update(ctx context.Context, venue *entity.Venue) error {
	return m.Called(ctx, venue).Error(0)
}

func (m *MockVenueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) Create(ctx context.Context, artist *entity.Artist) error {
	return m.Called(ctx, artist).Error(0)
}

func (m *MockArtistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error) {
	args := m.Called(ctx, id)
	artist, _ := args.Get(0).(*entity.Artist)
	return artist, args.Error(1)
}

func (m *MockArtistRepository) FindAll(ctx context.Context) ([]*entity.Artist, error) {
	args := m.Called(ctx)
	artists, _ := args.Get(0).([]*entity.Artist)
	return artists, args.Error(1)
}

func (m *MockArtistRepository) SearchByName(ctx context.Context, term string) ([]*entity.Artist, error) {
	args := m.Called(ctx, term)
	artists, _ := args.Get(0).([]*entity.Artist)
	return artists, args.Error(1)
}

func (m *MockArtistRepository) Update(ctx context.Context, artist *entity.Artist) error {
	return m.Called(ctx, artist).Error(0)
}

func (m *MockArtistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockShowRepository struct {
	mock.Mock
}

func (m *MockShowRepository) Create(ctx context.Context, show *entity.Show) error {
	return m.Called(ctx, show).Error(0)
}

func (m *MockShowRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Show, error) {
	args := m.Called(ctx, id)
	show, _ := args.Get(0).(*entity.Show)
	return show, args.Error(1)
}

func (m *MockShowRepository) listings(args mock.Arguments) ([]*entity.ShowListing, error) {
	shows, _ := args.Get(0).([]*entity.ShowListing)
	return shows, args.Error(1)
}

func (m *MockShowRepository) FindAllDetailed(ctx context.Context) ([]*entity.ShowListing, error) {
	return m.listings(m.Called(ctx))
}

func (m *MockShowRepository) FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.ShowListing, error) {
	return m.listings(m.Called(ctx, venueID))
}

func (m *MockShowRepository) FindByArtistID(ctx context.Context, artistID uuid.UUID) ([]*entity.ShowListing, error) {
	return m.listings(m.Called(ctx, artistID))
}

func (m *MockShowRepository) CountUpcomingByVenue(ctx context.Context, now time.Time) (map[uuid.UUID]int, error) {
	args := m.Called(ctx, now)
	counts, _ := args.Get(0).(map[uuid.UUID]int)
	return counts, args.Error(1)
}

func (m *MockShowRepository) CountUpcomingByArtist(ctx context.Context, now time.Time) (map[uuid.UUID]int, error) {
	args := m.Called(ctx, now)
	counts, _ := args.Get(0).(map[uuid.UUID]int)
	return counts, args.Error(1)
}

func (m *MockShowRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// inlineTx runs units of work directly against the mocked repository and
// counts them.
type inlineTx struct {
	repo  *repository.Repository
	units int
}

func (t *inlineTx) WithTx(_ context.Context, fn repository.TxFunc) error {
	t.units++
	return fn(t.repo)
}

type testRepo struct {
	*repository.Repository
	venues  *MockVenueRepository
	artists *MockArtistRepository
	shows   *MockShowRepository
	tx      *inlineTx
}

func newTestRepo() *testRepo {
	r := &testRepo{
		venues:  &MockVenueRepository{},
		artists: &MockArtistRepository{},
		shows:   &MockShowRepository{},
	}
	r.Repository = &repository.Repository{
		Venue:  r.venues,
		Artist: r.artists,
		Show:   r.shows,
	}
	r.tx = &inlineTx{repo: r.Repository}
	r.Repository.Tx = r.tx
	return r
}

var testNow = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

package apicache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/pkg/clock"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/repositories/apicache"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *clock.Fixed
	repo  *apicache.InMemoryRepository
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	s.repo = apicache.NewInMemory(s.clock, time.Hour)
}

func (s *InMemoryRepositoryTestSuite) TestSetAndGet() {
	body := []byte(`{"id":67}`)

	_, err := s.repo.Set(s.ctx, &apicache.SetInput{Key: chainURL, Value: body})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, &apicache.GetInput{Key: chainURL})
	s.Require().NoError(err)
	s.Equal(body, out.Entry.Value)
	s.Equal(s.clock.Now(), out.Entry.StoredAt)

	// mutating the returned value does not touch the cache
	out.Entry.Value[0] = 'x'
	again, err := s.repo.Get(s.ctx, &apicache.GetInput{Key: chainURL})
	s.Require().NoError(err)
	s.Equal(body, again.Entry.Value)
}

func (s *InMemoryRepositoryTestSuite) TestExpiry() {
	_, err := s.repo.Set(s.ctx, &apicache.SetInput{Key: chainURL, Value: []byte(`{}`), TTL: time.Minute})
	s.Require().NoError(err)

	s.clock.Advance(59 * time.Second)
	_, err = s.repo.Get(s.ctx, &apicache.GetInput{Key: chainURL})
	s.NoError(err)

	s.clock.Advance(time.Second)
	_, err = s.repo.Get(s.ctx, &apicache.GetInput{Key: chainURL})
	s.True(errors.IsNotFound(err))
	s.Equal(0, s.repo.Len())
}

func (s *InMemoryRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Set(s.ctx, &apicache.SetInput{Key: chainURL, Value: []byte(`{}`)})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, &apicache.DeleteInput{Key: chainURL})
	s.Require().NoError(err)
	s.True(out.Deleted)

	_, err = s.repo.Get(s.ctx, &apicache.GetInput{Key: chainURL})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Set(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Set(s.ctx, &apicache.SetInput{Value: []byte(`{}`)})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, &apicache.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

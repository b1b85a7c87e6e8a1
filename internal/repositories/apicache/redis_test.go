package apicache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/pkg/clock"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/repositories/apicache"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/testutils"
)

const chainURL = "https://pokeapi.co/api/v2/evolution-chain/67/"

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	mr      *miniredis.Miniredis
	clock   *clock.Fixed
	repo    apicache.Repository
	cleanup func()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	client, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.cleanup = cleanup
	s.clock = clock.NewFixed(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))

	repo, err := apicache.NewRedisRepository(&apicache.Config{
		Client:     client,
		Clock:      s.clock,
		DefaultTTL: time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestNewRedisRepository() {
	testCases := []struct {
		name string
		cfg  *apicache.Config
	}{
		{name: "nil config", cfg: nil},
		{name: "missing client and clock", cfg: &apicache.Config{}},
		{name: "negative ttl", cfg: &apicache.Config{DefaultTTL: -time.Second}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := apicache.NewRedisRepository(tc.cfg)
			s.Nil(repo)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestSetAndGet() {
	body := []byte(`{"id":67}`)

	setOut, err := s.repo.Set(s.ctx, &apicache.SetInput{Key: chainURL, Value: body})
	s.Require().NoError(err)
	s.Equal(s.clock.Now().Add(time.Hour), setOut.Entry.ExpiresAt)

	s.True(s.mr.Exists(apicache.KeyPrefix + chainURL))
	s.Equal(time.Hour, s.mr.TTL(apicache.KeyPrefix+chainURL))

	getOut, err := s.repo.Get(s.ctx, &apicache.GetInput{Key: chainURL})
	s.Require().NoError(err)
	s.Equal(body, getOut.Entry.Value)
	s.Equal(chainURL, getOut.Entry.Key)
	s.False(getOut.Entry.ExpiresAt.IsZero())
}

func (s *RedisRepositoryTestSuite) TestCustomTTL() {
	_, err := s.repo.Set(s.ctx, &apicache.SetInput{Key: chainURL, Value: []byte(`{}`), TTL: time.Minute})
	s.Require().NoError(err)
	s.Equal(time.Minute, s.mr.TTL(apicache.KeyPrefix+chainURL))
}

func (s *RedisRepositoryTestSuite) TestExpiry() {
	_, err := s.repo.Set(s.ctx, &apicache.SetInput{Key: chainURL, Value: []byte(`{}`)})
	s.Require().NoError(err)

	s.mr.FastForward(time.Hour + time.Second)

	_, err = s.repo.Get(s.ctx, &apicache.GetInput{Key: chainURL})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestMiss() {
	_, err := s.repo.Get(s.ctx, &apicache.GetInput{Key: "https://pokeapi.co/api/v2/pokemon/0/"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Set(s.ctx, &apicache.SetInput{Key: chainURL, Value: []byte(`{}`)})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, &apicache.DeleteInput{Key: chainURL})
	s.Require().NoError(err)
	s.True(out.Deleted)

	out, err = s.repo.Delete(s.ctx, &apicache.DeleteInput{Key: chainURL})
	s.Require().NoError(err)
	s.False(out.Deleted)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Get(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, &apicache.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Set(s.ctx, &apicache.SetInput{Key: chainURL})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, &apicache.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

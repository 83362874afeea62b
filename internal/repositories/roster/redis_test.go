package roster_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/errors"
	"github.com/pokearena/tactics-arena/internal/repositories/roster"
	"github.com/pokearena/tactics-arena/internal/testutils"
)

type RepositoryTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	repos map[string]roster.Repository
	ctx   context.Context
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	redisRepo, err := roster.NewRedisRepository(&roster.Config{Client: client})
	s.Require().NoError(err)

	s.repos = map[string]roster.Repository{
		"redis":    redisRepo,
		"inmemory": roster.NewInMemory(),
	}
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) TestSaveThenGet() {
	for name, repo := range s.repos {
		s.Run(name, func() {
			in := &entities.Roster{PlayerID: "ash", PokemonIDs: []int{1, 4, 7}}
			s.Require().NoError(repo.Save(s.ctx, roster.SaveInput{Roster: in}))

			in.PokemonIDs[0] = 150

			out, err := repo.Get(s.ctx, roster.GetInput{PlayerID: "ash"})
			s.Require().NoError(err)
			s.Equal([]int{1, 4, 7}, out.Roster.PokemonIDs)
			s.True(out.Roster.Contains(7))
			s.False(out.Roster.Contains(150))
		})
	}
}

func (s *RepositoryTestSuite) TestGetMissing() {
	for name, repo := range s.repos {
		s.Run(name, func() {
			_, err := repo.Get(s.ctx, roster.GetInput{PlayerID: "nobody"})
			s.True(errors.IsNotFound(err))
		})
	}
}

func (s *RepositoryTestSuite) TestValidation() {
	for name, repo := range s.repos {
		s.Run(name, func() {
			s.True(errors.IsInvalidArgument(repo.Save(s.ctx, roster.SaveInput{})))
			s.True(errors.IsInvalidArgument(repo.Save(s.ctx, roster.SaveInput{Roster: &entities.Roster{}})))
			_, err := repo.Get(s.ctx, roster.GetInput{})
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RepositoryTestSuite) TestRedisCorruptedBlob() {
	s.Require().NoError(s.mr.Set("arena:roster:ash", "[1,2"))

	_, err := s.repos["redis"].Get(s.ctx, roster.GetInput{PlayerID: "ash"})
	s.True(errors.IsDataLoss(err))
}

package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/questforge/quest-api/internal/entities"
	"github.com/questforge/quest-api/internal/errors"
	redisclient "github.com/questforge/quest-api/internal/redis"
	"github.com/questforge/quest-api/internal/repositories/character"
	"github.com/questforge/quest-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    character.Repository
	client  redisclient.Client
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.ctx = context.Background()

	repo, err := character.NewRedisRepository(&character.Config{
		Client: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) testProgress() *entities.CharacterProgress {
	return &entities.CharacterProgress{
		UserID:         "user_123",
		Level:          5,
		TotalXP:        450,
		CurrentXP:      50,
		Specialization: entities.SpecializationScholar,
		Stats: entities.StatBlock{
			Intellect: 12,
			Focus:     10,
			Memory:    11,
			Speed:     8,
			Curiosity: 9,
			Grit:      7,
		},
		Counters: entities.ProgressCounters{
			LessonsCompleted: 23,
			StreakDays:       4,
			SubjectCorrectAnswers: map[string]int{
				"math": 17,
			},
		},
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	progress := s.testProgress()

	created, err := s.repo.Create(s.ctx, character.CreateInput{Progress: progress})
	s.Require().NoError(err)
	s.Require().NotNil(created)

	got, err := s.repo.Get(s.ctx, character.GetInput{UserID: "user_123"})
	s.Require().NoError(err)
	s.Equal(progress.Level, got.Progress.Level)
	s.Equal(progress.TotalXP, got.Progress.TotalXP)
	s.Equal(progress.Specialization, got.Progress.Specialization)
	s.Equal(progress.Stats, got.Progress.Stats)
	s.Equal(17, got.Progress.Counters.SubjectCorrectAnswers["math"])
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	progress := s.testProgress()

	_, err := s.repo.Create(s.ctx, character.CreateInput{Progress: progress})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Progress: progress})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{UserID: "nobody"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetEmptyUserID() {
	_, err := s.repo.Get(s.ctx, character.GetInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateNilProgress() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	progress := s.testProgress()

	_, err := s.repo.Create(s.ctx, character.CreateInput{Progress: progress})
	s.Require().NoError(err)

	progress.TotalXP = 600
	progress.Level = 6
	progress.CurrentXP = 0
	progress.Stats.AvailablePoints = 2
	s.Require().NoError(s.repo.Update(s.ctx, progress))

	got, err := s.repo.Get(s.ctx, character.GetInput{UserID: "user_123"})
	s.Require().NoError(err)
	s.Equal(6, got.Progress.Level)
	s.Equal(600, got.Progress.TotalXP)
	s.Equal(2, got.Progress.Stats.AvailablePoints)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

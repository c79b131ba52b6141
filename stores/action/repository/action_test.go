package repository

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/ptr"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/action"
	"github.com/x-xyz/storefront/service/query"
	"github.com/x-xyz/storefront/service/query/mocks"
)

type repoSuite struct {
	suite.Suite
	mongo *mocks.Mongo
	repo  action.Repo
}

func (s *repoSuite) SetupTest() {
	s.mongo = &mocks.Mongo{}
	s.repo = New(s.mongo)
}

func TestRepoSuite(t *testing.T) {
	suite.Run(t, new(repoSuite))
}

func (s *repoSuite) TestInsertLowersAccount() {
	s.mongo.On("Insert", mock.Anything, domain.TableActions, mock.MatchedBy(func(r *action.Record) bool {
		return r.Account == "0x00000000000000000000000000000000000abcde"
	})).Return(nil).Once()

	err := s.repo.Insert(ctx.Background(), &action.Record{Id: "a1", Account: "0x00000000000000000000000000000000000ABCDE"})
	s.NoError(err)
	s.mongo.AssertExpectations(s.T())
}

func (s *repoSuite) TestFindOneNotFound() {
	s.mongo.On("FindOne", mock.Anything, domain.TableActions, bson.M{"_id": "nope"}, mock.Anything).Return(query.ErrNotFound).Once()
	_, err := s.repo.FindOne(ctx.Background(), "nope")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *repoSuite) TestFindAll() {
	s.mongo.On("Search", mock.Anything, domain.TableActions, 0, 10, "-createdAt",
		bson.M{"account": domain.Address("0x00000000000000000000000000000000000abcde"), "status": action.StatusPending}, mock.Anything).
		Return(nil).Once()

	res, err := s.repo.FindAll(ctx.Background(),
		action.WithAccount("0x00000000000000000000000000000000000ABCDE"),
		action.WithStatus(action.StatusPending),
		action.WithLimit(10),
	)
	s.Require().NoError(err)
	s.NotNil(res)
}

func (s *repoSuite) TestUpdate() {
	status := action.StatusConfirmed
	updater := action.Updater{Status: &status, Reason: ptr.String("")}
	s.mongo.On("Patch", mock.Anything, domain.TableActions, bson.M{"_id": "a1"}, updater).Return(nil).Once()
	s.NoError(s.repo.Update(ctx.Background(), "a1", updater))

	s.mongo.On("Patch", mock.Anything, domain.TableActions, bson.M{"_id": "a2"}, updater).Return(query.ErrNotFound).Once()
	s.ErrorIs(s.repo.Update(ctx.Background(), "a2", updater), domain.ErrNotFound)
}

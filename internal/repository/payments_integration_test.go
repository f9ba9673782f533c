//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"parcel-server/internal/domain"
	"parcel-server/internal/repository"
)

type PaymentRepositorySuite struct {
	suite.Suite
	repo *repository.PaymentRepo
}

func (s *PaymentRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcClient, "tcClient must be initialized in TestMain")
	s.repo = repository.NewPaymentRepo(tcCollections)
}

func (s *PaymentRepositorySuite) SetupTest() {
	s.Require().NoError(dropDatabase(context.Background()))
}

func (s *PaymentRepositorySuite) insertPayment(p domain.Payment) primitive.ObjectID {
	s.T().Helper()
	id, err := s.repo.Insert(context.Background(), &p)
	s.Require().NoError(err)
	return id
}

func (s *PaymentRepositorySuite) TestInsertAndList() {
	ctx := context.Background()

	s.insertPayment(domain.Payment{
		ParcelID:      primitive.NewObjectID().Hex(),
		Email:         "alice@example.com",
		Amount:        42.5,
		PaymentMethod: "card",
		TransactionID: "tx_1",
		Status:        domain.PaymentCompleted,
		PaidAt:        time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	})

	list, err := s.repo.List(ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("tx_1", list[0].TransactionID)
	s.Equal(42.5, list[0].Amount)
}

func (s *PaymentRepositorySuite) TestList_LatestFirst() {
	ctx := context.Background()

	s.insertPayment(domain.Payment{
		Email:  "alice@example.com",
		Status: domain.PaymentCompleted,
		PaidAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	s.insertPayment(domain.Payment{
		Email:  "alice@example.com",
		Status: domain.PaymentCompleted,
		PaidAt: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	})

	list, err := s.repo.List(ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.True(list[0].PaidAt.After(list[1].PaidAt))
}

func (s *PaymentRepositorySuite) TestSetStatus() {
	ctx := context.Background()

	id := s.insertPayment(domain.Payment{
		Email:  "alice@example.com",
		Status: domain.PaymentPending,
		PaidAt: time.Now().UTC(),
	})

	s.Require().NoError(s.repo.SetStatus(ctx, id, domain.PaymentCompleted))

	list, err := s.repo.List(ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(domain.PaymentCompleted, list[0].Status)
}

func (s *PaymentRepositorySuite) TestListPendingBefore() {
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	stale := s.insertPayment(domain.Payment{
		Email:  "a@b.c",
		Status: domain.PaymentPending,
		PaidAt: now.Add(-10 * time.Minute),
	})
	s.insertPayment(domain.Payment{
		Email:  "a@b.c",
		Status: domain.PaymentPending,
		PaidAt: now.Add(-10 * time.Second),
	})
	s.insertPayment(domain.Payment{
		Email:  "a@b.c",
		Status: domain.PaymentCompleted,
		PaidAt: now.Add(-10 * time.Minute),
	})

	pending, err := s.repo.ListPendingBefore(ctx, now.Add(-2*time.Minute))
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(stale, pending[0].ID)
}

func TestPaymentRepositorySuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositorySuite))
}

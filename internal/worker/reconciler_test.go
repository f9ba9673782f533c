package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"parcel-server/internal/domain"
	testlog "parcel-server/internal/testutil"
)

type stubPaymentStore struct {
	pending []domain.Payment
	listErr error

	setStatusErr error
	statuses     map[primitive.ObjectID]domain.PaymentStatus
	cutoff       time.Time
}

func (s *stubPaymentStore) ListPendingBefore(_ context.Context, cutoff time.Time) ([]domain.Payment, error) {
	s.cutoff = cutoff
	return s.pending, s.listErr
}

func (s *stubPaymentStore) SetStatus(_ context.Context, id primitive.ObjectID, status domain.PaymentStatus) error {
	if s.statuses == nil {
		s.statuses = make(map[primitive.ObjectID]domain.PaymentStatus)
	}
	s.statuses[id] = status
	return s.setStatusErr
}

type stubParcelStore struct {
	parcels map[primitive.ObjectID]domain.Parcel
	getErr  error
	markErr error
	marked  []primitive.ObjectID
}

func (s *stubParcelStore) Get(_ context.Context, id primitive.ObjectID) (domain.Parcel, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.parcels[id], nil
}

func (s *stubParcelStore) MarkPaid(_ context.Context, id primitive.ObjectID) (bool, error) {
	if s.markErr != nil {
		return false, s.markErr
	}
	s.marked = append(s.marked, id)
	return true, nil
}

type countingCounter struct{ n int }

func (c *countingCounter) Inc() { c.n++ }

func newTestReconciler(payments *stubPaymentStore, parcels *stubParcelStore) (*Reconciler, *countingCounter) {
	rec := testlog.New()
	cnt := &countingCounter{}
	r := NewReconciler(payments, parcels, rec.Logger(), cnt, time.Second, time.Minute)
	return r, cnt
}

func pendingPayment(parcelID string) domain.Payment {
	return domain.Payment{
		ID:       primitive.NewObjectID(),
		ParcelID: parcelID,
		Status:   domain.PaymentPending,
	}
}

func TestPass_FlipsUnpaidParcelAndCompletes(t *testing.T) {
	t.Parallel()

	parcelID := primitive.NewObjectID()
	p := pendingPayment(parcelID.Hex())
	payments := &stubPaymentStore{pending: []domain.Payment{p}}
	parcels := &stubParcelStore{parcels: map[primitive.ObjectID]domain.Parcel{
		parcelID: {"title": "books"},
	}}
	r, cnt := newTestReconciler(payments, parcels)

	n, err := r.Pass(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, []primitive.ObjectID{parcelID}, parcels.marked)
	require.Equal(t, domain.PaymentCompleted, payments.statuses[p.ID])
	require.Equal(t, 1, cnt.n)
}

func TestPass_PaidParcelCompletesWithoutFlip(t *testing.T) {
	t.Parallel()

	parcelID := primitive.NewObjectID()
	p := pendingPayment(parcelID.Hex())
	payments := &stubPaymentStore{pending: []domain.Payment{p}}
	parcels := &stubParcelStore{parcels: map[primitive.ObjectID]domain.Parcel{
		parcelID: {domain.ParcelKeyPaymentStatus: domain.ParcelPaid},
	}}
	r, _ := newTestReconciler(payments, parcels)

	n, err := r.Pass(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Empty(t, parcels.marked)
	require.Equal(t, domain.PaymentCompleted, payments.statuses[p.ID])
}

func TestPass_MissingParcelAbandons(t *testing.T) {
	t.Parallel()

	p := pendingPayment(primitive.NewObjectID().Hex())
	payments := &stubPaymentStore{pending: []domain.Payment{p}}
	parcels := &stubParcelStore{}
	r, _ := newTestReconciler(payments, parcels)

	n, err := r.Pass(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, domain.PaymentAbandoned, payments.statuses[p.ID])
}

func TestPass_UnparseableParcelRefAbandons(t *testing.T) {
	t.Parallel()

	p := pendingPayment("garbage")
	payments := &stubPaymentStore{pending: []domain.Payment{p}}
	r, _ := newTestReconciler(payments, &stubParcelStore{})

	n, err := r.Pass(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, domain.PaymentAbandoned, payments.statuses[p.ID])
}

func TestPass_StoreFailureSkipsPayment(t *testing.T) {
	t.Parallel()

	p := pendingPayment(primitive.NewObjectID().Hex())
	payments := &stubPaymentStore{pending: []domain.Payment{p}}
	parcels := &stubParcelStore{getErr: errors.New("store down")}
	r, cnt := newTestReconciler(payments, parcels)

	n, err := r.Pass(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
	require.Zero(t, cnt.n)
}

func TestPass_CutoffUsesPendingAge(t *testing.T) {
	t.Parallel()

	payments := &stubPaymentStore{}
	r, _ := newTestReconciler(payments, &stubParcelStore{})
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return fixed }

	_, err := r.Pass(context.Background())
	require.NoError(t, err)
	require.Equal(t, fixed.Add(-time.Minute), payments.cutoff)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	r, _ := newTestReconciler(&stubPaymentStore{}, &stubParcelStore{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

package payment

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"parcel-server/internal/apperr"
	"parcel-server/internal/domain"
	"parcel-server/internal/logx"
)

// isoLayout mirrors the millisecond ISO string historically stored in paid_at_string.
const isoLayout = "2006-01-02T15:04:05.000Z"

// Service coordinates payment recording, history and intent creation.
type Service struct {
	payments         paymentRepository
	parcels          parcelStore
	gateway          IntentGateway
	logger           logx.Logger
	recorded         counter
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates and configures a payment Service.
func NewService(
	payments paymentRepository,
	parcels parcelStore,
	gateway IntentGateway,
	logger logx.Logger,
	recorded counter,
	timeout time.Duration,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		payments:         payments,
		parcels:          parcels,
		gateway:          gateway,
		logger:           logger,
		recorded:         recorded,
		operationTimeout: timeout,
		now:              time.Now,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// History returns payments latest first, optionally filtered by payer email.
func (s *Service) History(ctx context.Context, email string) ([]domain.Payment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.payments.List(ctx, email)
}

// Record runs the two-phase payment sequence: insert the payment as pending,
// flip the parcel to paid, then complete the payment. A crash between the
// phases leaves a pending record for the reconciler to finish.
//
// An absent or already-paid parcel yields ErrNotFound with nothing written;
// the two cases are deliberately indistinguishable to the caller.
func (s *Service) Record(ctx context.Context, p *domain.Payment) (primitive.ObjectID, error) {
	parcelID, err := primitive.ObjectIDFromHex(p.ParcelID)
	if err != nil {
		return primitive.NilObjectID, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	parcel, err := s.parcels.Get(ctx, parcelID)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if parcel == nil || parcel.Paid() {
		return primitive.NilObjectID, apperr.ErrNotFound
	}

	now := s.now().UTC()
	p.Status = domain.PaymentPending
	p.PaidAt = now
	p.PaidAtString = now.Format(isoLayout)

	id, err := s.payments.Insert(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}

	ok, err := s.parcels.MarkPaid(ctx, parcelID)
	if err != nil {
		// pending record stays behind; the reconciler picks it up
		s.logger.Error("parcel flip failed after pending insert",
			logx.String("payment_id", id.Hex()),
			logx.String("parcel_id", p.ParcelID),
			logx.Any("err", err),
		)
		return primitive.NilObjectID, err
	}
	if !ok {
		// lost a race with another recording; abandon our pending record
		if abErr := s.payments.SetStatus(ctx, id, domain.PaymentAbandoned); abErr != nil {
			s.logger.Warn("abandon pending payment failed",
				logx.String("payment_id", id.Hex()),
				logx.Any("err", abErr),
			)
		}
		return primitive.NilObjectID, apperr.ErrNotFound
	}

	if err := s.payments.SetStatus(ctx, id, domain.PaymentCompleted); err != nil {
		// parcel is paid and the payment exists; completion is reconciled later
		s.logger.Warn("complete payment failed, left pending",
			logx.String("payment_id", id.Hex()),
			logx.Any("err", err),
		)
	}
	if s.recorded != nil {
		s.recorded.Inc()
	}
	return id, nil
}

// CreateIntent asks the gateway for a card payment intent in the smallest
// currency unit. Gateway errors are returned as-is; the caller surfaces the
// gateway's message verbatim.
func (s *Service) CreateIntent(ctx context.Context, amountInCents int64) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.gateway.CreateIntent(ctx, amountInCents)
}

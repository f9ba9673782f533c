package worker

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"parcel-server/internal/domain"
	"parcel-server/internal/logx"
)

type paymentStore interface {
	ListPendingBefore(ctx context.Context, cutoff time.Time) ([]domain.Payment, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status domain.PaymentStatus) error
}

type parcelStore interface {
	Get(ctx context.Context, id primitive.ObjectID) (domain.Parcel, error)
	MarkPaid(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type counter interface {
	Inc()
}

// Reconciler finishes payment sequences that crashed between the pending
// insert and the parcel flip. Each pass completes stale pending payments:
// the parcel is flipped if still unpaid, then the payment is completed;
// a payment whose parcel is gone is abandoned.
type Reconciler struct {
	payments   paymentStore
	parcels    parcelStore
	logger     logx.Logger
	reconciled counter
	interval   time.Duration
	pendingAge time.Duration
	now        func() time.Time
}

// NewReconciler creates and configures a Reconciler.
func NewReconciler(
	payments paymentStore,
	parcels parcelStore,
	logger logx.Logger,
	reconciled counter,
	interval, pendingAge time.Duration,
) *Reconciler {
	if logger == nil {
		logger = logx.Nop()
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if pendingAge <= 0 {
		pendingAge = 2 * time.Minute
	}
	return &Reconciler{
		payments:   payments,
		parcels:    parcels,
		logger:     logger,
		reconciled: reconciled,
		interval:   interval,
		pendingAge: pendingAge,
		now:        time.Now,
	}
}

// Run executes passes on a ticker until the context is canceled.
func (r *Reconciler) Run(ctx context.Context) error {
	t := time.NewTicker(r.interval)
	defer t.Stop()

	r.logger.Info("payment reconciler started", logx.Duration("interval", r.interval))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			n, err := r.Pass(ctx)
			if err != nil {
				r.logger.Error("reconcile pass failed", logx.Any("err", err))
				continue
			}
			if n > 0 {
				r.logger.Info("reconcile pass finished", logx.Int("repaired", n))
			}
		}
	}
}

// Pass finishes every stale pending payment once and returns how many it repaired.
func (r *Reconciler) Pass(ctx context.Context) (int, error) {
	cutoff := r.now().Add(-r.pendingAge)
	pending, err := r.payments.ListPendingBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for i := range pending {
		p := &pending[i]
		if err := r.finish(ctx, p); err != nil {
			r.logger.Warn("reconcile payment failed",
				logx.String("payment_id", p.ID.Hex()),
				logx.Any("err", err),
			)
			continue
		}
		repaired++
		if r.reconciled != nil {
			r.reconciled.Inc()
		}
	}
	return repaired, nil
}

func (r *Reconciler) finish(ctx context.Context, p *domain.Payment) error {
	parcelID, err := primitive.ObjectIDFromHex(p.ParcelID)
	if err != nil {
		// unparseable reference, nothing to flip
		return r.payments.SetStatus(ctx, p.ID, domain.PaymentAbandoned)
	}

	parcel, err := r.parcels.Get(ctx, parcelID)
	if err != nil {
		return err
	}
	if parcel == nil {
		return r.payments.SetStatus(ctx, p.ID, domain.PaymentAbandoned)
	}

	if !parcel.Paid() {
		if _, err := r.parcels.MarkPaid(ctx, parcelID); err != nil {
			return err
		}
	}
	return r.payments.SetStatus(ctx, p.ID, domain.PaymentCompleted)
}

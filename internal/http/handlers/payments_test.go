package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"parcel-server/internal/apperr"
	"parcel-server/internal/domain"
	"parcel-server/internal/logx"
)

type stubPaymentUsecase struct {
	historyOut []domain.Payment
	historyErr error

	recordID  primitive.ObjectID
	recordErr error
	recorded  *domain.Payment

	secret    string
	intentErr error
	amount    int64
}

func (s *stubPaymentUsecase) History(_ context.Context, email string) ([]domain.Payment, error) {
	return s.historyOut, s.historyErr
}

func (s *stubPaymentUsecase) Record(_ context.Context, p *domain.Payment) (primitive.ObjectID, error) {
	s.recorded = p
	return s.recordID, s.recordErr
}

func (s *stubPaymentUsecase) CreateIntent(_ context.Context, amountInCents int64) (string, error) {
	s.amount = amountInCents
	return s.secret, s.intentErr
}

func TestPaymentRecord_Created(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID()
	uc := &stubPaymentUsecase{recordID: id}
	h := NewPaymentHandler(logx.Nop(), uc)

	parcelID := primitive.NewObjectID().Hex()
	body := `{"parcelId":"` + parcelID + `","email":"a@b.c","amount":42.5,"paymentMethod":"card","transactionId":"tx_1"}`
	rr := httptest.NewRecorder()
	h.Record(rr, httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rr.Code)
	res := decodeBody[paymentRecordedResponse](t, rr.Body)
	require.Equal(t, "Payment recorded and parcel marked as paid", res.Message)
	require.Equal(t, id.Hex(), res.InsertedID)

	require.Equal(t, parcelID, uc.recorded.ParcelID)
	require.Equal(t, 42.5, uc.recorded.Amount)
	require.Equal(t, "tx_1", uc.recorded.TransactionID)
}

func TestPaymentRecord_MalformedParcelID(t *testing.T) {
	t.Parallel()

	uc := &stubPaymentUsecase{recordErr: apperr.ErrInvalid}
	h := NewPaymentHandler(logx.Nop(), uc)

	rr := httptest.NewRecorder()
	h.Record(rr, httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(`{"parcelId":"nope"}`)))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	res := decodeBody[messageResponse](t, rr.Body)
	require.Equal(t, "invalid parcelId", res.Message)
}

func TestPaymentRecord_AbsentOrPaidParcel(t *testing.T) {
	t.Parallel()

	uc := &stubPaymentUsecase{recordErr: apperr.ErrNotFound}
	h := NewPaymentHandler(logx.Nop(), uc)

	body := `{"parcelId":"` + primitive.NewObjectID().Hex() + `"}`
	rr := httptest.NewRecorder()
	h.Record(rr, httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body)))

	require.Equal(t, http.StatusNotFound, rr.Code)
	res := decodeBody[messageResponse](t, rr.Body)
	require.Equal(t, "Parcel not found or already paid", res.Message)
}

func TestPaymentRecord_StoreFailure(t *testing.T) {
	t.Parallel()

	uc := &stubPaymentUsecase{recordErr: errors.New("boom")}
	h := NewPaymentHandler(logx.Nop(), uc)

	body := `{"parcelId":"` + primitive.NewObjectID().Hex() + `"}`
	rr := httptest.NewRecorder()
	h.Record(rr, httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body)))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	res := decodeBody[messageResponse](t, rr.Body)
	require.Equal(t, "Failed to record payment", res.Message)
}

func TestPaymentHistory_ReturnsPayments(t *testing.T) {
	t.Parallel()

	uc := &stubPaymentUsecase{historyOut: []domain.Payment{{Email: "a@b.c"}}}
	h := NewPaymentHandler(logx.Nop(), uc)

	rr := httptest.NewRecorder()
	h.History(rr, httptest.NewRequest(http.MethodGet, "/payments?email=a%40b.c", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	out := decodeBody[[]domain.Payment](t, rr.Body)
	require.Len(t, out, 1)
}

func TestPaymentHistory_StoreFailure(t *testing.T) {
	t.Parallel()

	uc := &stubPaymentUsecase{historyErr: errors.New("boom")}
	h := NewPaymentHandler(logx.Nop(), uc)

	rr := httptest.NewRecorder()
	h.History(rr, httptest.NewRequest(http.MethodGet, "/payments", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	res := decodeBody[messageResponse](t, rr.Body)
	require.Equal(t, "Failed to get payments", res.Message)
}

func TestCreateIntent_ReturnsClientSecret(t *testing.T) {
	t.Parallel()

	uc := &stubPaymentUsecase{secret: "pi_secret_123"}
	h := NewPaymentHandler(logx.Nop(), uc)

	rr := httptest.NewRecorder()
	h.CreateIntent(rr, httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"amountInCents":2599}`)))

	require.Equal(t, http.StatusOK, rr.Code)
	res := decodeBody[clientSecretResponse](t, rr.Body)
	require.Equal(t, "pi_secret_123", res.ClientSecret)
	require.Equal(t, int64(2599), uc.amount)
}

func TestCreateIntent_GatewayErrorPassesThrough(t *testing.T) {
	t.Parallel()

	uc := &stubPaymentUsecase{intentErr: errors.New("Amount must be at least 50 cents")}
	h := NewPaymentHandler(logx.Nop(), uc)

	rr := httptest.NewRecorder()
	h.CreateIntent(rr, httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"amountInCents":1}`)))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	res := decodeBody[gatewayErrorResponse](t, rr.Body)
	require.Equal(t, "Amount must be at least 50 cents", res.Error)
}

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

type stubParcelUsecase struct {
	listOut []domain.Parcel
	listErr error

	getOut domain.Parcel
	getErr error

	createID  primitive.ObjectID
	createErr error

	deleteN   int64
	deleteErr error

	listEmail string
	getID     string
	deleteID  string
}

func (s *stubParcelUsecase) List(_ context.Context, email string) ([]domain.Parcel, error) {
	s.listEmail = email
	return s.listOut, s.listErr
}

func (s *stubParcelUsecase) Get(_ context.Context, idHex string) (domain.Parcel, error) {
	s.getID = idHex
	return s.getOut, s.getErr
}

func (s *stubParcelUsecase) Create(_ context.Context, _ domain.Parcel) (primitive.ObjectID, error) {
	return s.createID, s.createErr
}

func (s *stubParcelUsecase) Delete(_ context.Context, idHex string) (int64, error) {
	s.deleteID = idHex
	return s.deleteN, s.deleteErr
}

func TestParcelList_FiltersByEmail(t *testing.T) {
	t.Parallel()

	uc := &stubParcelUsecase{listOut: []domain.Parcel{{"title": "books"}}}
	h := NewParcelHandler(logx.Nop(), uc)

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/parcels?email=alice%40example.com", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "alice@example.com", uc.listEmail)
	out := decodeBody[[]domain.Parcel](t, rr.Body)
	require.Len(t, out, 1)
}

func TestParcelList_StoreFailure(t *testing.T) {
	t.Parallel()

	uc := &stubParcelUsecase{listErr: errors.New("boom")}
	h := NewParcelHandler(logx.Nop(), uc)

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/parcels", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	res := decodeBody[messageResponse](t, rr.Body)
	require.Equal(t, "Failed to get parcels", res.Message)
}

func TestParcelGetByID_Found(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID().Hex()
	uc := &stubParcelUsecase{getOut: domain.Parcel{"title": "books"}}
	h := NewParcelHandler(logx.Nop(), uc)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/parcels/"+id, nil), "id", id)
	rr := httptest.NewRecorder()
	h.GetByID(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, id, uc.getID)
	out := decodeBody[domain.Parcel](t, rr.Body)
	require.Equal(t, "books", out["title"])
}

func TestParcelGetByID_NotFound(t *testing.T) {
	t.Parallel()

	uc := &stubParcelUsecase{getErr: apperr.ErrNotFound}
	h := NewParcelHandler(logx.Nop(), uc)

	id := primitive.NewObjectID().Hex()
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/parcels/"+id, nil), "id", id)
	rr := httptest.NewRecorder()
	h.GetByID(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	res := decodeBody[messageResponse](t, rr.Body)
	require.Equal(t, "Parcel not found", res.Message)
}

func TestParcelGetByID_MalformedIDReportsFetchFailure(t *testing.T) {
	t.Parallel()

	uc := &stubParcelUsecase{getErr: errors.New("parse parcel id")}
	h := NewParcelHandler(logx.Nop(), uc)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/parcels/nope", nil), "id", "nope")
	rr := httptest.NewRecorder()
	h.GetByID(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	res := decodeBody[messageResponse](t, rr.Body)
	require.Equal(t, "Failed to fetch parcel", res.Message)
}

func TestParcelCreate_Created(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID()
	uc := &stubParcelUsecase{createID: id}
	h := NewParcelHandler(logx.Nop(), uc)

	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/parcels", strings.NewReader(`{"title":"books","weight":2.5}`)))

	require.Equal(t, http.StatusCreated, rr.Code)
	res := decodeBody[insertedResponse](t, rr.Body)
	require.True(t, res.Inserted)
	require.Equal(t, id.Hex(), res.InsertedID)
}

func TestParcelCreate_StoreFailure(t *testing.T) {
	t.Parallel()

	uc := &stubParcelUsecase{createErr: errors.New("boom")}
	h := NewParcelHandler(logx.Nop(), uc)

	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/parcels", strings.NewReader(`{}`)))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	res := decodeBody[messageResponse](t, rr.Body)
	require.Equal(t, "Failed to create parcel", res.Message)
}

func TestParcelDelete_ReportsCount(t *testing.T) {
	t.Parallel()

	uc := &stubParcelUsecase{deleteN: 1}
	h := NewParcelHandler(logx.Nop(), uc)

	id := primitive.NewObjectID().Hex()
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/parcels/"+id, nil), "id", id)
	rr := httptest.NewRecorder()
	h.Delete(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	res := decodeBody[deletedResponse](t, rr.Body)
	require.Equal(t, int64(1), res.DeletedCount)
}

func TestParcelDelete_AbsentParcelReportsZero(t *testing.T) {
	t.Parallel()

	uc := &stubParcelUsecase{deleteN: 0}
	h := NewParcelHandler(logx.Nop(), uc)

	id := primitive.NewObjectID().Hex()
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/parcels/"+id, nil), "id", id)
	rr := httptest.NewRecorder()
	h.Delete(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	res := decodeBody[deletedResponse](t, rr.Body)
	require.Zero(t, res.DeletedCount)
}

func TestParcelDelete_MalformedIDReportsDeleteFailure(t *testing.T) {
	t.Parallel()

	uc := &stubParcelUsecase{deleteErr: errors.New("parse parcel id")}
	h := NewParcelHandler(logx.Nop(), uc)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/parcels/nope", nil), "id", "nope")
	rr := httptest.NewRecorder()
	h.Delete(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	res := decodeBody[messageResponse](t, rr.Body)
	require.Equal(t, "Failed to delete parcel", res.Message)
}

package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tempobemgasto/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

type mockOpportunityStore struct{ mock.Mock }

func (m *mockOpportunityStore) Opportunities(ctx context.Context) ([]*types.Opportunity, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*types.Opportunity)
	return out, args.Error(1)
}

func (m *mockOpportunityStore) Opportunity(ctx context.Context, id int64) (*types.Opportunity, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*types.Opportunity)
	return out, args.Error(1)
}

func (m *mockOpportunityStore) CreateOpportunity(ctx context.Context, in *types.OpportunityInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOpportunityStore) ReplaceOpportunity(ctx context.Context, id int64, in *types.OpportunityInput) (types.WriteOutcome, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(types.WriteOutcome), args.Error(1)
}

func (m *mockOpportunityStore) PatchOpportunity(ctx context.Context, id int64, changes map[string]any) (types.WriteOutcome, error) {
	args := m.Called(ctx, id, changes)
	return args.Get(0).(types.WriteOutcome), args.Error(1)
}

func (m *mockOpportunityStore) DeleteOpportunity(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockVolunteerStore struct{ mock.Mock }

func (m *mockVolunteerStore) Volunteers(ctx context.Context) ([]*types.Volunteer, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*types.Volunteer)
	return out, args.Error(1)
}

func (m *mockVolunteerStore) Volunteer(ctx context.Context, id int64) (*types.Volunteer, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*types.Volunteer)
	return out, args.Error(1)
}

type mockInscriptionStore struct{ mock.Mock }

func (m *mockInscriptionStore) InscriptionsByVolunteer(ctx context.Context, volunteerID int64) ([]*types.VolunteerInscription, error) {
	args := m.Called(ctx, volunteerID)
	out, _ := args.Get(0).([]*types.VolunteerInscription)
	return out, args.Error(1)
}

func (m *mockInscriptionStore) CreateInscription(ctx context.Context, req *types.InscriptionRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

type mockOngStore struct{ mock.Mock }

func (m *mockOngStore) Ongs(ctx context.Context) ([]*types.Ong, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*types.Ong)
	return out, args.Error(1)
}

type mockPinger struct{ mock.Mock }

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type testService struct {
	handler       http.Handler
	db            *mockPinger
	opportunities *mockOpportunityStore
	volunteers    *mockVolunteerStore
	inscriptions  *mockInscriptionStore
	ongs          *mockOngStore
}

func newTestService(t *testing.T) *testService {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	ts := &testService{
		db:            new(mockPinger),
		opportunities: new(mockOpportunityStore),
		volunteers:    new(mockVolunteerStore),
		inscriptions:  new(mockInscriptionStore),
		ongs:          new(mockOngStore),
	}

	s := New(&types.Config{APIPrefix: "/api"}, logger, ts.db, ts.opportunities, ts.volunteers, ts.inscriptions, ts.ongs)
	ts.handler = s.server.Handler

	t.Cleanup(func() {
		ts.db.AssertExpectations(t)
		ts.opportunities.AssertExpectations(t)
		ts.volunteers.AssertExpectations(t)
		ts.inscriptions.AssertExpectations(t)
		ts.ongs.AssertExpectations(t)
	})

	return ts
}

func (ts *testService) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

package seed

import (
	"context"
	"errors"
	"io"
	"testing"

	"tempobemgasto/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStores struct{ mock.Mock }

func (m *mockStores) ResolveOng(ctx context.Context, nome, endereco string) (int64, error) {
	args := m.Called(ctx, nome, endereco)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStores) Opportunities(ctx context.Context) ([]*types.Opportunity, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*types.Opportunity)
	return out, args.Error(1)
}

func (m *mockStores) CreateOpportunity(ctx context.Context, in *types.OpportunityInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStores) UpsertVolunteer(ctx context.Context, v *types.Volunteer) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockStores) CreateInscription(ctx context.Context, req *types.InscriptionRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func newSeeder(t *testing.T) (*Seeder, *mockStores) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	m := new(mockStores)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return New(logger, m, m, m, m), m
}

func TestRunEmptyDatabase(t *testing.T) {
	s, m := newSeeder(t)
	ctx := context.Background()

	for i, ong := range ongs {
		m.On("ResolveOng", ctx, ong.Nome, ong.Endereco).Return(int64(i+1), nil).Once()
	}
	m.On("Opportunities", ctx).Return([]*types.Opportunity{}, nil).Once()
	for i, in := range opportunities {
		m.On("CreateOpportunity", ctx, in).Return(int64(100+i), nil).Once()
	}
	m.On("UpsertVolunteer", ctx, mock.AnythingOfType("*types.Volunteer")).Return(nil).Times(len(volunteers))
	m.On("CreateInscription", ctx, mock.AnythingOfType("*types.InscriptionRequest")).Return(int64(1), nil).Times(len(applications))

	result, err := s.Run(ctx)
	require.NoError(t, err)

	assert.Len(t, result.Ongs, len(ongs))
	assert.Equal(t, "ecomar@temp.com", result.Ongs[0].Email)
	assert.Len(t, result.Opportunities, len(opportunities))
	assert.Len(t, result.Volunteers, len(volunteers))
	assert.Len(t, result.Inscriptions, len(applications))
	assert.Zero(t, result.Skipped)

	// the first application targets the first opportunity
	assert.Equal(t, int64(100), result.Inscriptions[0].OportunidadeID)
	assert.Equal(t, "12/04/1994", result.Inscriptions[0].Nascimento)
}

func TestRunIsIdempotent(t *testing.T) {
	s, m := newSeeder(t)
	ctx := context.Background()

	existing := make([]*types.Opportunity, 0, len(opportunities))
	for i, in := range opportunities {
		existing = append(existing, &types.Opportunity{ID: int64(100 + i), Titulo: in.Titulo, OngNome: in.OngNome})
	}

	m.On("ResolveOng", ctx, mock.Anything, mock.Anything).Return(int64(1), nil).Times(len(ongs))
	m.On("Opportunities", ctx).Return(existing, nil).Once()
	m.On("UpsertVolunteer", ctx, mock.Anything).Return(nil).Times(len(volunteers))
	m.On("CreateInscription", ctx, mock.Anything).Return(int64(0), types.ErrAlreadyEnrolled).Times(len(applications))

	result, err := s.Run(ctx)
	require.NoError(t, err)

	assert.Empty(t, result.Opportunities)
	assert.Empty(t, result.Inscriptions)
	assert.Equal(t, len(opportunities)+len(applications), result.Skipped)
	m.AssertNotCalled(t, "CreateOpportunity", mock.Anything, mock.Anything)
}

func TestRunStopsOnStoreError(t *testing.T) {
	s, m := newSeeder(t)
	ctx := context.Background()

	m.On("ResolveOng", ctx, ongs[0].Nome, ongs[0].Endereco).Return(int64(0), errors.New("connection reset")).Once()

	_, err := s.Run(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "EcoMar")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestApplicationsReferenceSeededOpportunities(t *testing.T) {
	known := make(map[string]bool, len(opportunities))
	for _, in := range opportunities {
		known[opportunityKey(in.OngNome, in.Titulo)] = true
	}

	for _, a := range applications {
		assert.True(t, known[opportunityKey(a.ong, a.titulo)], a.titulo)
	}
}

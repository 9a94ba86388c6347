package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tempobemgasto/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

type OpportunityStore interface {
	Opportunities(ctx context.Context) ([]*types.Opportunity, error)
	Opportunity(ctx context.Context, id int64) (*types.Opportunity, error)
	CreateOpportunity(ctx context.Context, in *types.OpportunityInput) (int64, error)
	ReplaceOpportunity(ctx context.Context, id int64, in *types.OpportunityInput) (types.WriteOutcome, error)
	PatchOpportunity(ctx context.Context, id int64, changes map[string]any) (types.WriteOutcome, error)
	DeleteOpportunity(ctx context.Context, id int64) error
}

type VolunteerStore interface {
	Volunteers(ctx context.Context) ([]*types.Volunteer, error)
	Volunteer(ctx context.Context, id int64) (*types.Volunteer, error)
}

type InscriptionStore interface {
	InscriptionsByVolunteer(ctx context.Context, volunteerID int64) ([]*types.VolunteerInscription, error)
	CreateInscription(ctx context.Context, req *types.InscriptionRequest) (int64, error)
}

type OngStore interface {
	Ongs(ctx context.Context) ([]*types.Ong, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Service struct {
	logger *logrus.Logger
	config *types.Config

	db              Pinger
	opportunityRepo OpportunityStore
	volunteerRepo   VolunteerStore
	inscriptionRepo InscriptionStore
	ongRepo         OngStore

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	db Pinger,
	opportunityRepo OpportunityStore,
	volunteerRepo VolunteerStore,
	inscriptionRepo InscriptionStore,
	ongRepo OngStore,
) *Service {
	mux := flow.New()

	s := &Service{
		logger:          logger,
		config:          config,
		db:              db,
		opportunityRepo: opportunityRepo,
		volunteerRepo:   volunteerRepo,
		inscriptionRepo: inscriptionRepo,
		ongRepo:         ongRepo,
	}

	s.buildRouter(mux)

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", config.ServerPort),
		Handler:           s.Handler(mux),
		ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	return s
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler wraps the router with the middleware that must run before route
// matching.
func (s *Service) Handler(mux *flow.Mux) http.Handler {
	return s.StripTrailingSlash(s.RequestID(s.LoggingMiddleware(mux)))
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.NotFound = http.HandlerFunc(s.handleNotFound)
	r.MethodNotAllowed = http.HandlerFunc(s.handleMethodNotAllowed)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	api := strings.TrimSuffix(s.config.APIPrefix, "/")
	root := api
	if root == "" {
		root = "/"
	}
	r.HandleFunc(root, s.handleRoot, http.MethodGet)

	r.HandleFunc(api+"/oportunidades", s.handleListOpportunities, http.MethodGet)
	r.HandleFunc(api+"/oportunidades", s.handleCreateOpportunity, http.MethodPost)
	r.HandleFunc(api+"/oportunidades/:id", s.handleGetOpportunity, http.MethodGet)
	r.HandleFunc(api+"/oportunidades/:id", s.handleReplaceOpportunity, http.MethodPut)
	r.HandleFunc(api+"/oportunidades/:id", s.handlePatchOpportunity, http.MethodPatch)
	r.HandleFunc(api+"/oportunidades/:id", s.handleDeleteOpportunity, http.MethodDelete)

	r.HandleFunc(api+"/voluntarios", s.handleListVolunteers, http.MethodGet)
	r.HandleFunc(api+"/voluntarios/:id", s.handleGetVolunteer, http.MethodGet)
	r.HandleFunc(api+"/voluntarios/:id/inscricoes", s.handleListVolunteerInscriptions, http.MethodGet)

	r.HandleFunc(api+"/inscricoes", s.handleCreateInscription, http.MethodPost)

	r.HandleFunc(api+"/ongs", s.handleListOngs, http.MethodGet)
}

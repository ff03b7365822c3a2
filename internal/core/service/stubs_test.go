package service

import (
	"context"
	"time"

	"github.com/freelancer-toolkit/api/internal/core/domain"
	"github.com/freelancer-toolkit/api/internal/core/ports"
)

// Hand-written stubs shared across the service tests. Only the methods a test
// exercises need a function; calling an unset one panics, which surfaces
// unexpected service behaviour immediately.

type stubUserRepo struct {
	createFn           func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByEmailFn      func(ctx context.Context, email string) (*domain.User, error)
	findByIDFn         func(ctx context.Context, id string) (*domain.User, error)
	listFn             func(ctx context.Context) ([]*domain.User, error)
	deleteFn           func(ctx context.Context, id string) error
	updateRoleFn       func(ctx context.Context, id, role string) error
	updateSuspendedFn  func(ctx context.Context, id string, suspended bool) error
	updateLastActiveFn func(ctx context.Context, id string) error
	countFn            func(ctx context.Context) (int64, error)
	countSuspendedFn   func(ctx context.Context) (int64, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.createFn(ctx, user)
}
func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findByEmailFn(ctx, email)
}
func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.findByIDFn(ctx, id)
}
func (s *stubUserRepo) List(ctx context.Context) ([]*domain.User, error) { return s.listFn(ctx) }
func (s *stubUserRepo) Delete(ctx context.Context, id string) error      { return s.deleteFn(ctx, id) }
func (s *stubUserRepo) UpdateRole(ctx context.Context, id, role string) error {
	return s.updateRoleFn(ctx, id, role)
}
func (s *stubUserRepo) UpdateSuspended(ctx context.Context, id string, suspended bool) error {
	return s.updateSuspendedFn(ctx, id, suspended)
}
func (s *stubUserRepo) UpdateLastActive(ctx context.Context, id string) error {
	return s.updateLastActiveFn(ctx, id)
}
func (s *stubUserRepo) Count(ctx context.Context) (int64, error) { return s.countFn(ctx) }
func (s *stubUserRepo) CountSuspended(ctx context.Context) (int64, error) {
	return s.countSuspendedFn(ctx)
}

type stubTaskRepo struct {
	createFn        func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	findByIDFn      func(ctx context.Context, id, userID string) (*domain.Task, error)
	listFn          func(ctx context.Context, userID string) ([]*domain.Task, error)
	updateFn        func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	deleteFn        func(ctx context.Context, id, userID string) error
	countByStatusFn func(ctx context.Context, status domain.TaskStatus) (int64, error)
}

func (s *stubTaskRepo) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	return s.createFn(ctx, task)
}
func (s *stubTaskRepo) FindByID(ctx context.Context, id, userID string) (*domain.Task, error) {
	return s.findByIDFn(ctx, id, userID)
}
func (s *stubTaskRepo) List(ctx context.Context, userID string) ([]*domain.Task, error) {
	return s.listFn(ctx, userID)
}
func (s *stubTaskRepo) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	return s.updateFn(ctx, task)
}
func (s *stubTaskRepo) Delete(ctx context.Context, id, userID string) error {
	return s.deleteFn(ctx, id, userID)
}
func (s *stubTaskRepo) CountByStatus(ctx context.Context, status domain.TaskStatus) (int64, error) {
	return s.countByStatusFn(ctx, status)
}

type stubProjectRepo struct {
	createFn   func(ctx context.Context, project *domain.Project) (*domain.Project, error)
	findByIDFn func(ctx context.Context, id, userID string) (*domain.Project, error)
	listFn     func(ctx context.Context, userID string) ([]*domain.Project, error)
	updateFn   func(ctx context.Context, project *domain.Project) (*domain.Project, error)
	deleteFn   func(ctx context.Context, id, userID string) error
}

func (s *stubProjectRepo) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	return s.createFn(ctx, project)
}
func (s *stubProjectRepo) FindByID(ctx context.Context, id, userID string) (*domain.Project, error) {
	return s.findByIDFn(ctx, id, userID)
}
func (s *stubProjectRepo) List(ctx context.Context, userID string) ([]*domain.Project, error) {
	return s.listFn(ctx, userID)
}
func (s *stubProjectRepo) Update(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	return s.updateFn(ctx, project)
}
func (s *stubProjectRepo) Delete(ctx context.Context, id, userID string) error {
	return s.deleteFn(ctx, id, userID)
}

type stubInvoiceRepo struct {
	createFn        func(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	findByIDFn      func(ctx context.Context, id, userID string) (*domain.Invoice, error)
	listFn          func(ctx context.Context, filter ports.InvoiceFilter) ([]*domain.Invoice, error)
	updateFn        func(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	deleteFn        func(ctx context.Context, id, userID string) error
	countByStatusFn func(ctx context.Context, status domain.InvoiceStatus) (int64, error)
	sumPaidAmountFn func(ctx context.Context) (float64, error)
}

func (s *stubInvoiceRepo) Create(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	return s.createFn(ctx, invoice)
}
func (s *stubInvoiceRepo) FindByID(ctx context.Context, id, userID string) (*domain.Invoice, error) {
	return s.findByIDFn(ctx, id, userID)
}
func (s *stubInvoiceRepo) List(ctx context.Context, filter ports.InvoiceFilter) ([]*domain.Invoice, error) {
	return s.listFn(ctx, filter)
}
func (s *stubInvoiceRepo) Update(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	return s.updateFn(ctx, invoice)
}
func (s *stubInvoiceRepo) Delete(ctx context.Context, id, userID string) error {
	return s.deleteFn(ctx, id, userID)
}
func (s *stubInvoiceRepo) CountByStatus(ctx context.Context, status domain.InvoiceStatus) (int64, error) {
	return s.countByStatusFn(ctx, status)
}
func (s *stubInvoiceRepo) SumPaidAmount(ctx context.Context) (float64, error) {
	return s.sumPaidAmountFn(ctx)
}

type stubConversionRepo struct {
	createFn func(ctx context.Context, conv *domain.CurrencyConversion) (*domain.CurrencyConversion, error)
	listFn   func(ctx context.Context, userID string) ([]*domain.CurrencyConversion, error)
	deleteFn func(ctx context.Context, id, userID string) error
}

func (s *stubConversionRepo) Create(ctx context.Context, conv *domain.CurrencyConversion) (*domain.CurrencyConversion, error) {
	return s.createFn(ctx, conv)
}
func (s *stubConversionRepo) List(ctx context.Context, userID string) ([]*domain.CurrencyConversion, error) {
	return s.listFn(ctx, userID)
}
func (s *stubConversionRepo) Delete(ctx context.Context, id, userID string) error {
	return s.deleteFn(ctx, id, userID)
}

type stubWorkspaceRepo struct {
	createFn   func(ctx context.Context, ws *domain.Workspace) (*domain.Workspace, error)
	findByIDFn func(ctx context.Context, id, userID string) (*domain.Workspace, error)
	listFn     func(ctx context.Context, userID string) ([]*domain.Workspace, error)
	deleteFn   func(ctx context.Context, id, userID string) error
}

func (s *stubWorkspaceRepo) Create(ctx context.Context, ws *domain.Workspace) (*domain.Workspace, error) {
	return s.createFn(ctx, ws)
}
func (s *stubWorkspaceRepo) FindByID(ctx context.Context, id, userID string) (*domain.Workspace, error) {
	return s.findByIDFn(ctx, id, userID)
}
func (s *stubWorkspaceRepo) List(ctx context.Context, userID string) ([]*domain.Workspace, error) {
	return s.listFn(ctx, userID)
}
func (s *stubWorkspaceRepo) Delete(ctx context.Context, id, userID string) error {
	return s.deleteFn(ctx, id, userID)
}

type stubExchangeClient struct {
	pairRateFn func(ctx context.Context, from, to string) (float64, error)
}

func (s *stubExchangeClient) PairRate(ctx context.Context, from, to string) (float64, error) {
	return s.pairRateFn(ctx, from, to)
}

type stubRateCache struct {
	getFn func(ctx context.Context, from, to string) (float64, bool, error)
	setFn func(ctx context.Context, from, to string, rate float64) error
}

func (s *stubRateCache) Get(ctx context.Context, from, to string) (float64, bool, error) {
	return s.getFn(ctx, from, to)
}
func (s *stubRateCache) Set(ctx context.Context, from, to string, rate float64) error {
	return s.setFn(ctx, from, to, rate)
}

type stubPlacesClient struct {
	searchFn  func(ctx context.Context, location string) ([]ports.Place, error)
	geocodeFn func(ctx context.Context, location string) (float64, float64, error)
}

func (s *stubPlacesClient) SearchWorkspaces(ctx context.Context, location string) ([]ports.Place, error) {
	return s.searchFn(ctx, location)
}
func (s *stubPlacesClient) Geocode(ctx context.Context, location string) (float64, float64, error) {
	return s.geocodeFn(ctx, location)
}

type stubTimezoneClient struct {
	lookupFn func(ctx context.Context, lat, lng float64, at time.Time) (*ports.TimezoneInfo, error)
}

func (s *stubTimezoneClient) Lookup(ctx context.Context, lat, lng float64, at time.Time) (*ports.TimezoneInfo, error) {
	return s.lookupFn(ctx, lat, lng, at)
}

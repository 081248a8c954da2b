package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driven"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driving"
)

// Ensure AdminService implements the interface.
var _ driving.AdminService = (*AdminService)(nil)

// AdminService drives the console's CRUD and moderation screens. The
// backend owns all business rules; this layer validates input shape and
// delegates.
type AdminService struct {
	api driven.AdminAPI
}

// NewAdminService creates a new admin service.
func NewAdminService(api driven.AdminAPI) *AdminService {
	return &AdminService{api: api}
}

// ListInstitutions returns all registered institutions.
func (s *AdminService) ListInstitutions(ctx context.Context) ([]domain.Institution, error) {
	return s.api.ListInstitutions(ctx)
}

// GetInstitution retrieves one institution by ID.
func (s *AdminService) GetInstitution(ctx context.Context, id string) (*domain.Institution, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("institution id is required: %w", domain.ErrInvalidInput)
	}
	return s.api.GetInstitution(ctx, id)
}

// CreateInstitution registers a new institution.
func (s *AdminService) CreateInstitution(ctx context.Context, inst *domain.Institution) (*domain.Institution, error) {
	if inst == nil || strings.TrimSpace(inst.Name) == "" {
		return nil, fmt.Errorf("institution name is required: %w", domain.ErrInvalidInput)
	}
	return s.api.CreateInstitution(ctx, inst)
}

// ListSubscriptions returns subscriptions, optionally filtered by institution.
func (s *AdminService) ListSubscriptions(ctx context.Context, institutionID string) ([]domain.Subscription, error) {
	return s.api.ListSubscriptions(ctx, institutionID)
}

// ListInvoices returns all invoices.
func (s *AdminService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return s.api.ListInvoices(ctx)
}

// GetInvoice retrieves one invoice by ID.
func (s *AdminService) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("invoice id is required: %w", domain.ErrInvalidInput)
	}
	return s.api.GetInvoice(ctx, id)
}

// ListPayments returns payments, optionally filtered by review status.
func (s *AdminService) ListPayments(ctx context.Context, status domain.ReviewStatus) ([]domain.Payment, error) {
	return s.api.ListPayments(ctx, status)
}

// ReviewPayment approves or rejects a manual payment.
func (s *AdminService) ReviewPayment(ctx context.Context, id string, approve bool) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("payment id is required: %w", domain.ErrInvalidInput)
	}
	return s.api.ReviewPayment(ctx, id, approve)
}

// ListLawyerProfiles returns lawyer profiles, optionally filtered by review status.
func (s *AdminService) ListLawyerProfiles(ctx context.Context, status domain.ReviewStatus) ([]domain.LawyerProfile, error) {
	return s.api.ListLawyerProfiles(ctx, status)
}

// ReviewLawyerProfile approves or rejects a lawyer profile.
func (s *AdminService) ReviewLawyerProfile(ctx context.Context, id string, approve bool) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("lawyer profile id is required: %w", domain.ErrInvalidInput)
	}
	return s.api.ReviewLawyerProfile(ctx, id, approve)
}

// ListCourts returns the court reference list.
func (s *AdminService) ListCourts(ctx context.Context) ([]domain.Court, error) {
	return s.api.ListCourts(ctx)
}

// DownloadDocument fetches a document's raw bytes.
func (s *AdminService) DownloadDocument(ctx context.Context, id string) ([]byte, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("document id is required: %w", domain.ErrInvalidInput)
	}
	return s.api.DownloadDocument(ctx, id)
}

package driving

import (
	"context"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
)

// AdminService drives the console's CRUD and moderation screens.
type AdminService interface {
	ListInstitutions(ctx context.Context) ([]domain.Institution, error)
	GetInstitution(ctx context.Context, id string) (*domain.Institution, error)
	CreateInstitution(ctx context.Context, inst *domain.Institution) (*domain.Institution, error)

	ListSubscriptions(ctx context.Context, institutionID string) ([]domain.Subscription, error)

	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*domain.Invoice, error)

	ListPayments(ctx context.Context, status domain.ReviewStatus) ([]domain.Payment, error)
	ReviewPayment(ctx context.Context, id string, approve bool) error

	ListLawyerProfiles(ctx context.Context, status domain.ReviewStatus) ([]domain.LawyerProfile, error)
	ReviewLawyerProfile(ctx context.Context, id string, approve bool) error

	ListCourts(ctx context.Context) ([]domain.Court, error)

	DownloadDocument(ctx context.Context, id string) ([]byte, error)
}

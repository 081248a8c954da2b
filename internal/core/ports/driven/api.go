package driven

import (
	"context"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
)

// AuthAPI covers the authentication endpoints of the admin backend.
type AuthAPI interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (*domain.AccessToken, error)

	// ConfirmTwoFactor completes a login that required a 2FA code.
	ConfirmTwoFactor(ctx context.Context, email, code string) (*domain.AccessToken, error)
}

// AssistantAPI covers the AI commentary/summary endpoints.
type AssistantAPI interface {
	// Ask sends a question on a thread and returns the assistant reply.
	// An empty threadID starts a new thread.
	Ask(ctx context.Context, threadID, question string) (*domain.AssistantMessage, error)

	// Summarise requests a summary of a document by ID.
	Summarise(ctx context.Context, documentID string) (*domain.AssistantMessage, error)
}

// AdminAPI covers the console's CRUD and moderation endpoints.
// These are thin pass-throughs; the backend owns all business rules.
type AdminAPI interface {
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

	// DownloadDocument fetches a document's bytes. The call is exempt from
	// duplicate suppression because suppressing a partial read would
	// corrupt the stream.
	DownloadDocument(ctx context.Context, id string) ([]byte, error)
}

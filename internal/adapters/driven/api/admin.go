package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
)

// ListInstitutions returns all institutions.
func (c *Client) ListInstitutions(ctx context.Context) ([]domain.Institution, error) {
	var out []domain.Institution
	if err := c.getJSON(ctx, "/institutions", nil, &out); err != nil {
		return nil, fmt.Errorf("list institutions: %w", err)
	}
	return out, nil
}

// GetInstitution returns one institution by ID.
func (c *Client) GetInstitution(ctx context.Context, id string) (*domain.Institution, error) {
	var out domain.Institution
	if err := c.getJSON(ctx, "/institutions/"+id, nil, &out); err != nil {
		return nil, fmt.Errorf("get institution: %w", err)
	}
	return &out, nil
}

// CreateInstitution registers a new institution.
func (c *Client) CreateInstitution(ctx context.Context, inst *domain.Institution) (*domain.Institution, error) {
	if inst == nil || inst.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	var out domain.Institution
	err := c.postJSON(ctx, "/institutions", map[string]any{
		"name":    inst.Name,
		"country": inst.Country,
		"email":   inst.Email,
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("create institution: %w", err)
	}
	return &out, nil
}

// ListSubscriptions returns subscriptions, optionally filtered by
// institution.
func (c *Client) ListSubscriptions(ctx context.Context, institutionID string) ([]domain.Subscription, error) {
	var params map[string]string
	if institutionID != "" {
		params = map[string]string{"institution_id": institutionID}
	}

	var out []domain.Subscription
	if err := c.getJSON(ctx, "/subscriptions", params, &out); err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return out, nil
}

// ListInvoices returns all invoices.
func (c *Client) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var out []domain.Invoice
	if err := c.getJSON(ctx, "/invoices", nil, &out); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return out, nil
}

// GetInvoice returns one invoice by ID.
func (c *Client) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	var out domain.Invoice
	if err := c.getJSON(ctx, "/invoices/"+id, nil, &out); err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &out, nil
}

// ListPayments returns payments, optionally filtered by review status.
func (c *Client) ListPayments(ctx context.Context, status domain.ReviewStatus) ([]domain.Payment, error) {
	var params map[string]string
	if status != "" {
		params = map[string]string{"status": string(status)}
	}

	var out []domain.Payment
	if err := c.getJSON(ctx, "/payments", params, &out); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return out, nil
}

// ReviewPayment approves or rejects a payment under review.
func (c *Client) ReviewPayment(ctx context.Context, id string, approve bool) error {
	verdict := "reject"
	if approve {
		verdict = "approve"
	}
	if err := c.postJSON(ctx, "/payments/"+id+"/review", map[string]any{"verdict": verdict}, nil); err != nil {
		return fmt.Errorf("review payment: %w", err)
	}
	return nil
}

// ListLawyerProfiles returns directory profiles, optionally filtered by
// moderation status.
func (c *Client) ListLawyerProfiles(ctx context.Context, status domain.ReviewStatus) ([]domain.LawyerProfile, error) {
	var params map[string]string
	if status != "" {
		params = map[string]string{"status": string(status)}
	}

	var out []domain.LawyerProfile
	if err := c.getJSON(ctx, "/lawyers", params, &out); err != nil {
		return nil, fmt.Errorf("list lawyer profiles: %w", err)
	}
	return out, nil
}

// ReviewLawyerProfile approves or rejects a directory profile.
func (c *Client) ReviewLawyerProfile(ctx context.Context, id string, approve bool) error {
	verdict := "reject"
	if approve {
		verdict = "approve"
	}
	if err := c.postJSON(ctx, "/lawyers/"+id+"/review", map[string]any{"verdict": verdict}, nil); err != nil {
		return fmt.Errorf("review lawyer profile: %w", err)
	}
	return nil
}

// ListCourts returns the court register.
func (c *Client) ListCourts(ctx context.Context) ([]domain.Court, error) {
	var out []domain.Court
	if err := c.getJSON(ctx, "/courts", nil, &out); err != nil {
		return nil, fmt.Errorf("list courts: %w", err)
	}
	return out, nil
}

// DownloadDocument fetches a document's bytes. The blob response type
// keeps the call clear of duplicate suppression.
func (c *Client) DownloadDocument(ctx context.Context, id string) ([]byte, error) {
	resp, err := c.gw.Do(ctx, &domain.RequestDescriptor{
		Method:       http.MethodGet,
		URL:          "/documents/" + id + "/download",
		ResponseType: domain.ResponseBlob,
	})
	if err != nil {
		return nil, fmt.Errorf("download document: %w", err)
	}
	return resp.Body, nil
}

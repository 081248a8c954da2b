package domain

import "time"

// ReviewStatus is the moderation state of a reviewable record
// (payments under review, lawyer-directory profiles).
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// Institution is a subscribing organisation (law firm, court, university).
type Institution struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country,omitempty"`
	Email     string    `json:"email,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Subscription ties an institution to a content package for a period.
type Subscription struct {
	ID            string    `json:"id"`
	InstitutionID string    `json:"institution_id"`
	Package       string    `json:"package"`
	Seats         int       `json:"seats"`
	StartsAt      time.Time `json:"starts_at"`
	ExpiresAt     time.Time `json:"expires_at"`
	Active        bool      `json:"active"`
}

// Invoice is a billing record raised against an institution.
type Invoice struct {
	ID            string    `json:"id"`
	Number        string    `json:"number"`
	InstitutionID string    `json:"institution_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Paid          bool      `json:"paid"`
	IssuedAt      time.Time `json:"issued_at"`
	DueAt         time.Time `json:"due_at"`
}

// Payment is a payment submitted against an invoice, pending admin review.
type Payment struct {
	ID        string       `json:"id"`
	InvoiceID string       `json:"invoice_id"`
	Reference string       `json:"reference"`
	Provider  string       `json:"provider,omitempty"`
	Amount    float64      `json:"amount"`
	Currency  string       `json:"currency"`
	Status    ReviewStatus `json:"status"`
	PaidAt    time.Time    `json:"paid_at,omitempty"`
}

// LawyerProfile is a lawyer-directory entry awaiting moderation.
type LawyerProfile struct {
	ID        string       `json:"id"`
	FullName  string       `json:"full_name"`
	Firm      string       `json:"firm,omitempty"`
	Country   string       `json:"country,omitempty"`
	Specialty string       `json:"specialty,omitempty"`
	Status    ReviewStatus `json:"status"`
}

// Court is a court register entry used to file law reports.
type Court struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Country      string `json:"country,omitempty"`
	Level        string `json:"level,omitempty"`
}

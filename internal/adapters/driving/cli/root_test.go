package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driving"
)

// mockSessionService implements driving.SessionService.
type mockSessionService struct {
	token     *domain.AccessToken
	loggedOut bool
}

func (m *mockSessionService) Login(_ context.Context, _, _ string) error {
	m.token = &domain.AccessToken{Token: "tok"}
	return nil
}

func (m *mockSessionService) ConfirmTwoFactor(_ context.Context, _, _ string) error {
	m.token = &domain.AccessToken{Token: "tok-2fa"}
	return nil
}

func (m *mockSessionService) Logout() error {
	m.token = nil
	m.loggedOut = true
	return nil
}

func (m *mockSessionService) Status() *domain.AccessToken { return m.token }

// mockAssistantService implements driving.AssistantService.
type mockAssistantService struct {
	threads []domain.Thread
	sources []domain.SourceRef
}

func (m *mockAssistantService) Ask(_ context.Context, _, question string) (*driving.AskResult, error) {
	return &driving.AskResult{
		Message: &domain.AssistantMessage{ID: "reply-1", ThreadID: "thread-1", Role: domain.RoleAssistant, Sources: m.sources},
		Sections: []domain.Section{
			{Title: "Overview", Key: domain.SectionOverview, Content: "Reply to: " + question},
		},
	}, nil
}

func (m *mockAssistantService) Summarise(context.Context, string) (*driving.AskResult, error) {
	return &driving.AskResult{
		Message:  &domain.AssistantMessage{ID: "summary-1"},
		Sections: []domain.Section{{Title: "Key Points", Key: domain.SectionKeyPoints, Content: "- Point."}},
	}, nil
}

func (m *mockAssistantService) Threads(context.Context) ([]domain.Thread, error) {
	return m.threads, nil
}

func (m *mockAssistantService) Thread(_ context.Context, id string) (*domain.Thread, error) {
	for _, thread := range m.threads {
		if thread.ID == id {
			return &thread, nil
		}
	}
	return nil, domain.ErrNotFound
}

// mockAdminService implements driving.AdminService.
type mockAdminService struct {
	payments []domain.Payment
	reviewed string
	approved bool
}

func (m *mockAdminService) ListInstitutions(context.Context) ([]domain.Institution, error) {
	return []domain.Institution{{ID: "inst-1", Name: "Kenya School of Law", Active: true}}, nil
}

func (m *mockAdminService) GetInstitution(_ context.Context, id string) (*domain.Institution, error) {
	return &domain.Institution{ID: id, Name: "Kenya School of Law"}, nil
}

func (m *mockAdminService) CreateInstitution(_ context.Context, inst *domain.Institution) (*domain.Institution, error) {
	out := *inst
	out.ID = "inst-new"
	return &out, nil
}

func (m *mockAdminService) ListSubscriptions(context.Context, string) ([]domain.Subscription, error) {
	return nil, nil
}

func (m *mockAdminService) ListInvoices(context.Context) ([]domain.Invoice, error) {
	return []domain.Invoice{{ID: "inv-1", Number: "INV-001", Amount: 45000, Currency: "KES"}}, nil
}

func (m *mockAdminService) GetInvoice(_ context.Context, id string) (*domain.Invoice, error) {
	return &domain.Invoice{ID: id, Number: "INV-001"}, nil
}

func (m *mockAdminService) ListPayments(context.Context, domain.ReviewStatus) ([]domain.Payment, error) {
	return m.payments, nil
}

func (m *mockAdminService) ReviewPayment(_ context.Context, id string, approve bool) error {
	m.reviewed = id
	m.approved = approve
	return nil
}

func (m *mockAdminService) ListLawyerProfiles(context.Context, domain.ReviewStatus) ([]domain.LawyerProfile, error) {
	return nil, nil
}

func (m *mockAdminService) ReviewLawyerProfile(_ context.Context, id string, approve bool) error {
	m.reviewed = id
	m.approved = approve
	return nil
}

func (m *mockAdminService) ListCourts(context.Context) ([]domain.Court, error) {
	return []domain.Court{{ID: "court-1", Name: "Supreme Court of Kenya", Abbreviation: "SCK"}}, nil
}

func (m *mockAdminService) DownloadDocument(context.Context, string) ([]byte, error) {
	return []byte("%PDF-1.7"), nil
}

// setupTestServices installs mock services and returns a cleanup func.
func setupTestServices() func() {
	oldSession, oldAssistant, oldAdmin := sessionService, assistantService, adminService
	sessionService = &mockSessionService{}
	assistantService = &mockAssistantService{}
	adminService = &mockAdminService{}
	return func() {
		sessionService, assistantService, adminService = oldSession, oldAssistant, oldAdmin
	}
}

// execute runs the root command with args and captures output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "lawadmin", rootCmd.Use)
}

func TestStatusCmd_NotSignedIn(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Not signed in")
}

func TestLogoutCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out")
}

func TestAskCmd_PrintsSections(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	askPlain = true
	defer func() { askPlain = false }()

	out, err := execute(t, "ask", "--plain", "What is a chattel mortgage?")
	require.NoError(t, err)
	assert.Contains(t, out, "Overview")
	assert.Contains(t, out, "Reply to: What is a chattel mortgage?")
	assert.Contains(t, out, "Thread: thread-1")
}

func TestAskCmd_PrintsCitations(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	assistantService = &mockAssistantService{sources: []domain.SourceRef{
		{Title: "Chattels Transfer Act", Citation: "Cap 28, s 4"},
	}}
	askPlain = true
	defer func() { askPlain = false }()

	out, err := execute(t, "ask", "--plain", "What is a chattel mortgage?")
	require.NoError(t, err)
	assert.Contains(t, out, "CITATIONS")
	assert.Contains(t, out, "Chattels Transfer Act, Cap 28, s 4")
}

func TestAskCmd_RequiresQuestion(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "ask")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAskCmd_ServiceNotConfigured(t *testing.T) {
	oldAssistant := assistantService
	assistantService = nil
	defer func() { assistantService = oldAssistant }()

	_, err := execute(t, "ask", "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assistant service not configured")
}

func TestThreadListCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "thread", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No cached conversations")
}

func TestInstitutionListCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "institution", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Kenya School of Law")
	assert.Contains(t, out, "active")
}

func TestPaymentApproveCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	admin := adminService.(*mockAdminService)

	out, err := execute(t, "payment", "approve", "pay-42")
	require.NoError(t, err)
	assert.Contains(t, out, "Payment pay-42 approved")
	assert.Equal(t, "pay-42", admin.reviewed)
	assert.True(t, admin.approved)
}

func TestPaymentListCmd_InvalidStatus(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	oldStatus := paymentStatus
	defer func() { paymentStatus = oldStatus }()

	_, err := execute(t, "payment", "list", "--status", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}

func TestLawyerRejectCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	admin := adminService.(*mockAdminService)

	out, err := execute(t, "lawyer", "reject", "lawyer-7")
	require.NoError(t, err)
	assert.Contains(t, out, "Lawyer profile lawyer-7 rejected")
	assert.False(t, admin.approved)
}

func TestCourtListCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "court", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Supreme Court of Kenya")
	assert.Contains(t, out, "SCK")
}

func TestReviewStatusFromFlag(t *testing.T) {
	status, err := reviewStatusFromFlag("pending")
	require.NoError(t, err)
	assert.Equal(t, domain.ReviewPending, status)

	status, err = reviewStatusFromFlag("all")
	require.NoError(t, err)
	assert.Empty(t, status)

	_, err = reviewStatusFromFlag("nope")
	assert.Error(t, err)
}

package service

import (
	"context"
	"sync"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/labtrack/labtrack-service/internal/config"
	"github.com/labtrack/labtrack-service/internal/domain"
	"github.com/labtrack/labtrack-service/internal/events"
	"github.com/labtrack/labtrack-service/internal/repository/memory"
	apperrors "github.com/labtrack/labtrack-service/pkg/util/errorutil"
)

type fixture struct {
	store      *memory.Store
	dispatcher events.Dispatcher
	auth       *AuthService
	users      *UserService
	assets     *AssetService
	tickets    *TicketService
	chatbot    *ChatbotService
	dashboard  *DashboardService

	admin, eng, tech domain.Principal
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	dispatcher := events.NewInMemoryDispatcher()
	f := &fixture{
		store:      store,
		dispatcher: dispatcher,
		auth: NewAuthService(config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 5, BcryptCost: bcrypt.MinCost},
			AuthDependencies{UserRepo: store.Users()}),
		users:     NewUserService(store.Users()),
		assets:    NewAssetService(store.Assets(), dispatcher),
		dashboard: NewDashboardService(store.Assets(), store.Tickets()),
	}
	f.tickets = NewTicketService(TicketDependencies{
		TicketRepo:  store.Tickets(),
		CommentRepo: store.Comments(),
		AssetRepo:   store.Assets(),
		UserRepo:    store.Users(),
		Dispatcher:  dispatcher,
	})
	f.chatbot = NewChatbotService(f.tickets, f.assets)

	f.admin = f.register(t, "admin@lab.test", domain.RoleAdmin)
	f.eng = f.register(t, "eng@lab.test", domain.RoleEngineer)
	f.tech = f.register(t, "tech@lab.test", domain.RoleTechnician)
	return f
}

func (f *fixture) register(t *testing.T, email string, role domain.Role) domain.Principal {
	t.Helper()
	user, err := f.auth.Register(context.Background(), RegisterInput{Email: email, Password: "secret", Role: role})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return domain.Principal{ID: user.ID, Role: user.Role}
}

func (f *fixture) asset(t *testing.T, code string, status domain.AssetStatus) *domain.Asset {
	t.Helper()
	asset, err := f.assets.Create(context.Background(), f.admin, AssetCreateInput{
		Name: "Scope " + code, AssetCode: code, Location: "Lab 1", Status: status, QRCode: "QR-" + code,
	})
	if err != nil {
		t.Fatalf("create asset %s: %v", code, err)
	}
	return asset
}

func (f *fixture) ticket(t *testing.T, title, assetID string, priority domain.TicketPriority) *domain.Ticket {
	t.Helper()
	ticket, err := f.tickets.CreateTicket(context.Background(), f.eng, TicketCreateInput{Title: title, AssetID: assetID, Priority: priority})
	if err != nil {
		t.Fatalf("create ticket %s: %v", title, err)
	}
	return ticket
}

func wantCode(t *testing.T, err error, code string) {
	t.Helper()
	if !apperrors.IsCode(err, code) {
		t.Fatalf("err = %v, want code %s", err, code)
	}
}

// recorder captures published events.
type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) handle(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

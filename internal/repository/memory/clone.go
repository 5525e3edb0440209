package memory

import (
	"strings"

	"github.com/labtrack/labtrack-service/internal/domain"
)

// Rows are stored with their own string memory. Callers may hand in strings
// that alias reusable buffers, and a stored id that changes underneath the
// map would silently break lookups.

func cloneUser(u *domain.User) domain.User {
	out := *u
	out.Email = strings.Clone(u.Email)
	out.PasswordHash = strings.Clone(u.PasswordHash)
	out.Role = domain.Role(strings.Clone(string(u.Role)))
	out.FullName = clonePtr(u.FullName)
	return out
}

func cloneAsset(a *domain.Asset) domain.Asset {
	out := *a
	out.Name = strings.Clone(a.Name)
	out.AssetCode = strings.Clone(a.AssetCode)
	out.SerialNumber = clonePtr(a.SerialNumber)
	out.Location = strings.Clone(a.Location)
	out.Status = domain.AssetStatus(strings.Clone(string(a.Status)))
	out.QRCode = strings.Clone(a.QRCode)
	out.CreatedByID = strings.Clone(a.CreatedByID)
	return out
}

func cloneTicket(t *domain.Ticket) domain.Ticket {
	out := *t
	out.Title = strings.Clone(t.Title)
	out.Description = strings.Clone(t.Description)
	out.AssetID = strings.Clone(t.AssetID)
	out.Status = domain.TicketStatus(strings.Clone(string(t.Status)))
	out.Priority = domain.TicketPriority(strings.Clone(string(t.Priority)))
	out.ReportedByID = strings.Clone(t.ReportedByID)
	out.AssignedToID = clonePtr(t.AssignedToID)
	return out
}

func cloneComment(c *domain.Comment) domain.Comment {
	out := *c
	out.Content = strings.Clone(c.Content)
	out.TicketID = strings.Clone(c.TicketID)
	out.UserID = strings.Clone(c.UserID)
	return out
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.Clone(*s)
	return &v
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labtrack/labtrack-service/internal/api/dto"
	"github.com/labtrack/labtrack-service/internal/auth"
	"github.com/labtrack/labtrack-service/internal/domain"
	apperrors "github.com/labtrack/labtrack-service/pkg/util/errorutil"
)

func principalFrom(c *fiber.Ctx) (domain.Principal, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return domain.Principal{}, apperrors.NewUnauthorized("authentication required")
	}
	return *principal, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return nil
}

func userResponse(u *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func optionalUser(u *domain.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	resp := userResponse(u)
	return &resp
}

func assetResponse(a *domain.Asset) dto.AssetResponse {
	return dto.AssetResponse{
		ID:           a.ID,
		Name:         a.Name,
		AssetCode:    a.AssetCode,
		SerialNumber: a.SerialNumber,
		Location:     a.Location,
		Status:       a.Status,
		QRCode:       a.QRCode,
		CreatedByID:  a.CreatedByID,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func assetResponses(assets []domain.Asset) []dto.AssetResponse {
	out := make([]dto.AssetResponse, 0, len(assets))
	for i := range assets {
		out = append(out, assetResponse(&assets[i]))
	}
	return out
}

func ticketResponse(t *domain.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		AssetID:      t.AssetID,
		Status:       t.Status,
		Priority:     t.Priority,
		ReportedByID: t.ReportedByID,
		AssignedToID: t.AssignedToID,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func ticketResponses(tickets []domain.Ticket) []dto.TicketResponse {
	out := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		out = append(out, ticketResponse(&tickets[i]))
	}
	return out
}

func commentResponse(c *domain.Comment, author *domain.User) dto.CommentResponse {
	return dto.CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		TicketID:  c.TicketID,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		User:      optionalUser(author),
	}
}

func ticketDetail(v *domain.TicketView) dto.TicketDetailResponse {
	detail := dto.TicketDetailResponse{
		TicketResponse: ticketResponse(&v.Ticket),
		ReportedBy:     optionalUser(v.ReportedBy),
		AssignedTo:     optionalUser(v.AssignedTo),
		Comments:       make([]dto.CommentResponse, 0, len(v.Comments)),
	}
	if v.Asset != nil {
		asset := assetResponse(v.Asset)
		detail.Asset = &asset
	}
	for i := range v.Comments {
		detail.Comments = append(detail.Comments, commentResponse(&v.Comments[i].Comment, v.Comments[i].Author))
	}
	return detail
}

func statusCounts(counts []domain.StatusCount) []dto.StatusCountResponse {
	out := make([]dto.StatusCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.StatusCountResponse{Status: c.Status, Count: c.Count})
	}
	return out
}

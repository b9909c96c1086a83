package customers

import (
	"context"
	"net/mail"
	"strings"

	"cooleradmin/internal/domain"
	"cooleradmin/internal/magiclink"
	"cooleradmin/internal/ports"
)

type Service struct {
	api   ports.CoolerClient
	links *magiclink.Issuer
}

func New(api ports.CoolerClient, links *magiclink.Issuer) *Service {
	return &Service{api: api, links: links}
}

func (s *Service) List(ctx context.Context, page ports.Page) ([]domain.Customer, error) {
	return s.api.ListCustomers(ctx, page)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Customer, error) {
	return s.api.GetCustomer(ctx, id)
}

func (s *Service) Create(ctx context.Context, nc domain.NewCustomer) (domain.Customer, error) {
	nc.Name = strings.TrimSpace(nc.Name)
	nc.Email = strings.TrimSpace(nc.Email)
	if nc.Name == "" {
		return domain.Customer{}, &ports.ValidationError{Field: "name", Reason: "required"}
	}
	if _, err := mail.ParseAddress(nc.Email); err != nil {
		return domain.Customer{}, &ports.ValidationError{Field: "email", Reason: "must be a valid address"}
	}
	return s.api.CreateCustomer(ctx, nc)
}

func (s *Service) Update(ctx context.Context, id string, patch domain.CustomerPatch) (domain.Customer, error) {
	if patch.Email != nil {
		if _, err := mail.ParseAddress(*patch.Email); err != nil {
			return domain.Customer{}, &ports.ValidationError{Field: "email", Reason: "must be a valid address"}
		}
	}
	if patch.Status != nil {
		switch *patch.Status {
		case domain.CustomerActive, domain.CustomerSuspended:
		default:
			return domain.Customer{}, &ports.ValidationError{Field: "status", Reason: "must be active or suspended"}
		}
	}
	return s.api.UpdateCustomer(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.api.DeleteCustomer(ctx, id)
}

// MagicLink issues an impersonation link for an existing customer. The
// upstream lookup runs first so links are never minted for unknown ids.
func (s *Service) MagicLink(ctx context.Context, id string) (ports.MagicLink, error) {
	cust, err := s.api.GetCustomer(ctx, id)
	if err != nil {
		return ports.MagicLink{}, err
	}
	token, link, expiresAt, err := s.links.Issue(cust.ID, "admin")
	if err != nil {
		return ports.MagicLink{}, err
	}
	return ports.MagicLink{URL: link, Token: token, ExpiresAt: expiresAt}, nil
}

package anomalies

import (
	"context"
	"strings"

	"cooleradmin/internal/domain"
	"cooleradmin/internal/ports"
)

type Service struct {
	api ports.CoolerClient
}

func New(api ports.CoolerClient) *Service { return &Service{api: api} }

func (s *Service) List(ctx context.Context, filter ports.AnomalyFilter) ([]domain.AnomalyFlag, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	return s.api.ListAnomalies(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id string) (domain.AnomalyFlag, error) {
	return s.api.GetAnomaly(ctx, id)
}

// Resolve validates the action-specific payload shape before forwarding.
// Each action requires different fields:
//
//	dismiss:  note
//	correct:  corrections (non-empty map), note optional
//	escalate: assignee, optional priority (low|normal|high)
func (s *Service) Resolve(ctx context.Context, id string, res domain.Resolution) (domain.AnomalyFlag, error) {
	res.Note = strings.TrimSpace(res.Note)
	res.Assignee = strings.TrimSpace(res.Assignee)

	switch res.Action {
	case domain.ActionDismiss:
		if res.Note == "" {
			return domain.AnomalyFlag{}, &ports.ValidationError{Field: "note", Reason: "required for dismiss"}
		}
		res.Corrections = nil
		res.Assignee = ""
		res.Priority = ""
	case domain.ActionCorrect:
		if len(res.Corrections) == 0 {
			return domain.AnomalyFlag{}, &ports.ValidationError{Field: "corrections", Reason: "at least one field required for correct"}
		}
		for field, value := range res.Corrections {
			if strings.TrimSpace(field) == "" || strings.TrimSpace(value) == "" {
				return domain.AnomalyFlag{}, &ports.ValidationError{Field: "corrections", Reason: "empty field or value"}
			}
		}
		res.Assignee = ""
		res.Priority = ""
	case domain.ActionEscalate:
		if res.Assignee == "" {
			return domain.AnomalyFlag{}, &ports.ValidationError{Field: "assignee", Reason: "required for escalate"}
		}
		switch res.Priority {
		case "", "low", "normal", "high":
		default:
			return domain.AnomalyFlag{}, &ports.ValidationError{Field: "priority", Reason: "must be low, normal or high"}
		}
		res.Corrections = nil
	default:
		return domain.AnomalyFlag{}, &ports.ValidationError{Field: "action", Reason: "must be dismiss, correct or escalate"}
	}

	return s.api.ResolveAnomaly(ctx, id, res)
}

func validateFilter(f ports.AnomalyFilter) error {
	switch f.Status {
	case "", domain.AnomalyOpen, domain.AnomalyResolved, domain.AnomalyDismissed:
	default:
		return &ports.ValidationError{Field: "status", Reason: "unknown status"}
	}
	switch f.Severity {
	case "", domain.SeverityInfo, domain.SeverityWarning, domain.SeverityCritical:
	default:
		return &ports.ValidationError{Field: "severity", Reason: "unknown severity"}
	}
	switch f.Type {
	case "", domain.AnomalyDataQuality, domain.AnomalyProcess, domain.AnomalyBusinessLogic:
	default:
		return &ports.ValidationError{Field: "type", Reason: "unknown type"}
	}
	return nil
}

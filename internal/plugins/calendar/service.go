package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/keyxmakerx/teamcal/internal/apperror"
	"github.com/keyxmakerx/teamcal/internal/contrast"
	"github.com/keyxmakerx/teamcal/internal/sanitize"
)

// PriorityService defines business logic for priorities and selections.
type PriorityService interface {
	// Palette.
	ListPriorities(ctx context.Context) ([]Priority, error)
	GetPriority(ctx context.Context, id string) (*Priority, error)
	EventColors(ctx context.Context, id string) (EventColors, error)

	// Contrast lookup for arbitrary colors.
	ResolveContrast(background string) (string, error)

	// Per-session selection.
	CurrentSelection(ctx context.Context, sessionKey string) (Selection, error)
	SelectPriority(ctx context.Context, sessionKey, id string) (Selection, error)
}

// priorityService is the default PriorityService implementation.
type priorityService struct {
	repo       PriorityRepository
	selections SelectionStore
}

// NewPriorityService creates a PriorityService backed by the given
// repository and selection store.
func NewPriorityService(repo PriorityRepository, selections SelectionStore) PriorityService {
	return &priorityService{repo: repo, selections: selections}
}

// ListPriorities returns the palette in toolbar order. An empty table yields
// the built-in palette.
func (s *priorityService) ListPriorities(ctx context.Context) ([]Priority, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list priorities: %w", err)
	}
	if len(rows) == 0 {
		return DefaultPriorities(), nil
	}

	out := make([]Priority, 0, len(rows))
	for _, p := range rows {
		if _, err := contrast.ParseHex(p.Color); err != nil {
			slog.Warn("priority has malformed color, using standard",
				slog.String("priority", p.ID),
				slog.String("color", p.Color),
			)
		}
		out = append(out, clean(p))
	}
	return out, nil
}

// GetPriority returns one priority. Built-ins are served even when the table
// has not been seeded.
func (s *priorityService) GetPriority(ctx context.Context, id string) (*Priority, error) {
	if id == "" {
		return nil, apperror.NewValidation("priority is required")
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get priority: %w", err)
	}
	if p != nil {
		out := clean(*p)
		return &out, nil
	}

	for _, d := range DefaultPriorities() {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, apperror.NewNotFound("priority not found")
}

// EventColors returns the renderer colors for a priority. Unknown IDs get
// the standard colors, matching what the calendar did for unrecognized
// priorities.
func (s *priorityService) EventColors(ctx context.Context, id string) (EventColors, error) {
	p, err := s.GetPriority(ctx, id)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code < 500 {
			return ColorsFor(Priority{ID: id, Color: ColorFor(id)}), nil
		}
		return EventColors{}, err
	}
	return ColorsFor(*p), nil
}

// ResolveContrast returns the text color for an arbitrary "#RRGGBB"
// background.
func (s *priorityService) ResolveContrast(background string) (string, error) {
	color, err := contrast.ResolveContrastColor(background)
	if err != nil {
		if errors.Is(err, contrast.ErrInvalidColorFormat) {
			return "", apperror.NewValidation("color must be in #RRGGBB form").WithFields("color")
		}
		return "", apperror.NewInternal(err)
	}
	return color, nil
}

// CurrentSelection returns the session's selection, or the standard
// priority when nothing was chosen yet.
func (s *priorityService) CurrentSelection(ctx context.Context, sessionKey string) (Selection, error) {
	if sessionKey == "" {
		return DefaultSelection(), nil
	}
	sel, err := s.selections.Get(ctx, sessionKey)
	if err != nil {
		return Selection{}, fmt.Errorf("current selection: %w", err)
	}
	if sel == nil {
		return DefaultSelection(), nil
	}
	return *sel, nil
}

// SelectPriority makes id the session's selection and returns it.
func (s *priorityService) SelectPriority(ctx context.Context, sessionKey, id string) (Selection, error) {
	if sessionKey == "" {
		return Selection{}, apperror.NewUnauthorized("no session to store the selection in")
	}

	p, err := s.GetPriority(ctx, id)
	if err != nil {
		return Selection{}, err
	}

	sel := Select(*p)
	if err := s.selections.Put(ctx, sessionKey, sel); err != nil {
		return Selection{}, fmt.Errorf("select priority: %w", err)
	}
	return sel, nil
}

// clean sanitizes the operator-edited text of p and fills derived fields.
func clean(p Priority) Priority {
	p.Name = sanitize.Text(p.Name)
	p.Detail = sanitize.HTML(p.Detail)
	return decorate(p)
}

package profile

import (
	"context"
	"errors"
	"net/url"

	platformotel "github.com/louisbranch/profilecard/internal/platform/otel"
	domain "github.com/louisbranch/profilecard/internal/profile"
	apperrors "github.com/louisbranch/profilecard/internal/services/web/platform/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const unknownFieldKey = "errors.unknown_field"

var errMissingValue = errors.New("field value is missing")

// CardStore is the card state the module reads and mutates.
type CardStore interface {
	Snapshot() domain.State
	Open()
	Close()
	Apply(domain.Update) error
	Submit(...domain.Update) error
}

type service struct {
	card   CardStore
	tracer trace.Tracer
}

func newService(card CardStore) service {
	return service{card: card, tracer: platformotel.Tracer("profile")}
}

func (s service) load(ctx context.Context) domain.State {
	_, span := s.tracer.Start(ctx, "profile.load")
	defer span.End()
	state := s.card.Snapshot()
	span.SetAttributes(attribute.String("profile.overlay", string(state.Overlay)))
	return state
}

func (s service) openEditor(ctx context.Context) domain.State {
	_, span := s.tracer.Start(ctx, "profile.open_editor")
	defer span.End()
	s.card.Open()
	return s.card.Snapshot()
}

func (s service) closeEditor(ctx context.Context) domain.State {
	_, span := s.tracer.Start(ctx, "profile.close_editor")
	defer span.End()
	s.card.Close()
	return s.card.Snapshot()
}

// updateField applies one field edit read from form. Unknown field names are
// not found; a form without a value for the field is invalid.
func (s service) updateField(ctx context.Context, name string, form url.Values) (domain.State, error) {
	_, span := s.tracer.Start(ctx, "profile.update_field", trace.WithAttributes(attribute.String("profile.field", name)))
	defer span.End()

	field, err := domain.ParseField(name)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.State{}, apperrors.Wrap(apperrors.KindNotFound, unknownFieldKey, err)
	}
	value, ok := fieldValue(form, field)
	if !ok {
		span.SetStatus(codes.Error, errMissingValue.Error())
		return domain.State{}, apperrors.Wrap(apperrors.KindInvalidInput, badRequestKey, errMissingValue)
	}
	if err := s.card.Apply(domain.Update{Field: field, Value: value}); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.State{}, fieldError(err)
	}
	return s.card.Snapshot(), nil
}

// fieldValue reads the value under the field's own input name, which is what
// an htmx-triggered input posts, and falls back to "value". An empty string is
// a value; an absent key is not.
func fieldValue(form url.Values, field domain.Field) (string, bool) {
	values, ok := form[string(field)]
	if !ok {
		values, ok = form[fallbackValueKey]
	}
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

// submit applies every posted field value, then closes the overlay. Form
// keys that are not profile fields are ignored.
func (s service) submit(ctx context.Context, form url.Values) (domain.State, error) {
	_, span := s.tracer.Start(ctx, "profile.submit")
	defer span.End()

	updates := updatesFromForm(form)
	span.SetAttributes(attribute.Int("profile.updates", len(updates)))
	if err := s.card.Submit(updates...); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.State{}, fieldError(err)
	}
	return s.card.Snapshot(), nil
}

func updatesFromForm(form url.Values) []domain.Update {
	updates := make([]domain.Update, 0, len(domain.Fields()))
	for _, field := range domain.Fields() {
		values, ok := form[string(field)]
		if !ok || len(values) == 0 {
			continue
		}
		updates = append(updates, domain.Update{Field: field, Value: values[len(values)-1]})
	}
	return updates
}

func fieldError(err error) error {
	if errors.Is(err, domain.ErrUnknownField) {
		return apperrors.Wrap(apperrors.KindNotFound, unknownFieldKey, err)
	}
	return err
}

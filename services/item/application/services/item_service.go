package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/itemapi/pkg/logger"
	itemdomain "github.com/ghuser/itemapi/services/item/domain"
	domainevents "github.com/ghuser/itemapi/services/item/domain/events"
	"github.com/ghuser/itemapi/services/item/domain/models"
	"github.com/ghuser/itemapi/services/item/domain/repositories"
	domainsvcs "github.com/ghuser/itemapi/services/item/domain/services"
)

const instrumentationName = "github.com/ghuser/itemapi/services/item"

// EventPublisher publishes domain events. *events.EventBus satisfies it.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// counter is implemented by stores that can report their size cheaply.
type counter interface {
	Count() int
}

// ItemService orchestrates creation and retrieval of Items.
// Event publishing is best-effort: a failed publish is logged and the
// created item is still returned.
type ItemService struct {
	repo    repositories.ItemRepository
	bus     EventPublisher
	log     logger.Logger
	tracer  trace.Tracer
	created metric.Int64Counter
}

// NewItemService returns an ItemService wired with the given repository and
// publisher. bus may be nil, in which case no events are published.
func NewItemService(repo repositories.ItemRepository, bus EventPublisher, log logger.Logger) (*ItemService, error) {
	meter := otel.Meter(instrumentationName)

	created, err := meter.Int64Counter("items.created",
		metric.WithDescription("Number of items created"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, fmt.Errorf("items.created counter: %w", err)
	}

	if c, ok := repo.(counter); ok {
		if _, err := meter.Int64ObservableGauge("items.stored",
			metric.WithDescription("Number of items currently held in the store"),
			metric.WithUnit("{item}"),
			metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
				o.Observe(int64(c.Count()))
				return nil
			}),
		); err != nil {
			return nil, fmt.Errorf("items.stored gauge: %w", err)
		}
	}

	return &ItemService{
		repo:    repo,
		bus:     bus,
		log:     log,
		tracer:  otel.Tracer(instrumentationName),
		created: created,
	}, nil
}

// Create checks that name and description are present, then stores a new
// Item and publishes ItemCreatedEvent. Returns ErrMissingFields when either
// value is empty.
func (s *ItemService) Create(ctx context.Context, name, description string) (*models.Item, error) {
	ctx, span := s.tracer.Start(ctx, "ItemService.Create")
	defer span.End()

	itemName, err := models.NewText(name)
	if err != nil {
		return nil, fmt.Errorf("%w: name %w", itemdomain.ErrMissingFields, err)
	}
	itemDescription, err := models.NewText(description)
	if err != nil {
		return nil, fmt.Errorf("%w: description %w", itemdomain.ErrMissingFields, err)
	}

	item, err := models.NewItem(itemName, itemDescription)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	if err := domainsvcs.ValidateItemForCreation(item); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrMissingFields, err)
	}

	if err := s.repo.Save(ctx, item); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save item")
		return nil, fmt.Errorf("save item: %w", err)
	}

	span.SetAttributes(attribute.String("item.id", item.ID))
	s.created.Add(ctx, 1)

	if err := s.publishCreated(ctx, item); err != nil {
		s.log.WarnContext(ctx, "item created but event not published",
			"item_id", item.ID, "error", err)
	}

	return item, nil
}

// GetByID returns the Item with exactly this ID, or ErrItemNotFound.
func (s *ItemService) GetByID(ctx context.Context, id string) (*models.Item, error) {
	ctx, span := s.tracer.Start(ctx, "ItemService.GetByID",
		trace.WithAttributes(attribute.String("item.id", id)))
	defer span.End()

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// List returns every item in insertion order.
func (s *ItemService) List(ctx context.Context) ([]*models.Item, error) {
	ctx, span := s.tracer.Start(ctx, "ItemService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	span.SetAttributes(attribute.Int("item.count", len(items)))
	return items, nil
}

func (s *ItemService) publishCreated(ctx context.Context, item *models.Item) error {
	if s.bus == nil {
		return nil
	}
	event := domainevents.ItemCreatedEvent{
		EventID:     uuid.New(),
		Version:     domainevents.ItemCreatedVersion,
		ItemID:      item.ID,
		Name:        item.Name.String(),
		Description: item.Description.String(),
		OccurredAt:  item.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", strconv.Itoa(event.Version))
	return s.bus.Publish(ctx, domainevents.TopicItemCreated, msg)
}

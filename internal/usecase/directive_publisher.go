package usecase

import (
	"context"

	"github.com/connectflx/discovery-service/internal/domain"
	"github.com/connectflx/discovery-service/internal/domain/repository"
)

// DirectivePublisher доставляет события смены выбора внешним наблюдателям карты
type DirectivePublisher interface {
	Publish(ctx context.Context, event domain.SelectionChangedEvent) error
}

type streamDirectivePublisher struct {
	streams repository.StreamRepository
	stream  string
}

// NewStreamDirectivePublisher публикует события в Redis Stream
func NewStreamDirectivePublisher(streams repository.StreamRepository, stream string) DirectivePublisher {
	if stream == "" {
		stream = domain.StreamSelectionDirective
	}
	return &streamDirectivePublisher{streams: streams, stream: stream}
}

func (p *streamDirectivePublisher) Publish(ctx context.Context, event domain.SelectionChangedEvent) error {
	return p.streams.PublishToStream(ctx, p.stream, event)
}

type noopDirectivePublisher struct{}

// NewNoopDirectivePublisher используется, когда поток директив выключен
func NewNoopDirectivePublisher() DirectivePublisher {
	return noopDirectivePublisher{}
}

func (noopDirectivePublisher) Publish(context.Context, domain.SelectionChangedEvent) error {
	return nil
}

package usecase

import (
	"context"
	stderrors "errors"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/connectflx/discovery-service/internal/domain"
	"github.com/connectflx/discovery-service/internal/domain/repository"
	"github.com/connectflx/discovery-service/internal/pkg/errors"
	"github.com/connectflx/discovery-service/internal/usecase/dto"
)

const sessionLockStripes = 64

// SessionUseCase - координатор выбора. Единственный владелец состояния оболочки:
// поиск, фильтры, выбранная локация, панели. Представления получают только проекции.
type SessionUseCase struct {
	catalog   *domain.Catalog
	sessions  repository.SessionRepository
	publisher DirectivePublisher
	presenter *dto.Presenter
	policy    domain.MapPolicy
	ttl       time.Duration
	logger    *zap.Logger

	// Мутации одной сессии выполняются строго по очереди
	locks [sessionLockStripes]sync.Mutex

	newID func() string
	now   func() time.Time
}

// NewSessionUseCase - создание нового SessionUseCase
func NewSessionUseCase(
	catalog *domain.Catalog,
	sessions repository.SessionRepository,
	publisher DirectivePublisher,
	presenter *dto.Presenter,
	policy domain.MapPolicy,
	ttl time.Duration,
	logger *zap.Logger,
) *SessionUseCase {
	if publisher == nil {
		publisher = NewNoopDirectivePublisher()
	}
	return &SessionUseCase{
		catalog:   catalog,
		sessions:  sessions,
		publisher: publisher,
		presenter: presenter,
		policy:    policy,
		ttl:       ttl,
		logger:    logger,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// WithClock подменяет источник времени
func (uc *SessionUseCase) WithClock(now func() time.Time) *SessionUseCase {
	uc.now = now
	return uc
}

// outcome - результат мутации, который нужен после снятия блокировки
type outcome struct {
	directive        *domain.RecenterDirective
	selectionChanged bool
	source           string
}

func (uc *SessionUseCase) lockFor(id string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return &uc.locks[h.Sum32()%sessionLockStripes]
}

// Resolve - поиск локации в каталоге, nil если id неизвестен
func (uc *SessionUseCase) Resolve(id int64) *domain.Location {
	return uc.catalog.Resolve(id)
}

// Create - новая сессия с пустыми фильтрами и без выбора
func (uc *SessionUseCase) Create(ctx context.Context) (*dto.SessionState, error) {
	s := domain.NewSession(uc.newID(), uc.now())
	if err := uc.save(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Debug("Session created", zap.String("session_id", s.ID))
	return uc.project(s, nil), nil
}

// Get - текущая проекция состояния
func (uc *SessionUseCase) Get(ctx context.Context, id string) (*dto.SessionState, error) {
	s, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.dropStale(s)
	return uc.project(s, nil), nil
}

// Delete удаляет сессию. Повторное удаление не ошибка.
func (uc *SessionUseCase) Delete(ctx context.Context, id string) error {
	mu := uc.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	if err := uc.sessions.Delete(ctx, id); err != nil {
		uc.logger.Error("Failed to delete session", zap.String("session_id", id), zap.Error(err))
		return errors.ErrStorageError
	}
	return nil
}

// SetSearch меняет строку поиска. Выбор не трогается.
func (uc *SessionUseCase) SetSearch(ctx context.Context, id string, req dto.SetSearchRequest) (*dto.SessionState, error) {
	return uc.apply(ctx, id, func(s *domain.Session) outcome {
		s.Search = req.Term
		return outcome{}
	})
}

// SetFilters заменяет фильтры. Выбор сохраняется, даже если локация выпала из списка.
func (uc *SessionUseCase) SetFilters(ctx context.Context, id string, req dto.SetFiltersRequest) (*dto.SessionState, error) {
	return uc.apply(ctx, id, func(s *domain.Session) outcome {
		s.Filters = req.Filters()
		return outcome{}
	})
}

// Select выбирает локацию или сбрасывает выбор (ID == nil).
// Неизвестный id сбрасывает выбор. Директива перецентрирования выдаётся
// только при смене выбора на существующую локацию.
func (uc *SessionUseCase) Select(ctx context.Context, id string, req dto.SelectRequest) (*dto.SessionState, error) {
	return uc.apply(ctx, id, func(s *domain.Session) outcome {
		var target *int64
		var loc *domain.Location
		if req.ID != nil {
			loc = uc.catalog.Resolve(*req.ID)
			if loc == nil {
				uc.logger.Debug("Selection id not in catalog, clearing",
					zap.String("session_id", id),
					zap.Int64("location_id", *req.ID))
			} else {
				target = &loc.ID
			}
		}

		changed := s.SetSelected(target)

		switch req.Source {
		case domain.SelectionSourceBackground:
			s.Panels.FiltersOpen = false
		case domain.SelectionSourceListRow:
			if target != nil {
				s.Panels.ListOpen = false
			}
		}

		out := outcome{selectionChanged: changed, source: req.Source}
		if changed && loc != nil && !req.PreserveViewport {
			d := uc.policy.RecenterOn(loc)
			out.directive = &d
		}
		return out
	})
}

// ClearSelection - закрытие карточки
func (uc *SessionUseCase) ClearSelection(ctx context.Context, id string) (*dto.SessionState, error) {
	return uc.Select(ctx, id, dto.SelectRequest{Source: domain.SelectionSourceDetailClose})
}

// SetPanels - частичное обновление панелей
func (uc *SessionUseCase) SetPanels(ctx context.Context, id string, req dto.SetPanelsRequest) (*dto.SessionState, error) {
	return uc.apply(ctx, id, func(s *domain.Session) outcome {
		if req.FiltersOpen != nil {
			s.Panels.FiltersOpen = *req.FiltersOpen
		}
		if req.ListOpen != nil {
			s.Panels.ListOpen = *req.ListOpen
		}
		return outcome{}
	})
}

// ToggleFilters открывает или закрывает панель фильтров
func (uc *SessionUseCase) ToggleFilters(ctx context.Context, id string) (*dto.SessionState, error) {
	return uc.apply(ctx, id, func(s *domain.Session) outcome {
		s.Panels.FiltersOpen = !s.Panels.FiltersOpen
		return outcome{}
	})
}

// apply выполняет мутацию под блокировкой сессии, сохраняет и публикует событие выбора
func (uc *SessionUseCase) apply(ctx context.Context, id string, mutate func(*domain.Session) outcome) (*dto.SessionState, error) {
	mu := uc.lockFor(id)
	mu.Lock()

	s, err := uc.load(ctx, id)
	if err != nil {
		mu.Unlock()
		return nil, err
	}

	uc.dropStale(s)
	out := mutate(s)
	s.UpdatedAt = uc.now()

	if err := uc.save(ctx, s); err != nil {
		mu.Unlock()
		return nil, err
	}
	mu.Unlock()

	if out.selectionChanged {
		uc.publish(ctx, s, out)
	}

	return uc.project(s, out.directive), nil
}

// publish - ошибки доставки логируются и не влияют на ответ
func (uc *SessionUseCase) publish(ctx context.Context, s *domain.Session, out outcome) {
	event := domain.SelectionChangedEvent{
		SessionID:  s.ID,
		SelectedID: s.SelectedID,
		Source:     out.source,
		Directive:  out.directive,
		OccurredAt: s.UpdatedAt,
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish selection event",
			zap.String("session_id", s.ID),
			zap.Error(err))
	}
}

func (uc *SessionUseCase) load(ctx context.Context, id string) (*domain.Session, error) {
	s, err := uc.sessions.Get(ctx, id)
	if stderrors.Is(err, domain.ErrSessionNotFound) {
		return nil, errors.ErrSessionNotFound.WithDetails(map[string]interface{}{
			"id": id,
		})
	}
	if err != nil {
		uc.logger.Error("Failed to load session", zap.String("session_id", id), zap.Error(err))
		return nil, errors.ErrStorageError
	}
	return s, nil
}

// dropStale - выбор, который больше не разрешается в каталоге
// (каталог перезагружен, сессия пережила рестарт), считается сброшенным
func (uc *SessionUseCase) dropStale(s *domain.Session) {
	stale := s.SelectedID
	if s.DropUnresolved(uc.catalog) {
		uc.logger.Debug("Selected location no longer in catalog, clearing",
			zap.String("session_id", s.ID),
			zap.Int64("location_id", *stale))
	}
}

func (uc *SessionUseCase) save(ctx context.Context, s *domain.Session) error {
	if err := uc.sessions.Save(ctx, s, uc.ttl); err != nil {
		uc.logger.Error("Failed to save session", zap.String("session_id", s.ID), zap.Error(err))
		return errors.ErrStorageError
	}
	return nil
}

// project строит проекцию: отфильтрованный список, маркеры и карточку выбранной локации.
// Выбранная локация вне фильтра остаётся в карточке. Неразрешимый id проецируется как отсутствие выбора.
func (uc *SessionUseCase) project(s *domain.Session, directive *domain.RecenterDirective) *dto.SessionState {
	filtered := domain.FilterLocations(uc.catalog.All(), s.Search, s.Filters)

	var selectedID *int64
	var selected *dto.LocationDetail
	if s.SelectedID != nil {
		if loc := uc.catalog.Resolve(*s.SelectedID); loc != nil {
			selectedID = s.SelectedID
			selected = uc.presenter.Detail(loc)
		}
	}

	return &dto.SessionState{
		ID:                  s.ID,
		Search:              s.Search,
		Filters:             s.Filters.Normalize(),
		SelectedID:          selectedID,
		Panels:              s.Panels,
		Filtered:            uc.presenter.Rows(filtered, selectedID),
		Markers:             uc.presenter.Markers(filtered, selectedID),
		Selected:            selected,
		DetailVisibleMobile: s.DetailVisibleMobile(uc.catalog),
		Directive:           directive,
		CatalogTotal:        uc.catalog.Len(),
		UpdatedAt:           s.UpdatedAt,
	}
}

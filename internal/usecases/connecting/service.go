package connecting

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/dashvendas/sales-dashboard-api/infrastructure/repository"
	"github.com/dashvendas/sales-dashboard-api/internal/config"
	"github.com/dashvendas/sales-dashboard-api/internal/domain"
	"github.com/dashvendas/sales-dashboard-api/internal/usecases/syncing"
	"github.com/dashvendas/sales-dashboard-api/pkg/apiErrors"
	"github.com/dashvendas/sales-dashboard-api/pkg/utils"
)

type ConnectionService interface {
	CreateConnection(request *domain.CreateConnectionRequest) (*domain.Connection, error)
	ListConnections() ([]*domain.Connection, error)
	UpdateConnectionStatus(request *domain.UpdateConnectionStatusRequest) error
	GetAggregates(connectionID string, days int) ([]*domain.DailyAggregate, error)
	GetAggregatesByRange(connectionID string, startDate, endDate time.Time) ([]*domain.DailyAggregate, error)
}

type Service struct {
	connectionRepository repository.ConnectionRepository
	aggregateRepository  repository.DailyAggregateRepository
	cfg                  *config.Config
	now                  func() time.Time
}

func NewService(
	connectionRepository repository.ConnectionRepository,
	aggregateRepository repository.DailyAggregateRepository,
	cfg *config.Config,
) ConnectionService {
	return &Service{
		connectionRepository: connectionRepository,
		aggregateRepository:  aggregateRepository,
		cfg:                  cfg,
		now:                  time.Now,
	}
}

func (s *Service) CreateConnection(request *domain.CreateConnectionRequest) (*domain.Connection, error) {
	if request.OwnerID == "" || request.APIToken == "" || request.StoreID == "" {
		return nil, NewConnectionError(ErrMissingFields, apiErrors.ErrMissingRequiredData, "")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(ErrGenerateID, err.Error())
	}

	connection := &domain.Connection{
		ID:       id,
		OwnerID:  request.OwnerID,
		Name:     strings.TrimSpace(request.Name),
		APIToken: request.APIToken,
		StoreID:  request.StoreID,
		Status:   domain.ConnectionStatusActive,
	}

	if err := s.connectionRepository.Create(connection); err != nil {
		return nil, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar conexão no banco de dados")
	}

	return connection, nil
}

func (s *Service) ListConnections() ([]*domain.Connection, error) {
	connections, err := s.connectionRepository.ListByStatus(nil)
	if err != nil {
		return nil, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar conexões no banco de dados")
	}

	return connections, nil
}

func (s *Service) UpdateConnectionStatus(request *domain.UpdateConnectionStatusRequest) error {
	if request.Status != domain.ConnectionStatusActive && request.Status != domain.ConnectionStatusDisabled {
		return NewConnectionError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, string(request.Status))
	}

	connection, err := s.connectionRepository.GetByID(request.ID)
	if err != nil {
		return NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar conexão no banco de dados")
	}
	if connection == nil {
		return NewConnectionError(ErrConnectionNotFound, apiErrors.ErrConnectionNotFound, request.ID)
	}

	if err := s.connectionRepository.UpdateStatus(request.ID, request.Status); err != nil {
		return NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar status da conexão")
	}

	return nil
}

// GetAggregates retorna as linhas diárias persistidas da conexão para a
// janela de N dias — é a leitura que alimenta o dashboard do lojista.
func (s *Service) GetAggregates(connectionID string, days int) ([]*domain.DailyAggregate, error) {
	if days <= 0 {
		days = s.cfg.SaiposSync.LookbackDays
	}

	connection, err := s.connectionRepository.GetByID(connectionID)
	if err != nil {
		return nil, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar conexão no banco de dados")
	}
	if connection == nil {
		return nil, NewConnectionError(ErrConnectionNotFound, apiErrors.ErrConnectionNotFound, connectionID)
	}

	// A janela usa o dia civil no fuso da loja, o mesmo que a sincronização
	// gravou — time.Now() no relógio do servidor erraria o dia perto da
	// virada da meia-noite.
	window, err := syncing.ComputeWindow(days, s.cfg.SaiposSync.TimezoneOffsetHours, s.now())
	if err != nil {
		return nil, NewConnectionError(ErrInvalidDateRange, apiErrors.ErrInvalidRequest, err.Error())
	}

	return s.aggregateRepository.GetByDateRange(connectionID, window.Start, window.End)
}

// GetAggregatesByRange é a variante com período explícito, para o dashboard
// consultar um intervalo arbitrário em vez dos últimos N dias.
func (s *Service) GetAggregatesByRange(connectionID string, startDate, endDate time.Time) ([]*domain.DailyAggregate, error) {
	if endDate.Before(startDate) {
		return nil, NewConnectionError(ErrInvalidDateRange, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("%s > %s", startDate.Format(time.DateOnly), endDate.Format(time.DateOnly)))
	}

	connection, err := s.connectionRepository.GetByID(connectionID)
	if err != nil {
		return nil, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar conexão no banco de dados")
	}
	if connection == nil {
		return nil, NewConnectionError(ErrConnectionNotFound, apiErrors.ErrConnectionNotFound, connectionID)
	}

	return s.aggregateRepository.GetByDateRange(connectionID, startDate, endDate)
}

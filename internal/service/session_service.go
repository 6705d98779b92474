package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"conevibes-be/internal/dto"
	"conevibes-be/internal/repository/memory"
	"conevibes-be/pkg/recommend/selection"
)

// ISessionService owns the UI-facing selection sessions
type ISessionService interface {
	CreateSession() *dto.CreateSessionResponse
	ApplySelection(sessionId uuid.UUID, request *dto.ApplySelectionRequest) (*dto.SelectionResponse, error)
	UpdateInput(sessionId uuid.UUID, request *dto.UpdateInputRequest) (*dto.SelectionResponse, error)
}

type sessionService struct {
	sessionRepo *memory.SessionRepository
}

func NewSessionService(sessionRepo *memory.SessionRepository) ISessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
	}
}

func (s *sessionService) CreateSession() *dto.CreateSessionResponse {
	id := uuid.New()
	s.sessionRepo.Save(id.String(), selection.NewTracker())
	return &dto.CreateSessionResponse{Id: id}
}

func (s *sessionService) ApplySelection(sessionId uuid.UUID, request *dto.ApplySelectionRequest) (*dto.SelectionResponse, error) {
	tracker, found := s.sessionRepo.Get(sessionId.String())
	if !found {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}

	result, err := tracker.ApplySelection(request.Type, request.Value)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	s.sessionRepo.Save(sessionId.String(), tracker)

	return &dto.SelectionResponse{
		Weather:     result.Weather,
		Activity:    result.Activity,
		Input:       result.Input,
		InputState:  string(result.State),
		Synthesized: result.Synthesized,
	}, nil
}

func (s *sessionService) UpdateInput(sessionId uuid.UUID, request *dto.UpdateInputRequest) (*dto.SelectionResponse, error) {
	tracker, found := s.sessionRepo.Get(sessionId.String())
	if !found {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}

	result := tracker.SetInput(request.Input)
	s.sessionRepo.Save(sessionId.String(), tracker)

	return &dto.SelectionResponse{
		Weather:    result.Weather,
		Activity:   result.Activity,
		Input:      result.Input,
		InputState: string(result.State),
	}, nil
}

package service

import (
	"sync"
	"testing"

	"conevibes-be/internal/dto"
	"conevibes-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestSessionService() ISessionService {
	return NewSessionService(memory.NewSessionRepository())
}

func TestSessionLifecycle(t *testing.T) {
	svc := newTestSessionService()

	created := svc.CreateSession()
	assert.NotEqual(t, uuid.Nil, created.Id)

	res, err := svc.ApplySelection(created.Id, &dto.ApplySelectionRequest{Type: "weather", Value: "sunny"})
	assert.NoError(t, err)
	assert.Equal(t, "sunny", res.Weather)
	assert.Equal(t, "Weather: sunny", res.Input)
	assert.True(t, res.Synthesized)

	res, err = svc.ApplySelection(created.Id, &dto.ApplySelectionRequest{Type: "activity", Value: "running"})
	assert.NoError(t, err)
	assert.Equal(t, "Weather: sunny Activity: running", res.Input)

	// Edits persist across calls
	res, err = svc.UpdateInput(created.Id, &dto.UpdateInputRequest{Input: "my own text"})
	assert.NoError(t, err)
	assert.Equal(t, "EDITED", res.InputState)

	res, err = svc.ApplySelection(created.Id, &dto.ApplySelectionRequest{Type: "weather", Value: "rainy"})
	assert.NoError(t, err)
	assert.False(t, res.Synthesized)
	assert.Equal(t, "my own text", res.Input)
}

func TestSessionNotFound(t *testing.T) {
	svc := newTestSessionService()

	_, err := svc.ApplySelection(uuid.New(), &dto.ApplySelectionRequest{Type: "weather", Value: "sunny"})
	var fiberErr *fiber.Error
	assert.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusNotFound, fiberErr.Code)

	_, err = svc.UpdateInput(uuid.New(), &dto.UpdateInputRequest{Input: "x"})
	assert.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusNotFound, fiberErr.Code)
}

func TestSessionRejectsUnknownTag(t *testing.T) {
	svc := newTestSessionService()
	created := svc.CreateSession()

	_, err := svc.ApplySelection(created.Id, &dto.ApplySelectionRequest{Type: "weather", Value: "volcanic"})
	var fiberErr *fiber.Error
	assert.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
}

func TestSessionConcurrentRequestsStayConsistent(t *testing.T) {
	svc := newTestSessionService()
	created := svc.CreateSession()

	// Hammer one session from parallel requests. Every operation is
	// idempotent, so whatever the interleaving, the final state must be the
	// fully synthesized pair.
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if n%2 == 0 {
					_, err := svc.ApplySelection(created.Id, &dto.ApplySelectionRequest{Type: "weather", Value: "sunny"})
					assert.NoError(t, err)
				} else {
					_, err := svc.ApplySelection(created.Id, &dto.ApplySelectionRequest{Type: "activity", Value: "running"})
					assert.NoError(t, err)
				}
			}
		}(i)
	}
	wg.Wait()

	res, err := svc.ApplySelection(created.Id, &dto.ApplySelectionRequest{Type: "weather", Value: "sunny"})
	assert.NoError(t, err)
	assert.Equal(t, "sunny", res.Weather)
	assert.Equal(t, "running", res.Activity)
	assert.Equal(t, "Weather: sunny Activity: running", res.Input)
	assert.Equal(t, "SYNTHESIZED", res.InputState)
}

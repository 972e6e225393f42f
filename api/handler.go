package api

import (
	"errors"
	"log"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/tracing"
	"cpu-scheduler/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config    *config.SchedulerConfig
	validator *validate.Validator
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) (*SchedulerHandlerImpl, error) {
	policy, err := validate.ParsePolicy(config.ValidationPolicy)
	if err != nil {
		return nil, err
	}
	return &SchedulerHandlerImpl{
		config:    config,
		validator: validate.New(config.BurstCeiling, policy),
	}, nil
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{
			Error: "invalid request format",
		})
	}

	_, span := tracing.StartSpan(ctx.UserContext(), "fcfs.schedule")
	span.WithAttributes(map[string]interface{}{
		"request.id": requestID(ctx),
		"jobs":       len(request.Jobs),
	})

	response, err := s.schedule(request.Jobs)
	tracing.EndSpan(span, err)
	if err != nil {
		log.Println("request:", requestID(ctx), "rejected:", err)
		return ctx.Status(statusOf(err)).JSON(errorResponse(err))
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) schedule(jobs []requests.Job) (responses.ScheduleResponse, error) {
	accepted, err := s.validator.Validate(jobs)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return schedulers.ScheduleRequest(accepted)
}

func statusOf(err error) int {
	if errors.Is(err, core.ErrInvalidInput) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func errorResponse(err error) responses.ErrorResponse {
	var problems validate.ValidationErrors
	if errors.As(err, &problems) {
		return responses.ErrorResponse{Error: core.ErrInvalidInput.Error(), Details: problems.Messages()}
	}
	if errors.Is(err, core.ErrInvalidInput) {
		return responses.ErrorResponse{Error: err.Error()}
	}
	return responses.ErrorResponse{Error: "can not proccess request"}
}

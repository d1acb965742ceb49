package api

import (
	"github.com/gofiber/fiber/v2"

	"cpu-sched-sim/config"
	"cpu-sched-sim/internal/requests"
	"cpu-sched-sim/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestRemainingTime(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.AlgorithmFirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.AlgorithmShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.AlgorithmPriority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.AlgorithmRoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTime(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.AlgorithmShortestRemainingTime)
}

// AllAlgorithms runs the same workload under every algorithm and
// returns one response per algorithm name. An algorithm that rejects
// the workload (e.g. priority without priorities) reports its error
// in place without failing the others.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}

	results := fiber.Map{}
	for _, algorithm := range schedulers.Algorithms {
		response, err := schedulers.Schedule(algorithm, request)
		if err != nil {
			results[algorithm] = fiber.Map{"error": err.Error()}
			continue
		}
		results[algorithm] = response
	}
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) run(ctx *fiber.Ctx, algorithm string) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}
	response, err := schedulers.Schedule(algorithm, request)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, bool) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		_ = ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
		return nil, false
	}
	// an omitted quantum falls back to the configured default; a
	// negative one is left for the engine to reject
	if request.TimeQuantum == 0 {
		request.TimeQuantum = s.config.RoundRobinTimeQuantum
	}
	return &request, true
}

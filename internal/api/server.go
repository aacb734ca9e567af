package api

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hireloop/interviewd/internal/availability"
	"github.com/hireloop/interviewd/internal/faults"
	"github.com/hireloop/interviewd/internal/scheduling"
	"github.com/hireloop/interviewd/internal/sessions"
	"github.com/hireloop/interviewd/internal/users"
	"github.com/hireloop/interviewd/pkg/errors"
	"github.com/hireloop/interviewd/pkg/logger"
	"github.com/hireloop/interviewd/pkg/timeslot"
)

func NewServer(
	cfg Config,
	log logger.Logger,
	engine Scheduler,
	windows availability.API,
	records sessions.API,
) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: true,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods: []string{
			fiber.MethodGet, fiber.MethodHead, fiber.MethodPost, fiber.MethodPatch, fiber.MethodDelete,
		},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &server{
		engine:  engine,
		windows: windows,
		records: records,
		http:    fiber.New(fiberCfg),
		addr:    cfg.HTTP.Addr,
		secret:  cfg.Auth.Secret,
		log:     serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	engine  Scheduler
	windows availability.API
	records sessions.API
	http    *fiber.App
	addr    string
	secret  string
	log     logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.New("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return errors.WrapFail(s.http.ShutdownWithContext(ctx), "shutdown http server")
}

func (s *server) setupRoutes() {
	s.http.Use(s.authenticate)

	s.http.Post("/interviews", s.handleSchedule)
	s.http.Get("/interviews", s.handleListInterviews)
	s.http.Post("/interviews/:id/confirm", s.handleConfirm)
	s.http.Post("/interviews/:id/reschedule", s.handleReschedule)
	s.http.Post("/interviews/:id/cancel", s.handleCancel)

	s.http.Post("/availability", s.handleDeclareWindow)
	s.http.Get("/availability", s.handleListWindows)
	s.http.Patch("/availability/:id", s.handleReframeWindow)
	s.http.Delete("/availability/:id", s.handleRemoveWindow)
}

func (s *server) handleSchedule(c *fiber.Ctx) error {
	id := caller(c)
	if id.Role != users.RoleRecruiter {
		return s.sendError(c, http.StatusForbidden, "only recruiters schedule interviews")
	}

	var req scheduling.Request
	err := c.BodyParser(&req)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal schedule payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	interview, err := s.engine.Schedule(c.Context(), id.UserID, req)
	if err != nil {
		return s.sendFault(c, err)
	}

	return s.sendInterview(c, http.StatusCreated, interview)
}

func (s *server) handleListInterviews(c *fiber.Ctx) error {
	id := caller(c)

	candidateID := id.UserID
	if id.Role == users.RoleRecruiter {
		candidateID = c.Query("candidate", "")
		if candidateID == "" {
			return s.sendError(c, http.StatusBadRequest, "missing required parameter \"candidate\"")
		}
	}

	found, err := s.records.FindByCandidate(c.Context(), candidateID)
	if err != nil {
		return s.sendFault(c, err)
	}

	if id.Role == users.RoleRecruiter {
		visible := found[:0]
		for _, i := range found {
			if i.RecruiterID == id.UserID {
				visible = append(visible, i)
			}
		}
		found = visible
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"interviews": found},
	})
}

func (s *server) handleConfirm(c *fiber.Ctx) error {
	id := caller(c)

	var req scheduling.ConfirmRequest
	err := c.BodyParser(&req)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal confirm payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	interview, err := s.engine.Confirm(c.Context(), id.UserID, c.Params("id"), id.Role, req)
	if err != nil {
		return s.sendFault(c, err)
	}

	return s.sendInterview(c, http.StatusOK, interview)
}

func (s *server) handleReschedule(c *fiber.Ctx) error {
	id := caller(c)

	var req scheduling.RescheduleRequest
	err := c.BodyParser(&req)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal reschedule payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	interview, err := s.engine.Reschedule(c.Context(), id.UserID, c.Params("id"), id.Role, req)
	if err != nil {
		return s.sendFault(c, err)
	}

	return s.sendInterview(c, http.StatusOK, interview)
}

func (s *server) handleCancel(c *fiber.Ctx) error {
	id := caller(c)

	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.BodyParser(&req) // body is optional

	interview, err := s.engine.Cancel(c.Context(), id.UserID, c.Params("id"), id.Role, req.Reason)
	if err != nil {
		return s.sendFault(c, err)
	}

	return s.sendInterview(c, http.StatusOK, interview)
}

func (s *server) handleDeclareWindow(c *fiber.Ctx) error {
	id := caller(c)
	if id.Role != users.RoleCandidate {
		return s.sendError(c, http.StatusForbidden, "only candidates declare availability")
	}

	var w availability.Window
	err := c.BodyParser(&w)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal window payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	w.ID = ""
	w.CandidateID = id.UserID
	w.Status = availability.StatusAvailable

	windowID, err := s.windows.Declare(c.Context(), w)
	if err != nil {
		return s.sendFault(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"id": windowID},
	})
}

func (s *server) handleListWindows(c *fiber.Ctx) error {
	id := caller(c)
	if id.Role != users.RoleCandidate {
		return s.sendError(c, http.StatusForbidden, "only candidates list their availability")
	}

	windows, err := s.windows.List(c.Context(), id.UserID)
	if err != nil {
		return s.sendFault(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"windows": windows},
	})
}

func (s *server) handleReframeWindow(c *fiber.Ctx) error {
	id := caller(c)
	if id.Role != users.RoleCandidate {
		return s.sendError(c, http.StatusForbidden, "only candidates edit their availability")
	}

	var span timeslot.Slot
	err := c.BodyParser(&span)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal span payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	err = s.windows.Reframe(c.Context(), id.UserID, c.Params("id"), span)
	if err != nil {
		return s.sendFault(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"success": true})
}

func (s *server) handleRemoveWindow(c *fiber.Ctx) error {
	id := caller(c)
	if id.Role != users.RoleCandidate {
		return s.sendError(c, http.StatusForbidden, "only candidates edit their availability")
	}

	err := s.windows.Remove(c.Context(), id.UserID, c.Params("id"))
	if err != nil {
		return s.sendFault(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"success": true})
}

func (s *server) sendInterview(c *fiber.Ctx, status int, i *sessions.Interview) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"interview": i},
	})
}

func (s *server) sendFault(c *fiber.Ctx, err error) error {
	status := httpStatus(err)

	if status == http.StatusInternalServerError {
		s.log.Error(err)
		return s.sendError(c, status, "internal error")
	}

	var scherr *faults.SchedulingError
	if errors.As(err, &scherr) {
		conflicts := scherr.Conflicts
		if conflicts == nil {
			conflicts = []faults.ConflictInfo{}
		}
		suggested := scherr.Suggestions
		if suggested == nil {
			suggested = []timeslot.Slot{}
		}

		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   "no mutual availability for the requested times",
			"details": fiber.Map{
				"conflicts":      conflicts,
				"suggestedTimes": suggested,
			},
		})
	}

	return s.sendError(c, status, err.Error())
}

func (s *server) sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": msg})
}

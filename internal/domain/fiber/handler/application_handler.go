package handler

import (
	"github.com/careerconnect/backend/internal/dto"
	"github.com/careerconnect/backend/internal/model"
	"github.com/careerconnect/backend/internal/usecase"
	"github.com/careerconnect/backend/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ApplicationHandler struct {
	applications *usecase.ApplicationUsecase
}

func NewApplicationHandler(applications *usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

func (h *ApplicationHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/jobs/:id/apply", h.Submit)
	app.Get("/jobs/:id/applied", h.HasApplied)
	app.Get("/jobs/:id/applications", h.ListForJob)
	app.Get("/applications", h.ListForApplicant)
	app.Get("/applications/stats", h.Stats)
	app.Patch("/applications/:id/status", h.Transition)
}

type submitRequest struct {
	CoverLetter string `json:"cover_letter"`
	ResumeURL   string `json:"resume_url"`
}

func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	applicant, err := accountID(c)
	if err != nil {
		return err
	}
	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req submitRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "malformed request body",
		}, err)
	}

	app, err := h.applications.Submit(c.UserContext(), applicant, jobID, req.CoverLetter, req.ResumeURL)
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success submit application",
		Data:    dto.NewApplicationDTO(app),
	})
}

func (h *ApplicationHandler) HasApplied(c *fiber.Ctx) error {
	applicant, err := accountID(c)
	if err != nil {
		return err
	}
	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	applied, err := h.applications.HasApplied(c.UserContext(), applicant, jobID)
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success check application",
		Data:    fiber.Map{"applied": applied},
	})
}

func (h *ApplicationHandler) ListForApplicant(c *fiber.Ctx) error {
	applicant, err := accountID(c)
	if err != nil {
		return err
	}
	apps, err := h.applications.ListForApplicant(c.UserContext(), applicant, c.Query("status"))
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success list applications",
		Data:    dto.NewApplicationDTOs(apps),
	})
}

func (h *ApplicationHandler) ListForJob(c *fiber.Ctx) error {
	actor, err := accountID(c)
	if err != nil {
		return err
	}
	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	apps, err := h.applications.ListForJob(c.UserContext(), actor, jobID)
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success list job applications",
		Data:    dto.NewApplicationDTOs(apps),
	})
}

func (h *ApplicationHandler) Stats(c *fiber.Ctx) error {
	applicant, err := accountID(c)
	if err != nil {
		return err
	}
	counts, err := h.applications.StatsForApplicant(c.UserContext(), applicant)
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get application stats",
		Data:    counts,
	})
}

type transitionRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationHandler) Transition(c *fiber.Ctx) error {
	actor, err := accountID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req transitionRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "malformed request body",
		}, err)
	}

	app, err := h.applications.Transition(c.UserContext(), actor, id, model.Status(req.Status))
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update application status",
		Data:    dto.NewApplicationDTO(app),
	})
}

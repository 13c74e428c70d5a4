package handler

import (
	"github.com/careerconnect/backend/internal/dto"
	"github.com/careerconnect/backend/internal/usecase"
	"github.com/careerconnect/backend/internal/util"
	"github.com/gofiber/fiber/v2"
)

type CompanyHandler struct {
	companies *usecase.CompanyUsecase
	jobs      *usecase.JobUsecase
}

func NewCompanyHandler(companies *usecase.CompanyUsecase, jobs *usecase.JobUsecase) *CompanyHandler {
	return &CompanyHandler{companies: companies, jobs: jobs}
}

func (h *CompanyHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/companies", h.List)
	app.Post("/companies", h.Create)
	app.Get("/companies/me", h.GetOwn)
	app.Get("/companies/:id", h.Get)
	app.Put("/companies/:id", h.Update)
	app.Get("/companies/:id/stats", h.Stats)
	app.Get("/companies/:id/jobs", h.Jobs)
}

func (h *CompanyHandler) List(c *fiber.Ctx) error {
	companies, err := h.companies.List(c.UserContext())
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get companies",
		Data:    dto.NewCompanyDTOs(companies),
	})
}

func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	ownerID, err := accountID(c)
	if err != nil {
		return err
	}

	var req usecase.CompanyInput
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "malformed request body",
		}, err)
	}

	company, err := h.companies.Create(c.UserContext(), ownerID, req)
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create company",
		Data:    dto.NewCompanyDTO(company),
	})
}

func (h *CompanyHandler) GetOwn(c *fiber.Ctx) error {
	ownerID, err := accountID(c)
	if err != nil {
		return err
	}
	company, err := h.companies.GetByOwner(c.UserContext(), ownerID)
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get company",
		Data:    dto.NewCompanyDTO(company),
	})
}

func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	company, err := h.companies.Get(c.UserContext(), id)
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get company",
		Data:    dto.NewCompanyDTO(company),
	})
}

func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	ownerID, err := accountID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.CompanyInput
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "malformed request body",
		}, err)
	}

	company, err := h.companies.Update(c.UserContext(), ownerID, id, req)
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update company",
		Data:    dto.NewCompanyDTO(company),
	})
}

func (h *CompanyHandler) Stats(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	counts, err := h.jobs.StatsForCompany(c.UserContext(), id)
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get company stats",
		Data:    counts,
	})
}

func (h *CompanyHandler) Jobs(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	jobs, err := h.jobs.ListForCompany(c.UserContext(), id)
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get company jobs",
		Data:    dto.NewJobDTOs(jobs),
	})
}

package handler

import (
	"time"

	"github.com/careerconnect/backend/internal/dto"
	"github.com/careerconnect/backend/internal/model"
	"github.com/careerconnect/backend/internal/response"
	"github.com/careerconnect/backend/internal/search"
	"github.com/careerconnect/backend/internal/usecase"
	"github.com/careerconnect/backend/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type JobHandler struct {
	jobs *usecase.JobUsecase
}

func NewJobHandler(jobs *usecase.JobUsecase) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/jobs", h.Search)
	app.Post("/jobs", h.Create)
	app.Get("/jobs/:id", h.Get)
	app.Get("/jobs/:id/similar", h.Similar)
	app.Patch("/jobs/:id/deactivate", h.Deactivate)
}

// Search answers the job board query. All filters are optional; "" and
// "all" mean unconstrained.
func (h *JobHandler) Search(c *fiber.Ctx) error {
	criteria, err := search.ParseCriteria(
		c.Query("q"),
		c.Query("location"),
		c.Query("job_type"),
		c.Query("experience_level"),
		c.Query("work_arrangement"),
	)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}
	criteria.Page = c.QueryInt("page")
	criteria.PageSize = c.QueryInt("page_size")

	jobs, err := h.jobs.Search(c.UserContext(), criteria)
	if err != nil {
		return domainError(c, err)
	}

	var pagination *response.Pagination
	if criteria.PageSize > 0 {
		total, err := h.jobs.CountActive(c.UserContext(), criteria)
		if err != nil {
			return domainError(c, err)
		}
		pagination = response.NewPagination(criteria.Page, criteria.PageSize, total, len(jobs))
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success search jobs",
		Data:       dto.NewJobDTOs(jobs),
		Pagination: pagination,
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	job, err := h.jobs.Get(c.UserContext(), id)
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get job",
		Data:    dto.NewJobDTO(job),
	})
}

func (h *JobHandler) Similar(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	jobs, err := h.jobs.Similar(c.UserContext(), id, c.QueryInt("limit", 5))
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get similar jobs",
		Data:    dto.NewJobDTOs(jobs),
	})
}

type createJobRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	JobType         string     `json:"job_type"`
	WorkArrangement string     `json:"work_arrangement"`
	ExperienceLevel string     `json:"experience_level"`
	SalaryMin       *int       `json:"salary_min"`
	SalaryMax       *int       `json:"salary_max"`
	SalaryCurrency  string     `json:"salary_currency"`
	Deadline        *time.Time `json:"application_deadline"`
	Skills          []struct {
		SkillID    uuid.UUID `json:"skill_id"`
		IsRequired bool      `json:"is_required"`
	} `json:"skills"`
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	owner, err := accountID(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "malformed request body",
		}, err)
	}

	in := usecase.CreateJobInput{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		JobType:         model.JobType(req.JobType),
		WorkArrangement: model.WorkArrangement(req.WorkArrangement),
		ExperienceLevel: model.ExperienceLevel(req.ExperienceLevel),
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		SalaryCurrency:  req.SalaryCurrency,
		Deadline:        req.Deadline,
		RequiredSkillID: map[uuid.UUID]bool{},
	}
	for _, s := range req.Skills {
		in.SkillIDs = append(in.SkillIDs, s.SkillID)
		in.RequiredSkillID[s.SkillID] = s.IsRequired
	}

	job, err := h.jobs.Create(c.UserContext(), owner, in)
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create job",
		Data:    dto.NewJobDTO(job),
	})
}

func (h *JobHandler) Deactivate(c *fiber.Ctx) error {
	owner, err := accountID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.jobs.Deactivate(c.UserContext(), owner, id); err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success deactivate job",
	})
}

package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/careerconnect/backend/internal/dto"
	"github.com/careerconnect/backend/internal/model"
	"github.com/careerconnect/backend/internal/usecase"
	"github.com/careerconnect/backend/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	profiles *usecase.ProfileUsecase
}

func NewProfileHandler(profiles *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/profiles/me", h.GetOwn)
	app.Put("/profiles/me", h.Update)
	app.Put("/profiles/me/skills", h.ReplaceSkills)
	app.Post("/profiles/me/resume-skills", h.SuggestSkills)
	app.Get("/profiles/:id", h.Get)
}

func (h *ProfileHandler) GetOwn(c *fiber.Ctx) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}
	return h.respondProfile(c, id)
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	return h.respondProfile(c, id)
}

func (h *ProfileHandler) respondProfile(c *fiber.Ctx, id uuid.UUID) error {
	p, err := h.profiles.Get(c.UserContext(), id)
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get profile",
		Data:    dto.NewProfileDTO(p, h.profiles),
	})
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateProfileInput
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "malformed request body",
		}, err)
	}

	p, err := h.profiles.Update(c.UserContext(), id, req)
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update profile",
		Data:    dto.NewProfileDTO(p, h.profiles),
	})
}

type replaceSkillsRequest struct {
	Skills []struct {
		SkillID         uuid.UUID `json:"skill_id"`
		Proficiency     string    `json:"proficiency_level"`
		YearsExperience *int      `json:"years_experience"`
	} `json:"skills"`
}

func (h *ProfileHandler) ReplaceSkills(c *fiber.Ctx) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	var req replaceSkillsRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "malformed request body",
		}, err)
	}

	inputs := make([]usecase.UserSkillInput, 0, len(req.Skills))
	for _, s := range req.Skills {
		inputs = append(inputs, usecase.UserSkillInput{
			SkillID:         s.SkillID,
			Proficiency:     model.Proficiency(s.Proficiency),
			YearsExperience: s.YearsExperience,
		})
	}

	if err := h.profiles.ReplaceSkills(c.UserContext(), id, inputs); err != nil {
		return domainError(c, err)
	}
	return h.respondProfile(c, id)
}

// SuggestSkills accepts a resume PDF and returns the catalog skills it
// mentions.
func (h *ProfileHandler) SuggestSkills(c *fiber.Ctx) error {
	if _, err := accountID(c); err != nil {
		return err
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file is required",
		}, err)
	}
	if file.Size > 5*1024*1024 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file size is too large (max 5MB)",
		})
	}
	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "unsupported resume file type",
		})
	}

	tmp, err := os.CreateTemp("", "resume-*.pdf")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot save resume file",
		}, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(file, tmpPath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: fmt.Sprintf("cannot save %s", file.Filename),
		}, err)
	}

	skills, err := h.profiles.SuggestSkillsFromResume(c.UserContext(), tmpPath)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "failed to extract resume text",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success suggest skills",
		Data:    skills,
	})
}

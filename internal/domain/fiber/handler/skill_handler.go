package handler

import (
	"github.com/careerconnect/backend/internal/usecase"
	"github.com/careerconnect/backend/internal/util"
	"github.com/gofiber/fiber/v2"
)

type SkillHandler struct {
	skills *usecase.SkillUsecase
}

func NewSkillHandler(skills *usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{skills: skills}
}

func (h *SkillHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/skills", h.List)
	app.Get("/skills/grouped", h.ListGrouped)
}

func (h *SkillHandler) List(c *fiber.Ctx) error {
	skills, err := h.skills.List(c.UserContext())
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get skills",
		Data:    skills,
	})
}

func (h *SkillHandler) ListGrouped(c *fiber.Ctx) error {
	groups, err := h.skills.ListGrouped(c.UserContext())
	if err != nil {
		return domainError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get skills",
		Data:    groups,
	})
}

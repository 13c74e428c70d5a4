package admin

import (
	"context"
	_ "embed"
	"errors"
	"log"
	"time"

	"github.com/careerconnect/backend/internal/model"
	"github.com/careerconnect/backend/internal/repository"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

//go:embed seeds/skills.json
var skillsJSON []byte

// SeedSkills loads the canonical skill catalog. Idempotent: entries that
// already exist are left alone.
func SeedSkills(ctx context.Context, repo *repository.SkillRepository) error {
	entries := gjson.GetBytes(skillsJSON, "skills")
	if !entries.Exists() {
		return errors.New("skill seed file has no skills array")
	}

	var seedErr error
	entries.ForEach(func(_, entry gjson.Result) bool {
		name := entry.Get("name").String()
		if name == "" {
			return true
		}

		ictx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()

		if _, err := repo.FindByName(ictx, name); err == nil {
			return true
		} else if !errors.Is(err, repository.ErrNotFound) {
			seedErr = err
			return false
		}

		skill := &model.Skill{
			ID:       uuid.New(),
			Name:     name,
			Category: entry.Get("category").String(),
		}
		if err := repo.Create(ictx, skill); err != nil {
			seedErr = err
			return false
		}
		log.Printf("seeded skill %q (%s)", skill.Name, skill.Category)
		return true
	})
	return seedErr
}

package initializers

import (
	"context"

	"reelkit-api/models"
	"reelkit-api/repository"
)

// InitDefaults is called once on application start to ensure the built-in
// template catalog exists in the store.
func InitDefaults(ctx context.Context, templates *repository.TemplatesRepository) error {
	builtin := []models.Template{
		{Key: "tiktok_fast", Title: "TikTok Fast Cut", AspectRatio: "9:16", Timeline: models.NewTimeline()},
		{Key: "yt_talking_head", Title: "YouTube Talking Head", AspectRatio: "16:9", Timeline: models.NewTimeline()},
		{Key: "promo_glitch", Title: "Promo Glitch", AspectRatio: "1:1", Timeline: models.NewTimeline()},
	}
	for _, tpl := range builtin {
		if err := templates.EnsureTemplate(ctx, tpl); err != nil {
			return err
		}
	}
	return nil
}

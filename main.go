package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Yon-ln/33s/client"
	"github.com/Yon-ln/33s/configs"
	"github.com/Yon-ln/33s/render"
	"github.com/Yon-ln/33s/routes"
	"github.com/Yon-ln/33s/services"
	"github.com/Yon-ln/33s/ws"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := configs.LoadConfig()

	// Decide which upstream base to talk to before anything fetches.
	resolver := configs.NewHealthResolver(cfg.PrimaryAPIBase, cfg.FallbackAPIBase)
	base := resolver.Resolve(context.Background())
	log.Info().Str("base", base).Msg("upstream base resolved")

	api := client.New(resolver.ActiveBase)
	menu := services.NewMenuService(client.NewMenuClient(api))
	hero := services.NewHeroService(client.NewHeroClient(api), resolver.ActiveBase)
	editor := services.NewEditorService(menu)
	pipeline := services.NewImagePipeline(client.NewUploadClient(api), menu, editor)
	slideshow := services.NewSlideshow(cfg.SlideshowFile)

	hub := ws.NewLiveHub()
	go hub.Run()

	scheduler := services.NewScheduler(cfg.Window)
	scheduler.OnChange(hub.BroadcastMode)
	go scheduler.Run()
	defer scheduler.Stop()

	menu.OnChange(hub.BroadcastMenuUpdated)

	// Warm the mirrors; failures degrade to empty pages, not a crash.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	menu.Refresh(ctx)
	hero.Refresh(ctx)
	cancel()

	r := gin.Default()
	routes.RegisterRoutes(r, routes.Deps{
		Cfg:       cfg,
		Menu:      menu,
		Hero:      hero,
		Editor:    editor,
		Pipeline:  pipeline,
		Scheduler: scheduler,
		Slideshow: slideshow,
		Hub:       hub,
		Renderer:  render.New(),
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("console listening")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/trabalha-floriano/portal-backend/internal/cadastro"
	"github.com/trabalha-floriano/portal-backend/internal/config"
	"github.com/trabalha-floriano/portal-backend/internal/dashboard"
	"github.com/trabalha-floriano/portal-backend/internal/db"
	"github.com/trabalha-floriano/portal-backend/internal/handlers"
	"github.com/trabalha-floriano/portal-backend/internal/logging"
	"github.com/trabalha-floriano/portal-backend/internal/middleware"
	"github.com/trabalha-floriano/portal-backend/internal/models"
	"github.com/trabalha-floriano/portal-backend/internal/realtime"
	"github.com/trabalha-floriano/portal-backend/internal/store"
	"github.com/trabalha-floriano/portal-backend/internal/usuarios"
	"github.com/trabalha-floriano/portal-backend/internal/vagas"
)

func main() {
	_ = godotenv.Load()

	logger, err := logging.New()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	gdb, err := db.Connect(cfg.CadastroDBPath)
	if err != nil {
		logger.Fatal("falha ao abrir o banco do cadastro", zap.Error(err))
	}

	cadastroSvc := cadastro.NewService(gdb, cfg.CadastroHashPwd, logger)
	if err := cadastroSvc.Migrate(); err != nil {
		logger.Fatal("falha ao migrar a tabela de cadastro", zap.Error(err))
	}

	st := store.NewClient(cfg.StoreBaseURL, cfg.StoreTimeout())
	logger.Info("store configurado", zap.String("base_url", cfg.StoreBaseURL))

	hub := realtime.NewHub(logger)
	go hub.Run()

	rdb := realtime.NewRedis(cfg.RedisAddr, cfg.RedisPassword, logger)
	notifier := realtime.NewNotifier(hub, rdb, logger)
	go notifier.Run(context.Background())

	vagasSvc := vagas.NewService(st, logger)
	usuariosSvc := usuarios.NewService(st, logger)
	dashboardSvc := dashboard.NewService(st, logger)

	boardH := handlers.NewBoardHandler(vagasSvc, notifier, logger)
	adminVagasH := handlers.NewAdminVagasHandler(vagasSvc, notifier, logger)
	adminUsuariosH := handlers.NewAdminUsuariosHandler(usuariosSvc, notifier, logger)
	dashboardH := handlers.NewDashboardHandler(dashboardSvc, logger)
	cadastroH := handlers.NewCadastroHandler(cadastroSvc, logger)
	realtimeH := handlers.NewRealtimeHandler(hub, logger)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	api := app.Group("/api", middleware.AttachSession(cfg.AdminPanelPath))

	// mural público
	api.Get("/mural", boardH.GetMural)
	api.Get("/areas", boardH.GetAreas)
	api.Get("/sessao", boardH.GetSessao)
	api.Post("/logout", boardH.Logout)
	api.Post("/vagas",
		middleware.RequireRoles(models.RoleContratante),
		boardH.PublicarVaga,
	)

	// cadastro (side-channel, tabela local)
	api.Post("/cadastro", cadastroH.Registrar)

	// painel admin — sem gate de sessão: o papel admin é transitório (a
	// resolução da sessão o redireciona, nunca cria sessão) e o controle de
	// papéis é afordância de UI, como no portal original
	admin := api.Group("/admin")
	admin.Get("/dashboard", dashboardH.GetStats)
	admin.Get("/relatorio", dashboardH.Relatorio)

	admin.Get("/vagas", adminVagasH.List)
	admin.Post("/vagas", adminVagasH.Criar)
	admin.Patch("/vagas/:id/aprovar", adminVagasH.Aprovar)
	admin.Put("/vagas/:id", adminVagasH.Editar)
	admin.Delete("/vagas/:id", adminVagasH.Excluir)

	admin.Get("/usuarios", adminUsuariosH.List)
	admin.Post("/usuarios", adminUsuariosH.Criar)
	admin.Put("/usuarios/:id", adminUsuariosH.Editar)
	admin.Patch("/usuarios/:id/ativar", adminUsuariosH.Ativar)
	admin.Patch("/usuarios/:id/desativar", adminUsuariosH.Desativar)
	admin.Delete("/usuarios/:id", adminUsuariosH.Excluir)

	// socket de atualização do painel
	app.Get("/ws/admin", websocket.New(realtimeH.WebSocketHandler))

	logger.Info("portal api no ar", zap.String("port", cfg.AppPort))
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		logger.Fatal("servidor encerrou", zap.Error(err))
	}
}

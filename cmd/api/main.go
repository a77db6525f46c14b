package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/grupogritt/metrics-sync/infrastructure/database/postgres"
	"github.com/grupogritt/metrics-sync/infrastructure/integrator/tokens"
	"github.com/grupogritt/metrics-sync/infrastructure/integrator/utmify"
	"github.com/grupogritt/metrics-sync/infrastructure/integrator/utmify/utmifyclient"
	"github.com/grupogritt/metrics-sync/infrastructure/integrator/vturb"
	"github.com/grupogritt/metrics-sync/infrastructure/integrator/vturb/vturbclient"
	"github.com/grupogritt/metrics-sync/infrastructure/repository"
	"github.com/grupogritt/metrics-sync/internal/api"
	"github.com/grupogritt/metrics-sync/internal/config"
	"github.com/grupogritt/metrics-sync/internal/scheduler"
	"github.com/grupogritt/metrics-sync/internal/usecases/extracting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	campaignRepo := repository.NewAdObjectInsightRepository(pgConn, repository.CampaignTables)
	adRepo := repository.NewAdObjectInsightRepository(pgConn, repository.AdTables)
	playerRepo := repository.NewPlayerStatsRepository(pgConn)

	utmifyTokens := tokens.NewStaticProvider("utmify", cfg.Utmify.Token)
	vturbTokens := tokens.NewStaticProvider("vturb", cfg.Vturb.Token)

	utmifyClient := utmifyclient.NewClient(cfg, utmifyTokens)
	utmifyIntegrator := utmify.New(cfg, utmifyClient)

	vturbClient := vturbclient.NewClient(cfg, vturbTokens)
	vturbIntegrator := vturb.New(cfg, vturbClient)

	extractor := extracting.NewService(
		cfg,
		utmifyIntegrator,
		vturbIntegrator,
		campaignRepo,
		adRepo,
		playerRepo,
	)

	// Inicializa os agendadores de sincronização separados
	utmifySyncService := scheduler.NewUtmifySyncService(extractor, cfg)
	vturbSyncService := scheduler.NewVturbSyncService(extractor, cfg)

	// Inicia os agendadores em background
	if err := utmifySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização da Utmify")
	} else {
		logrus.Info("Agendador de sincronização da Utmify iniciado com sucesso")
	}

	if err := vturbSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização da VTurb")
	} else {
		logrus.Info("Agendador de sincronização da VTurb iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		utmifySyncService,
		vturbSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

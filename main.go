package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"group-bot/internal/config"
	"group-bot/internal/handlers"
	"group-bot/internal/journal"
	"group-bot/internal/middleware"
	"group-bot/internal/observability"
	"group-bot/internal/pachca"
	"group-bot/internal/rabbitmq"
	"group-bot/internal/roster"
	"group-bot/internal/telemetry"
)

const serviceName = "group-bot"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	shutdownTracing := observability.SetupTracing(ctx, cfg.OTLPEndpoint, serviceName, cfg.Environment)
	defer func() { _ = shutdownTracing(ctx) }()

	publisher := rabbitmq.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	defer publisher.Close()
	audit := telemetry.NewAuditEmitter(publisher, "bot.audit", serviceName, cfg.Environment)

	jrnl := journal.Open(cfg.DBDSN)
	defer jrnl.Close()

	client := pachca.NewClient(cfg.BaseURL, cfg.APIToken, cfg.HTTPTimeout)

	excludedIDs, err := cfg.ExcludedIDs()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	tagFilter, err := roster.FilterForMode(cfg.TagType)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	resolver := roster.NewResolver(client, excludedIDs, tagFilter)

	webhookHandler := handlers.NewWebhookHandler(resolver, client, jrnl, audit)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(observability.HTTPMetricsMiddleware())
	router.Use(otelgin.Middleware(serviceName))

	router.POST("/webhook", middleware.VerifySignature(cfg.SecretToken), webhookHandler.Handle)
	handlers.RegisterOpsRoutes(router, audit, cfg.DebugRoutes)

	log.Printf("starting server port=%d tag_mode=%s excluded=%d publisher=%s",
		cfg.Port, cfg.TagType, len(excludedIDs), rabbitmq.Mode(publisher))
	if err := router.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

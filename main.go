package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"risk-analysis/client"
	"risk-analysis/config"
	"risk-analysis/handlers"
	"risk-analysis/session"
)

func main() {
	cfg := config.Load()

	analysisClient := client.New(cfg.AnalysisAPIURL, cfg.RequestTimeout)
	handlers.Setup(session.New(analysisClient), analysisClient)

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.Static("/static", "./static")
	r.LoadHTMLGlob("templates/*")

	r.GET("/", handlers.Index)
	r.GET("/analyze", handlers.AnalyzePage)

	api := r.Group("/api")
	{
		api.GET("/analyze/:ticker", handlers.AnalyzeAPI)
	}

	log.Println("Starting Stock Risk Analyzer on", cfg.ListenAddr)
	log.Println("Analysis service:", cfg.AnalysisAPIURL)

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

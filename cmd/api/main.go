package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Adriel-Pezo-2004/PetKarMg/internal/config"
	dbpkg "github.com/Adriel-Pezo-2004/PetKarMg/internal/db"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/middleware"
	"github.com/Adriel-Pezo-2004/PetKarMg/internal/routes"
)

func main() {

	// .env es opcional; en producción las variables vienen del entorno
	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

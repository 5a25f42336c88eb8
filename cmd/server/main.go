package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"vitrine_back_end/internal/config"
	"vitrine_back_end/internal/fixture"
	"vitrine_back_end/internal/routes"
	"vitrine_back_end/internal/storage"
	"vitrine_back_end/internal/store"
)

func main() {
	config.Load()

	adapter, err := storage.Open()
	if err != nil {
		log.Fatal("❌ Impossible d'initialiser le stockage: ", err)
	}

	data, err := fixture.Load()
	if err != nil {
		log.Fatal("❌ Fixture catalogue invalide: ", err)
	}
	log.Printf("✅ Fixture chargée: %d produits, %d utilisateurs, %d catégories",
		len(data.Products), len(data.Users), len(data.Categories))

	s := store.New(data, adapter, authLatency())

	// Rejoue la session précédente avant de servir la première requête
	s.Hydrate()
	log.Println("✅ Store hydraté")

	r := gin.Default()
	routes.RegisterRoutes(r, s)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Vitrine lancé sur le port", port)
	r.Run(":" + port)
}

// authLatency — latence réseau simulée de login/register,
// paramétrable via AUTH_LATENCY_MS.
func authLatency() time.Duration {
	if raw := os.Getenv("AUTH_LATENCY_MS"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
		log.Println("⚠️ AUTH_LATENCY_MS invalide, latence par défaut conservée")
	}
	return store.DefaultLatency
}

package storage

import (
	"fmt"
	"log"
	"os"
)

// Open choisit le backend selon l'environnement :
//   - STORAGE_BACKEND=redis (ou REDIS_HOST défini) → Redis
//   - STORAGE_BACKEND=memory → mémoire volatile
//   - sinon → fichiers JSON dans DATA_DIR (./data par défaut)
func Open() (Adapter, error) {
	backend := os.Getenv("STORAGE_BACKEND")

	switch backend {
	case "redis":
		host := os.Getenv("REDIS_HOST")
		if host == "" {
			return nil, fmt.Errorf("STORAGE_BACKEND=redis mais REDIS_HOST non configuré")
		}
		return NewRedis(host, os.Getenv("REDIS_PASSWORD"))

	case "memory":
		log.Println("⚠️ Backend mémoire : l'état ne survivra pas au redémarrage")
		return NewMemory(), nil

	case "", "file":
		if backend == "" && os.Getenv("REDIS_HOST") != "" {
			return NewRedis(os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PASSWORD"))
		}
		dir := os.Getenv("DATA_DIR")
		if dir == "" {
			dir = "data"
		}
		adapter, err := NewFile(dir)
		if err != nil {
			return nil, err
		}
		log.Printf("✅ Persistance fichier dans %s/", dir)
		return adapter, nil

	default:
		return nil, fmt.Errorf("backend de stockage inconnu: %q", backend)
	}
}

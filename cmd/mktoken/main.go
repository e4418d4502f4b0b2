// Command mktoken mints a JWT for a seeded user. Useful for poking
// the API with curl during development:
//
//	go run ./cmd/mktoken -user 2
//	curl -H "Authorization: Bearer $TOKEN" localhost:8000/api/referrals/requests?received=true
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/rishindramani/awesome-referrals-sub000/auth"
	"github.com/rishindramani/awesome-referrals-sub000/config"
)

func main() {
	userID := flag.String("user", "1", "user id to embed in the token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	token, expiresAt, err := tokens.GenerateToken(*userID)
	if err != nil {
		log.Fatal("Failed to generate token:", err)
	}

	fmt.Println(token)
	fmt.Printf("expires: %s\n", expiresAt.Format("2006-01-02 15:04:05 MST"))
}

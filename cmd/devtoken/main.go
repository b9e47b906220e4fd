// Command devtoken mints a bearer token signed with the configured secret,
// for calling the API locally without the identity provider.
//
// Usage:
//
//	devtoken --user=u1 [--name="Ada"] [--email=ada@example.com] [--admin] [--ttl=24h]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/heartmarshall/codeclub-backend/internal/auth"
	"github.com/heartmarshall/codeclub-backend/internal/config"
)

func main() {
	userID := flag.String("user", "", "user ID (token subject)")
	name := flag.String("name", "", "display name")
	email := flag.String("email", "", "email address")
	admin := flag.Bool("admin", false, "grant the configured admin role")
	ttl := flag.Duration("ttl", 0, "token lifetime (default auth.dev_token_ttl)")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "Usage: devtoken --user=<id> [--name=...] [--email=...] [--admin] [--ttl=24h]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lifetime := cfg.Auth.DevTokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	role := "member"
	if *admin {
		role = cfg.Auth.AdminRole
	}

	manager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, lifetime)
	token, err := manager.GenerateAccessToken(auth.Claims{
		UserID: *userID,
		Name:   *name,
		Email:  *email,
		Role:   role,
	})
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}

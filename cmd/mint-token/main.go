// Command mint-token prints a signed ID token for local development. The
// server accepts it through PUT /v1/session or auth.id_token.
//
// Usage:
//
//	mint-token --uid alice --name "Alice" --ttl 24h
//
// The signing secret comes from --secret or AUTH_JWT_SECRET.
package main

import (
	"cmp"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/pinmoji/internal/auth"
	"github.com/heartmarshall/pinmoji/internal/domain"
)

func main() {
	secret := pflag.String("secret", os.Getenv("AUTH_JWT_SECRET"), "HMAC signing secret")
	issuer := pflag.String("issuer", cmp.Or(os.Getenv("AUTH_JWT_ISSUER"), "pinmoji"), "token issuer")
	uid := pflag.String("uid", "", "user id (required)")
	name := pflag.String("name", "", "display name")
	ttl := pflag.Duration("ttl", 24*time.Hour, "token lifetime")
	pflag.Parse()

	if *secret == "" {
		log.Fatal("--secret or AUTH_JWT_SECRET is required")
	}

	token, err := auth.NewTokenManager(*secret, *issuer).
		GenerateIDToken(domain.User{UID: *uid, DisplayName: *name}, *ttl)
	if err != nil {
		log.Fatalf("mint token: %v", err)
	}

	fmt.Println(token)
}

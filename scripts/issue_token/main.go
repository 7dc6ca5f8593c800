// Command issue_token signs a development bearer token with the configured
// JWT secret.
//
//	go run ./scripts/issue_token -name Ana -email ana@example.cr
package main

import (
	"flag"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/auth"
)

func main() {
	id := flag.String("id", "", "owner UUID, random when empty")
	name := flag.String("name", "dev", "display name claim")
	email := flag.String("email", "", "email claim")
	flag.Parse()

	cfg, err := server_config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
	}
	if cfg.Auth.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is not set")
	}

	owner := uuid.Must(uuid.NewV4())
	if *id != "" {
		owner, err = uuid.FromString(*id)
		if err != nil {
			logrus.WithError(err).Fatal("invalid -id")
		}
	}

	manager := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer)
	token, err := manager.Sign(auth.Identity{OwnerID: owner, Name: *name, Email: *email})
	if err != nil {
		logrus.WithError(err).Fatal("sign token")
	}

	logrus.WithField("ownerID", owner.String()).Info("token issued")
	fmt.Println(token)
}

// Command token issues an access token for an existing user. Accounts live
// outside this service, so this is how local clients get a bearer token.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/berkaychi/ClimbUpAPI-sub001/internal/repository"
	"github.com/berkaychi/ClimbUpAPI-sub001/internal/service"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/cleanup"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/config"
	jwtservice "github.com/berkaychi/ClimbUpAPI-sub001/pkg/jwt_service"
	"github.com/google/uuid"
)

func main() {
	rawUID := flag.String("uid", "", "user id")
	flag.Parse()
	uid, err := uuid.Parse(*rawUID)
	if err != nil {
		log.Fatal("invalid -uid: ", err)
	}

	cfg := config.New()
	defer cleanup.CleanUp()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
	}
	users := service.NewUserService(repository.NewUsersRepo(repository.NewPool(&dbCfg)))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	user, err := users.GetByID(ctx, uid)
	if err != nil {
		log.Fatal("looking up user: ", err)
	}
	token, err := jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", time.Hour)).GenerateToken(user)
	if err != nil {
		log.Fatal("generating token: ", err)
	}
	fmt.Println(token)
}

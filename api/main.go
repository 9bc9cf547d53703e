package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"

	"github.com/aurahealth/aura"
	"github.com/aurahealth/aura/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	uri := envOr("MONGODB_URI", "mongodb://127.0.0.1:27017")
	dbName := envOr("AURA_DB", "aura")
	port := envOr("PORT", "8080")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println(err)
		}
	}()

	if err = client.Ping(ctx, nil); err != nil {
		log.Fatal(err)
	}

	accounts := client.Database(dbName).Collection("accounts")
	patients := client.Database(dbName).Collection("patients")

	if err = auth.EnsureAccountIndexes(ctx, accounts); err != nil {
		log.Fatal(err)
	}

	svc := auth.NewService(auth.NewMongoAccountRepository(accounts), auth.NewMongoPatientRepository(patients))

	router := httprouter.New()
	router.Handler(http.MethodPost, "/auth/register", auth.RegisterHandler(svc))
	router.Handler(http.MethodPost, "/auth/login", auth.LoginHandler(svc))
	router.Handler(http.MethodGet, "/auth/whoami", auth.WhoAmIHandler(svc))
	router.Handler(http.MethodGet, "/", aura.RootHandler())
	router.Handler(http.MethodGet, "/health", aura.HealthHandler())

	log.Printf("Server started. Listening on port: %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/driftcode/minifeed/config"
	"github.com/driftcode/minifeed/pkg/helpers"
)

// Seeds two demo accounts and a couple of posts so a fresh database renders
// a non-empty feed.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	aliceID := seedUser(db, "alice", "alice@example.com", hash)
	bobID := seedUser(db, "bob", "bob@example.com", hash)
	fmt.Printf("seeded users alice=%s bob=%s password=%s\n", aliceID, bobID, password)

	seedPost(db, aliceID, "Hello minifeed", "First post on a fresh instance.")
	seedPost(db, bobID, "Obligatory second post", "Somebody had to reply.")
	fmt.Println("seeded demo posts")
}

func seedUser(db *sql.DB, username, email, hash string) string {
	var id string
	err := db.QueryRow(`
		INSERT INTO users (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, helpers.NewID(), username, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", username, err)
	}
	return id
}

func seedPost(db *sql.DB, userID, title, content string) {
	if _, err := db.Exec(`
		INSERT INTO posts (id, user_id, title, content)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`, helpers.NewID(), userID, title, content); err != nil {
		log.Fatalf("failed to seed post %q: %v", title, err)
	}
}

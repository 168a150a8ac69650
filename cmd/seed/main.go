package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"devconnect/internal/config"
	"devconnect/internal/db"
	"devconnect/internal/model"
	"devconnect/internal/repository"
)

// demoPassword is the login password for every seeded account.
const demoPassword = "password123"

// SeedUser bundles a demo account with its profile and posts.
type SeedUser struct {
	Name   string
	Email  string
	Handle string
	Bio    string
	Posts  []string
}

var demoUsers = []SeedUser{
	{
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
		Handle: "ada",
		Bio:    "Writes programs for machines that do not exist yet.",
		Posts: []string{
			"The Analytical Engine weaves algebraic patterns just as the Jacquard loom weaves flowers and leaves.",
			"Notes on note G are finally published. Feedback welcome!",
		},
	},
	{
		Name:   "Grace Hopper",
		Email:  "grace@example.com",
		Handle: "amazing-grace",
		Bio:    "It is easier to ask forgiveness than it is to get permission.",
		Posts: []string{
			"A ship in port is safe, but that is not what ships are built for.",
		},
	},
	{
		Name:   "Alan Turing",
		Email:  "alan@example.com",
		Handle: "alan",
		Bio:    "Sometimes it is the people no one imagines anything of who do the things no one can imagine.",
		Posts: []string{
			"We can only see a short distance ahead, but we can see plenty there that needs to be done.",
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Post{},
		&model.Like{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	ctx := context.Background()

	users, created, err := seedUsers(ctx, userRepo, profileRepo)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Users ready: %d (%d newly created)", len(users), created)

	posts, err := seedPosts(ctx, postRepo, users)
	if err != nil {
		log.Fatalf("Failed to seed posts: %v", err)
	}
	log.Printf("Posts created: %d", posts)

	log.Println("Seed completed successfully!")
	log.Printf("  - Demo login password for all accounts: %s", demoPassword)
}

// seedUsers creates the demo accounts and profiles, skipping ones that
// already exist so the script can run repeatedly.
func seedUsers(ctx context.Context, userRepo repository.UserRepository, profileRepo repository.ProfileRepository) ([]model.User, int, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
	if err != nil {
		return nil, 0, fmt.Errorf("hash demo password: %w", err)
	}

	var out []model.User
	created := 0
	for _, seed := range demoUsers {
		existing, err := userRepo.FindByEmail(ctx, seed.Email)
		if err == nil {
			out = append(out, *existing)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, created, fmt.Errorf("check user %s: %w", seed.Email, err)
		}

		user := &model.User{
			ID:           uuid.New(),
			Name:         seed.Name,
			Email:        seed.Email,
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, created, fmt.Errorf("create user %s: %w", seed.Email, err)
		}

		profile := &model.Profile{
			ID:       uuid.New(),
			UserID:   user.ID,
			Handle:   seed.Handle,
			Username: seed.Name,
			Bio:      seed.Bio,
		}
		if err := profileRepo.Create(ctx, profile); err != nil {
			return nil, created, fmt.Errorf("create profile %s: %w", seed.Handle, err)
		}

		out = append(out, *user)
		created++
	}
	return out, created, nil
}

// seedPosts creates the demo posts and cross-likes them so the feed is not
// empty on first run. Posts are only created for newly seeded users'
// missing content, keyed by text.
func seedPosts(ctx context.Context, postRepo repository.PostRepository, users []model.User) (int, error) {
	existing, err := postRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list posts: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p.Text] = true
	}

	byEmail := make(map[string]model.User, len(users))
	for _, u := range users {
		byEmail[u.Email] = u
	}

	created := 0
	for _, seed := range demoUsers {
		author, ok := byEmail[seed.Email]
		if !ok {
			continue
		}
		for _, text := range seed.Posts {
			if seen[text] {
				continue
			}
			post := &model.Post{
				ID:     uuid.New(),
				UserID: author.ID,
				Text:   text,
				Name:   author.Name,
				Avatar: author.Avatar,
			}
			if err := postRepo.Create(ctx, post); err != nil {
				return created, fmt.Errorf("create post for %s: %w", seed.Email, err)
			}
			created++

			// Every other demo user likes the post.
			for _, liker := range users {
				if liker.ID == author.ID {
					continue
				}
				like := &model.Like{PostID: post.ID, UserID: liker.ID}
				if err := postRepo.AddLike(ctx, like); err != nil {
					return created, fmt.Errorf("like post for %s: %w", liker.Email, err)
				}
			}
		}
	}
	return created, nil
}

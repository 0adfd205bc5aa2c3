package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"coaching-portal-backend/internal/auth"
	"coaching-portal-backend/internal/config"
	"coaching-portal-backend/internal/database"
	"coaching-portal-backend/internal/database/models"
	"coaching-portal-backend/internal/repository"
	"coaching-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed records are created through the services, so every leader and led
// team pair is written by the same code path the API uses.
type TeamData struct {
	Name string `yaml:"name"`
}

type UserData struct {
	Username string  `yaml:"username"`
	Email    *string `yaml:"email,omitempty"`
	Password string  `yaml:"password"`
	Role     string  `yaml:"role"`
	LedTeam  string  `yaml:"led_team,omitempty"`
}

type MemberData struct {
	Name     string `yaml:"name"`
	TeamName string `yaml:"team_name"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type MembersFile struct {
	Members []MemberData `yaml:"members"`
}

type seeder struct {
	repos    *repository.Repositories
	users    *service.UserService
	teams    *service.TeamService
	members  *service.TeamMemberService
	operator *service.Viewer
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := os.Getenv("SEED_DATA_DIR")
	if dataDir == "" {
		dataDir = "scripts/data"
	}

	if err := loadDataFromYAMLFiles(context.Background(), db, cfg, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func newSeeder(db *gorm.DB, cfg *config.Config) *seeder {
	repos := repository.NewRepositories(db)
	store := repository.NewStore(db)
	leadership := service.NewLeadershipManager()
	v := validator.New()
	return &seeder{
		repos:   repos,
		users:   service.NewUserService(repos, store, leadership, v, cfg),
		teams:   service.NewTeamService(repos, store, leadership, v, cfg),
		members: service.NewTeamMemberService(repos, v, cfg),
	}
}

func loadDataFromYAMLFiles(ctx context.Context, db *gorm.DB, cfg *config.Config, dataDir string) error {
	var teamsFiles []TeamsFile
	if err := walkYAML(dataDir, "teams", &teamsFiles); err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}
	var usersFiles []UsersFile
	if err := walkYAML(dataDir, "users", &usersFiles); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	var membersFiles []MembersFile
	if err := walkYAML(dataDir, "members", &membersFiles); err != nil {
		return fmt.Errorf("failed to load members: %w", err)
	}

	s := newSeeder(db, cfg)

	admin, created, err := s.ensureAdmin(os.Getenv("SEED_ADMIN_PASSWORD"))
	if err != nil {
		return fmt.Errorf("failed to ensure bootstrap admin: %w", err)
	}
	if created {
		log.Printf("👤 Bootstrap admin %q created", admin.Username)
	}
	s.operator = service.NewViewer(admin)

	// Teams first, leaderless; leaders attach when their accounts are created
	teamMap := make(map[string]uint)
	teamCreated, teamTotal := 0, 0
	for _, file := range teamsFiles {
		for _, teamData := range file.Teams {
			id, created, err := s.createTeam(ctx, teamData)
			if err != nil {
				return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
			}
			teamMap[strings.ToLower(teamData.Name)] = id
			teamTotal++
			if created {
				teamCreated++
			}
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, teamTotal)

	userCreated, userTotal := 0, 0
	for _, file := range usersFiles {
		for _, userData := range file.Users {
			created, err := s.createUser(ctx, userData, teamMap)
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", userData.Username, err)
			}
			userTotal++
			if created {
				userCreated++
			}
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, userTotal)

	memberCreated, memberTotal := 0, 0
	for _, file := range membersFiles {
		for _, memberData := range file.Members {
			created, err := s.createMember(ctx, memberData, teamMap)
			if err != nil {
				return fmt.Errorf("failed to create member %s: %w", memberData.Name, err)
			}
			memberTotal++
			if created {
				memberCreated++
			}
		}
	}
	log.Printf("📋 Team members: %d created, %d total", memberCreated, memberTotal)

	return nil
}

// walkYAML decodes every .yaml file below dataDir whose path contains kind
func walkYAML[T any](dataDir, kind string, out *[]T) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file T
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		*out = append(*out, file)
		return nil
	})
}

// ensureAdmin creates the protected admin account when it is missing.
// Services need an acting admin, so this one account is written directly.
func (s *seeder) ensureAdmin(password string) (*models.User, bool, error) {
	existing, err := s.repos.Users.GetByUsername(service.ProtectedUsername)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if password == "" {
		password = "admin123"
		log.Println("⚠️  SEED_ADMIN_PASSWORD not set, using the default admin password")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, false, err
	}
	admin := &models.User{
		Username:     service.ProtectedUsername,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := s.repos.Users.Create(admin); err != nil {
		return nil, false, err
	}
	return admin, true, nil
}

func (s *seeder) createTeam(ctx context.Context, teamData TeamData) (uint, bool, error) {
	existing, err := s.repos.Teams.GetByNameInsensitive(teamData.Name)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, fmt.Errorf("failed to query team: %w", err)
	}

	team, err := s.teams.CreateTeam(ctx, s.operator, &service.TeamRequest{Name: teamData.Name})
	if err != nil {
		return 0, false, err
	}
	return team.ID, true, nil
}

func (s *seeder) createUser(ctx context.Context, userData UserData, teamMap map[string]uint) (bool, error) {
	if _, err := s.repos.Users.GetByUsername(userData.Username); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query user: %w", err)
	}

	role, ok := models.ParseRole(userData.Role)
	if !ok {
		return false, fmt.Errorf("unknown role %q", userData.Role)
	}
	req := &service.CreateUserRequest{
		Username: userData.Username,
		Email:    userData.Email,
		Password: userData.Password,
		Role:     role,
	}
	if userData.LedTeam != "" {
		id, ok := teamMap[strings.ToLower(userData.LedTeam)]
		if !ok {
			return false, fmt.Errorf("team %s not found", userData.LedTeam)
		}
		req.LedTeamID = &id
	}

	if _, err := s.users.CreateUser(ctx, s.operator, req); err != nil {
		return false, err
	}
	return true, nil
}

func (s *seeder) createMember(ctx context.Context, memberData MemberData, teamMap map[string]uint) (bool, error) {
	teamID, ok := teamMap[strings.ToLower(memberData.TeamName)]
	if !ok {
		return false, fmt.Errorf("team %s not found", memberData.TeamName)
	}

	existing, err := s.repos.Members.GetByTeam(teamID)
	if err != nil {
		return false, fmt.Errorf("failed to query members: %w", err)
	}
	for _, m := range existing {
		if strings.EqualFold(m.Name, memberData.Name) {
			return false, nil
		}
	}

	if _, err := s.members.CreateMember(ctx, s.operator, &service.TeamMemberRequest{Name: memberData.Name, TeamID: teamID}); err != nil {
		return false, err
	}
	return true, nil
}

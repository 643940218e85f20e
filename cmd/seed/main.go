package main

import (
	"context"
	"log"
	"time"

	"github.com/JRamonda/my-cv/config"
	"github.com/JRamonda/my-cv/internal/domain"
	"github.com/JRamonda/my-cv/internal/repository/postgres"
	"github.com/JRamonda/my-cv/internal/usecase"
	"github.com/JRamonda/my-cv/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the admin account and a sample CV so a fresh deployment has
// something to render. Safe to re-run: the admin insert is a no-op on
// conflict and content is only created when no profile exists yet.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Println("Seeding database...")

	if err := seedAdmin(ctx, pool, cfg); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	profileUC := usecase.NewProfileUsecase(postgres.NewProfileRepository(pool))
	if _, err := profileUC.Get(ctx); err == nil {
		log.Println("Content already present, skipping sample data")
		return
	}

	if err := seedContent(ctx, pool, profileUC); err != nil {
		log.Fatalf("Failed to seed content: %v", err)
	}
	log.Println("Seeding complete")
}

func seedAdmin(ctx context.Context, pool *pgxpool.Pool, cfg *config.Config) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), 10)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := &domain.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Name:     cfg.AdminName,
	}
	admin.ID = uuid.NewString()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	if err := postgres.NewUserRepository(pool).Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Created user: %s", admin.Email)
	return nil
}

func seedContent(ctx context.Context, pool *pgxpool.Pool, profileUC domain.ProfileUsecase) error {
	str := func(s string) *string { return &s }
	date := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	datePtr := func(s string) *time.Time {
		t := date(s)
		return &t
	}

	profile := &domain.Profile{
		Name:     "John Doe",
		Title:    "Full Stack Developer",
		Bio:      "Passionate developer with 5+ years of experience building web applications. Specialized in React, Node.js, and cloud technologies.",
		Location: "San Francisco, CA",
		Email:    "john.doe@example.com",
		Phone:    str("+1 234 567 8900"),
		LinkedIn: str("https://linkedin.com/in/johndoe"),
		GitHub:   str("https://github.com/johndoe"),
		Website:  str("https://johndoe.dev"),
	}
	if err := profileUC.Create(ctx, profile); err != nil {
		return err
	}
	log.Printf("Created profile: %s", profile.Name)

	experienceUC := usecase.NewResourceUsecase[domain.Experience]("Experience", postgres.NewExperienceRepository(pool))
	experiences := []*domain.Experience{
		{
			Company:     "Tech Corp",
			Position:    "Senior Full Stack Developer",
			StartDate:   date("2021-01-01"),
			Current:     true,
			Description: "Leading development of modern web applications using React and Node.js",
			Achievements: []string{
				"Increased application performance by 40%",
				"Led a team of 5 developers",
				"Implemented CI/CD pipeline",
			},
			Challenges: []string{
				"Migrated legacy codebase to modern stack",
				"Optimized database queries",
			},
			Learnings: []string{
				"Advanced React patterns",
				"Microservices architecture",
				"Team leadership",
			},
			Technologies: []string{"React", "Node.js", "TypeScript", "PostgreSQL", "Docker"},
			SortOrder:    2,
		},
		{
			Company:      "StartupXYZ",
			Position:     "Full Stack Developer",
			StartDate:    date("2019-06-01"),
			EndDate:      datePtr("2020-12-31"),
			Description:  "Developed and maintained multiple client projects",
			Achievements: []string{"Built 10+ production applications", "Reduced bug count by 60%"},
			Challenges:   []string{"Tight deadlines", "Multiple project management"},
			Learnings:    []string{"Time management", "Client communication"},
			Technologies: []string{"Vue.js", "Express", "MongoDB"},
			SortOrder:    1,
		},
	}
	for _, e := range experiences {
		if err := experienceUC.Create(ctx, e); err != nil {
			return err
		}
	}
	log.Println("Created experiences")

	projectUC := usecase.NewResourceUsecase[domain.Project]("Project", postgres.NewProjectRepository(pool))
	projects := []*domain.Project{
		{
			Title:        "E-commerce Platform",
			Description:  "Full-featured online store with payment integration",
			LongDesc:     str("A comprehensive e-commerce solution with inventory management, payment processing, and admin dashboard."),
			Images:       []string{},
			DemoURL:      str("https://demo.example.com"),
			RepoURL:      str("https://github.com/example/ecommerce"),
			Technologies: []string{"Next.js", "Stripe", "PostgreSQL", "Tailwind CSS"},
			Highlights:   []string{"Payment integration", "Real-time inventory", "Admin dashboard"},
			Category:     "web",
			Featured:     true,
			SortOrder:    3,
		},
		{
			Title:        "Task Management App",
			Description:  "Collaborative task manager with real-time updates",
			Images:       []string{},
			Technologies: []string{"React", "Socket.io", "MongoDB"},
			Highlights:   []string{"Real-time collaboration", "Drag & drop interface"},
			Category:     "web",
			Featured:     true,
			SortOrder:    2,
		},
		{
			Title:        "Weather Dashboard",
			Description:  "Beautiful weather app with forecasts",
			Images:       []string{},
			Technologies: []string{"React Native", "OpenWeather API"},
			Highlights:   []string{"Location-based forecasts", "Offline support"},
			Category:     "mobile",
			SortOrder:    1,
		},
	}
	for _, p := range projects {
		if err := projectUC.Create(ctx, p); err != nil {
			return err
		}
	}
	log.Println("Created projects")

	skillUC := usecase.NewResourceUsecase[domain.Skill]("Skill", postgres.NewSkillRepository(pool))
	skills := []*domain.Skill{
		{Category: "frontend", Name: "React", Level: domain.SkillLevelExpert, SortOrder: 1},
		{Category: "frontend", Name: "TypeScript", Level: domain.SkillLevelExpert, SortOrder: 2},
		{Category: "frontend", Name: "Next.js", Level: domain.SkillLevelIntermediate, SortOrder: 3},
		{Category: "backend", Name: "Node.js", Level: domain.SkillLevelExpert, SortOrder: 4},
		{Category: "backend", Name: "PostgreSQL", Level: domain.SkillLevelIntermediate, SortOrder: 5},
		{Category: "devops", Name: "Docker", Level: domain.SkillLevelIntermediate, SortOrder: 6},
	}
	for _, s := range skills {
		if err := skillUC.Create(ctx, s); err != nil {
			return err
		}
	}
	log.Println("Created skills")

	techStackUC := usecase.NewResourceUsecase[domain.TechStack]("Tech stack", postgres.NewTechStackRepository(pool))
	stacks := []*domain.TechStack{
		{Category: "frontend", Name: "React", Preferred: true, SortOrder: 1},
		{Category: "frontend", Name: "Tailwind CSS", Preferred: true, SortOrder: 2},
		{Category: "backend", Name: "Node.js", Preferred: true, SortOrder: 3},
		{Category: "database", Name: "PostgreSQL", Preferred: true, SortOrder: 4},
		{Category: "tools", Name: "Docker", SortOrder: 5},
	}
	for _, t := range stacks {
		if err := techStackUC.Create(ctx, t); err != nil {
			return err
		}
	}
	log.Println("Created tech stack")

	referenceUC := usecase.NewResourceUsecase[domain.Reference]("Reference", postgres.NewReferenceRepository(pool))
	references := []*domain.Reference{
		{
			Name:         "Jane Smith",
			Position:     "Engineering Manager",
			Company:      "Tech Corp",
			Relationship: "Direct manager",
			Testimonial:  "An outstanding engineer who consistently delivers high-quality work and elevates the whole team.",
			Email:        str("jane.smith@example.com"),
			LinkedIn:     str("https://linkedin.com/in/janesmith"),
			SortOrder:    1,
		},
		{
			Name:         "Bob Johnson",
			Position:     "CTO",
			Company:      "StartupXYZ",
			Relationship: "Former employer",
			Testimonial:  "One of the most reliable developers I have worked with. Great communication and ownership.",
			SortOrder:    2,
		},
	}
	for _, ref := range references {
		if err := referenceUC.Create(ctx, ref); err != nil {
			return err
		}
	}
	log.Println("Created references")

	return nil
}

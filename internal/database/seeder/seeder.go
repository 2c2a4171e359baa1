package seeder

import (
	"context"
	"fmt"
	"time"

	"connectus/internal/domain/job"
	"connectus/internal/domain/user"
	"connectus/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "password123"

type demoUser struct {
	name   string
	email  string
	bio    string
	skills []string
}

type demoJob struct {
	ownerEmail  string
	title       string
	description string
	skills      []string
	budget      string
	salary      string
}

var demoUsers = []demoUser{
	{"Vanitha", "vanitha@example.com", "Full-stack developer with a focus on MERN stack. Passionate about building scalable applications.", []string{"React", "Node.js", "MongoDB", "Express"}},
	{"Sai Kumar", "saikumar@example.com", "Backend engineer specializing in Node.js and REST APIs. Experienced with blockchain and Web3.", []string{"Node.js", "Express", "JavaScript", "Web3", "Solana"}},
	{"Laxmi", "laxmi@example.com", "Frontend designer and developer. Skilled in UI/UX design with Tailwind CSS.", []string{"React", "Tailwind CSS", "UI/UX"}},
	{"Paparao", "paparao@example.com", "Software engineer with experience in cloud technologies and data structures.", []string{"JavaScript", "HTML", "CSS"}},
	{"Kavitha", "kavitha@example.com", "Junior developer exploring new technologies and frameworks. Eager to learn Web3.", []string{"React", "JavaScript"}},
}

var demoJobs = []demoJob{
	{"vanitha@example.com", "React Developer Needed", "Seeking a skilled React developer to build our new front-end.", []string{"React", "JavaScript"}, "$500", "70000"},
	{"saikumar@example.com", "Backend Node.js Engineer", "Looking for a backend engineer for a scalable API project.", []string{"Node.js", "Express", "MongoDB"}, "$1000", "85000"},
	{"laxmi@example.com", "UI/UX Designer", "Need a creative designer to work on our application interface.", []string{"UI/UX", "Tailwind CSS"}, "$750", "60000"},
	{"paparao@example.com", "Solana Web3 Developer", "Seeking a developer experienced with Solana and Web3.js.", []string{"Solana", "Web3"}, "$2000", "120000"},
	{"vanitha@example.com", "Full Stack Engineer", "A senior role for a full stack engineer with expertise in MERN stack.", []string{"React", "Node.js", "Express", "MongoDB"}, "$1500", "100000"},
	{"saikumar@example.com", "Junior Frontend Developer", "An entry-level role for a motivated developer to join our team.", []string{"HTML", "CSS", "JavaScript"}, "$300", "50000"},
	{"laxmi@example.com", "Senior React Developer", "Looking for a senior developer to lead our React projects.", []string{"React", "JavaScript", "Redux"}, "$1200", "95000"},
	{"paparao@example.com", "Express.js API Developer", "Seeking a developer with strong Express.js skills for a microservice.", []string{"Node.js", "Express", "API"}, "$800", "75000"},
	{"vanitha@example.com", "CSS & Tailwind Specialist", "A part-time role for a designer skilled in modern CSS frameworks.", []string{"Tailwind CSS", "CSS"}, "$400", "55000"},
	{"kavitha@example.com", "Blockchain Engineer", "A freelance opportunity for a blockchain engineer for a short-term project.", []string{"Solana", "Blockchain"}, "$3000", "130000"},
}

// Seed inserts demo accounts and job postings for local development. It is
// idempotent: accounts that already exist are reused and their jobs skipped.
func Seed(ctx context.Context, users user.Repository, jobs repository.JobRepository, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	idsByEmail := make(map[string]uuid.UUID, len(demoUsers))
	seededUsers := 0
	for _, du := range demoUsers {
		existing, err := users.GetByEmail(ctx, du.email)
		if err == nil {
			idsByEmail[du.email] = existing.ID
			continue
		}

		u := user.User{
			ID:           uuid.New(),
			Name:         du.name,
			Email:        du.email,
			PasswordHash: string(hash),
			Bio:          du.bio,
			Skills:       du.skills,
		}
		if err := users.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", du.email, err)
		}
		idsByEmail[du.email] = u.ID
		seededUsers++
	}

	seededJobs := 0
	if seededUsers > 0 {
		deadline := time.Now().Add(30 * 24 * time.Hour)
		for _, dj := range demoJobs {
			ownerID, ok := idsByEmail[dj.ownerEmail]
			if !ok {
				continue
			}
			j := job.Job{
				ID:          uuid.New(),
				UserID:      ownerID,
				Title:       dj.title,
				Description: dj.description,
				Skills:      dj.skills,
				Budget:      dj.budget,
				Salary:      dj.salary,
				Deadline:    deadline,
			}
			if err := jobs.Create(ctx, j); err != nil {
				return fmt.Errorf("seed job %q: %w", dj.title, err)
			}
			seededJobs++
		}
	}

	logger.Info("demo data seeded",
		zap.Int("users", seededUsers),
		zap.Int("jobs", seededJobs),
	)
	return nil
}

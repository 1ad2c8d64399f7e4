package taskstore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mistakeknot/taskdesk/internal/taskdesk/task"
)

// Seed is the on-disk fixture format for the bundled store.
type Seed struct {
	Users []SeedUser `yaml:"users"`
	Tasks []SeedTask `yaml:"tasks"`
}

type SeedUser struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type SeedTask struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"`
	OwnerID     string `yaml:"owner_id"`
	OwnerName   string `yaml:"owner_name"`
}

// LoadSeed parses a seed file and populates the store. The completed flag
// is derived from the status, never read from the fixture.
func LoadSeed(s *Store, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("seed %s: %w", path, err)
	}
	for _, u := range seed.Users {
		s.AddPerson(task.Person{
			ID:    task.NormalizeID(u.ID),
			Name:  u.Name,
			Email: u.Email,
		})
	}
	for _, t := range seed.Tasks {
		status := task.Status(t.Status)
		s.seed(task.Task{
			ID:          task.NormalizeID(t.ID),
			Title:       t.Title,
			Description: t.Description,
			Status:      status,
			OwnerID:     task.NormalizeID(t.OwnerID),
			OwnerName:   t.OwnerName,
			Completed:   status == task.StatusDone,
		})
	}
	return nil
}

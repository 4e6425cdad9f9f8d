package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/adanyl0v/go-task-cards/internal/models"
)

// SeedResult counts what Seed did.
type SeedResult struct {
	Created int
	Skipped int
}

// Seed creates every task listed in the YAML document read from r. Tasks whose
// id is already stored are skipped, so seeding twice is harmless.
//
//	- id: 1
//	  name: Buy milk
//	  description: 2%
//	  thumbnail: assets/images/cat.svg
//	  createdat: 10/19/2026, 3:04:05 PM
func Seed(ctx context.Context, svc TaskService, r io.Reader) (SeedResult, error) {
	var tasks []models.Task
	err := yaml.NewDecoder(r).Decode(&tasks)
	if err != nil && !errors.Is(err, io.EOF) {
		return SeedResult{}, fmt.Errorf("decode seed: %w", err)
	}

	var result SeedResult
	for i, task := range tasks {
		if task.Name == "" || task.Description == "" {
			return result, fmt.Errorf("seed task #%d: name and description are required", i+1)
		}

		_, err = svc.CreateTask(ctx, task)
		if err != nil {
			if errors.Is(err, ErrTaskAlreadyExists) {
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("seed task %d: %w", task.ID, err)
		}
		result.Created++
	}
	return result, nil
}

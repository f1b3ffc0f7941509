package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dropshipai/branding-api/internal/llm"
	"github.com/dropshipai/branding-api/internal/models"
	"github.com/dropshipai/branding-api/internal/normalize"
	"github.com/dropshipai/branding-api/internal/prompts"
	"github.com/dropshipai/branding-api/internal/repository"
)

// brandingOptions are the generation settings for branding packages.
// Creative copy wants a high temperature.
var brandingOptions = llm.Options{
	Temperature: 0.8,
	MaxTokens:   1000,
	JSONMode:    true,
}

// Completer is the slice of the llm client the services need. Tests
// substitute a canned implementation.
type Completer interface {
	Complete(ctx context.Context, system, user string, opts llm.Options) (string, error)
	Model() string
}

// BrandingService generates and persists branding packages.
type BrandingService struct {
	repos     *repository.Repositories
	completer Completer
	logger    *slog.Logger
}

// NewBrandingService creates a new branding service.
func NewBrandingService(repos *repository.Repositories, completer Completer, logger *slog.Logger) *BrandingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BrandingService{repos: repos, completer: completer, logger: logger}
}

// GenerateResult bundles everything a generation produced.
type GenerateResult struct {
	Project  *models.Project
	Output   *models.Output
	Branding *models.BrandingResult
}

// Generate runs a full branding generation: prompt, completion,
// normalization, then persistence of the project and its first output.
//
// Persistence is two separate inserts without a transaction; a failed
// output insert leaves the project row behind, and regeneration on that
// project is the recovery path.
func (s *BrandingService) Generate(ctx context.Context, userID string, input models.BrandingInput) (*GenerateResult, error) {
	if err := validateBrandingInput(input); err != nil {
		return nil, err
	}

	branding, err := s.generate(ctx, input)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		UserID:      userID,
		ProductName: input.Product,
		// The form collects a single product field; it doubles as the
		// description until a dedicated field exists
		ProductDescription: input.Product,
		TargetPersona:      input.Persona,
		Locality:           input.Location,
		BrandTone:          input.Tone,
	}
	if err := s.repos.Projects.Create(ctx, project); err != nil {
		return nil, &PersistenceError{Op: "save project", Err: err}
	}

	output, err := s.saveOutput(ctx, project.ID, branding)
	if err != nil {
		return nil, err
	}

	s.logger.Info("branding generated",
		"user_id", userID, "project_id", project.ID, "brand_name", branding.BrandName)

	return &GenerateResult{Project: project, Output: output, Branding: branding}, nil
}

// RegenerateResult bundles a regeneration's output.
type RegenerateResult struct {
	Output   *models.Output
	Branding *models.BrandingResult
}

// Regenerate reruns generation using a stored project's inputs and appends
// a new output. Projects saved before brand_tone existed regenerate with a
// professional tone.
func (s *BrandingService) Regenerate(ctx context.Context, userID, projectID string) (*RegenerateResult, error) {
	if projectID == "" {
		return nil, missingField("projectId")
	}

	project, err := s.repos.Projects.GetByID(ctx, userID, projectID)
	if err != nil {
		return nil, &PersistenceError{Op: "load project", Err: err}
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	tone := project.BrandTone
	if tone == "" {
		tone = "professional"
	}

	branding, err := s.generate(ctx, models.BrandingInput{
		Product:  project.ProductName,
		Persona:  project.TargetPersona,
		Tone:     tone,
		Location: project.Locality,
	})
	if err != nil {
		return nil, err
	}

	output, err := s.saveOutput(ctx, project.ID, branding)
	if err != nil {
		return nil, err
	}

	s.logger.Info("branding regenerated",
		"user_id", userID, "project_id", project.ID, "brand_name", branding.BrandName)

	return &RegenerateResult{Output: output, Branding: branding}, nil
}

// ProjectSummary pairs a project with its most recent output, so history
// views can show the current brand name without loading every output.
type ProjectSummary struct {
	Project      *models.Project `json:"project"`
	LatestOutput *models.Output  `json:"latestOutput,omitempty"`
}

// ListProjects returns the user's projects, newest first, each with its
// latest output. LatestOutput is nil for projects whose output insert
// failed and was never regenerated.
func (s *BrandingService) ListProjects(ctx context.Context, userID string) ([]*ProjectSummary, error) {
	projects, err := s.repos.Projects.ListByUserID(ctx, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "list projects", Err: err}
	}

	summaries := make([]*ProjectSummary, 0, len(projects))
	for _, project := range projects {
		latest, err := s.repos.Outputs.GetLatestByProjectID(ctx, userID, project.ID)
		if err != nil {
			return nil, &PersistenceError{Op: "load latest output", Err: err}
		}
		summaries = append(summaries, &ProjectSummary{Project: project, LatestOutput: latest})
	}
	return summaries, nil
}

// DeleteProject removes a project and, via cascade, its outputs.
func (s *BrandingService) DeleteProject(ctx context.Context, userID, projectID string) error {
	project, err := s.repos.Projects.GetByID(ctx, userID, projectID)
	if err != nil {
		return &PersistenceError{Op: "load project", Err: err}
	}
	if project == nil {
		return ErrProjectNotFound
	}

	if err := s.repos.Projects.Delete(ctx, userID, projectID); err != nil {
		return &PersistenceError{Op: "delete project", Err: err}
	}

	s.logger.Info("project deleted", "user_id", userID, "project_id", projectID)
	return nil
}

// ListOutputs returns a project's outputs, newest first.
func (s *BrandingService) ListOutputs(ctx context.Context, userID, projectID string) ([]*models.Output, error) {
	project, err := s.repos.Projects.GetByID(ctx, userID, projectID)
	if err != nil {
		return nil, &PersistenceError{Op: "load project", Err: err}
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	outputs, err := s.repos.Outputs.ListByProjectID(ctx, userID, projectID)
	if err != nil {
		return nil, &PersistenceError{Op: "list outputs", Err: err}
	}
	return outputs, nil
}

func (s *BrandingService) generate(ctx context.Context, input models.BrandingInput) (*models.BrandingResult, error) {
	raw, err := s.completer.Complete(ctx, prompts.BrandingSystem, prompts.Branding(input), brandingOptions)
	if err != nil {
		return nil, err
	}

	branding, err := normalize.Branding(raw)
	if err != nil {
		var malformed *normalize.MalformedError
		if errors.As(err, &malformed) {
			return nil, &ModelResponseError{Raw: malformed.Raw, Err: err}
		}
		return nil, &ModelResponseError{Raw: raw, Err: err}
	}
	return branding, nil
}

func (s *BrandingService) saveOutput(ctx context.Context, projectID string, branding *models.BrandingResult) (*models.Output, error) {
	output := &models.Output{
		ProjectID:       projectID,
		BrandName:       branding.BrandName,
		Tagline:         branding.Tagline,
		LandingPageCopy: branding.LandingPageCopy,
		AdHeadlines:     branding.AdHeadlines,
		TiktokScripts:   branding.TiktokScripts,
		AdPlatforms:     branding.AdPlatforms,
		BudgetStrategy:  branding.BudgetStrategy,
	}
	if err := s.repos.Outputs.Create(ctx, output); err != nil {
		return nil, &PersistenceError{Op: "save output", Err: err}
	}
	return output, nil
}

func validateBrandingInput(input models.BrandingInput) error {
	switch {
	case input.Product == "":
		return missingField("product")
	case input.Persona == "":
		return missingField("persona")
	case input.Tone == "":
		return missingField("tone")
	case input.Location == "":
		return missingField("location")
	}
	return nil
}

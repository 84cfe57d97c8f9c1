package suggest

import (
	"context"

	"go.uber.org/zap"

	"github.com/masterplan/backend/domain"
	"github.com/masterplan/backend/pkg/clock"
	goalUC "github.com/masterplan/backend/usecase/goal"
)

// GoalCreator is the slice of the goal store needed to adopt a suggestion.
type GoalCreator interface {
	AddGoal(ctx context.Context, userID string, input goalUC.GoalInput) (*domain.Goal, error)
}

// Suggestion is a ready-made goal template.
type Suggestion struct {
	Index       int      `json:"index"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	SubGoals    []string `json:"sub_goals"`
}

// UseCase serves the static suggestion catalog and the daily quote.
type UseCase struct {
	goals  GoalCreator
	clock  clock.Clock
	logger *zap.Logger
}

func New(goals GoalCreator, clk clock.Clock, logger *zap.Logger) *UseCase {
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		goals:  goals,
		clock:  clk,
		logger: logger,
	}
}

var catalog = []Suggestion{
	{
		Title:       "Establish a Daily Study Routine",
		Description: "Create a consistent daily schedule for studying with specific time blocks.",
		SubGoals: []string{
			"Morning review session",
			"Afternoon focused work",
			"Evening summary and preparation",
		},
	},
	{
		Title:       "Prepare for Upcoming Exams",
		Description: "Organize study materials and create a preparation plan for finals.",
		SubGoals: []string{
			"Create study guides for each subject",
			"Schedule practice tests",
			"Form/join study group",
			"Review past exams",
		},
	},
	{
		Title:       "Complete Semester Project",
		Description: "Break down and manage your semester-end project in manageable pieces.",
		SubGoals: []string{
			"Research and outline",
			"Draft initial version",
			"Get feedback",
			"Finalize and submit",
		},
	},
	{
		Title:       "Build Technical Skills",
		Description: "Enhance your technical abilities through practical projects and courses.",
		SubGoals: []string{
			"Complete online course",
			"Build a personal project",
			"Practice with coding challenges",
		},
	},
}

// List returns the suggestion catalog.
func (uc *UseCase) List(ctx context.Context) []Suggestion {
	out := make([]Suggestion, len(catalog))
	for i, s := range catalog {
		s.Index = i
		out[i] = s
	}
	return out
}

// Adopt adds the indexed suggestion to the user's collection as a fresh
// not-started goal.
func (uc *UseCase) Adopt(ctx context.Context, userID string, index int) (*domain.Goal, error) {
	if index < 0 || index >= len(catalog) {
		return nil, domain.NewError(domain.ErrCodeNotFound, "suggestion not found")
	}
	template := catalog[index]

	input := goalUC.GoalInput{
		Title:       template.Title,
		Description: template.Description,
		Status:      domain.StatusNotStarted,
	}
	for _, title := range template.SubGoals {
		input.SubGoals = append(input.SubGoals, goalUC.SubGoalInput{
			Title:  title,
			Status: domain.StatusNotStarted,
		})
	}

	created, err := uc.goals.AddGoal(ctx, userID, input)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("suggestion adopted",
		zap.String("user_id", userID), zap.Int("index", index))
	return created, nil
}

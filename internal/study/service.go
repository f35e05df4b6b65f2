// Package study defines the three study helpers, each a typed prompt:
// a study plan from the task board, personalized study tips and learning
// resource suggestions.
package study

import (
	"context"
	"fmt"
	"strings"

	"github.com/chris/studydesk/internal/llm"
	"github.com/chris/studydesk/internal/prompt"
	"go.uber.org/zap"
)

type Service struct {
	plan      *prompt.Flow[PlanInput, PlanOutput]
	tips      *prompt.Flow[TipsInput, TipsOutput]
	resources *prompt.Flow[ResourcesInput, ResourcesOutput]
}

func NewService(client llm.Client, log *zap.SugaredLogger) (*Service, error) {
	plan, err := prompt.New(PlanDefinition(), client, log)
	if err != nil {
		return nil, err
	}
	tips, err := prompt.New(TipsDefinition(), client, log)
	if err != nil {
		return nil, err
	}
	resources, err := prompt.New(ResourcesDefinition(), client, log)
	if err != nil {
		return nil, err
	}
	return &Service{plan: plan, tips: tips, resources: resources}, nil
}

func (s *Service) GenerateStudyPlan(ctx context.Context, in PlanInput) (*PlanOutput, error) {
	return s.plan.Run(ctx, in)
}

func (s *Service) ProvideStudyTips(ctx context.Context, in TipsInput) (*TipsOutput, error) {
	return s.tips.Run(ctx, in)
}

func (s *Service) SuggestLearningResources(ctx context.Context, in ResourcesInput) (*ResourcesOutput, error) {
	return s.resources.Run(ctx, in)
}

func nonBlank(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%s is blank", field)
	}
	return nil
}

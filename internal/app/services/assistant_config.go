package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/admitly/counselor/internal/app/models/dto"
	"github.com/admitly/counselor/internal/pkg/currency"
	"github.com/admitly/counselor/internal/pkg/scholarship"
)

const (
	assistantName         = "University Admissions Counselor"
	assistantFirstMessage = "Hello! I'm your university admissions counselor. I can help you learn about our courses, fees, and scholarship opportunities. What would you like to know?"
)

// AssistantSettings are the voice service options taken from configuration.
type AssistantSettings struct {
	PublicKey     string
	AssistantID   string
	ServerURL     string
	ModelProvider string
	Model         string
	Temperature   float64
	MaxTokens     int
	VoiceProvider string
	VoiceID       string
}

// AssistantConfig builds the inline assistant definition. The system prompt
// lists every catalog course with its discounted fee so the model quotes the
// same figures as the function calls.
func (s *AssistantService) AssistantConfig(ctx context.Context) (*dto.AssistantConfig, error) {
	courses, err := s.courseRepo.GetAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var table strings.Builder
	for i, c := range courses {
		calc := scholarship.Calculate(c, s.percentage)
		fmt.Fprintf(&table, "%d. %s - %s - Annual Fee: %s - Fee After %d%% Scholarship: %s\n",
			i+1, c.Name, c.Duration,
			currency.Grouped(c.AnnualFee), s.percentage, currency.Grouped(calc.FeeAfterScholarship))
	}

	return &dto.AssistantConfig{
		PublicKey:   s.settings.PublicKey,
		AssistantID: s.settings.AssistantID,
		Name:        assistantName,
		Model: dto.AssistantModel{
			Provider:    s.settings.ModelProvider,
			Model:       s.settings.Model,
			Temperature: s.settings.Temperature,
			MaxTokens:   s.settings.MaxTokens,
			Messages: []dto.AssistantMessage{
				{Role: "system", Content: s.systemPrompt(table.String())},
			},
		},
		Voice: dto.AssistantVoice{
			Provider: s.settings.VoiceProvider,
			VoiceID:  s.settings.VoiceID,
		},
		FirstMessage:        assistantFirstMessage,
		ServerURL:           s.settings.ServerURL,
		RecordingEnabled:    true,
		EndCallFunction:     true,
		BackgroundDenoising: true,
		Functions:           functionDefinitions(),
	}, nil
}

func (s *AssistantService) systemPrompt(courseTable string) string {
	return fmt.Sprintf(`You are a friendly and professional university admissions counselor. Your role is to help prospective students with course information, fees, and scholarship details.

IMPORTANT GUIDELINES:
- Keep responses concise (2-3 sentences max) for voice conversations
- Always be warm and professional
- Focus only on course information, fees, and scholarships
- For questions outside your scope, say: "%s"
- When discussing courses, always mention available scholarships
- Confirm course names clearly to avoid confusion
- Do not mention any college names, addresses, or websites
- Always use the exact wording for fees, durations, and scholarship figures from the data below

EXACT COURSE DATA (use these exact figures):
%s
CONVERSATION FLOW:
1. Greet callers warmly
2. Identify their intent and gather basic details (name, course interest, preferred start date)
3. Provide accurate course information using the exact data above
4. Handle follow-up questions about master's programs, fees, or durations
5. Offer scholarship information (%d%% available on all courses)
6. Ask if they need more information`,
		strings.TrimSuffix(courseInfoFallback, "."), courseTable, s.percentage)
}

func functionDefinitions() []dto.FunctionDefinition {
	courseName := map[string]dto.FunctionParameter{
		"courseName": {Type: "string", Description: "Name or part of the name of the course, e.g. \"BCA\" or \"MSc IT\""},
	}
	return []dto.FunctionDefinition{
		{
			Name:        FunctionGetCourseInfo,
			Description: "Get duration and fee details for a course",
			Parameters: dto.FunctionParameters{
				Type:       "object",
				Properties: courseName,
				Required:   []string{"courseName"},
			},
		},
		{
			Name:        FunctionSearchCourses,
			Description: "List the courses offered in a category",
			Parameters: dto.FunctionParameters{
				Type: "object",
				Properties: map[string]dto.FunctionParameter{
					"category": {
						Type:        "string",
						Description: "Course category",
						Enum:        []string{"all", "undergraduate", "postgraduate", "certificate", "it"},
					},
				},
				Required: []string{"category"},
			},
		},
		{
			Name:        FunctionGetScholarshipInfo,
			Description: "Get the fee after scholarship and the savings for a course",
			Parameters: dto.FunctionParameters{
				Type:       "object",
				Properties: courseName,
				Required:   []string{"courseName"},
			},
		},
	}
}

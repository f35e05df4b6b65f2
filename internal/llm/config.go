package llm

// TaskType identifies which prompt is being run.
type TaskType string

const (
	TaskStudyPlan TaskType = "study_plan"
	TaskStudyTips TaskType = "study_tips"
	TaskResources TaskType = "resources"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
}

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 2048
)

// DefaultTasks returns the generation parameters used when none are configured.
func DefaultTasks() map[TaskType]TaskConfig {
	return map[TaskType]TaskConfig{
		TaskStudyPlan: {Temperature: 0.7, MaxTokens: 4096},
		TaskStudyTips: {Temperature: 0.7, MaxTokens: 2048},
		TaskResources: {Temperature: 0.3, MaxTokens: 2048},
	}
}

// resolveParams picks the request override if present, then the task
// default, then the package default.
func resolveParams(tasks map[TaskType]TaskConfig, req GenerateRequest) (float64, int) {
	temp, maxTok := defaultTemperature, defaultMaxTokens
	if tc, ok := tasks[req.Task]; ok {
		temp = tc.Temperature
		if tc.MaxTokens > 0 {
			maxTok = tc.MaxTokens
		}
	}
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}
	return temp, maxTok
}

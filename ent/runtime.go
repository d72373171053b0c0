// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/fracdiv/ent/answerevent"
	"github.com/abhisek/fracdiv/ent/diagnosisevent"
	"github.com/abhisek/fracdiv/ent/hintevent"
	"github.com/abhisek/fracdiv/ent/lessonevent"
	"github.com/abhisek/fracdiv/ent/llmrequestevent"
	"github.com/abhisek/fracdiv/ent/schema"
	"github.com/abhisek/fracdiv/ent/sessionevent"
	"github.com/abhisek/fracdiv/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescStage is the schema descriptor for stage field.
	answereventDescStage := answereventFields[1].Descriptor()
	// answerevent.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	answerevent.StageValidator = answereventDescStage.Validators[0].(func(string) error)
	// answereventDescProblemText is the schema descriptor for problem_text field.
	answereventDescProblemText := answereventFields[2].Descriptor()
	// answerevent.ProblemTextValidator is a validator for the "problem_text" field. It is called by the builders before save.
	answerevent.ProblemTextValidator = answereventDescProblemText.Validators[0].(func(string) error)
	// answereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	answereventDescCorrectAnswer := answereventFields[3].Descriptor()
	// answerevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	answerevent.CorrectAnswerValidator = answereventDescCorrectAnswer.Validators[0].(func(string) error)
	// answereventDescLearnerAnswer is the schema descriptor for learner_answer field.
	answereventDescLearnerAnswer := answereventFields[4].Descriptor()
	// answerevent.LearnerAnswerValidator is a validator for the "learner_answer" field. It is called by the builders before save.
	answerevent.LearnerAnswerValidator = answereventDescLearnerAnswer.Validators[0].(func(string) error)
	// answereventDescAttempt is the schema descriptor for attempt field.
	answereventDescAttempt := answereventFields[6].Descriptor()
	// answerevent.AttemptValidator is a validator for the "attempt" field. It is called by the builders before save.
	answerevent.AttemptValidator = answereventDescAttempt.Validators[0].(func(int) error)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[7].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int)
	diagnosiseventMixin := schema.DiagnosisEvent{}.Mixin()
	diagnosiseventMixinFields0 := diagnosiseventMixin[0].Fields()
	_ = diagnosiseventMixinFields0
	diagnosiseventFields := schema.DiagnosisEvent{}.Fields()
	_ = diagnosiseventFields
	// diagnosiseventDescTimestamp is the schema descriptor for timestamp field.
	diagnosiseventDescTimestamp := diagnosiseventMixinFields0[1].Descriptor()
	// diagnosisevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	diagnosisevent.DefaultTimestamp = diagnosiseventDescTimestamp.Default.(func() time.Time)
	// diagnosiseventDescSessionID is the schema descriptor for session_id field.
	diagnosiseventDescSessionID := diagnosiseventFields[0].Descriptor()
	// diagnosisevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	diagnosisevent.SessionIDValidator = diagnosiseventDescSessionID.Validators[0].(func(string) error)
	// diagnosiseventDescProblemText is the schema descriptor for problem_text field.
	diagnosiseventDescProblemText := diagnosiseventFields[1].Descriptor()
	// diagnosisevent.ProblemTextValidator is a validator for the "problem_text" field. It is called by the builders before save.
	diagnosisevent.ProblemTextValidator = diagnosiseventDescProblemText.Validators[0].(func(string) error)
	// diagnosiseventDescLearnerAnswer is the schema descriptor for learner_answer field.
	diagnosiseventDescLearnerAnswer := diagnosiseventFields[2].Descriptor()
	// diagnosisevent.LearnerAnswerValidator is a validator for the "learner_answer" field. It is called by the builders before save.
	diagnosisevent.LearnerAnswerValidator = diagnosiseventDescLearnerAnswer.Validators[0].(func(string) error)
	// diagnosiseventDescCategory is the schema descriptor for category field.
	diagnosiseventDescCategory := diagnosiseventFields[3].Descriptor()
	// diagnosisevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	diagnosisevent.CategoryValidator = diagnosiseventDescCategory.Validators[0].(func(string) error)
	// diagnosiseventDescMisconceptionID is the schema descriptor for misconception_id field.
	diagnosiseventDescMisconceptionID := diagnosiseventFields[4].Descriptor()
	// diagnosisevent.DefaultMisconceptionID holds the default value on creation for the misconception_id field.
	diagnosisevent.DefaultMisconceptionID = diagnosiseventDescMisconceptionID.Default.(string)
	// diagnosiseventDescConfidence is the schema descriptor for confidence field.
	diagnosiseventDescConfidence := diagnosiseventFields[5].Descriptor()
	// diagnosisevent.DefaultConfidence holds the default value on creation for the confidence field.
	diagnosisevent.DefaultConfidence = diagnosiseventDescConfidence.Default.(float64)
	// diagnosiseventDescClassifier is the schema descriptor for classifier field.
	diagnosiseventDescClassifier := diagnosiseventFields[6].Descriptor()
	// diagnosisevent.DefaultClassifier holds the default value on creation for the classifier field.
	diagnosisevent.DefaultClassifier = diagnosiseventDescClassifier.Default.(string)
	// diagnosiseventDescReasoning is the schema descriptor for reasoning field.
	diagnosiseventDescReasoning := diagnosiseventFields[7].Descriptor()
	// diagnosisevent.DefaultReasoning holds the default value on creation for the reasoning field.
	diagnosisevent.DefaultReasoning = diagnosiseventDescReasoning.Default.(string)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescSessionID is the schema descriptor for session_id field.
	hinteventDescSessionID := hinteventFields[0].Descriptor()
	// hintevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	hintevent.SessionIDValidator = hinteventDescSessionID.Validators[0].(func(string) error)
	// hinteventDescStage is the schema descriptor for stage field.
	hinteventDescStage := hinteventFields[1].Descriptor()
	// hintevent.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	hintevent.StageValidator = hinteventDescStage.Validators[0].(func(string) error)
	// hinteventDescProblemText is the schema descriptor for problem_text field.
	hinteventDescProblemText := hinteventFields[2].Descriptor()
	// hintevent.ProblemTextValidator is a validator for the "problem_text" field. It is called by the builders before save.
	hintevent.ProblemTextValidator = hinteventDescProblemText.Validators[0].(func(string) error)
	// hinteventDescHintText is the schema descriptor for hint_text field.
	hinteventDescHintText := hinteventFields[3].Descriptor()
	// hintevent.HintTextValidator is a validator for the "hint_text" field. It is called by the builders before save.
	hintevent.HintTextValidator = hinteventDescHintText.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescCostUsd is the schema descriptor for cost_usd field.
	llmrequesteventDescCostUsd := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultCostUsd holds the default value on creation for the cost_usd field.
	llmrequestevent.DefaultCostUsd = llmrequesteventDescCostUsd.Default.(float64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescSessionID is the schema descriptor for session_id field.
	lessoneventDescSessionID := lessoneventFields[0].Descriptor()
	// lessonevent.DefaultSessionID holds the default value on creation for the session_id field.
	lessonevent.DefaultSessionID = lessoneventDescSessionID.Default.(string)
	// lessoneventDescProblemText is the schema descriptor for problem_text field.
	lessoneventDescProblemText := lessoneventFields[1].Descriptor()
	// lessonevent.ProblemTextValidator is a validator for the "problem_text" field. It is called by the builders before save.
	lessonevent.ProblemTextValidator = lessoneventDescProblemText.Validators[0].(func(string) error)
	// lessoneventDescTitle is the schema descriptor for title field.
	lessoneventDescTitle := lessoneventFields[2].Descriptor()
	// lessonevent.DefaultTitle holds the default value on creation for the title field.
	lessonevent.DefaultTitle = lessoneventDescTitle.Default.(string)
	// lessoneventDescPracticeText is the schema descriptor for practice_text field.
	lessoneventDescPracticeText := lessoneventFields[3].Descriptor()
	// lessonevent.DefaultPracticeText holds the default value on creation for the practice_text field.
	lessonevent.DefaultPracticeText = lessoneventDescPracticeText.Default.(string)
	// lessoneventDescPracticeVerified is the schema descriptor for practice_verified field.
	lessoneventDescPracticeVerified := lessoneventFields[4].Descriptor()
	// lessonevent.DefaultPracticeVerified holds the default value on creation for the practice_verified field.
	lessonevent.DefaultPracticeVerified = lessoneventDescPracticeVerified.Default.(bool)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescStage is the schema descriptor for stage field.
	sessioneventDescStage := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultStage holds the default value on creation for the stage field.
	sessionevent.DefaultStage = sessioneventDescStage.Default.(string)
	// sessioneventDescProblemsServed is the schema descriptor for problems_served field.
	sessioneventDescProblemsServed := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultProblemsServed holds the default value on creation for the problems_served field.
	sessionevent.DefaultProblemsServed = sessioneventDescProblemsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescSeed is the schema descriptor for seed field.
	sessioneventDescSeed := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultSeed holds the default value on creation for the seed field.
	sessionevent.DefaultSeed = sessioneventDescSeed.Default.(int64)
	// sessioneventDescLlmEnabled is the schema descriptor for llm_enabled field.
	sessioneventDescLlmEnabled := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultLlmEnabled holds the default value on creation for the llm_enabled field.
	sessionevent.DefaultLlmEnabled = sessioneventDescLlmEnabled.Default.(bool)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}

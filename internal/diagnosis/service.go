package diagnosis

import (
	"context"
	"sync"

	"github.com/abhisek/fracdiv/internal/llm"
	"github.com/abhisek/fracdiv/internal/problemgen"
)

// queueSize bounds pending LLM diagnoses; extra requests are dropped.
const queueSize = 32

// Service explains wrong answers: rules first, synchronously, then an
// optional LLM pass in the background when no rule matched.
type Service struct {
	classifiers []Classifier
	diagnoser   *Diagnoser

	mu      sync.Mutex
	closed  bool
	pending chan diagnosisJob
	wg      sync.WaitGroup
}

type diagnosisJob struct {
	ctx context.Context
	req *DiagnosisRequest
	cb  func(*DiagnosisResult)
}

// NewService creates a diagnosis service. A nil provider means rules only.
func NewService(provider llm.Provider) *Service {
	s := &Service{classifiers: DefaultClassifiers()}
	if provider != nil {
		s.diagnoser = NewDiagnoser(provider, DefaultDiagnoserConfig())
		s.pending = make(chan diagnosisJob, queueSize)
		s.wg.Add(1)
		go s.worker()
	}
	return s
}

// Request describes one wrong answer.
type Request struct {
	Problem        *problemgen.Problem
	LearnerAnswer  string
	ResponseTimeMs int
	Accuracy       float64
	Attempt        int
}

// Diagnose returns the rule-based result right away. When it is
// unclassified and an LLM is configured, the answer is also queued for LLM
// diagnosis and cb receives that result from another goroutine.
func (s *Service) Diagnose(ctx context.Context, req Request, cb func(*DiagnosisResult)) *DiagnosisResult {
	cat, conf, name := RunClassifiers(s.classifiers, &ClassifyInput{
		Problem:        req.Problem,
		LearnerAnswer:  req.LearnerAnswer,
		ResponseTimeMs: req.ResponseTimeMs,
		Accuracy:       req.Accuracy,
	})
	if cat != "" {
		res := &DiagnosisResult{Category: cat, Confidence: conf, ClassifierName: name}
		if cat == CategoryMisconception {
			res.MisconceptionID = name
		}
		return res
	}

	if req.Problem != nil {
		s.enqueue(diagnosisJob{
			ctx: ctx,
			req: &DiagnosisRequest{
				Problem:       *req.Problem,
				LearnerAnswer: req.LearnerAnswer,
				Attempt:       req.Attempt,
				Candidates:    AllMisconceptions(),
			},
			cb: cb,
		})
	}
	return &DiagnosisResult{Category: CategoryUnclassified, ClassifierName: "none"}
}

func (s *Service) enqueue(job diagnosisJob) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil || s.closed {
		return
	}
	select {
	case s.pending <- job:
	default:
		// LLM diagnosis is best-effort.
	}
}

func (s *Service) worker() {
	defer s.wg.Done()
	for job := range s.pending {
		res, err := s.diagnoser.Diagnose(job.ctx, job.req)
		if err != nil || job.cb == nil {
			continue
		}
		job.cb(res)
	}
}

// Close stops accepting LLM work and waits for queued diagnoses to finish.
// It is safe to call more than once.
func (s *Service) Close() {
	s.mu.Lock()
	if s.closed || s.pending == nil {
		s.closed = true
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.pending)
	s.mu.Unlock()
	s.wg.Wait()
}

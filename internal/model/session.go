package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type ViewState string

const (
	StateLogin     ViewState = "LOGIN"
	StateDashboard ViewState = "DASHBOARD"
	StateSuccess   ViewState = "SUCCESS"
)

// MinMotivationLength is the shortest letter, in characters, worth sending
// for analysis.
const MinMotivationLength = 20

var (
	ErrInvalidTransition  = errors.New("action not allowed in current state")
	ErrAnalysisInProgress = errors.New("analysis already in progress")
)

// FieldErrors maps a form field name to the reason it was rejected.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

// Submission is what the dashboard form posts on validation. Photos are only
// checked for presence.
type Submission struct {
	Fields       map[string]string
	PhotoFront   bool
	PhotoProfile bool
	Consent      bool
}

// Session is one candidate's pass through the intake screens. All fields are
// guarded by mu; AI calls happen outside the lock between a Begin and a
// Complete call.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu           sync.Mutex
	state        ViewState
	dossier      CandidateDossier
	hostMessage  string
	feedback     *AiFeedback
	analyzedText string
	analyzing    bool
	lastSeen     time.Time
}

// SessionView is a consistent copy of a session for rendering.
type SessionView struct {
	ID            uuid.UUID
	State         ViewState
	Dossier       CandidateDossier
	HostMessage   string
	Feedback      *AiFeedback
	FeedbackStale bool
	Analyzing     bool
}

func NewSession(seed CandidateDossier, now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		state:     StateLogin,
		dossier:   seed.Clone(),
		lastSeen:  now,
	}
}

func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := SessionView{
		ID:          s.ID,
		State:       s.state,
		Dossier:     s.dossier.Clone(),
		HostMessage: s.hostMessage,
		Analyzing:   s.analyzing,
	}
	if s.feedback != nil {
		fb := *s.feedback
		v.Feedback = &fb
		v.FeedbackStale = s.analyzedText != s.dossier.MotivationLetter
	}
	return v
}

func (s *Session) State() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// IdleSince reports whether the session has not been used since cutoff.
// A session with an analysis in flight is never idle.
func (s *Session) IdleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.analyzing && s.lastSeen.Before(cutoff)
}

// BeginLogin checks that the session sits on the login screen and returns the
// first name to greet.
func (s *Session) BeginLogin() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateLogin {
		return "", fmt.Errorf("login from %s: %w", s.state, ErrInvalidTransition)
	}
	return s.dossier.FirstName, nil
}

// CompleteLogin moves LOGIN to DASHBOARD with the given host message. It
// returns false when another login already moved the session on.
func (s *Session) CompleteLogin(hostMessage string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateLogin {
		return false
	}
	s.hostMessage = hostMessage
	s.state = StateDashboard
	return true
}

// UpdateFields applies edits by JSON field name. Either every edit is
// applied or none is.
func (s *Session) UpdateFields(fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateDashboard {
		return fmt.Errorf("edit from %s: %w", s.state, ErrInvalidTransition)
	}
	next, err := applyFields(s.dossier, fields)
	if err != nil {
		return err
	}
	s.dossier = next
	return nil
}

func applyFields(d CandidateDossier, fields map[string]string) (CandidateDossier, error) {
	errs := FieldErrors{}
	for name, value := range fields {
		if err := d.SetField(name, value); err != nil {
			errs[name] = err.Error()
		}
	}
	if len(errs) > 0 {
		return d, errs
	}
	return d, nil
}

// BeginAnalysis marks the session busy and returns the letter to analyze.
// ok is false, with no error and nothing changed, when the letter is too
// short to be worth a call.
func (s *Session) BeginAnalysis() (text string, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateDashboard {
		return "", false, fmt.Errorf("analyze from %s: %w", s.state, ErrInvalidTransition)
	}
	if s.analyzing {
		return "", false, ErrAnalysisInProgress
	}
	text = s.dossier.MotivationLetter
	if utf8.RuneCountInString(text) < MinMotivationLength {
		return "", false, nil
	}
	s.analyzing = true
	return text, true, nil
}

// CompleteAnalysis stores feedback for the text handed out by BeginAnalysis
// and clears the busy flag.
func (s *Session) CompleteAnalysis(text string, feedback AiFeedback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback = &feedback
	s.analyzedText = text
	s.analyzing = false
}

// Submit runs the required-field check and moves DASHBOARD to SUCCESS. On a
// failed check the state is unchanged and the returned FieldErrors names
// every missing input.
func (s *Session) Submit(sub Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateDashboard {
		return fmt.Errorf("submit from %s: %w", s.state, ErrInvalidTransition)
	}

	next, err := applyFields(s.dossier, sub.Fields)
	if err != nil {
		return err
	}

	errs := FieldErrors{}
	for _, name := range next.MissingFields() {
		errs[name] = "required"
	}
	if !sub.PhotoFront {
		errs["photo_front"] = "required"
	}
	if !sub.PhotoProfile {
		errs["photo_profile"] = "required"
	}
	if !sub.Consent {
		errs["consent"] = "required"
	}

	s.dossier = next
	if len(errs) > 0 {
		return errs
	}
	s.state = StateSuccess
	return nil
}

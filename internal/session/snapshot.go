package session

import "fmt"

// QuestionView is a question as shown while playing: the correct answer is withheld.
type QuestionView struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

type Snapshot struct {
	QuizID    string        `json:"quizId"`
	QuizTitle string        `json:"quizTitle"`
	Phase     Phase         `json:"phase"`
	Cursor    int           `json:"cursor"`
	Total     int           `json:"total"`
	Current   *QuestionView `json:"current,omitempty"`
	Answers   []int         `json:"answers"`
	TimeLeft  int           `json:"timeLeft"`
	Clock     string        `json:"clock"`
	Progress  int           `json:"progress"`
	Result    *Result       `json:"result,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		QuizID:    s.quiz.ID,
		QuizTitle: s.quiz.Title,
		Phase:     s.phase,
		Cursor:    s.cursor,
		Total:     len(s.quiz.Questions),
		Answers:   append([]int(nil), s.answers...),
		TimeLeft:  s.timeLeft,
		Clock:     FormatClock(s.timeLeft),
	}

	if snap.Total > 0 {
		snap.Progress = (s.cursor + 1) * 100 / snap.Total
	}

	if s.phase == InProgress && snap.Total > 0 {
		q := s.quiz.Questions[s.cursor]
		snap.Current = &QuestionView{
			ID:      q.ID,
			Text:    q.Text,
			Options: append([]string(nil), q.Options...),
		}
	}

	if s.submitted && s.submitErr == nil {
		res := s.result
		snap.Result = &res
	}

	return snap
}

// FormatClock renders seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

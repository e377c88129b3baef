package quiz

import "time"

// timerTickMsg is sent every second to update the elapsed clock.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the learner dismisses question feedback.
type feedbackDoneMsg struct{}

// quizDoneMsg is sent after the last question to trigger grading.
type quizDoneMsg struct{}

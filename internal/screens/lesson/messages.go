package lesson

import "time"

// lessonPollMsg is sent periodically to pick up a finished micro-lesson.
type lessonPollMsg time.Time

// completeMsg is sent once the last practice problem is done.
type completeMsg struct{}

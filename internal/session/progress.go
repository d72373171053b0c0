package session

// Progress counts finished problems. A problem is finished when it is
// answered correctly or its answer is revealed.
type Progress struct {
	Served     int
	Correct    int
	Streak     int
	BestStreak int
}

// Record adds a finished problem.
func (p *Progress) Record(correct bool) {
	p.Served++
	if correct {
		p.Correct++
		p.Streak++
		p.BestStreak = max(p.BestStreak, p.Streak)
		return
	}
	p.Streak = 0
}

// Accuracy returns Correct/Served, 0 when nothing was served.
func (p Progress) Accuracy() float64 {
	if p.Served == 0 {
		return 0
	}
	return float64(p.Correct) / float64(p.Served)
}
